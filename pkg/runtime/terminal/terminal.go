package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/commerce-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/commerce-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/commerce-atlas/pkg/services/config"
	"github.com/de-tools/commerce-atlas/pkg/services/registry"
	"github.com/de-tools/commerce-atlas/pkg/services/revenue"
	"github.com/de-tools/commerce-atlas/pkg/services/sales"
	"github.com/de-tools/commerce-atlas/pkg/services/seed"
	"github.com/spf13/cobra"
)

// Connector opens the configured store and builds the services over it.
// The returned closer releases the store.
type Connector func(ctx context.Context, cfg config.Config) (*registry.Services, io.Closer, error)

// Options contain configuration for the CLI
type Options struct {
	Connect      Connector
	Output       io.Writer
	ProfilesPath string
}

// CLI represents the command-line interface
type CLI struct {
	connect Connector
	output  io.Writer

	configPath   string
	profilesPath string
	format       string

	ctx      context.Context
	cfg      config.Config
	services *registry.Services
	closer   io.Closer
	rootCmd  *cobra.Command
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		connect:      opts.Connect,
		output:       opts.Output,
		profilesPath: opts.ProfilesPath,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute runs the root command and releases the store afterwards, also when
// the command failed.
func (cli *CLI) Execute() (err error) {
	defer func() { err = errors.Join(err, cli.Close()) }()
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) (err error) {
	defer func() { err = errors.Join(err, cli.Close()) }()
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "atlas",
		Short:             "Commerce analytics tool",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.output)

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&cli.profilesPath, "profiles", cli.profilesPath, "Path to the store profiles file")
	cmd.PersistentFlags().StringVar(&cli.format, "format", "table", "Report format: table or list")

	cmd.AddCommand(commands.NewSeedCmd(cli.seeder))
	cmd.AddCommand(commands.NewReportCmd(cli))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	if cli.format != "table" && cli.format != "list" {
		return fmt.Errorf("unknown report format %q", cli.format)
	}

	cfg, err := config.LoadWithProfiles(cli.configPath, cli.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cli.cfg = cfg

	logger := config.NewLogger(cfg, cmd.ErrOrStderr())
	cli.ctx = logger.WithContext(cmd.Context())
	cmd.SetContext(cli.ctx)
	return nil
}

func (cli *CLI) ensureServices() (*registry.Services, error) {
	if cli.services != nil {
		return cli.services, nil
	}
	if cli.connect == nil {
		return nil, fmt.Errorf("no store connector configured")
	}

	services, closer, err := cli.connect(cli.ctx, cli.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	cli.services, cli.closer = services, closer
	return services, nil
}

func (cli *CLI) Close() error {
	if cli.closer == nil {
		return nil
	}
	err := cli.closer.Close()
	cli.closer, cli.services = nil, nil
	return err
}

func (cli *CLI) seeder() (*seed.Seeder, error) {
	services, err := cli.ensureServices()
	if err != nil {
		return nil, err
	}
	return services.Seeder, nil
}

func (cli *CLI) Revenue() (revenue.Reporter, error) {
	services, err := cli.ensureServices()
	if err != nil {
		return nil, err
	}
	return services.Revenue, nil
}

func (cli *CLI) Sales() (sales.Service, error) {
	services, err := cli.ensureServices()
	if err != nil {
		return nil, err
	}
	return services.Sales, nil
}

func (cli *CLI) Currency() string {
	return cli.cfg.Currency
}

func (cli *CLI) Handler() commands.Handler {
	if cli.format == "list" {
		return NewReporter(cli.output)
	}
	return export.NewReporter(cli.output)
}
