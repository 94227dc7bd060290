package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/de-tools/commerce-atlas/pkg/runtime/terminal"
	"github.com/de-tools/commerce-atlas/pkg/services/config"
	"github.com/de-tools/commerce-atlas/pkg/services/registry"
	"github.com/de-tools/commerce-atlas/pkg/store/engine"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded")
	}

	cli := terminal.NewCLI(terminal.Options{
		Connect:      connect,
		Output:       os.Stdout,
		ProfilesPath: defaultProfilesPath(),
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func connect(ctx context.Context, cfg config.Config) (*registry.Services, io.Closer, error) {
	db, dialect, err := engine.Open(ctx, engine.Settings{
		Driver: cfg.Store.Driver,
		DSN:    cfg.Store.DSN,
	})
	if err != nil {
		return nil, nil, err
	}

	services, err := registry.NewServices(db, dialect, nil)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return services, db, nil
}

func defaultProfilesPath() string {
	usr, err := user.Current()
	if err != nil {
		return ".atlascfg"
	}
	return filepath.Join(usr.HomeDir, ".atlascfg")
}
