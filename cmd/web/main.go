package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/de-tools/commerce-atlas/pkg/server"
	"github.com/de-tools/commerce-atlas/pkg/services/config"
	"github.com/de-tools/commerce-atlas/pkg/services/registry"
	"github.com/de-tools/commerce-atlas/pkg/store/engine"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Commerce Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", defaultProfilesPath(),
		"Path to the store profiles file (default is $HOME/.atlascfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func defaultProfilesPath() string {
	usr, err := user.Current()
	if err != nil {
		return ".atlascfg"
	}
	return filepath.Join(usr.HomeDir, ".atlascfg")
}

func runServer(cmd *cobra.Command, _ []string) error {
	bootLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		bootLogger.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.LoadWithProfiles(cfgPath, profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg, os.Stdout)
	ctx := logger.WithContext(cmd.Context())

	db, dialect, err := engine.Open(ctx, engine.Settings{
		Driver: cfg.Store.Driver,
		DSN:    cfg.Store.DSN,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	logger.Info().
		Str("driver", dialect.Name).
		Str("profile", cfg.Store.Profile).
		Str("release", cfg.ReleaseVersion).
		Msg("store opened")

	services, err := registry.NewServices(db, dialect, nil)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ReleaseVersion:  cfg.ReleaseVersion,
		Environment:     cfg.Environment,
		Dependencies: server.Dependencies{
			DB:        db,
			Catalog:   services.Catalog,
			Inventory: services.Inventory,
			Sales:     services.Sales,
			Revenue:   services.Revenue,
		},
	})

	return api.Start()
}
