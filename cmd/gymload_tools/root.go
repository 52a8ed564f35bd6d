package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/gymload/internal/config"
	"github.com/2beens/gymload/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagEnv        string
	flagConfigPath string
	flagEnvFile    string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "gymload_tools",
	Short:         "Admin tools for the gymload database",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(flagEnvFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file [%s]: %w", flagEnvFile, err)
		}
		log.SetLevel(log.WarnLevel)
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "development", "config environment [dev | prod]")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "optional file with secrets")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(prsCmd)
}

// openDB loads the config and connects to its postgres, password from GYMLOAD_DB_PASSWORD.
func openDB(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load(flagEnv, flagConfigPath)
	if err != nil {
		return nil, nil, err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("GYMLOAD_DB_PASSWORD"),
	})
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping db: %w", err)
	}

	log.Debugf("connected to %s:%s/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)
	return cfg, pool, nil
}
