package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/raykavin/vbtforge"
	"github.com/spf13/cobra"
)

// Global flags
var (
	envFile      string
	settingsFile string
	noStore      bool
)

// session is opened before every command and closed after it
var session *vbtforge.Session

func main() {
	rootCmd := &cobra.Command{
		Use:               "vbtforge",
		Short:             "Indicator analysis and backtest program generator for vectorbtpro",
		Version:           "1.0.0",
		SilenceUsage:      true,
		PersistentPreRunE: openSession,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if session != nil {
				return session.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Environment file loaded before the logger is configured")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "config", "", "Settings file (default ./punkt3_config.json)")
	rootCmd.PersistentFlags().BoolVar(&noStore, "no-store", false, "Disable profiles and generation history")

	rootCmd.AddCommand(
		buildCatalogCmd(),
		buildGenerateCmd(),
		buildPortfolioCmd(),
		buildSessionsCmd(),
		buildDatasetCmd(),
		buildPreviewCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openSession(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	log, err := vbtforge.NewLoggerFromEnv()
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	vbtforge.DefaultLog = log

	options := []vbtforge.Option{vbtforge.WithSettingsFile(settingsFile)}
	if noStore {
		options = append(options, vbtforge.WithoutStorage())
	}

	session, err = vbtforge.NewSession(options...)
	return err
}

// loadEnvFile loads the environment file when it exists
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}
