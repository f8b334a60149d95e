// Package cli provides the command-line interface for chromeless.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/chromeless/internal/config"
	"github.com/bnema/chromeless/internal/logging"
)

// App carries the loaded configuration and logger shared by all
// commands.
type App struct {
	Config  *config.Manager
	Log     zerolog.Logger
	Version string
	Commit  string
	Date    string
}

var app *App

// GetApp returns the initialized application state, nil before the
// root command's PersistentPreRunE has run.
func GetApp() *App {
	return app
}

// NewRootCmd creates the root command for chromeless.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chromeless",
		Short: "Frameless window chrome for native windows",
		Long: `Chromeless replaces the native title bar and borders of a window with
an application-drawn caption strip while keeping OS window behaviors:
drag with snap assist, edge resizing, double-click maximize and the
caption button cluster.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Env-only logger until the config file is loaded.
			boot := logging.NewFromEnv()

			manager, err := config.NewManager()
			if err != nil {
				return fmt.Errorf("failed to create config manager: %w", err)
			}
			if err := manager.Load(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			boot.Debug().Str("config", manager.GetConfigFile()).Msg("configuration loaded")

			app = &App{
				Config:  manager,
				Log:     buildLogger(manager.Get()),
				Version: version,
				Commit:  commit,
				Date:    buildDate,
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), app.Log))
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("chromeless %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newAttachCmd())
	return rootCmd
}

// buildLogger assembles the logger from the logging section, falling
// back to environment variables for level and format overrides.
func buildLogger(cfg *config.Config) zerolog.Logger {
	lc := logging.DefaultConfig()

	switch cfg.Logging.Level {
	case "trace":
		lc.Level = zerolog.TraceLevel
	case "debug":
		lc.Level = zerolog.DebugLevel
	case "warn":
		lc.Level = zerolog.WarnLevel
	case "error":
		lc.Level = zerolog.ErrorLevel
	}
	if cfg.Logging.Format != "" {
		lc.Format = cfg.Logging.Format
	}
	if cfg.Logging.EnableFileLog {
		dir := cfg.Logging.LogDir
		if dir == "" {
			if stateDir, err := config.GetStateDir(); err == nil {
				dir = stateDir
			}
		}
		lc.Dir = dir
		lc.MaxSizeMB = cfg.Logging.MaxSize
		lc.MaxBackups = cfg.Logging.MaxBackups
		lc.MaxAgeDays = cfg.Logging.MaxAge
		lc.Compress = cfg.Logging.Compress
	}
	return logging.New(lc)
}
