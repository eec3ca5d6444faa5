// Package cli implements the nahw command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nahw-app/nahw/internal/config"
	"github.com/nahw-app/nahw/internal/logging"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile        string
	jsonOutput     bool
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "nahw",
	Short:         "Arabic grammar lessons in the terminal",
	Long:          "nahw presents Arabic grammar lesson menus as themed, animated cards.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: <user config dir>/nahw/config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("theme", "", "theme name (see 'nahw theme list')")
	flags.String("data-dir", "", "directory for the settings database and logs")
	flags.BoolVar(&jsonOutput, "json", false, "write machine-readable JSON")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return appConfig
}

func initConfig(cmd *cobra.Command) error {
	v := config.New()
	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"log.level": "log-level",
		"theme":     "theme",
		"data_dir":  "data-dir",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	if err := logging.Init(logging.Config{Level: cfg.Log.Level, Console: true}); err != nil {
		return err
	}
	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("data_dir", cfg.DataDir).
		Str("theme", cfg.Theme).
		Msg("config loaded")
	return nil
}
