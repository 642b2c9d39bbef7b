// Package cmd implements the quench command-line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quenchsim/quench/internal/config"
	"github.com/quenchsim/quench/internal/log"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "quench",
	Short:   "Keyword schema and input file tooling for quench simulations",
	Long: `Tooling for the quench typed keyword system: validate simulation input
files against a keyword schema, rewrite them canonically, and watch them
for changes.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version string reported by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/quench/config.yaml)")
	rootCmd.PersistentFlags().StringP("schema", "s", "",
		"keyword schema file")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging")

	_ = viper.BindPFlag("schema_path", rootCmd.PersistentFlags().Lookup("schema"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("schema_path", defaults.SchemaPath)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("watch_debounce", defaults.WatchDebounce)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .quench/config.yaml (current directory)
		// 2. ~/.config/quench/config.yaml (user config)
		if _, err := os.Stat(".quench/config.yaml"); err == nil {
			viper.SetConfigFile(".quench/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "quench"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".quench/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if cfg.LogFile != "" {
		if _, err := log.Init(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: cannot open log file:", err)
		}
	}
	log.SetEnabled(cfg.LogFile != "" || cfg.Debug)
	if !cfg.Debug {
		log.SetMinLevel(log.LevelInfo)
	}
}
