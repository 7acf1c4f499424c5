// Package cli provides the command-line interface of the recurrence tool.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/recurrence/internal/config"
	"github.com/katalvlaran/recurrence/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recurrence",
	Short: "Recurrence relations - executable case studies",
	Long: `recurrence runs small recursive functions, one per canonical case of
recurrence-relation analysis, and reports their results.

Subtraction recurrences T(n) = a·T(n-c) + f(n):
  - a = 1  linear accumulation
  - a > 1  Towers of Hanoi
  - a < 1  probabilistic descent

Division recurrences T(n) = a·T(n/b) + f(n):
  - a = b^k  merge sort
  - a < b^k  quickselect cost model
  - a > b^k  naive multiplication cost model`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configuration first, the logger depends on it
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("configuration loaded", zap.String("file", used))
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./recurrence.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (json, console)")

	// Bind flags to viper
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig points viper at the config file and environment.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.SetConfigName("recurrence")
		viper.SetConfigType("yaml")
	}

	// Environment variables: RECURRENCE_DEMO_HANOI_DISKS -> demo.hanoi_disks
	viper.SetEnvPrefix("RECURRENCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
