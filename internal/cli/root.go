package cli

import (
	"fmt"

	"github.com/lazypower/lovesim/internal/config"
	"github.com/lazypower/lovesim/internal/logging"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lovesim",
	Short: "Love probability simulator",
	Long:  "Lovesim turns lifestyle and personality answers into 3, 6 and 12 month encounter and relationship probabilities.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init("lovesim")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.lovesim/config.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(countCmd)
}

// loadConfig reads the config selected by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
