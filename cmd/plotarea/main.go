package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/plotarea/internal/config"
	"github.com/philipparndt/plotarea/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	cfg    = config.Default()
	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "plotarea",
	Short: "Trace polygons over an image and measure real-world areas",
	Long: `plotarea measures distances, areas and perimeters of polygons traced in
image pixel space. A two-point calibration converts pixels into real-world
units. Recorded input scripts can be replayed headless and rendered to PNG.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.WithField("config", configPath).Debug("configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
