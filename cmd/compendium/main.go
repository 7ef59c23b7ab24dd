package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goldenanvil/compendium/internal/app"
	"github.com/goldenanvil/compendium/internal/config"
)

var (
	cfgFile string
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "compendium",
	Short: "Golden Anvil Compendium - browse and search RPG item price lists",
	Long: `Golden Anvil Compendium is a desktop application for browsing and
searching JSON price lists of tabletop RPG items. It keeps catalog files in
a writable data folder, merges them on demand, and converts prices across
the five coin denominations.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Flags win over file and environment.
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		application, err := app.NewApplication(cfg)
		if err != nil {
			return fmt.Errorf("initialization failed: %w", err)
		}
		return application.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(app.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "compendium.yaml", "path to the configuration file")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "override the catalog data folder")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
