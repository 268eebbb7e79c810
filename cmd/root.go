package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	dbPath      string
	catalogPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "problemset",
	Short: "Browse a catalog of coding interview problems",
	Long: `Problemset is a CLI for browsing coding interview practice problems.
Search, filter and sort the catalog, bookmark and rate problems, and keep
track of what you looked at recently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default ~/.problemset/config.yaml)")
	flags.StringVar(&dbPath, "db", "", "User state database (default ~/.problemset/state.db)")
	flags.StringVar(&catalogPath, "catalog", "", "YAML problem file replacing the built-in catalog")
	flags.StringVar(&logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
}
