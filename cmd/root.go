package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gordonmaloney/testify-admin/internal/config"
)

var cfgFile string
var jsonOutput bool

// store holds the on-disk config (cached admin token, API origin override).
// Initialized by cobra before any command runs.
var store *config.Store

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testify-admin",
	Short: "Admin viewer for the Testify event log",
	Long: `Query the Testify analytics API and view logged site events
(page views, form submissions, testimonials) from the terminal.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		s, err := config.NewStore(cfgFile)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		store = s
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.testify-admin.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}
