package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	loginToken string
	loginHost  string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save the admin token for future commands",
	Long: `Caches the admin bearer token in the local config file so subsequent
commands can authenticate without re-entering it.

The token is stored in cleartext; there is no server-side login exchange —
an invalid token only shows up as a 401 on the next fetch.

Example:
  testify-admin login --token "s3cret"
  testify-admin login --token "s3cret" --host "https://staging.example.com"`,
	Run: func(cmd *cobra.Command, args []string) {
		token := strings.TrimSpace(loginToken)
		if token == "" {
			fmt.Println("Error: token must not be empty.")
			os.Exit(1)
		}

		if err := store.SaveCredential(token); err != nil {
			fmt.Printf("Error saving token: %v\n", err)
			os.Exit(1)
		}

		if loginHost != "" {
			if err := store.SaveBaseURL(strings.TrimRight(loginHost, "/")); err != nil {
				fmt.Printf("Error saving host: %v\n", err)
				os.Exit(1)
			}
		}

		fmt.Printf("Token saved to %s. You can now run 'testify-admin events list'.\n", store.Path())
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginToken, "token", "t", "", "Admin bearer token")
	loginCmd.Flags().StringVar(&loginHost, "host", "", "API origin override (optional)")

	_ = loginCmd.MarkFlagRequired("token")
}
