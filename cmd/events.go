package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gordonmaloney/testify-admin/internal/client"
	"github.com/gordonmaloney/testify-admin/internal/session"
	"github.com/gordonmaloney/testify-admin/internal/view"
)

var (
	eventSite  string
	eventLimit int
	eventFull  bool
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Query logged site events",
	Long:  `Fetch events (views, submissions, testimonials) from the Testify API and render them as cards.`,
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch and display events",
	Run: func(cmd *cobra.Command, args []string) {
		token := store.Credential()
		if token == "" {
			fmt.Println("Error: No admin token saved. Please run 'testify-admin login' first.")
			os.Exit(1)
		}

		api := client.New(client.ClientConfig{
			BaseURL: store.BaseURL(),
			Token:   token,
		})

		sess := session.NewStore(api)
		sess.SetFilter(eventSite, eventLimit)

		st := sess.Refresh(context.Background())

		// --- JSON OUTPUT ---
		if jsonOutput {
			if st.Err != "" {
				fmt.Printf("Error fetching events: %s\n", st.Err)
				os.Exit(1)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(st.Events); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		view.Render(os.Stdout, st, view.Options{Full: eventFull})
		if st.Err != "" {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd)

	eventsListCmd.Flags().StringVar(&eventSite, "site", "", "Only show events for this site")
	eventsListCmd.Flags().IntVar(&eventLimit, "limit", session.DefaultLimit, "Max results to fetch (1-200)")
	eventsListCmd.Flags().BoolVar(&eventFull, "full", false, "Show full user agent / referrer instead of truncating")
}
