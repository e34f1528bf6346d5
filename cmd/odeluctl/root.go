package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/client"
	"github.com/odelu/catalog/internal/session"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "odeluctl",
	Short: "Admin CLI for the Odelu media catalog",
	Long: `odeluctl - admin CLI for the Odelu media catalog

Manage movies, shows, seasons, episodes, and users, and import
metadata from TMDB.

Run 'odelud' to start the catalog server.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:4000", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("odeluctl {{.Version}}\n")
}

// credentialStore returns the file-backed credential store, or a memory
// store when the config directory is unavailable.
func credentialStore() session.Store {
	store, err := session.NewFileStore()
	if err != nil {
		return &session.MemoryStore{}
	}
	return store
}

// newClient builds an API client carrying the stored credential, if any.
func newClient() *client.Client {
	c := client.NewClient(serverURL)
	if key, err := credentialStore().Load(); err == nil && key != "" {
		c.SetAPIKey(key)
	}
	return c
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func fmtYear(y *int) string {
	if y == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *y)
}

func fmtRating(r *float64) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *r)
}
