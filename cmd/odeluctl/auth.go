package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login <api-key>",
	Short: "Verify and store an admin API key",
	Long: `Verifies the API key against the server and stores it for
subsequent commands. A key that fails verification is not stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored API key",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show the current session state",
	Long:    "Re-verifies any stored API key against the server and reports the session state.",
	RunE:    runStatus,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	manager := session.NewManager(credentialStore(), newClient())
	if !manager.Login(cmd.Context(), args[0]) {
		return fmt.Errorf("login failed: %s", manager.Err())
	}
	fmt.Println("Logged in. Key stored.")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	manager := session.NewManager(credentialStore(), newClient())
	manager.Logout()
	fmt.Println("Logged out.")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	manager := session.NewManager(credentialStore(), newClient())
	if err := manager.Check(cmd.Context()); err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{
			"server":        serverURL,
			"state":         manager.State().String(),
			"authenticated": manager.IsAuthenticated(),
		})
		return nil
	}

	fmt.Printf("Server:  %s\n", serverURL)
	fmt.Printf("Session: %s\n", manager.State())
	if !manager.IsAuthenticated() {
		fmt.Println("\nRun 'odeluctl login <api-key>' to authenticate.")
	}
	return nil
}
