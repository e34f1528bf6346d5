package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/client"
)

func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE:  runUserList,
	}
	addListFlags(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE:  runUserGet,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE:  runUserCreate,
	}
	addUserFlags(createCmd)
	_ = createCmd.MarkFlagRequired("username")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Long: `Updates a user. Only the flags you pass change; everything else keeps
its current value. Pass --password to set a new password.`,
		Args: cobra.ExactArgs(1),
		RunE: runUserUpdate,
	}
	addUserFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user and their activity",
		Args:  cobra.ExactArgs(1),
		RunE:  runUserDelete,
	}

	usersCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	rootCmd.AddCommand(usersCmd)
}

func addUserFlags(cmd *cobra.Command) {
	cmd.Flags().String("username", "", "Unique login name")
	cmd.Flags().String("email", "", "Unique email address")
	cmd.Flags().String("password", "", "Account password")
	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("bio", "", "Profile bio")
	cmd.Flags().String("avatar", "", "Avatar image URL")
}

func applyUserFlags(cmd *cobra.Command, u *catalog.User) {
	if cmd.Flags().Changed("username") {
		u.Username, _ = cmd.Flags().GetString("username")
	}
	if cmd.Flags().Changed("email") {
		u.Email, _ = cmd.Flags().GetString("email")
	}
	if cmd.Flags().Changed("password") {
		u.Password, _ = cmd.Flags().GetString("password")
	}
	if cmd.Flags().Changed("name") {
		u.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("bio") {
		u.Bio, _ = cmd.Flags().GetString("bio")
	}
	if cmd.Flags().Changed("avatar") {
		u.Avatar = optionalString(cmd, "avatar")
	}
}

func runUserList(cmd *cobra.Command, args []string) error {
	page, err := newClient().ListUsers(cmd.Context(), listOptions(cmd))
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if jsonOutput {
		printJSON(page.Items)
		return nil
	}
	printUserList(page)
	return nil
}

func printUserList(page *client.Page[catalog.User]) {
	if len(page.Items) == 0 {
		fmt.Println("No users found.")
		return
	}

	fmt.Printf("Users (%d total):\n\n", page.Total)
	fmt.Printf("  %-5s %-20s %-30s %s\n", "ID", "USERNAME", "EMAIL", "JOINED")

	for i := range page.Items {
		u := &page.Items[i]
		fmt.Printf("  %-5d %-20s %-30s %s\n",
			u.ID, truncate(u.Username, 20), truncate(u.Email, 30), u.CreatedAt.Format("2006-01-02"))
	}

	if page.Total > len(page.Items) {
		fmt.Printf("\n  Showing %d of %d. Use --page and --limit to see more.\n", len(page.Items), page.Total)
	}
}

func runUserGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	u, err := newClient().GetUser(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if jsonOutput {
		printJSON(u)
		return nil
	}

	fmt.Printf("%s <%s>  [ID %d]\n", u.Username, u.Email, u.ID)
	if u.Name != "" {
		fmt.Printf("  Name: %s\n", u.Name)
	}
	if u.Bio != "" {
		fmt.Printf("  Bio: %s\n", u.Bio)
	}
	fmt.Printf("  Joined: %s\n", u.CreatedAt.Format("2006-01-02"))
	return nil
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	var draft catalog.User
	applyUserFlags(cmd, &draft)

	created, err := newClient().CreateUser(cmd.Context(), &draft)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if jsonOutput {
		printJSON(created)
		return nil
	}
	fmt.Printf("Created: %s [ID %d]\n", created.Username, created.ID)
	return nil
}

func runUserUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c := newClient()
	current, err := c.GetUser(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	applyUserFlags(cmd, current)

	updated, err := c.UpdateUser(cmd.Context(), id, current)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if jsonOutput {
		printJSON(updated)
		return nil
	}
	fmt.Printf("Updated: %s [ID %d]\n", updated.Username, updated.ID)
	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient().DeleteUser(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	fmt.Printf("Deleted user %d (watch history and watchlist included)\n", id)
	return nil
}
