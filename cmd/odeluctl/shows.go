package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/client"
)

func init() {
	showsCmd := &cobra.Command{
		Use:   "shows",
		Short: "Manage catalog shows",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List shows",
		RunE:  runShowList,
	}
	addListFlags(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one show",
		Args:  cobra.ExactArgs(1),
		RunE:  runShowGet,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a show to the catalog",
		RunE:  runShowCreate,
	}
	addShowFlags(createCmd)
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("description")
	_ = createCmd.MarkFlagRequired("image")
	_ = createCmd.MarkFlagRequired("cover-image")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a show",
		Long:  "Updates a show. Only the flags you pass change; everything else keeps its current value.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShowUpdate,
	}
	addShowFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a show and everything under it",
		Long:  "Deletes a show. The server removes the show's seasons and their episodes as well.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShowDelete,
	}

	showsCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	rootCmd.AddCommand(showsCmd)
}

func addShowFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Show title")
	cmd.Flags().String("description", "", "Synopsis")
	cmd.Flags().String("image", "", "Poster image URL")
	cmd.Flags().String("cover-image", "", "Cover image URL")
	cmd.Flags().String("hover-image", "", "Hover image URL")
	cmd.Flags().Int("start-year", 0, "First air year")
	cmd.Flags().Int("end-year", 0, "Last air year")
	cmd.Flags().String("status", "Ongoing", "Status: Ongoing, Ended, Cancelled, or Upcoming")
	cmd.Flags().Float64("rating", 0, "Rating from 0 to 10")
	cmd.Flags().Bool("featured", false, "Mark as featured")
	cmd.Flags().StringArray("tag", nil, "Tag (repeatable)")
}

func applyShowFlags(cmd *cobra.Command, sh *catalog.Show) {
	if cmd.Flags().Changed("title") {
		sh.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		sh.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("image") {
		sh.Image, _ = cmd.Flags().GetString("image")
	}
	if cmd.Flags().Changed("cover-image") {
		sh.CoverImage, _ = cmd.Flags().GetString("cover-image")
	}
	if cmd.Flags().Changed("hover-image") {
		sh.HoverImage = optionalString(cmd, "hover-image")
	}
	if cmd.Flags().Changed("start-year") {
		sh.StartYear = optionalInt(cmd, "start-year")
	}
	if cmd.Flags().Changed("end-year") {
		sh.EndYear = optionalInt(cmd, "end-year")
	}
	if cmd.Flags().Changed("status") || sh.Status == "" {
		status, _ := cmd.Flags().GetString("status")
		sh.Status = catalog.ShowStatus(status)
	}
	if cmd.Flags().Changed("rating") {
		sh.Rating = optionalFloat(cmd, "rating")
	}
	if cmd.Flags().Changed("featured") {
		sh.Featured, _ = cmd.Flags().GetBool("featured")
	}
	if cmd.Flags().Changed("tag") {
		sh.Tags, _ = cmd.Flags().GetStringArray("tag")
	}
}

func runShowList(cmd *cobra.Command, args []string) error {
	page, err := newClient().ListShows(cmd.Context(), listOptions(cmd))
	if err != nil {
		return fmt.Errorf("list shows: %w", err)
	}

	if jsonOutput {
		printJSON(page.Items)
		return nil
	}
	printShowList(page)
	return nil
}

func printShowList(page *client.Page[catalog.Show]) {
	if len(page.Items) == 0 {
		fmt.Println("No shows found.")
		return
	}

	fmt.Printf("Shows (%d total):\n\n", page.Total)
	fmt.Printf("  %-5s %-40s %-11s %-10s %s\n", "ID", "TITLE", "YEARS", "STATUS", "RATING")

	for i := range page.Items {
		sh := &page.Items[i]
		years := fmtYear(sh.StartYear)
		if sh.EndYear != nil {
			years += "-" + fmtYear(sh.EndYear)
		}
		fmt.Printf("  %-5d %-40s %-11s %-10s %s\n",
			sh.ID, truncate(sh.Title, 40), years, sh.Status, fmtRating(sh.Rating))
	}

	if page.Total > len(page.Items) {
		fmt.Printf("\n  Showing %d of %d. Use --page and --limit to see more.\n", len(page.Items), page.Total)
	}
}

func runShowGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c := newClient()
	sh, err := c.GetShow(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get show: %w", err)
	}

	if jsonOutput {
		printJSON(sh)
		return nil
	}

	years := fmtYear(sh.StartYear)
	if sh.EndYear != nil {
		years += "-" + fmtYear(sh.EndYear)
	}
	fmt.Printf("%s (%s)  [ID %d, %s]\n", sh.Title, years, sh.ID, sh.Status)
	fmt.Printf("  Rating: %s  Featured: %t\n", fmtRating(sh.Rating), sh.Featured)
	fmt.Printf("  %s\n", sh.Description)
	if len(sh.Tags) > 0 {
		fmt.Printf("  Tags: %v\n", sh.Tags)
	}

	// List the show's seasons for quick orientation.
	seasons, err := c.ListSeasons(cmd.Context(), client.ListOptions{ParentID: id, Limit: 100})
	if err == nil && len(seasons.Items) > 0 {
		fmt.Printf("\n  Seasons (%d):\n", seasons.Total)
		for i := range seasons.Items {
			se := &seasons.Items[i]
			fmt.Printf("    [%d] %d. %s (%s)\n", se.ID, se.SeasonNumber, se.Title, fmtYear(se.ReleaseYear))
		}
	}
	return nil
}

func runShowCreate(cmd *cobra.Command, args []string) error {
	var draft catalog.Show
	applyShowFlags(cmd, &draft)

	created, err := newClient().CreateShow(cmd.Context(), &draft)
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}

	if jsonOutput {
		printJSON(created)
		return nil
	}
	fmt.Printf("Created: %s [ID %d]\n", created.Title, created.ID)
	return nil
}

func runShowUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c := newClient()
	current, err := c.GetShow(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get show: %w", err)
	}
	applyShowFlags(cmd, current)

	updated, err := c.UpdateShow(cmd.Context(), id, current)
	if err != nil {
		return fmt.Errorf("update show: %w", err)
	}

	if jsonOutput {
		printJSON(updated)
		return nil
	}
	fmt.Printf("Updated: %s [ID %d]\n", updated.Title, updated.ID)
	return nil
}

func runShowDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient().DeleteShow(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	fmt.Printf("Deleted show %d (seasons and episodes included)\n", id)
	return nil
}
