package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/client"
)

func init() {
	seasonsCmd := &cobra.Command{
		Use:   "seasons",
		Short: "Manage show seasons",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List seasons",
		RunE:  runSeasonList,
	}
	addListFlags(listCmd)
	listCmd.Flags().Int64("show", 0, "Filter by show ID")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one season",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeasonGet,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a season to a show",
		RunE:  runSeasonCreate,
	}
	createCmd.Flags().Int64("show", 0, "Parent show ID (required)")
	createCmd.Flags().Int("number", 0, "Season number (required)")
	createCmd.Flags().String("title", "", "Season title (required)")
	createCmd.Flags().Int("year", 0, "Release year")
	_ = createCmd.MarkFlagRequired("show")
	_ = createCmd.MarkFlagRequired("number")
	_ = createCmd.MarkFlagRequired("title")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a season",
		Long:  "Updates a season. The parent show cannot be changed.",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeasonUpdate,
	}
	updateCmd.Flags().Int("number", 0, "Season number")
	updateCmd.Flags().String("title", "", "Season title")
	updateCmd.Flags().Int("year", 0, "Release year")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a season and its episodes",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeasonDelete,
	}

	seasonsCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	rootCmd.AddCommand(seasonsCmd)
}

func runSeasonList(cmd *cobra.Command, args []string) error {
	opts := listOptions(cmd)
	opts.ParentID, _ = cmd.Flags().GetInt64("show")

	page, err := newClient().ListSeasons(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("list seasons: %w", err)
	}

	if jsonOutput {
		printJSON(page.Items)
		return nil
	}
	printSeasonList(page)
	return nil
}

func printSeasonList(page *client.Page[catalog.Season]) {
	if len(page.Items) == 0 {
		fmt.Println("No seasons found.")
		return
	}

	fmt.Printf("Seasons (%d total):\n\n", page.Total)
	fmt.Printf("  %-5s %-7s %-4s %-40s %s\n", "ID", "SHOW", "NUM", "TITLE", "YEAR")

	for i := range page.Items {
		se := &page.Items[i]
		fmt.Printf("  %-5d %-7d %-4d %-40s %s\n",
			se.ID, se.ShowID, se.SeasonNumber, truncate(se.Title, 40), fmtYear(se.ReleaseYear))
	}
}

func runSeasonGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c := newClient()
	se, err := c.GetSeason(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get season: %w", err)
	}

	if jsonOutput {
		printJSON(se)
		return nil
	}

	fmt.Printf("%s  [ID %d, show %d, season %d, %s]\n",
		se.Title, se.ID, se.ShowID, se.SeasonNumber, fmtYear(se.ReleaseYear))

	episodes, err := c.ListEpisodes(cmd.Context(), client.ListOptions{ParentID: id, Limit: 100})
	if err == nil && len(episodes.Items) > 0 {
		fmt.Printf("\n  Episodes (%d):\n", episodes.Total)
		for i := range episodes.Items {
			ep := &episodes.Items[i]
			fmt.Printf("    [%d] %d. %s (%s)\n", ep.ID, ep.EpisodeNumber, ep.Title, ep.Duration)
		}
	}
	return nil
}

func runSeasonCreate(cmd *cobra.Command, args []string) error {
	showID, _ := cmd.Flags().GetInt64("show")
	number, _ := cmd.Flags().GetInt("number")
	title, _ := cmd.Flags().GetString("title")

	draft := catalog.Season{
		ShowID:       showID,
		SeasonNumber: number,
		Title:        title,
		ReleaseYear:  optionalInt(cmd, "year"),
	}

	created, err := newClient().CreateSeason(cmd.Context(), &draft)
	if err != nil {
		return fmt.Errorf("create season: %w", err)
	}

	if jsonOutput {
		printJSON(created)
		return nil
	}
	fmt.Printf("Created: %s [ID %d, show %d]\n", created.Title, created.ID, created.ShowID)
	return nil
}

func runSeasonUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c := newClient()
	current, err := c.GetSeason(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get season: %w", err)
	}

	if cmd.Flags().Changed("number") {
		current.SeasonNumber, _ = cmd.Flags().GetInt("number")
	}
	if cmd.Flags().Changed("title") {
		current.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("year") {
		current.ReleaseYear = optionalInt(cmd, "year")
	}

	updated, err := c.UpdateSeason(cmd.Context(), id, current)
	if err != nil {
		return fmt.Errorf("update season: %w", err)
	}

	if jsonOutput {
		printJSON(updated)
		return nil
	}
	fmt.Printf("Updated: %s [ID %d]\n", updated.Title, updated.ID)
	return nil
}

func runSeasonDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient().DeleteSeason(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	fmt.Printf("Deleted season %d (episodes included)\n", id)
	return nil
}
