package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/client"
)

func init() {
	episodesCmd := &cobra.Command{
		Use:   "episodes",
		Short: "Manage season episodes",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List episodes",
		RunE:  runEpisodeList,
	}
	addListFlags(listCmd)
	listCmd.Flags().Int64("season", 0, "Filter by season ID")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one episode",
		Args:  cobra.ExactArgs(1),
		RunE:  runEpisodeGet,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add an episode to a season",
		RunE:  runEpisodeCreate,
	}
	addEpisodeFlags(createCmd)
	createCmd.Flags().Int64("season", 0, "Parent season ID (required)")
	_ = createCmd.MarkFlagRequired("season")
	_ = createCmd.MarkFlagRequired("number")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("duration")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an episode",
		Long:  "Updates an episode. The parent season cannot be changed.",
		Args:  cobra.ExactArgs(1),
		RunE:  runEpisodeUpdate,
	}
	addEpisodeFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an episode",
		Args:  cobra.ExactArgs(1),
		RunE:  runEpisodeDelete,
	}

	episodesCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	rootCmd.AddCommand(episodesCmd)
}

func addEpisodeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("number", 0, "Episode number")
	cmd.Flags().String("title", "", "Episode title")
	cmd.Flags().String("description", "", "Synopsis")
	cmd.Flags().String("image", "", "Still image URL")
	cmd.Flags().String("duration", "", `Duration, e.g. "45min"`)
	cmd.Flags().StringArray("link", nil, "External link as Name=URL (repeatable)")
}

func applyEpisodeFlags(cmd *cobra.Command, ep *catalog.Episode) error {
	if cmd.Flags().Changed("number") {
		ep.EpisodeNumber, _ = cmd.Flags().GetInt("number")
	}
	if cmd.Flags().Changed("title") {
		ep.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		ep.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("image") {
		ep.Image = optionalString(cmd, "image")
	}
	if cmd.Flags().Changed("duration") {
		ep.Duration, _ = cmd.Flags().GetString("duration")
	}
	if cmd.Flags().Changed("link") {
		raw, _ := cmd.Flags().GetStringArray("link")
		links, err := parseLinks(raw)
		if err != nil {
			return err
		}
		ep.Links = links
	}
	return nil
}

func runEpisodeList(cmd *cobra.Command, args []string) error {
	opts := listOptions(cmd)
	opts.ParentID, _ = cmd.Flags().GetInt64("season")

	page, err := newClient().ListEpisodes(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("list episodes: %w", err)
	}

	if jsonOutput {
		printJSON(page.Items)
		return nil
	}
	printEpisodeList(page)
	return nil
}

func printEpisodeList(page *client.Page[catalog.Episode]) {
	if len(page.Items) == 0 {
		fmt.Println("No episodes found.")
		return
	}

	fmt.Printf("Episodes (%d total):\n\n", page.Total)
	fmt.Printf("  %-5s %-7s %-4s %-40s %s\n", "ID", "SEASON", "NUM", "TITLE", "DURATION")

	for i := range page.Items {
		ep := &page.Items[i]
		fmt.Printf("  %-5d %-7d %-4d %-40s %s\n",
			ep.ID, ep.SeasonID, ep.EpisodeNumber, truncate(ep.Title, 40), ep.Duration)
	}
}

func runEpisodeGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ep, err := newClient().GetEpisode(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get episode: %w", err)
	}

	if jsonOutput {
		printJSON(ep)
		return nil
	}

	fmt.Printf("%s  [ID %d, season %d, episode %d]\n", ep.Title, ep.ID, ep.SeasonID, ep.EpisodeNumber)
	fmt.Printf("  Duration: %s\n", ep.Duration)
	if ep.Description != "" {
		fmt.Printf("  %s\n", ep.Description)
	}
	for _, l := range ep.Links {
		fmt.Printf("  Link: %s (%s)\n", l.Name, l.URL)
	}
	return nil
}

func runEpisodeCreate(cmd *cobra.Command, args []string) error {
	seasonID, _ := cmd.Flags().GetInt64("season")

	draft := catalog.Episode{SeasonID: seasonID}
	if err := applyEpisodeFlags(cmd, &draft); err != nil {
		return err
	}

	created, err := newClient().CreateEpisode(cmd.Context(), &draft)
	if err != nil {
		return fmt.Errorf("create episode: %w", err)
	}

	if jsonOutput {
		printJSON(created)
		return nil
	}
	fmt.Printf("Created: %s [ID %d, season %d]\n", created.Title, created.ID, created.SeasonID)
	return nil
}

func runEpisodeUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c := newClient()
	current, err := c.GetEpisode(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get episode: %w", err)
	}
	if err := applyEpisodeFlags(cmd, current); err != nil {
		return err
	}

	updated, err := c.UpdateEpisode(cmd.Context(), id, current)
	if err != nil {
		return fmt.Errorf("update episode: %w", err)
	}

	if jsonOutput {
		printJSON(updated)
		return nil
	}
	fmt.Printf("Updated: %s [ID %d]\n", updated.Title, updated.ID)
	return nil
}

func runEpisodeDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient().DeleteEpisode(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}
	fmt.Printf("Deleted episode %d\n", id)
	return nil
}
