package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/client"
)

func init() {
	moviesCmd := &cobra.Command{
		Use:   "movies",
		Short: "Manage catalog movies",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List movies",
		RunE:  runMovieList,
	}
	addListFlags(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one movie",
		Args:  cobra.ExactArgs(1),
		RunE:  runMovieGet,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a movie to the catalog",
		RunE:  runMovieCreate,
	}
	addMovieFlags(createCmd)
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("description")
	_ = createCmd.MarkFlagRequired("image")
	_ = createCmd.MarkFlagRequired("cover-image")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a movie",
		Long:  "Updates a movie. Only the flags you pass change; everything else keeps its current value.",
		Args:  cobra.ExactArgs(1),
		RunE:  runMovieUpdate,
	}
	addMovieFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movie",
		Args:  cobra.ExactArgs(1),
		RunE:  runMovieDelete,
	}

	moviesCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	rootCmd.AddCommand(moviesCmd)
}

func addMovieFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Movie title")
	cmd.Flags().String("description", "", "Synopsis")
	cmd.Flags().String("image", "", "Poster image URL")
	cmd.Flags().String("cover-image", "", "Cover image URL")
	cmd.Flags().String("hover-image", "", "Hover image URL")
	cmd.Flags().Int("year", 0, "Release year")
	cmd.Flags().String("duration", "", `Duration, e.g. "2h 10min"`)
	cmd.Flags().Float64("rating", 0, "Rating from 0 to 10")
	cmd.Flags().Bool("featured", false, "Mark as featured")
	cmd.Flags().StringArray("tag", nil, "Tag (repeatable)")
	cmd.Flags().StringArray("link", nil, "External link as Name=URL (repeatable)")
}

func applyMovieFlags(cmd *cobra.Command, m *catalog.Movie) error {
	if cmd.Flags().Changed("title") {
		m.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		m.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("image") {
		m.Image, _ = cmd.Flags().GetString("image")
	}
	if cmd.Flags().Changed("cover-image") {
		m.CoverImage, _ = cmd.Flags().GetString("cover-image")
	}
	if cmd.Flags().Changed("hover-image") {
		m.HoverImage = optionalString(cmd, "hover-image")
	}
	if cmd.Flags().Changed("year") {
		m.ReleaseYear = optionalInt(cmd, "year")
	}
	if cmd.Flags().Changed("duration") {
		m.Duration, _ = cmd.Flags().GetString("duration")
	}
	if cmd.Flags().Changed("rating") {
		m.Rating = optionalFloat(cmd, "rating")
	}
	if cmd.Flags().Changed("featured") {
		m.Featured, _ = cmd.Flags().GetBool("featured")
	}
	if cmd.Flags().Changed("tag") {
		m.Tags, _ = cmd.Flags().GetStringArray("tag")
	}
	if cmd.Flags().Changed("link") {
		raw, _ := cmd.Flags().GetStringArray("link")
		links, err := parseLinks(raw)
		if err != nil {
			return err
		}
		m.Links = links
	}
	return nil
}

func runMovieList(cmd *cobra.Command, args []string) error {
	page, err := newClient().ListMovies(cmd.Context(), listOptions(cmd))
	if err != nil {
		return fmt.Errorf("list movies: %w", err)
	}

	if jsonOutput {
		printJSON(page.Items)
		return nil
	}
	printMovieList(page)
	return nil
}

func printMovieList(page *client.Page[catalog.Movie]) {
	if len(page.Items) == 0 {
		fmt.Println("No movies found.")
		return
	}

	fmt.Printf("Movies (%d total):\n\n", page.Total)
	fmt.Printf("  %-5s %-40s %-6s %-7s %s\n", "ID", "TITLE", "YEAR", "RATING", "FEATURED")

	for i := range page.Items {
		m := &page.Items[i]
		featured := ""
		if m.Featured {
			featured = "yes"
		}
		fmt.Printf("  %-5d %-40s %-6s %-7s %s\n",
			m.ID, truncate(m.Title, 40), fmtYear(m.ReleaseYear), fmtRating(m.Rating), featured)
	}

	if page.Total > len(page.Items) {
		fmt.Printf("\n  Showing %d of %d. Use --page and --limit to see more.\n", len(page.Items), page.Total)
	}
}

func runMovieGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	m, err := newClient().GetMovie(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get movie: %w", err)
	}

	if jsonOutput {
		printJSON(m)
		return nil
	}

	fmt.Printf("%s (%s)  [ID %d]\n", m.Title, fmtYear(m.ReleaseYear), m.ID)
	fmt.Printf("  Duration: %s  Rating: %s  Featured: %t\n", m.Duration, fmtRating(m.Rating), m.Featured)
	fmt.Printf("  %s\n", m.Description)
	if len(m.Tags) > 0 {
		fmt.Printf("  Tags: %v\n", m.Tags)
	}
	for _, l := range m.Links {
		fmt.Printf("  Link: %s (%s)\n", l.Name, l.URL)
	}
	return nil
}

func runMovieCreate(cmd *cobra.Command, args []string) error {
	var draft catalog.Movie
	if err := applyMovieFlags(cmd, &draft); err != nil {
		return err
	}

	created, err := newClient().CreateMovie(cmd.Context(), &draft)
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}

	if jsonOutput {
		printJSON(created)
		return nil
	}
	fmt.Printf("Created: %s [ID %d]\n", created.Title, created.ID)
	return nil
}

func runMovieUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c := newClient()
	current, err := c.GetMovie(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get movie: %w", err)
	}
	if err := applyMovieFlags(cmd, current); err != nil {
		return err
	}

	updated, err := c.UpdateMovie(cmd.Context(), id, current)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}

	if jsonOutput {
		printJSON(updated)
		return nil
	}
	fmt.Printf("Updated: %s [ID %d]\n", updated.Title, updated.ID)
	return nil
}

func runMovieDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := newClient().DeleteMovie(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	fmt.Printf("Deleted movie %d\n", id)
	return nil
}
