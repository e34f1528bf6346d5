package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/client"
	"github.com/odelu/catalog/internal/tmdb"
)

func init() {
	tmdbCmd := &cobra.Command{
		Use:   "tmdb",
		Short: "Search and import from The Movie Database",
		Long: `Searches TMDB and imports matches as catalog entries.
Set TMDB_API_KEY to your TMDB API key.`,
	}

	searchMovieCmd := &cobra.Command{
		Use:   "search-movie <title>",
		Short: "Search TMDB for movies",
		Args:  cobra.ExactArgs(1),
		RunE:  runTMDBSearchMovie,
	}
	searchShowCmd := &cobra.Command{
		Use:   "search-show <title>",
		Short: "Search TMDB for shows",
		Args:  cobra.ExactArgs(1),
		RunE:  runTMDBSearchShow,
	}

	importMovieCmd := &cobra.Command{
		Use:   "import-movie <title>",
		Short: "Import the best-matching movie into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runTMDBImportMovie,
	}
	importMovieCmd.Flags().Int("year", 0, "Release year, to disambiguate")

	importShowCmd := &cobra.Command{
		Use:   "import-show <title>",
		Short: "Import the best-matching show into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runTMDBImportShow,
	}
	importShowCmd.Flags().Int("year", 0, "First air year, to disambiguate")
	importShowCmd.Flags().Bool("seasons", false, "Also import seasons and episodes")

	tmdbCmd.AddCommand(searchMovieCmd, searchShowCmd, importMovieCmd, importShowCmd)
	rootCmd.AddCommand(tmdbCmd)
}

func newTMDBClient() (*tmdb.Client, error) {
	key := os.Getenv("TMDB_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not set")
	}
	return tmdb.NewClient(key), nil
}

func runTMDBSearchMovie(cmd *cobra.Command, args []string) error {
	tc, err := newTMDBClient()
	if err != nil {
		return err
	}
	page, err := tc.SearchMovies(cmd.Context(), args[0], 1)
	if err != nil {
		return fmt.Errorf("search movies: %w", err)
	}

	if jsonOutput {
		printJSON(page.Results)
		return nil
	}
	if len(page.Results) == 0 {
		fmt.Println("No results.")
		return nil
	}
	fmt.Printf("Results (%d total):\n\n", page.TotalResults)
	for i := range page.Results {
		m := &page.Results[i]
		fmt.Printf("  %-9d %s (%s)\n", m.ID, m.Title, releaseYear(m.ReleaseDate))
	}
	return nil
}

func runTMDBSearchShow(cmd *cobra.Command, args []string) error {
	tc, err := newTMDBClient()
	if err != nil {
		return err
	}
	page, err := tc.SearchShows(cmd.Context(), args[0], 1)
	if err != nil {
		return fmt.Errorf("search shows: %w", err)
	}

	if jsonOutput {
		printJSON(page.Results)
		return nil
	}
	if len(page.Results) == 0 {
		fmt.Println("No results.")
		return nil
	}
	fmt.Printf("Results (%d total):\n\n", page.TotalResults)
	for i := range page.Results {
		tv := &page.Results[i]
		fmt.Printf("  %-9d %s (%s)\n", tv.ID, tv.Name, releaseYear(tv.FirstAirDate))
	}
	return nil
}

func releaseYear(date string) string {
	if len(date) < 4 {
		return "?"
	}
	return date[:4]
}

func runTMDBImportMovie(cmd *cobra.Command, args []string) error {
	tc, err := newTMDBClient()
	if err != nil {
		return err
	}
	year, _ := cmd.Flags().GetInt("year")

	page, err := tc.SearchMovies(cmd.Context(), args[0], 1)
	if err != nil {
		return fmt.Errorf("search movies: %w", err)
	}
	match := tmdb.BestMovieMatch(page.Results, args[0], year)
	if match == nil {
		return fmt.Errorf("no confident match for %q", args[0])
	}

	// The detail endpoint carries runtime and genres; search results do not.
	full, err := tc.GetMovie(cmd.Context(), match.ID)
	if err != nil {
		return fmt.Errorf("get movie %d: %w", match.ID, err)
	}

	created, err := newClient().CreateMovie(cmd.Context(), tc.MovieFromTMDB(full))
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}

	if jsonOutput {
		printJSON(created)
		return nil
	}
	fmt.Printf("Imported: %s (%s) [ID %d]\n", created.Title, fmtYear(created.ReleaseYear), created.ID)
	return nil
}

func runTMDBImportShow(cmd *cobra.Command, args []string) error {
	tc, err := newTMDBClient()
	if err != nil {
		return err
	}
	year, _ := cmd.Flags().GetInt("year")
	withSeasons, _ := cmd.Flags().GetBool("seasons")

	page, err := tc.SearchShows(cmd.Context(), args[0], 1)
	if err != nil {
		return fmt.Errorf("search shows: %w", err)
	}
	match := tmdb.BestShowMatch(page.Results, args[0], year)
	if match == nil {
		return fmt.Errorf("no confident match for %q", args[0])
	}

	full, err := tc.GetShow(cmd.Context(), match.ID)
	if err != nil {
		return fmt.Errorf("get show %d: %w", match.ID, err)
	}

	c := newClient()
	created, err := c.CreateShow(cmd.Context(), tc.ShowFromTMDB(full))
	if err != nil {
		return fmt.Errorf("create show: %w", err)
	}

	if !jsonOutput {
		fmt.Printf("Imported: %s (%s) [ID %d]\n", created.Title, fmtYear(created.StartYear), created.ID)
	}

	if withSeasons {
		if err := importSeasons(cmd.Context(), tc, c, match.ID, created.ID); err != nil {
			return err
		}
	}

	if jsonOutput {
		printJSON(created)
	}
	return nil
}

// importSeasons pulls every numbered season of a TMDB show and creates it,
// episodes included, under the freshly created catalog show.
func importSeasons(ctx context.Context, tc *tmdb.Client, c *client.Client, tmdbID, showID int64) error {
	for number := 1; ; number++ {
		season, err := tc.GetSeason(ctx, tmdbID, number)
		if err != nil {
			if number == 1 {
				return fmt.Errorf("get season 1: %w", err)
			}
			// Past the last season.
			return nil
		}

		created, err := c.CreateSeason(ctx, tc.SeasonFromTMDB(season, showID))
		if err != nil {
			return fmt.Errorf("create season %d: %w", number, err)
		}
		if !jsonOutput {
			fmt.Printf("  Season %d: %s (%d episodes)\n", number, created.Title, len(season.Episodes))
		}

		for i := range season.Episodes {
			ep := tc.EpisodeFromTMDB(&season.Episodes[i], created.ID)
			if _, err := c.CreateEpisode(ctx, ep); err != nil {
				return fmt.Errorf("create episode %d of season %d: %w", ep.EpisodeNumber, number, err)
			}
		}
	}
}
