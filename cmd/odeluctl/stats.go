package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/odelu/catalog/internal/client"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog totals",
	Long:  "Reports how many movies, shows, seasons, episodes, and users the catalog holds.",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

type catalogStats struct {
	Movies   int `json:"movies"`
	Shows    int `json:"shows"`
	Seasons  int `json:"seasons"`
	Episodes int `json:"episodes"`
	Users    int `json:"users"`
}

func runStats(cmd *cobra.Command, args []string) error {
	c := newClient()

	// Totals come from the pagination envelope, so a single-item page
	// per entity is enough.
	opts := client.ListOptions{Limit: 1}
	var stats catalogStats

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		page, err := c.ListMovies(ctx, opts)
		if err != nil {
			return fmt.Errorf("movies: %w", err)
		}
		stats.Movies = page.Total
		return nil
	})
	g.Go(func() error {
		page, err := c.ListShows(ctx, opts)
		if err != nil {
			return fmt.Errorf("shows: %w", err)
		}
		stats.Shows = page.Total
		return nil
	})
	g.Go(func() error {
		page, err := c.ListSeasons(ctx, opts)
		if err != nil {
			return fmt.Errorf("seasons: %w", err)
		}
		stats.Seasons = page.Total
		return nil
	})
	g.Go(func() error {
		page, err := c.ListEpisodes(ctx, opts)
		if err != nil {
			return fmt.Errorf("episodes: %w", err)
		}
		stats.Episodes = page.Total
		return nil
	})
	g.Go(func() error {
		page, err := c.ListUsers(ctx, opts)
		if err != nil {
			return fmt.Errorf("users: %w", err)
		}
		stats.Users = page.Total
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput {
		printJSON(stats)
		return nil
	}

	fmt.Println("Catalog totals:")
	fmt.Printf("  Movies:   %d\n", stats.Movies)
	fmt.Printf("  Shows:    %d\n", stats.Shows)
	fmt.Printf("  Seasons:  %d\n", stats.Seasons)
	fmt.Printf("  Episodes: %d\n", stats.Episodes)
	fmt.Printf("  Users:    %d\n", stats.Users)
	return nil
}
