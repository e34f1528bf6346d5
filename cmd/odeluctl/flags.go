package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/client"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID: %s", arg)
	}
	return id, nil
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("page", "p", 1, "Page number")
	cmd.Flags().IntP("limit", "l", 20, "Maximum number of items per page")
	cmd.Flags().StringP("search", "s", "", "Filter by title substring")
}

func listOptions(cmd *cobra.Command) client.ListOptions {
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	search, _ := cmd.Flags().GetString("search")
	return client.ListOptions{Page: page, Limit: limit, Search: search}
}

// parseLinks parses repeated --link flags of the form "Name=URL".
func parseLinks(raw []string) ([]catalog.Link, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	links := make([]catalog.Link, 0, len(raw))
	for _, entry := range raw {
		name, url, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --link %q: expected Name=URL", entry)
		}
		links = append(links, catalog.Link{Name: name, URL: url})
	}
	return links, nil
}

// optionalString returns a pointer for a set, non-empty string flag.
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return nil
	}
	return &v
}

// optionalInt returns a pointer for a set int flag.
func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// optionalFloat returns a pointer for a set float flag.
func optionalFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}
