package store

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/odelu/catalog/internal/catalog"
	"github.com/odelu/catalog/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// With in-memory SQLite, multiple connections create separate databases.
	// Limit to 1 connection so every query sees the same state and the
	// foreign_keys pragma sticks.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}

func testMovie(title string) *catalog.Movie {
	return &catalog.Movie{
		Title:       title,
		Description: "A test movie",
		Image:       "https://img.example.com/poster.jpg",
		CoverImage:  "https://img.example.com/cover.jpg",
		ReleaseYear: ptr(2020),
		Duration:    "1h 45min",
		Tags:        []string{"drama"},
		Links:       []catalog.Link{{Name: "Watch", URL: "https://example.com/watch"}},
	}
}

func testShow(title string) *catalog.Show {
	return &catalog.Show{
		Title:       title,
		Description: "A test show",
		Image:       "https://img.example.com/poster.jpg",
		CoverImage:  "https://img.example.com/cover.jpg",
		StartYear:   ptr(2018),
		Status:      catalog.StatusOngoing,
		Tags:        []string{"sci-fi"},
	}
}

func testUser(username string) *catalog.User {
	return &catalog.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret",
	}
}
