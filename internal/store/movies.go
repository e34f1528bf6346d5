package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/odelu/catalog/internal/catalog"
)

func addMovie(q querier, m *catalog.Movie) error {
	tags, err := jsonColumn(m.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	links, err := jsonColumn(m.Links)
	if err != nil {
		return fmt.Errorf("marshal links: %w", err)
	}
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO movies (title, title_search, description, image, cover_image, hover_image, release_year, duration, rating, featured, tags, links, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Title, searchKey(m.Title), m.Description, m.Image, m.CoverImage, m.HoverImage, m.ReleaseYear, m.Duration, m.Rating, m.Featured, tags, links, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert movie: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	m.ID = id
	return nil
}

// AddMovie inserts a new movie and sets its ID.
func (s *Store) AddMovie(m *catalog.Movie) error { return addMovie(s.db, m) }

func scanMovie(row interface{ Scan(...any) error }) (*catalog.Movie, error) {
	m := &catalog.Movie{}
	var tags, links string
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Image, &m.CoverImage, &m.HoverImage, &m.ReleaseYear, &m.Duration, &m.Rating, &m.Featured, &tags, &links)
	if err != nil {
		return nil, err
	}
	if m.Tags, err = fromJSONColumn[string](tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if m.Links, err = fromJSONColumn[catalog.Link](links); err != nil {
		return nil, fmt.Errorf("unmarshal links: %w", err)
	}
	return m, nil
}

const movieColumns = "id, title, description, image, cover_image, hover_image, release_year, duration, rating, featured, tags, links"

func getMovie(q querier, id int64) (*catalog.Movie, error) {
	m, err := scanMovie(q.QueryRow("SELECT "+movieColumns+" FROM movies WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, mapSQLiteError(err))
	}
	return m, nil
}

// GetMovie retrieves a movie by ID.
// Returns ErrNotFound if the movie does not exist.
func (s *Store) GetMovie(id int64) (*catalog.Movie, error) { return getMovie(s.db, id) }

func listMovies(q querier, f ListFilter) ([]*catalog.Movie, int, error) {
	var conditions []string
	var args []any

	if f.Search != "" {
		conditions = append(conditions, `title_search LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(f.Search))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM movies "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	query := "SELECT " + movieColumns + " FROM movies " + whereClause + " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*catalog.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movie: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate movies: %w", err)
	}

	return results, total, nil
}

// ListMovies returns movies matching the filter with pagination.
// Returns (results, totalCount, error).
func (s *Store) ListMovies(f ListFilter) ([]*catalog.Movie, int, error) { return listMovies(s.db, f) }

func updateMovie(q querier, m *catalog.Movie) error {
	tags, err := jsonColumn(m.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	links, err := jsonColumn(m.Links)
	if err != nil {
		return fmt.Errorf("marshal links: %w", err)
	}
	result, err := q.Exec(`
		UPDATE movies SET title = ?, title_search = ?, description = ?, image = ?, cover_image = ?, hover_image = ?, release_year = ?, duration = ?, rating = ?, featured = ?, tags = ?, links = ?, updated_at = ?
		WHERE id = ?`,
		m.Title, searchKey(m.Title), m.Description, m.Image, m.CoverImage, m.HoverImage, m.ReleaseYear, m.Duration, m.Rating, m.Featured, tags, links, time.Now(), m.ID,
	)
	if err != nil {
		return fmt.Errorf("update movie %d: %w", m.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update movie %d: %w", m.ID, ErrNotFound)
	}
	return nil
}

// UpdateMovie updates an existing movie.
// Returns ErrNotFound if the movie does not exist.
func (s *Store) UpdateMovie(m *catalog.Movie) error { return updateMovie(s.db, m) }

func deleteMovie(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete movie %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteMovie removes a movie by ID.
// Returns ErrNotFound if the movie does not exist.
func (s *Store) DeleteMovie(id int64) error { return deleteMovie(s.db, id) }
