package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/odelu/catalog/internal/catalog"
)

func addShow(q querier, sh *catalog.Show) error {
	tags, err := jsonColumn(sh.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO shows (title, title_search, description, image, cover_image, hover_image, start_year, end_year, status, rating, featured, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sh.Title, searchKey(sh.Title), sh.Description, sh.Image, sh.CoverImage, sh.HoverImage, sh.StartYear, sh.EndYear, sh.Status, sh.Rating, sh.Featured, tags, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert show: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	sh.ID = id
	return nil
}

// AddShow inserts a new show and sets its ID.
func (s *Store) AddShow(sh *catalog.Show) error { return addShow(s.db, sh) }

func scanShow(row interface{ Scan(...any) error }) (*catalog.Show, error) {
	sh := &catalog.Show{}
	var tags string
	err := row.Scan(&sh.ID, &sh.Title, &sh.Description, &sh.Image, &sh.CoverImage, &sh.HoverImage, &sh.StartYear, &sh.EndYear, &sh.Status, &sh.Rating, &sh.Featured, &tags)
	if err != nil {
		return nil, err
	}
	if sh.Tags, err = fromJSONColumn[string](tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	return sh, nil
}

const showColumns = "id, title, description, image, cover_image, hover_image, start_year, end_year, status, rating, featured, tags"

func getShow(q querier, id int64) (*catalog.Show, error) {
	sh, err := scanShow(q.QueryRow("SELECT "+showColumns+" FROM shows WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get show %d: %w", id, mapSQLiteError(err))
	}
	return sh, nil
}

// GetShow retrieves a show by ID.
// Returns ErrNotFound if the show does not exist.
func (s *Store) GetShow(id int64) (*catalog.Show, error) { return getShow(s.db, id) }

func listShows(q querier, f ListFilter) ([]*catalog.Show, int, error) {
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
	if err := q.QueryRow("SELECT COUNT(*) FROM shows "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count shows: %w", err)
	}

	query := "SELECT " + showColumns + " FROM shows " + whereClause + " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list shows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*catalog.Show
	for rows.Next() {
		sh, err := scanShow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan show: %w", err)
		}
		results = append(results, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate shows: %w", err)
	}

	return results, total, nil
}

// ListShows returns shows matching the filter with pagination.
// Returns (results, totalCount, error).
func (s *Store) ListShows(f ListFilter) ([]*catalog.Show, int, error) { return listShows(s.db, f) }

func updateShow(q querier, sh *catalog.Show) error {
	tags, err := jsonColumn(sh.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	result, err := q.Exec(`
		UPDATE shows SET title = ?, title_search = ?, description = ?, image = ?, cover_image = ?, hover_image = ?, start_year = ?, end_year = ?, status = ?, rating = ?, featured = ?, tags = ?, updated_at = ?
		WHERE id = ?`,
		sh.Title, searchKey(sh.Title), sh.Description, sh.Image, sh.CoverImage, sh.HoverImage, sh.StartYear, sh.EndYear, sh.Status, sh.Rating, sh.Featured, tags, time.Now(), sh.ID,
	)
	if err != nil {
		return fmt.Errorf("update show %d: %w", sh.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update show %d: %w", sh.ID, ErrNotFound)
	}
	return nil
}

// UpdateShow updates an existing show.
// Returns ErrNotFound if the show does not exist.
func (s *Store) UpdateShow(sh *catalog.Show) error { return updateShow(s.db, sh) }

func deleteShow(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM shows WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete show %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete show %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteShow removes a show by ID. Seasons and episodes under it are
// removed by the schema's cascade rules.
// Returns ErrNotFound if the show does not exist.
func (s *Store) DeleteShow(id int64) error { return deleteShow(s.db, id) }
