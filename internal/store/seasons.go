package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/odelu/catalog/internal/catalog"
)

func addSeason(q querier, se *catalog.Season) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO seasons (show_id, season_number, title, title_search, release_year, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		se.ShowID, se.SeasonNumber, se.Title, searchKey(se.Title), se.ReleaseYear, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert season: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	se.ID = id
	return nil
}

// AddSeason inserts a new season and sets its ID.
// Returns ErrConstraint if the parent show does not exist and ErrDuplicate
// if the show already has a season with the same number.
func (s *Store) AddSeason(se *catalog.Season) error { return addSeason(s.db, se) }

const seasonColumns = "id, show_id, season_number, title, release_year"

func scanSeason(row interface{ Scan(...any) error }) (*catalog.Season, error) {
	se := &catalog.Season{}
	err := row.Scan(&se.ID, &se.ShowID, &se.SeasonNumber, &se.Title, &se.ReleaseYear)
	if err != nil {
		return nil, err
	}
	return se, nil
}

func getSeason(q querier, id int64) (*catalog.Season, error) {
	se, err := scanSeason(q.QueryRow("SELECT "+seasonColumns+" FROM seasons WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get season %d: %w", id, mapSQLiteError(err))
	}
	return se, nil
}

// GetSeason retrieves a season by ID.
// Returns ErrNotFound if the season does not exist.
func (s *Store) GetSeason(id int64) (*catalog.Season, error) { return getSeason(s.db, id) }

func listSeasons(q querier, f SeasonFilter) ([]*catalog.Season, int, error) {
	var conditions []string
	var args []any

	if f.ShowID != nil {
		conditions = append(conditions, "show_id = ?")
		args = append(args, *f.ShowID)
	}
	if f.Search != "" {
		conditions = append(conditions, `title_search LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(f.Search))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM seasons "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count seasons: %w", err)
	}

	query := "SELECT " + seasonColumns + " FROM seasons " + whereClause + " ORDER BY show_id, season_number"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list seasons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*catalog.Season
	for rows.Next() {
		se, err := scanSeason(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan season: %w", err)
		}
		results = append(results, se)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate seasons: %w", err)
	}

	return results, total, nil
}

// ListSeasons returns seasons matching the filter with pagination.
// Returns (results, totalCount, error).
func (s *Store) ListSeasons(f SeasonFilter) ([]*catalog.Season, int, error) {
	return listSeasons(s.db, f)
}

func updateSeason(q querier, se *catalog.Season) error {
	// show_id is deliberately absent: a season never moves between shows.
	result, err := q.Exec(`
		UPDATE seasons SET season_number = ?, title = ?, title_search = ?, release_year = ?, updated_at = ?
		WHERE id = ?`,
		se.SeasonNumber, se.Title, searchKey(se.Title), se.ReleaseYear, time.Now(), se.ID,
	)
	if err != nil {
		return fmt.Errorf("update season %d: %w", se.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update season %d: %w", se.ID, ErrNotFound)
	}
	return nil
}

// UpdateSeason updates an existing season. The parent show is immutable.
// Returns ErrNotFound if the season does not exist.
func (s *Store) UpdateSeason(se *catalog.Season) error { return updateSeason(s.db, se) }

func deleteSeason(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM seasons WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete season %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete season %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteSeason removes a season by ID. Its episodes are removed by the
// schema's cascade rules.
// Returns ErrNotFound if the season does not exist.
func (s *Store) DeleteSeason(id int64) error { return deleteSeason(s.db, id) }
