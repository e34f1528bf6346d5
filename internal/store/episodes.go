package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/odelu/catalog/internal/catalog"
)

func addEpisode(q querier, ep *catalog.Episode) error {
	links, err := jsonColumn(ep.Links)
	if err != nil {
		return fmt.Errorf("marshal links: %w", err)
	}
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO episodes (season_id, episode_number, title, title_search, description, image, duration, links, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ep.SeasonID, ep.EpisodeNumber, ep.Title, searchKey(ep.Title), ep.Description, ep.Image, ep.Duration, links, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert episode: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	ep.ID = id
	return nil
}

// AddEpisode inserts a new episode and sets its ID.
// Returns ErrConstraint if the parent season does not exist and
// ErrDuplicate if the season already has an episode with the same number.
func (s *Store) AddEpisode(ep *catalog.Episode) error { return addEpisode(s.db, ep) }

const episodeColumns = "id, season_id, episode_number, title, description, image, duration, links"

func scanEpisode(row interface{ Scan(...any) error }) (*catalog.Episode, error) {
	ep := &catalog.Episode{}
	var links string
	err := row.Scan(&ep.ID, &ep.SeasonID, &ep.EpisodeNumber, &ep.Title, &ep.Description, &ep.Image, &ep.Duration, &links)
	if err != nil {
		return nil, err
	}
	if ep.Links, err = fromJSONColumn[catalog.Link](links); err != nil {
		return nil, fmt.Errorf("unmarshal links: %w", err)
	}
	return ep, nil
}

func getEpisode(q querier, id int64) (*catalog.Episode, error) {
	ep, err := scanEpisode(q.QueryRow("SELECT "+episodeColumns+" FROM episodes WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get episode %d: %w", id, mapSQLiteError(err))
	}
	return ep, nil
}

// GetEpisode retrieves an episode by ID.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) GetEpisode(id int64) (*catalog.Episode, error) { return getEpisode(s.db, id) }

func listEpisodes(q querier, f EpisodeFilter) ([]*catalog.Episode, int, error) {
	var conditions []string
	var args []any

	if f.SeasonID != nil {
		conditions = append(conditions, "season_id = ?")
		args = append(args, *f.SeasonID)
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
	if err := q.QueryRow("SELECT COUNT(*) FROM episodes "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count episodes: %w", err)
	}

	query := "SELECT " + episodeColumns + " FROM episodes " + whereClause + " ORDER BY season_id, episode_number"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list episodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*catalog.Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan episode: %w", err)
		}
		results = append(results, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate episodes: %w", err)
	}

	return results, total, nil
}

// ListEpisodes returns episodes matching the filter with pagination.
// Returns (results, totalCount, error).
func (s *Store) ListEpisodes(f EpisodeFilter) ([]*catalog.Episode, int, error) {
	return listEpisodes(s.db, f)
}

func updateEpisode(q querier, ep *catalog.Episode) error {
	// season_id is deliberately absent: an episode never moves between seasons.
	links, err := jsonColumn(ep.Links)
	if err != nil {
		return fmt.Errorf("marshal links: %w", err)
	}
	result, err := q.Exec(`
		UPDATE episodes SET episode_number = ?, title = ?, title_search = ?, description = ?, image = ?, duration = ?, links = ?, updated_at = ?
		WHERE id = ?`,
		ep.EpisodeNumber, ep.Title, searchKey(ep.Title), ep.Description, ep.Image, ep.Duration, links, time.Now(), ep.ID,
	)
	if err != nil {
		return fmt.Errorf("update episode %d: %w", ep.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update episode %d: %w", ep.ID, ErrNotFound)
	}
	return nil
}

// UpdateEpisode updates an existing episode. The parent season is immutable.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) UpdateEpisode(ep *catalog.Episode) error { return updateEpisode(s.db, ep) }

func deleteEpisode(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM episodes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete episode %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete episode %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteEpisode removes an episode by ID.
// Returns ErrNotFound if the episode does not exist.
func (s *Store) DeleteEpisode(id int64) error { return deleteEpisode(s.db, id) }
