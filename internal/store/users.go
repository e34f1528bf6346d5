package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/odelu/catalog/internal/catalog"
)

func addUser(q querier, u *catalog.User) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO users (username, email, name, bio, avatar, password, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.Name, u.Bio, u.Avatar, u.Password, now,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	u.ID = id
	u.CreatedAt = now
	return nil
}

// AddUser inserts a new user and sets its ID and CreatedAt.
// Returns ErrDuplicate if the username or email is already taken.
func (s *Store) AddUser(u *catalog.User) error { return addUser(s.db, u) }

// userColumns never includes password; it leaves the store only for
// credential checks via getUserPassword.
const userColumns = "id, username, email, name, bio, avatar, created_at"

func scanUser(row interface{ Scan(...any) error }) (*catalog.User, error) {
	u := &catalog.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Bio, &u.Avatar, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func getUser(q querier, id int64) (*catalog.User, error) {
	u, err := scanUser(q.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, mapSQLiteError(err))
	}
	return u, nil
}

// GetUser retrieves a user by ID. The returned user never carries a password.
// Returns ErrNotFound if the user does not exist.
func (s *Store) GetUser(id int64) (*catalog.User, error) { return getUser(s.db, id) }

func listUsers(q querier, f ListFilter) ([]*catalog.User, int, error) {
	var conditions []string
	var args []any

	if f.Search != "" {
		pattern := likePattern(f.Search)
		conditions = append(conditions, `(username LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM users "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := "SELECT " + userColumns + " FROM users " + whereClause + " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*catalog.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		results = append(results, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}

	return results, total, nil
}

// ListUsers returns users matching the filter with pagination. Search
// covers username and email. Returned users never carry passwords.
// Returns (results, totalCount, error).
func (s *Store) ListUsers(f ListFilter) ([]*catalog.User, int, error) { return listUsers(s.db, f) }

func updateUser(q querier, u *catalog.User) error {
	// A blank password means "leave unchanged".
	var result interface{ RowsAffected() (int64, error) }
	var err error
	if u.Password == "" {
		result, err = q.Exec(`
			UPDATE users SET username = ?, email = ?, name = ?, bio = ?, avatar = ?
			WHERE id = ?`,
			u.Username, u.Email, u.Name, u.Bio, u.Avatar, u.ID,
		)
	} else {
		result, err = q.Exec(`
			UPDATE users SET username = ?, email = ?, name = ?, bio = ?, avatar = ?, password = ?
			WHERE id = ?`,
			u.Username, u.Email, u.Name, u.Bio, u.Avatar, u.Password, u.ID,
		)
	}
	if err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update user %d: %w", u.ID, ErrNotFound)
	}
	return nil
}

// UpdateUser updates an existing user. A blank Password leaves the stored
// password unchanged.
// Returns ErrNotFound if the user does not exist.
func (s *Store) UpdateUser(u *catalog.User) error { return updateUser(s.db, u) }

func deleteUser(q querier, id int64) error {
	result, err := q.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete user %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteUser removes a user by ID. Watch history and watchlist rows for
// the user are removed by the schema's cascade rules.
// Returns ErrNotFound if the user does not exist.
func (s *Store) DeleteUser(id int64) error { return deleteUser(s.db, id) }
