// Package sqlstore provides a SQL-backed implementation of the storage.Store
// interface. SQLite (pure Go, no CGO) and PostgreSQL share the same queries;
// placeholders are rebound per driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/HrisheekeshS/Bill-Split/internal/models"
	"github.com/HrisheekeshS/Bill-Split/internal/storage"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on top of sqlx.
type Store struct {
	db *sqlx.DB
}

// New opens a store for the given driver. For SQLite, dsn is a file path whose
// parent directories are created. Migrations run automatically.
func New(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = sqliteDSN(dsn)
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	if err := runMigrations(driver, dsn, 0); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		// One writer at a time; avoids SQLITE_BUSY between pooled connections.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Store{db: db}, nil
}

// sqliteDSN turns a file path into a modernc DSN with foreign keys enforced.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

type groupRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	CreatedBy string `db:"created_by"`
	CreatedAt int64  `db:"created_at"`
}

type memberRow struct {
	GroupID string `db:"group_id"`
	Email   string `db:"email"`
}

func (r groupRow) toModel() *models.Group {
	return &models.Group{
		ID:           r.ID,
		Name:         r.Name,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		MemberEmails: []string{},
		Payments:     []models.Payment{},
	}
}

// CreateGroup persists a new group and its members.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.Rebind(
		"INSERT INTO groups (id, name, created_by, created_at) VALUES (?, ?, ?, ?)"),
		group.ID, group.Name, group.CreatedBy, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for pos, email := range group.MemberEmails {
		_, err = tx.ExecContext(ctx, tx.Rebind(
			"INSERT INTO group_members (group_id, email, position) VALUES (?, ?, ?)"),
			group.ID, email, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID with its ordered members.
func (s *Store) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	var row groupRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(
		"SELECT id, name, created_by, created_at FROM groups WHERE id = ?"), groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	group := row.toModel()
	err = s.db.SelectContext(ctx, &group.MemberEmails, s.db.Rebind(
		"SELECT email FROM group_members WHERE group_id = ? ORDER BY position"), groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	return group, nil
}

// ListGroupsByMember retrieves all groups that list email as a member, oldest first.
func (s *Store) ListGroupsByMember(ctx context.Context, email string) ([]*models.Group, error) {
	var rows []groupRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT g.id, g.name, g.created_by, g.created_at
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.email = ?
		ORDER BY g.created_at, g.id`), email)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var members []memberRow
	err = s.db.SelectContext(ctx, &members, s.db.Rebind(`
		SELECT group_id, email
		FROM group_members
		WHERE group_id IN (SELECT group_id FROM group_members WHERE email = ?)
		ORDER BY group_id, position`), email)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}

	groups := make([]*models.Group, len(rows))
	byID := make(map[string]*models.Group, len(rows))
	for i, row := range rows {
		groups[i] = row.toModel()
		byID[row.ID] = groups[i]
	}
	for _, m := range members {
		if g, ok := byID[m.GroupID]; ok {
			g.MemberEmails = append(g.MemberEmails, m.Email)
		}
	}

	return groups, nil
}

// DeleteGroup removes a group and everything recorded in its ledger.
func (s *Store) DeleteGroup(ctx context.Context, groupID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.GetContext(ctx, &exists, tx.Rebind("SELECT 1 FROM groups WHERE id = ?"), groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check group existence: %w", err)
	}

	// Children first, so deletion does not depend on ON DELETE CASCADE being enforced.
	for _, stmt := range []string{
		"DELETE FROM expense_shares WHERE expense_id IN (SELECT id FROM expenses WHERE group_id = ?)",
		"DELETE FROM expenses WHERE group_id = ?",
		"DELETE FROM payments WHERE group_id = ?",
		"DELETE FROM group_members WHERE group_id = ?",
		"DELETE FROM groups WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, tx.Rebind(stmt), groupID); err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
