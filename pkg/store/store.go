// Package store maintains a queryable SQLite copy of the collection index,
// so agents can be searched without re-reading the collection tree.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/db"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/db/migrations"
)

// Row is one agent row in the index database.
type Row struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Category     string    `db:"category"`
	Subcategory  string    `db:"subcategory"`
	Tools        string    `db:"tools"` // JSON-encoded list
	Source       string    `db:"source"`
	QualityScore int       `db:"quality_score"`
	Path         string    `db:"path"`
	CreatedAt    time.Time `db:"created_at"`
}

// ToolList decodes the JSON-encoded tools column.
func (r Row) ToolList() []string {
	var tools []string
	if err := json.Unmarshal([]byte(r.Tools), &tools); err != nil || tools == nil {
		return []string{}
	}
	return tools
}

// Filter narrows a Query. Zero-value fields match everything.
type Filter struct {
	Category    string
	Subcategory string
	Keyword     string
	Limit       int
}

// Store wraps the index database.
type Store struct {
	db *sqlx.DB
}

// Open opens the index database at dbPath, creating and migrating it as
// needed. An empty dbPath uses the default location.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath == "" {
		var err error
		dbPath, err = db.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	conn, err := db.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	runner := db.NewMigrationRunner(conn)
	if err := runner.Run(ctx, migrations.All()); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to migrate index database")
	}

	return &Store{db: conn}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the stored index for the given one in a single transaction,
// so readers never observe a half-written index.
func (s *Store) Replace(ctx context.Context, index *collection.Index) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM agents"); err != nil {
		return errors.Wrap(err, "failed to clear agents table")
	}

	now := time.Now().UTC()
	for _, entry := range index.Agents {
		tools, err := json.Marshal(entry.Tools)
		if err != nil {
			return errors.Wrapf(err, "failed to encode tools for %q", entry.Name)
		}

		row := Row{
			ID:           entry.ID,
			Name:         entry.Name,
			Description:  entry.Description,
			Category:     entry.Category,
			Subcategory:  entry.Subcategory,
			Tools:        string(tools),
			Source:       entry.Source,
			QualityScore: entry.QualityScore,
			Path:         entry.Path,
			CreatedAt:    now,
		}
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO agents (id, name, description, category, subcategory, tools, source, quality_score, path, created_at)
			VALUES (:id, :name, :description, :category, :subcategory, :tools, :source, :quality_score, :path, :created_at)
		`, row)
		if err != nil {
			return errors.Wrapf(err, "failed to insert agent %q", entry.Name)
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit index replacement")
}

// Query returns agents matching the filter, ordered by id. A keyword matches
// case-insensitively against name and description.
func (s *Store) Query(ctx context.Context, filter Filter) ([]Row, error) {
	query := "SELECT * FROM agents WHERE 1=1"
	args := map[string]interface{}{}

	if filter.Category != "" {
		query += " AND category = :category"
		args["category"] = filter.Category
	}
	if filter.Subcategory != "" {
		query += " AND subcategory = :subcategory"
		args["subcategory"] = filter.Subcategory
	}
	if filter.Keyword != "" {
		query += " AND (LOWER(name) LIKE :keyword OR LOWER(description) LIKE :keyword)"
		args["keyword"] = "%" + strings.ToLower(filter.Keyword) + "%"
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		query += " LIMIT :limit"
		args["limit"] = filter.Limit
	}

	stmt, err := s.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare query")
	}
	defer stmt.Close()

	var rows []Row
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, errors.Wrap(err, "failed to query agents")
	}
	return rows, nil
}

// Get returns the agent with the given id, or nil if absent.
func (s *Store) Get(ctx context.Context, id int) (*Row, error) {
	var row Row
	err := s.db.GetContext(ctx, &row, "SELECT * FROM agents WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get agent")
	}
	return &row, nil
}

// Count returns the number of stored agents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM agents"); err != nil {
		return 0, errors.Wrap(err, "failed to count agents")
	}
	return count, nil
}
