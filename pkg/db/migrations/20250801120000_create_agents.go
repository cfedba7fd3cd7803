// Package migrations holds the schema migrations for the collection index
// database. Register new migrations in All in version order.
package migrations

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/db"
)

// All returns every migration for the collection index database.
func All() []db.Migration {
	return []db.Migration{
		Migration20250801120000CreateAgents(),
	}
}

// Migration20250801120000CreateAgents creates the agents table and its
// lookup indexes.
func Migration20250801120000CreateAgents() db.Migration {
	return db.Migration{
		Version:     20250801120000,
		Description: "Create agents table",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS agents (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					description TEXT NOT NULL,
					category TEXT NOT NULL,
					subcategory TEXT NOT NULL,
					tools TEXT NOT NULL,
					source TEXT NOT NULL,
					quality_score INTEGER NOT NULL,
					path TEXT NOT NULL,
					created_at DATETIME NOT NULL
				)
			`); err != nil {
				return errors.Wrap(err, "failed to create agents table")
			}

			if _, err := tx.Exec(`
				CREATE INDEX IF NOT EXISTS idx_agents_category
				ON agents(category, subcategory)
			`); err != nil {
				return errors.Wrap(err, "failed to create category index")
			}

			if _, err := tx.Exec(`
				CREATE INDEX IF NOT EXISTS idx_agents_name
				ON agents(name)
			`); err != nil {
				return errors.Wrap(err, "failed to create name index")
			}

			return nil
		},
		Down: func(tx *sql.Tx) error {
			if _, err := tx.Exec("DROP TABLE IF EXISTS agents"); err != nil {
				return errors.Wrap(err, "failed to drop agents table")
			}
			return nil
		},
	}
}
