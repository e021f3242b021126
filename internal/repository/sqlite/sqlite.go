// Package sqlite implements the domain repositories over a single SQLite
// file using modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/pitchside/internal/domain"
	"github.com/msomdec/pitchside/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and hands out entity repositories.
// It implements domain.Database.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows a single writer; serialize access through one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all unapplied schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the user repository.
func (db *DB) Users() domain.UserRepository {
	return NewUserRepository(db)
}

// Players returns the player repository.
func (db *DB) Players() domain.PlayerRepository {
	return NewPlayerRepository(db)
}

// Teams returns the team repository.
func (db *DB) Teams() domain.TeamRepository {
	return NewTeamRepository(db)
}

// Matches returns the match repository.
func (db *DB) Matches() domain.MatchRepository {
	return NewMatchRepository(db)
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint
// violation.
func isUniqueConstraintError(err error) bool {
	return err != nil &&
		(containsString(err.Error(), "UNIQUE constraint failed") ||
			containsString(err.Error(), "unique constraint"))
}

func containsString(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
