package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite"; teach sqlx its placeholder
	// style so named queries rebind correctly.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open opens a SQLite database behind sqlx, sets recommended pragmas, and
// validates connectivity. foreign_keys must stay ON: store deletion relies
// on cascading item deletes.
func Open(dbPath string) (*sqlx.DB, error) {
	database, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := database.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		database.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return database, nil
}
