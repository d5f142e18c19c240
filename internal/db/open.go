// Package db is the persistent show store: a SQLite database (the .tmix
// file) holding cues, character profiles, ensembles, and configuration.
// The cue generator never touches this package directly; commands load the
// channel map up front and persist emitted cues afterwards.
package db

import (
	"database/sql"

	"github.com/martinsound/stagemix/internal/core"
	_ "modernc.org/sqlite"
)

// OpenDatabase opens the show database for a show directory.
func OpenDatabase(show core.Show) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", show.DBPath)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}
