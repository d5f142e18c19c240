package db

import "database/sql"

const schemaSQL = `
-- Show configuration
CREATE TABLE IF NOT EXISTS config (
  param TEXT PRIMARY KEY,
  value TEXT
);

-- Cues: one row per console snapshot, keyed by the store-assigned point.
-- The dca columns mirror the console's fixed 12-slot surface.
CREATE TABLE IF NOT EXISTS cues (
  number INTEGER NOT NULL DEFAULT 999,
  point INTEGER NOT NULL DEFAULT 0,
  name TEXT,
  colour INTEGER,
  dca01Channels TEXT, dca02Channels TEXT, dca03Channels TEXT, dca04Channels TEXT,
  dca05Channels TEXT, dca06Channels TEXT, dca07Channels TEXT, dca08Channels TEXT,
  dca09Channels TEXT, dca10Channels TEXT, dca11Channels TEXT, dca12Channels TEXT,
  dca01Label TEXT, dca02Label TEXT, dca03Label TEXT, dca04Label TEXT,
  dca05Label TEXT, dca06Label TEXT, dca07Label TEXT, dca08Label TEXT,
  dca09Label TEXT, dca10Label TEXT, dca11Label TEXT, dca12Label TEXT,
  PRIMARY KEY (number, point)
);

-- Channel profiles: one character, one input channel
CREATE TABLE IF NOT EXISTS profiles (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  channel INTEGER,
  name TEXT NOT NULL UNIQUE,
  label TEXT
);

-- Ensembles: a named group carried on several channels
CREATE TABLE IF NOT EXISTS ensembles (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  channels TEXT NOT NULL
);
`

const defaultConfigSQL = `
INSERT OR IGNORE INTO config (param, value) VALUES ('targetConsole', 'GLD-112');
INSERT OR IGNORE INTO config (param, value) VALUES ('venue', '');
INSERT OR IGNORE INTO config (param, value) VALUES ('designer', '');
INSERT OR IGNORE INTO config (param, value) VALUES ('dcas', '12');
INSERT OR IGNORE INTO config (param, value) VALUES ('lookahead', '7');
INSERT OR IGNORE INTO config (param, value) VALUES ('channels', '1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16');
`

// DBTX represents shared methods across sql.DB and sql.Tx.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// InitSchema creates the show schema and seeds default configuration.
func InitSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := initSchemaWith(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func initSchemaWith(db DBTX) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return err
	}
	if _, err := db.Exec(defaultConfigSQL); err != nil {
		return err
	}
	return nil
}

// SchemaExists reports whether the show schema is present.
func SchemaExists(db *sql.DB) (bool, error) {
	row := db.QueryRow(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name='cues'
	`)
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name != "", nil
}
