package db

import (
	"database/sql"

	"github.com/martinsound/stagemix/internal/types"
)

// GetConfig returns a config value, or "" when the param is unset.
func GetConfig(db *sql.DB, param string) (string, error) {
	row := db.QueryRow("SELECT value FROM config WHERE param = ?", param)
	var value sql.NullString
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value.String, nil
}

// SetConfig sets a config value.
func SetConfig(db *sql.DB, param, value string) error {
	_, err := db.Exec("INSERT OR REPLACE INTO config (param, value) VALUES (?, ?)", param, value)
	return err
}

// GetAllConfig returns all config entries ordered by param.
func GetAllConfig(db *sql.DB) ([]types.ConfigEntry, error) {
	rows, err := db.Query("SELECT param, value FROM config ORDER BY param")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []types.ConfigEntry
	for rows.Next() {
		var entry types.ConfigEntry
		var value sql.NullString
		if err := rows.Scan(&entry.Param, &value); err != nil {
			return nil, err
		}
		entry.Value = value.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
