package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/martinsound/stagemix/internal/script"
	"github.com/martinsound/stagemix/internal/types"
	"modernc.org/sqlite"
)

const (
	sqliteConstraint       = 19
	sqliteConstraintUnique = 2067
)

// GetCharacterChannels builds the channel map consumed by the cue
// generator: every profile and every ensemble, keyed by character identity.
// Individual profiles map to their single channel number; ensembles map to
// their comma-joined member channel list.
func GetCharacterChannels(db *sql.DB) (map[string]string, error) {
	channels := map[string]string{}

	profiles, err := GetProfiles(db)
	if err != nil {
		return nil, err
	}
	for _, profile := range profiles {
		channels[script.Identity(profile.Name)] = strconv.Itoa(profile.Channel)
	}

	ensembles, err := GetEnsembles(db)
	if err != nil {
		return nil, err
	}
	for _, ensemble := range ensembles {
		channels[script.Identity(ensemble.Name)] = ensemble.Channels
	}

	return channels, nil
}

// CreateProfile inserts a character profile.
func CreateProfile(db *sql.DB, name string, channel int, label string) (*types.Profile, error) {
	result, err := db.Exec(
		"INSERT INTO profiles (channel, name, label) VALUES (?, ?, ?)",
		channel, name, nullable(label),
	)
	if err != nil {
		if isConstraintError(err) {
			return nil, fmt.Errorf("character '%s' already has a profile", name)
		}
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &types.Profile{ID: id, Channel: channel, Name: name, Label: label}, nil
}

// GetProfiles returns all character profiles ordered by channel.
func GetProfiles(db *sql.DB) ([]types.Profile, error) {
	rows, err := db.Query("SELECT id, channel, name, label FROM profiles ORDER BY channel")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []types.Profile
	for rows.Next() {
		var profile types.Profile
		var channel sql.NullInt64
		var label sql.NullString
		if err := rows.Scan(&profile.ID, &channel, &profile.Name, &label); err != nil {
			return nil, err
		}
		profile.Channel = int(channel.Int64)
		profile.Label = label.String
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CreateEnsemble inserts an ensemble with its comma-separated channel list.
func CreateEnsemble(db *sql.DB, name, channels string) (*types.Ensemble, error) {
	result, err := db.Exec("INSERT INTO ensembles (name, channels) VALUES (?, ?)", name, channels)
	if err != nil {
		if isConstraintError(err) {
			return nil, fmt.Errorf("ensemble '%s' already exists", name)
		}
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &types.Ensemble{ID: id, Name: name, Channels: channels}, nil
}

// GetEnsembles returns all ensembles ordered by name.
func GetEnsembles(db *sql.DB) ([]types.Ensemble, error) {
	rows, err := db.Query("SELECT id, name, channels FROM ensembles ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ensembles []types.Ensemble
	for rows.Next() {
		var ensemble types.Ensemble
		if err := rows.Scan(&ensemble.ID, &ensemble.Name, &ensemble.Channels); err != nil {
			return nil, err
		}
		ensembles = append(ensembles, ensemble)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ensembles, nil
}

func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqliteConstraint || code == sqliteConstraintUnique
	}
	return false
}
