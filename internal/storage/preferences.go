package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// PrefZoom is the preference key for the horizontal zoom level.
const PrefZoom = "zoom"

// Preference returns a stored preference value. ok is false when the player
// has never set it.
func (s *Store) Preference(player, key string) (value string, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT value FROM preferences WHERE player = ? AND key = ?",
		player, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read preference %s: %w", key, err)
	}
	return value, true, nil
}

// SetPreference stores a preference value, replacing any previous one.
func (s *Store) SetPreference(player, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (player, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(player, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		player, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preference %s: %w", key, err)
	}
	return nil
}

// Zoom returns the player's saved zoom, or def when none is stored or the
// stored value is not a number.
func (s *Store) Zoom(player string, def int) (int, error) {
	value, ok, err := s.Preference(player, PrefZoom)
	if err != nil || !ok {
		return def, err
	}
	zoom, err := strconv.Atoi(value)
	if err != nil {
		return def, nil
	}
	return zoom, nil
}

// SetZoom saves the player's zoom level.
func (s *Store) SetZoom(player string, zoom int) error {
	return s.SetPreference(player, PrefZoom, strconv.Itoa(zoom))
}
