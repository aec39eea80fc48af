package postgres

import (
	"database/sql"
)

// PreferenceRepo implements repository.PreferenceRepository
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetPreference reads the value stored under key
func (r *PreferenceRepo) GetPreference(key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM preferences WHERE key = $1`
	err := r.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// SetPreference upserts value under key
func (r *PreferenceRepo) SetPreference(key, value string) error {
	query := `
		INSERT INTO preferences (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.Exec(query, key, value)
	return err
}

// CleanStalePreferences deletes entries untouched for the given number of days
func (r *PreferenceRepo) CleanStalePreferences(days int) error {
	query := `
		DELETE FROM preferences
		WHERE updated_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
