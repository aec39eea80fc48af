package repository

// PreferenceRepository is a persistent string key-value store
type PreferenceRepository interface {
	// GetPreference returns the stored value and whether one exists
	GetPreference(key string) (string, bool, error)
	SetPreference(key, value string) error
	// CleanStalePreferences removes entries not written for the given number of days
	CleanStalePreferences(days int) error
}
