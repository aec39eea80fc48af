package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// PreferenceRepo implements repository.PreferenceRepository on top of redis.
// Entries expire on their own, so stale cleanup is a no-op.
type PreferenceRepo struct {
	client  *goredis.Client
	ttl     time.Duration
	timeout time.Duration
}

// NewPreferenceRepo creates a repository whose entries live for ttl after the last write
func NewPreferenceRepo(client *goredis.Client, ttl time.Duration) *PreferenceRepo {
	return &PreferenceRepo{
		client:  client,
		ttl:     ttl,
		timeout: 3 * time.Second,
	}
}

// GetPreference reads the value stored under key
func (r *PreferenceRepo) GetPreference(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetPreference writes value under key and refreshes its expiry
func (r *PreferenceRepo) SetPreference(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// CleanStalePreferences does nothing; redis expires keys itself
func (r *PreferenceRepo) CleanStalePreferences(days int) error {
	return nil
}
