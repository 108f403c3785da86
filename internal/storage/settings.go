// Package storage implements the key/value settings store the pipeline
// uses for user-supplied credentials and limit overrides. The pipeline must
// function with this collaborator entirely absent; every consumer treats a
// storage failure as "use the built-in default".
package storage

import "context"

// Setting keys persisted in the store.
const (
	KeyAPIKey         = "api_key"
	KeyProvider       = "provider"
	KeyModel          = "model"
	KeyPerMinuteLimit = "per_minute_limit"
	KeyDailyLimit     = "daily_limit"
)

// Store is the asynchronous key/value settings collaborator.
type Store interface {
	// Get returns the values for the requested keys; absent keys are
	// simply missing from the result map.
	Get(ctx context.Context, keys []string) (map[string]string, error)
	// Set persists the given key/value pairs atomically.
	Set(ctx context.Context, values map[string]string) error
	Close() error
}
