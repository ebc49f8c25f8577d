package driven

// ConfigStore provides persistent application configuration.
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, "" if absent or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 if absent or not an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean value, false if absent or not a boolean.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error
}
