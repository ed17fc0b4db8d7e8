package database

// Config holds embedded database settings shared between the primary store
// and per-tenant child-bot stores.
type Config struct {
	Path           string `yaml:"path" envconfig:"STORAGE_PATH"`
	MaxConnections int    `yaml:"max_connections" envconfig:"STORAGE_MAX_CONNECTIONS"`
	BusyTimeoutMS  int    `yaml:"busy_timeout_ms" envconfig:"STORAGE_BUSY_TIMEOUT_MS"`
}
