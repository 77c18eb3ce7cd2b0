package cache

// Config holds configuration for the redis response cache.
type Config struct {
	// Enabled turns the cache on. When false the catalog is queried directly.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// URL is a redis:// connection string. It takes precedence over Address.
	URL string `mapstructure:"url" default:""`
	// Address is the host:port of the redis server.
	Address string `mapstructure:"address" default:"localhost:6379"`
	// Password is the redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the redis database index.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is how long a cached catalog response stays valid.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"60"`
	// Prefix namespaces every key written by this service.
	Prefix string `mapstructure:"prefix" default:"gifts"`
	// TimeoutSeconds bounds dial, read and write operations.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"2"`
}
