package cache

// Config holds configuration for the cache backend.
type Config struct {
	// Backend selects the cache implementation (memory, redis).
	Backend string `mapstructure:"backend" default:"memory"`
	// Addr is the Redis server address (host:port).
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// KeyPrefix is prepended to every cache key.
	KeyPrefix string `mapstructure:"key_prefix" default:"skinfolio"`
}
