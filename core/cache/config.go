package cache

// Config holds configuration for the Redis cache.
type Config struct {
	// Addr is the Redis server address.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// RankTTLMinutes is the time-to-live for cached rank listings.
	RankTTLMinutes int `mapstructure:"rank_ttl_minutes" default:"60"`
}
