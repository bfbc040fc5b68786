package config

import (
	"reflect"
	"strings"

	"novel-hub/core/cache"
	"novel-hub/core/database"
	"novel-hub/core/index"
	"novel-hub/core/logger"
	"novel-hub/core/server"
	"novel-hub/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SyncConfig holds tunables for the metadata synchronization service.
type SyncConfig struct {
	// FreshnessMinutes is the minimum age before a cached work becomes
	// eligible for a remote refetch.
	FreshnessMinutes int `mapstructure:"freshness_minutes" default:"1200"`
	// ProviderTimeoutSeconds bounds every provider HTTP call.
	ProviderTimeoutSeconds int `mapstructure:"provider_timeout_seconds" default:"15"`
	// GatewayURL is the base URL of the provider scraping gateway.
	GatewayURL string `mapstructure:"gateway_url" default:"http://localhost:9100"`
	// MirrorCovers enables mirroring of remote cover images into object
	// storage.
	MirrorCovers bool `mapstructure:"mirror_covers" default:"true"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the document store connection.
	Database database.Config `mapstructure:"database"`
	// Cache holds configuration for the Redis cache.
	Cache cache.Config `mapstructure:"cache"`
	// Index holds configuration for the search index.
	Index index.Config `mapstructure:"index"`
	// Sync holds configuration for the synchronization service.
	Sync SyncConfig `mapstructure:"sync"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
