// Package config provides configuration management for Novel Hub.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: document store connection details (MySQL or sqlite)
//   - Storage: S3/MinIO credentials and the cover bucket
//   - Cache: Redis connection and rank cache TTL
//   - Index: search index location
//   - Sync: freshness window and provider timeouts
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
