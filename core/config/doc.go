// Package config provides configuration management for the gifts service.
//
// It loads an optional .env file with godotenv and then reads environment
// variables through Viper. Defaults come from the 'default' struct tags of
// every partial configuration.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, shutdown bound (SERVER_*)
//   - Log: level and format (LOG_*)
//   - Catalog: upstream GraphQL endpoint or snapshot source (CATALOG_*)
//   - Cache: redis response cache (CACHE_*)
//   - Storage: S3/MinIO settings of the snapshot bucket (STORAGE_*)
//   - Gifts: max visible items and viewport thresholds (GIFTS_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
