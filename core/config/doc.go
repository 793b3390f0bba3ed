// Package config provides configuration management for the menu manager.
//
// It uses Viper to read environment variables (optionally from a .env file loaded with
// godotenv). Defaults live next to each setting in the 'default' struct tag.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO credentials and bucket holding the baseline document
//   - Database: staging database (sqlite or mysql)
//   - Log: logging level and format
//   - Baseline: where the baseline is read from and where exports go
//   - Reconcile: mode (source, local), staging key, cache TTL, default dishes
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reconcile.Mode)
package config
