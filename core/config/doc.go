// Package config provides configuration management for the Locale Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section and are validated with go-playground/validator.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and load timeout
//   - Database: preferences database (sqlite or mysql)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Locales: base language, editable languages, file source and export naming
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Locales.Base)
package config
