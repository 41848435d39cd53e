// Package config composes the application configuration.
//
// Each package owns its partial Config struct; this package stitches them
// together and loads values from environment variables (optionally seeded
// from a .env file via godotenv) using Viper.
//
// Defaults are declared on the struct fields themselves through the
// 'default' tag and registered via reflection, so adding a new option only
// requires touching the owning package.
//
// Environment variable names map to nested keys by replacing dots with
// underscores, e.g. DATABASE_HOST -> database.host, SYNC_STALENESS_HOURS
// -> sync.staleness_hours.
package config
