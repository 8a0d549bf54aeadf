// Package config loads configuration structs from environment variables
// via github.com/caarlos0/env, with an optional .env file picked up through
// github.com/joho/godotenv. Each configuration type is parsed once per
// process and cached, so every package reading the same config sees the
// same values.
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
//	man, err := cookie.NewFromConfig(cfg)
package config
