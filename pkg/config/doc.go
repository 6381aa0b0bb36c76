// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each package that needs configuration declares its own Config struct
// with `env` tags and calls config.Load (or MustLoad at startup):
//
//	var cfg api.Config
//	config.MustLoad(&cfg)
package config
