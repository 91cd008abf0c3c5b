// Package config loads typed configuration structs from environment
// variables, optionally seeded from .env files.
//
// It is a thin layer over github.com/caarlos0/env/v11 (struct tag parsing)
// and github.com/joho/godotenv (.env files). Each struct type is parsed once
// per process and cached; use ResetCache in tests that change the
// environment between cases.
//
// # Usage
//
//	type AppConfig struct {
//		Env         string `env:"APP_ENV" envDefault:"development"`
//		ServiceName string `env:"APP_NAME" envDefault:"regform"`
//	}
//
//	func main() {
//		var app AppConfig
//		config.MustLoad(&app)
//	}
package config
