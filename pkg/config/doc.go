// Package config loads application configuration from environment variables
// into tagged structs, reading an optional .env file first.
//
// Parsing is delegated to github.com/caarlos0/env/v11; .env files are read
// with github.com/joho/godotenv. Every configuration type is parsed once and
// cached by its type name, so repeated Load calls are cheap.
//
//	type AppConfig struct {
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	    Name string `env:"APP_NAME" envDefault:"rowfilter"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Extra env files, for example from a --env-file flag, are read with LoadEnv
// before the first Load.
package config
