// Package config provides typed environment configuration and shared
// runtime settings.
//
// # Environment loading
//
// Load wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to
// parse the process environment into tagged structs. Each configuration type
// is parsed at most once per process; the first successful load wins and
// later calls observe the cached copy, which makes Load safe to call from
// any component without coordinating initialization:
//
//	type ServiceConfig struct {
//		Channel string `env:"NOTIFY_CHANNEL" envDefault:"EMAIL"`
//	}
//
//	var cfg ServiceConfig
//	config.MustLoad(&cfg)
//
// # Runtime settings
//
// Store is a thread-safe key/value map for settings that change at runtime.
// It is deliberately not a global: the composition root constructs one Store
// and hands the reference to whoever needs it, so shared visibility is
// explicit in the wiring rather than hidden in package state.
package config
