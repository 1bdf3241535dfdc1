// Package config loads and validates the configuration contract of the
// contract agent from environment variables and .env-style files.
//
// The loaded Config is an immutable snapshot: it is never mutated after
// construction, so it is safe to share across goroutines without
// synchronization. Reloading produces a fresh Config instead of mutating
// fields in place. Consumers receive it by injection at startup rather
// than through a mutable global.
//
// # Usage
//
//	cfg, err := config.Load(config.WithEnvFile(".env"))
//	if err != nil {
//	    // err is a *ConfigError naming the offending key and kind
//	}
//
// Unrecognized keys in the source are ignored on purpose: deployments may
// carry variables for other tooling in the same .env file, and rejecting
// them would break forward compatibility.
package config
