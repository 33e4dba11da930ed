// Package config provides environment-based configuration.
//
// Maps environment variables to the Config struct via caarlos0/env struct tags
// and validates the handful of fields that have constraints.
package config
