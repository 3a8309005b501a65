// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables optionally seeded from a .env file, CLI flags) with
// precedence: CLI flags > YAML config > Environment variables > Defaults. It
// also resolves the vehicle catalog the calculator reads from.
package config
