// Package config loads startup configuration from .env, TUBEGRAB_* environment
// variables and an optional tubegrab.yaml, and resolves the filesystem paths
// the rest of the application relies on.
package config
