// Package config loads primes configuration from explicit, local and global
// YAML files and resolves them against CLI flags with precedence rules.
package config
