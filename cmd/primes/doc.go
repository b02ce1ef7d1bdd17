// Package primes provides the command-line interface for the primes tool.
// It configures subcommands (count, config, completion, version), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/primes/primes/cmd/primes"
//	func main() { primes.Execute() }
package primes
