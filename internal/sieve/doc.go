// Package sieve finds the primes below a bound with the sieve of
// Eratosthenes over a flat bit array. Primes are emitted as they are
// confirmed, and each prime p clears its multiples starting at p*p.
// This package is internal; external consumers should use pkg/core.
package sieve
