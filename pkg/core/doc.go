// Package core provides a small, stable facade over the internal sieve for
// external integrations, so other programs can depend on a stable import
// path without reaching into internal packages.
//
// Example:
//
//	ps, err := core.Primes(100)
//	if err != nil { /* handle */ }
//	_ = core.MarshalPrimes(os.Stdout, ps)
package core
