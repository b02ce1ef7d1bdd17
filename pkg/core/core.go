package core

import (
	"io"

	"github.com/primes/primes/internal/output"
	"github.com/primes/primes/internal/sieve"
)

// DefaultBound is the bound the primes CLI uses when none is configured.
const DefaultBound = sieve.DefaultBound

// ErrInvalidBound is returned for bounds below 2 or too large to allocate.
var ErrInvalidBound = sieve.ErrInvalidBound

// Primes returns every prime below bound in ascending order.
func Primes(bound int) ([]int, error) { return sieve.Primes(bound) }

// Count returns the number of primes below bound.
func Count(bound int) (int, error) { return sieve.Count(bound) }

// Write streams the primes below bound to w exactly as the CLI prints them:
// sep between values (tab when empty) and a trailing newline.
func Write(w io.Writer, bound int, sep string) error {
	s, err := sieve.New(bound)
	if err != nil {
		return err
	}
	ow := output.NewWriter(w, sep)
	if err := s.Run(ow.Emit); err != nil {
		return err
	}
	return ow.Close()
}
