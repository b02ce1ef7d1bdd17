package sieve

import (
	"errors"
	"fmt"

	"github.com/primes/primes/internal/bitset"
)

// DefaultBound is the exclusive upper limit used when no bound is configured.
const DefaultBound = 1_000_000

// MaxBound caps the bound so the bit array stays within reasonable memory
// (2^36 bits is 8 GiB).
const MaxBound int64 = 1 << 36

var (
	// ErrInvalidBound is returned for bounds below 2 or above MaxBound.
	ErrInvalidBound = errors.New("invalid bound")
	// ErrAlreadyRun is returned when Run is called on a consumed Sieve.
	ErrAlreadyRun = errors.New("sieve already run")
)

// Sieve holds the candidate-prime flags for every integer in [0, bound).
type Sieve struct {
	bound int
	flags *bitset.Set
	done  bool

	// onClear observes every composite elimination; tests use it.
	onClear func(p, j int)
}

// Validate reports whether bound can be sieved. It never allocates.
func Validate(bound int) error {
	if bound < 2 {
		return fmt.Errorf("%w: %d (must be at least 2)", ErrInvalidBound, bound)
	}
	if int64(bound) > MaxBound {
		return fmt.Errorf("%w: %d (must be at most %d)", ErrInvalidBound, bound, MaxBound)
	}
	return nil
}

// New validates bound and allocates the flag array with every candidate set,
// except 0 and 1.
func New(bound int) (*Sieve, error) {
	if err := Validate(bound); err != nil {
		return nil, err
	}
	flags := bitset.New(bound)
	flags.SetAll()
	flags.Clear(0)
	flags.Clear(1)
	return &Sieve{bound: bound, flags: flags}, nil
}

// Bound returns the exclusive upper limit.
func (s *Sieve) Bound() int { return s.bound }

// Run sieves [2, bound) in ascending order. Each prime is passed to emit as
// soon as it is confirmed, before its multiples are cleared. A non-nil error
// from emit stops the run.
func (s *Sieve) Run(emit func(p int) error) error {
	if s.done {
		return ErrAlreadyRun
	}
	s.done = true

	n := s.bound
	for i := 2; i < n; i++ {
		if !s.flags.Test(i) {
			continue
		}
		if emit != nil {
			if err := emit(i); err != nil {
				return fmt.Errorf("emit %d: %w", i, err)
			}
		}
		eachMultiple(i, n, func(j int) {
			s.flags.Clear(j)
			if s.onClear != nil {
				s.onClear(i, j)
			}
		})
	}
	return nil
}

// eachMultiple calls fn for j = p*p, p*p+p, ... while j < n. Neither p*p nor
// j+p is computed unless the result stays below n, so it cannot overflow int.
func eachMultiple(p, n int, fn func(j int)) {
	if p > (n-1)/p {
		return
	}
	for j := p * p; ; j += p {
		fn(j)
		if j >= n-p {
			return
		}
	}
}

// IsPrime reports whether k is prime. Only meaningful after Run.
func (s *Sieve) IsPrime(k int) bool {
	if k < 0 || k >= s.bound {
		return false
	}
	return s.flags.Test(k)
}

// Primes returns every prime below bound in ascending order.
func Primes(bound int) ([]int, error) {
	s, err := New(bound)
	if err != nil {
		return nil, err
	}
	var out []int
	if err := s.Run(func(p int) error {
		out = append(out, p)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of primes below bound.
func Count(bound int) (int, error) {
	s, err := New(bound)
	if err != nil {
		return 0, err
	}
	if err := s.Run(nil); err != nil {
		return 0, err
	}
	return s.flags.Count(), nil
}
