// Package bitset implements a fixed-length bit array backed by 64-bit words.
package bitset

import "math/bits"

const wordBits = 64

// Set is a fixed-length sequence of bits indexed from 0 to Len()-1.
type Set struct {
	n     int
	words []uint64
}

// New allocates a Set of n bits, all clear.
func New(n int) *Set {
	return &Set{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the number of addressable bits.
func (s *Set) Len() int { return s.n }

// SetAll sets every bit in [0, Len()). Padding bits in the last word stay clear.
func (s *Set) SetAll() {
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	if rem := s.n % wordBits; rem != 0 {
		s.words[len(s.words)-1] = (uint64(1) << rem) - 1
	}
}

func (s *Set) Set(i int) {
	s.check(i)
	s.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}

func (s *Set) Clear(i int) {
	s.check(i)
	s.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
}

func (s *Set) Test(i int) bool {
	s.check(i)
	return s.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// check keeps indices in the padding of the last word from being addressed.
func (s *Set) check(i int) {
	if i < 0 || i >= s.n {
		panic("bitset: index out of range")
	}
}
