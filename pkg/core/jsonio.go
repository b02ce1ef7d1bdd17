package core

import (
	"encoding/json"
	"io"
)

// MarshalPrimes writes primes as a JSON array for pipelines.
func MarshalPrimes(w io.Writer, primes []int) error {
	return json.NewEncoder(w).Encode(primes)
}

// UnmarshalPrimes decodes a JSON array of primes, useful for ingestion tests.
func UnmarshalPrimes(r io.Reader) ([]int, error) {
	var ps []int
	if err := json.NewDecoder(r).Decode(&ps); err != nil {
		return nil, err
	}
	return ps, nil
}
