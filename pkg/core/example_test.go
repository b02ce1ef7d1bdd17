package core_test

import (
	"fmt"
	"os"

	"github.com/primes/primes/pkg/core"
)

func ExamplePrimes() {
	ps, err := core.Primes(30)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sieve failed: %v\n", err)
		return
	}
	fmt.Println(ps)
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

func ExampleWrite() {
	_ = core.Write(os.Stdout, 20, " ")
	// Output: 2 3 5 7 11 13 17 19
}

func ExampleMarshalPrimes() {
	ps, _ := core.Primes(12)
	_ = core.MarshalPrimes(os.Stdout, ps)
	// Output: [2,3,5,7,11]
}
