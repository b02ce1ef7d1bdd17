package main

import "github.com/primes/primes/cmd/primes"

func main() { primes.Execute() }
