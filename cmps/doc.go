/*
Package cmps compares the trees of package augtree with ordered containers
commonly used in Go programs: google/btree, petar/GoLLRB, the red-black tree
of emirpasic/gods and the left-leaning red-black tree of biogo/store.

The package holds benchmarks and cross-checks only. Run them with

	go test -bench . ./cmps

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package cmps

import "math/rand/v2"

// Keys returns n pseudo-random keys in [0, 4n). Equal seeds give equal keys.
func Keys(n int, seed uint64) []int {
	rnd := rand.New(rand.NewPCG(seed, seed+1))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rnd.IntN(4 * n)
	}
	return keys
}
