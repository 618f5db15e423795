// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package mooretest provides utility functions for testing automata.
//
package mooretest

import (
	"math/rand"
	"testing"

	"github.com/db47h/mooresim"
)

// CompareAutomata drives a and b with identical pseudo random input vectors
// for the given number of ticks and reports the first tick where their
// outputs differ. Both automata must have the same input and output widths.
//
func CompareAutomata(t *testing.T, a, b *mooresim.Automaton, ticks int) {
	t.Helper()
	if a.Inputs() != b.Inputs() || a.Outputs() != b.Outputs() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Inputs(), a.Outputs(), b.Inputs(), b.Outputs())
	}
	rng := rand.New(rand.NewSource(42))
	in := mooresim.NewVec(a.Inputs())
	for tick := 0; tick < ticks; tick++ {
		if a.Inputs() > 0 {
			for i := range in {
				in[i] = rng.Uint64()
			}
			if err := a.SetInput(in); err != nil {
				t.Fatal(err)
			}
			if err := b.SetInput(in); err != nil {
				t.Fatal(err)
			}
		}
		if err := mooresim.Step(a, b); err != nil {
			t.Fatal(err)
		}
		oa, ob := a.Output(), b.Output()
		for i := range oa {
			if oa[i] != ob[i] {
				t.Fatalf("tick %d: outputs differ in word %d: %#x != %#x", tick, i, oa[i], ob[i])
			}
		}
	}
}
