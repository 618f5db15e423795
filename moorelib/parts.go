// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package moorelib

import (
	"github.com/db47h/mooresim"
)

// Wire returns an n bit delay line.
//
//	Inputs: in[n]
//	Outputs: out[n]
//	Function: out(t) = in(t-1)
//
func Wire(n int) (*mooresim.Automaton, error) {
	return mooresim.NewSimple(n, n, mooresim.Load)
}

// Register returns an n bit register with a load enable.
//
//	Inputs: in[n] (bits 0..n-1), load (bit n)
//	Outputs: out[n]
//	Function: out(t) = in(t-1) if load(t-1) else out(t-1)
//
func Register(n int) (*mooresim.Automaton, error) {
	return mooresim.NewSimple(n+1, n, func(next, input, state mooresim.Vec, inputs, states int) {
		if input.Bit(states) {
			copy(next, input)
			return
		}
		copy(next, state)
	})
}

// Counter returns an n bit up counter with no inputs; it increments on
// every tick and wraps at 2^n.
//
func Counter(n int) (*mooresim.Automaton, error) {
	return mooresim.NewSimple(0, n, func(next, input, state mooresim.Vec, inputs, states int) {
		carry := uint64(1)
		for i, w := range state {
			next[i] = w + carry
			if next[i] != 0 || carry == 0 {
				carry = 0
			}
		}
	})
}

// Constant returns an automaton with no inputs whose m bit output is fixed
// to bits.
//
func Constant(bits mooresim.Vec, m int) (*mooresim.Automaton, error) {
	return mooresim.New(0, m, m, mooresim.Hold, mooresim.Identity, bits)
}
