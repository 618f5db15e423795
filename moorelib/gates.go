// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package moorelib provides stock automata for package mooresim.
//
// All gates are registered Moore machines: their output reflects the input
// of the previous tick.
//
package moorelib

import (
	"github.com/db47h/mooresim"
)

// Not returns an automaton inverting its n bit input.
//
//	Inputs: in[n]
//	Outputs: out[n]
//	Function: out(t) = ^in(t-1)
//
func Not(n int) (*mooresim.Automaton, error) {
	return mooresim.NewSimple(n, n, func(next, input, state mooresim.Vec, inputs, states int) {
		for i := 0; i < states; i++ {
			next.SetBit(i, !input.Bit(i))
		}
	})
}

// gate2 builds a bitwise gate over two n bit input groups: group a is input
// bits 0..n-1, group b is input bits n..2n-1.
func gate2(n int, fn func(a, b bool) bool) (*mooresim.Automaton, error) {
	return mooresim.NewSimple(2*n, n, func(next, input, state mooresim.Vec, inputs, states int) {
		for i := 0; i < states; i++ {
			next.SetBit(i, fn(input.Bit(i), input.Bit(states+i)))
		}
	})
}

// And returns a bitwise AND over two n bit input groups.
//
//	Inputs: a[n] (bits 0..n-1), b[n] (bits n..2n-1)
//	Outputs: out[n]
//	Function: out(t) = a(t-1) & b(t-1)
//
func And(n int) (*mooresim.Automaton, error) {
	return gate2(n, func(a, b bool) bool { return a && b })
}

// Nand returns a bitwise NAND over two n bit input groups.
//
func Nand(n int) (*mooresim.Automaton, error) {
	return gate2(n, func(a, b bool) bool { return !(a && b) })
}

// Or returns a bitwise OR over two n bit input groups.
//
func Or(n int) (*mooresim.Automaton, error) {
	return gate2(n, func(a, b bool) bool { return a || b })
}

// Nor returns a bitwise NOR over two n bit input groups.
//
func Nor(n int) (*mooresim.Automaton, error) {
	return gate2(n, func(a, b bool) bool { return !(a || b) })
}

// Xor returns a bitwise XOR over two n bit input groups.
//
func Xor(n int) (*mooresim.Automaton, error) {
	return gate2(n, func(a, b bool) bool { return a != b })
}

// Xnor returns a bitwise XNOR over two n bit input groups.
//
func Xnor(n int) (*mooresim.Automaton, error) {
	return gate2(n, func(a, b bool) bool { return a == b })
}
