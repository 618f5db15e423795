/*
Package mooresim simulates networks of binary Moore machines.

An Automaton has fixed input, output and state signal widths. Signals are
single bits packed into Vec vectors, 64 to a word. Output bits can be wired
to other automata's input bits with Connect, forming an arbitrary directed
graph (cycles and self loops included), and any set of automata is advanced
in lock step with Step: the states and outputs after a call depend only on
the states, inputs and outputs before the call, regardless of the order in
which the automata are listed.

The transition and output functions of an automaton are supplied by the
caller. Package moorelib provides stock automata built from common ones.

*/
package mooresim
