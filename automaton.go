// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package mooresim

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is the cause of every error returned by this package:
// a nil or disposed automaton, a nil or too short signal vector, a zero
// count or an out of range signal index. Test for it with errors.Cause or
// errors.Is.
//
var ErrInvalidArgument = errors.New("invalid argument")

// A TransitionFn computes an automaton's next state from its current input
// and state. It must fully populate the low states bits of next, must not
// retain or mutate its arguments beyond the call, and may ignore tail bits:
// masking them is the engine's job. The input vector is nil for automata
// with no inputs.
//
type TransitionFn func(next, input, state Vec, inputs, states int)

// An OutputFn computes an automaton's output from its state, under the same
// contract as a TransitionFn.
//
type OutputFn func(out, state Vec, outputs, states int)

// An Automaton is a binary Moore machine: a state machine with inputs,
// outputs and states bits of input, output and state signals, whose next
// state is a function of its input and state and whose output is a function
// of its state alone.
//
// An Automaton is not safe for concurrent use; since links span automata,
// callers embedding a graph in a concurrent host must serialize all
// operations on that graph behind a single lock.
//
type Automaton struct {
	inputs  int
	outputs int
	states  int

	input  Vec // nil when inputs == 0
	state  Vec
	output Vec

	t TransitionFn
	y OutputFn

	incoming []*link   // one optional source per input bit, nil when inputs == 0
	outgoing []sinkSet // one destination set per output bit

	disposed bool
}

// New creates an automaton with the given signal widths, transition and
// output functions and initial state; the initial output is computed from
// the initial state. The number of outputs and states must be positive,
// inputs may be 0, and init must hold at least ceil(states/64) words (its
// tail bits are ignored).
//
func New(inputs, outputs, states int, t TransitionFn, y OutputFn, init Vec) (*Automaton, error) {
	a, err := newAutomaton(inputs, outputs, states, t, y)
	if err != nil {
		return nil, err
	}
	if err = a.SetState(init); err != nil {
		return nil, err
	}
	return a, nil
}

// NewSimple creates an automaton whose state doubles as its output: the
// state width equals the output width and the output function is Identity.
// The initial state and output are all zero.
//
func NewSimple(inputs, outputs int, t TransitionFn) (*Automaton, error) {
	return newAutomaton(inputs, outputs, outputs, t, Identity)
}

func newAutomaton(inputs, outputs, states int, t TransitionFn, y OutputFn) (*Automaton, error) {
	switch {
	case inputs < 0 || outputs <= 0 || states <= 0:
		return nil, errors.Wrap(ErrInvalidArgument, "bad signal width")
	case t == nil:
		return nil, errors.Wrap(ErrInvalidArgument, "nil transition function")
	case y == nil:
		return nil, errors.Wrap(ErrInvalidArgument, "nil output function")
	}
	a := &Automaton{
		inputs:   inputs,
		outputs:  outputs,
		states:   states,
		state:    NewVec(states),
		output:   NewVec(outputs),
		t:        t,
		y:        y,
		outgoing: make([]sinkSet, outputs),
	}
	if inputs > 0 {
		a.input = NewVec(inputs)
		a.incoming = make([]*link, inputs)
	}
	return a, nil
}

// Dispose severs every link touching a and releases its buffers. Peer
// automata are left with the affected bits consistently unconnected: an
// input bit previously fed by a becomes writable by SetInput again. Dispose
// is a no-op on a nil or already disposed automaton; any further operation
// on a disposed automaton fails with ErrInvalidArgument.
//
func (a *Automaton) Dispose() {
	if a == nil || a.disposed {
		return
	}
	severAll(a)
	a.input, a.state, a.output = nil, nil, nil
	a.incoming, a.outgoing = nil, nil
	a.t, a.y = nil, nil
	a.disposed = true
}

// SetInput sets the unconnected input bits of a from bits. Bits whose input
// is linked to another automaton's output are left untouched regardless of
// the corresponding bits value: only Step's refresh phase updates them.
//
// bits must hold at least ceil(Inputs()/64) words.
//
func (a *Automaton) SetInput(bits Vec) error {
	switch {
	case a == nil || a.disposed:
		return errors.Wrap(ErrInvalidArgument, "nil or disposed automaton")
	case a.inputs == 0:
		return errors.Wrap(ErrInvalidArgument, "automaton has no inputs")
	case len(bits) < vecLen(a.inputs):
		return errors.Wrap(ErrInvalidArgument, "input vector too short")
	}
	for i, l := range a.incoming {
		if l == nil {
			a.input.SetBit(i, bits.Bit(i))
		}
	}
	return nil
}

// SetState copies bits over a's whole state and recomputes its output.
//
// bits must hold at least ceil(States()/64) words; tail bits of its last
// significant word are ignored.
//
func (a *Automaton) SetState(bits Vec) error {
	switch {
	case a == nil || a.disposed:
		return errors.Wrap(ErrInvalidArgument, "nil or disposed automaton")
	case len(bits) < vecLen(a.states):
		return errors.Wrap(ErrInvalidArgument, "state vector too short")
	}
	copy(a.state, bits[:vecLen(a.states)])
	a.state.maskTail(a.states)
	a.y(a.output, a.state, a.outputs, a.states)
	a.output.maskTail(a.outputs)
	return nil
}

// Output returns a read-only view of a's current output signals, or nil if
// a is nil or disposed. The returned vector aliases the live output buffer:
// it changes on the next SetState or Step and must not be modified.
//
func (a *Automaton) Output() Vec {
	if a == nil || a.disposed {
		return nil
	}
	return a.output
}

// Inputs returns the number of input signals.
func (a *Automaton) Inputs() int { return a.inputs }

// Outputs returns the number of output signals.
func (a *Automaton) Outputs() int { return a.outputs }

// States returns the number of state signals.
func (a *Automaton) States() int { return a.states }
