// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package mooresim

import (
	"github.com/pkg/errors"
)

// Step advances every given automaton by one synchronous tick.
//
// A tick runs in two strictly ordered phases. First, every listed
// automaton's linked input bits are refreshed from the current outputs of
// their sources; unconnected bits keep the values given to SetInput. Only
// then is every automaton's next state computed from its refreshed input
// and current state, and its output recomputed from the new state. No
// automaton observes another's post-tick output during the tick, so the
// result is independent of the order of the list.
//
// Step validates the whole list before touching any automaton: on error no
// automaton has been advanced.
//
func Step(as ...*Automaton) error {
	if len(as) == 0 {
		return errors.Wrap(ErrInvalidArgument, "empty automaton list")
	}
	for _, a := range as {
		if a == nil || a.disposed {
			return errors.Wrap(ErrInvalidArgument, "nil or disposed automaton in list")
		}
	}
	for _, a := range as {
		a.refreshInput()
	}
	for _, a := range as {
		a.advance()
	}
	return nil
}

// refreshInput loads every linked input bit from its source's current
// output, then masks the input tail.
func (a *Automaton) refreshInput() {
	for i, l := range a.incoming {
		if l != nil {
			a.input.SetBit(i, l.src.output.Bit(l.srcBit))
		}
	}
	a.input.maskTail(a.inputs)
}

// advance computes the next state into a scratch vector, installs it and
// recomputes the output.
func (a *Automaton) advance() {
	next := NewVec(a.states)
	a.t(next, a.input, a.state, a.inputs, a.states)
	copy(a.state, next)
	a.state.maskTail(a.states)
	a.y(a.output, a.state, a.outputs, a.states)
	a.output.maskTail(a.outputs)
}
