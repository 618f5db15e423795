package mooresim

import (
	"github.com/pkg/errors"
)

// A link records the output bit feeding one input bit.
type link struct {
	src    *Automaton
	srcBit int
}

// A sink identifies one input bit of a destination automaton.
type sink struct {
	dst    *Automaton
	dstBit int
}

// A sinkSet holds the destinations fed by one output bit. Map semantics
// keep insertion and removal O(1) and destinations unique. Invariant:
// a.incoming[i] = &link{src, j} if and only if src.outgoing[j] contains
// sink{a, i}, after every mutating operation.
type sinkSet map[sink]struct{}

// Connect links n consecutive input bits of a, starting at in, to n
// consecutive output bits of src, starting at out, bit for bit. Input bits
// that already have a link are relinked, the previous link being removed
// first. An automaton may be connected to itself.
//
// Connect validates all of its arguments before touching the graph: on
// error the wiring is unchanged.
//
func (a *Automaton) Connect(in int, src *Automaton, out, n int) error {
	switch {
	case a == nil || a.disposed:
		return errors.Wrap(ErrInvalidArgument, "nil or disposed automaton")
	case src == nil || src.disposed:
		return errors.Wrap(ErrInvalidArgument, "nil or disposed source automaton")
	case n <= 0:
		return errors.Wrap(ErrInvalidArgument, "non-positive bit count")
	case in < 0 || in+n > a.inputs:
		return errors.Wrap(ErrInvalidArgument, "input range out of bounds")
	case out < 0 || out+n > src.outputs:
		return errors.Wrap(ErrInvalidArgument, "output range out of bounds")
	}
	for i := 0; i < n; i++ {
		removeLink(a, in+i)
		a.incoming[in+i] = &link{src: src, srcBit: out + i}
		if src.outgoing[out+i] == nil {
			src.outgoing[out+i] = make(sinkSet)
		}
		src.outgoing[out+i][sink{dst: a, dstBit: in + i}] = struct{}{}
	}
	return nil
}

// Disconnect removes the links feeding n consecutive input bits of a,
// starting at in. Bits with no link are skipped.
//
func (a *Automaton) Disconnect(in, n int) error {
	switch {
	case a == nil || a.disposed:
		return errors.Wrap(ErrInvalidArgument, "nil or disposed automaton")
	case n <= 0:
		return errors.Wrap(ErrInvalidArgument, "non-positive bit count")
	case in < 0 || in+n > a.inputs:
		return errors.Wrap(ErrInvalidArgument, "input range out of bounds")
	}
	for i := 0; i < n; i++ {
		removeLink(a, in+i)
	}
	return nil
}

// removeLink unlinks input bit of a and removes the mirrored entry from the
// source's outgoing set. No-op on an unconnected bit.
func removeLink(a *Automaton, bit int) {
	l := a.incoming[bit]
	if l == nil {
		return
	}
	delete(l.src.outgoing[l.srcBit], sink{dst: a, dstBit: bit})
	a.incoming[bit] = nil
}

// severAll removes every link touching a, in both directions.
func severAll(a *Automaton) {
	for i := range a.incoming {
		removeLink(a, i)
	}
	for bit, set := range a.outgoing {
		for s := range set {
			s.dst.incoming[s.dstBit] = nil
		}
		a.outgoing[bit] = nil
	}
}
