package mooresim

// Identity is the output function of simple automata: it copies the state
// verbatim to the output. Only meaningful when the state and output widths
// are equal.
//
func Identity(out, state Vec, outputs, states int) {
	copy(out, state)
	out.maskTail(outputs)
}

// Hold is a transition function that keeps the current state.
//
func Hold(next, input, state Vec, inputs, states int) {
	copy(next, state)
}

// Load is a transition function that loads the input into the state. When
// the widths differ the input is truncated or zero extended to the state
// width.
//
func Load(next, input, state Vec, inputs, states int) {
	copy(next, input)
}
