package mooresim_test

import (
	"testing"

	ms "github.com/db47h/mooresim"
)

// Two one bit wires feeding each other: after one tick each must output the
// other's pre-tick value, never its post-tick one.
func Test_step_synchronous(t *testing.T) {
	a := wire(t, 1)
	b := wire(t, 1)
	if err := a.SetState(ms.Vec{1}); err != nil {
		t.Fatal(err)
	}
	if err := a.Connect(0, b, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.Connect(0, a, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := ms.Step(a, b); err != nil {
		t.Fatal(err)
	}
	if got := a.Output().Uint64(); got != 0 {
		t.Errorf("a: expected b's pre-tick output 0, got %d", got)
	}
	if got := b.Output().Uint64(); got != 1 {
		t.Errorf("b: expected a's pre-tick output 1, got %d", got)
	}
	// the single set bit keeps swapping sides
	if err := ms.Step(a, b); err != nil {
		t.Fatal(err)
	}
	if a.Output().Uint64() != 1 || b.Output().Uint64() != 0 {
		t.Errorf("expected outputs 1, 0, got %d, %d", a.Output().Uint64(), b.Output().Uint64())
	}
}

func Test_step_order_independent(t *testing.T) {
	a := wire(t, 1)
	b := wire(t, 1)
	if err := a.SetState(ms.Vec{1}); err != nil {
		t.Fatal(err)
	}
	if err := a.Connect(0, b, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.Connect(0, a, 0, 1); err != nil {
		t.Fatal(err)
	}
	// list order reversed from Test_step_synchronous: same result expected.
	if err := ms.Step(b, a); err != nil {
		t.Fatal(err)
	}
	if a.Output().Uint64() != 0 || b.Output().Uint64() != 1 {
		t.Errorf("expected outputs 0, 1, got %d, %d", a.Output().Uint64(), b.Output().Uint64())
	}
}

func Test_step_self_loop(t *testing.T) {
	// an inverter looped onto itself oscillates with period 2.
	inv, err := ms.NewSimple(1, 1, func(next, input, state ms.Vec, inputs, states int) {
		next.SetBit(0, !input.Bit(0))
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = inv.Connect(0, inv, 0, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		if err = ms.Step(inv); err != nil {
			t.Fatal(err)
		}
		expected := uint64(1 - i%2)
		if got := inv.Output().Uint64(); got != expected {
			t.Errorf("tick %d: expected %d, got %d", i, expected, got)
		}
	}
}

func Test_step_multiword(t *testing.T) {
	in := ms.Vec{0xdeadbeefcafebabe, 0xffffffffffffffff}
	w1 := wire(t, 100)
	w2 := wire(t, 100)
	if err := w2.Connect(0, w1, 0, 100); err != nil {
		t.Fatal(err)
	}
	if err := w1.SetInput(in); err != nil {
		t.Fatal(err)
	}
	if err := ms.Step(w1, w2); err != nil {
		t.Fatal(err)
	}
	if err := ms.Step(w1, w2); err != nil {
		t.Fatal(err)
	}
	out := w2.Output()
	if out[0] != in[0] {
		t.Errorf("word 0: expected %#x, got %#x", in[0], out[0])
	}
	if expected := in[1] & (1<<36 - 1); out[1] != expected {
		t.Errorf("word 1: expected %#x, got %#x", expected, out[1])
	}
}

func Test_step_unconnected_inputs_kept(t *testing.T) {
	// unconnected bits keep the values given to SetInput across ticks.
	a := wire(t, 4)
	if err := a.SetInput(ms.Vec{0x9}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := ms.Step(a); err != nil {
			t.Fatal(err)
		}
		if got := a.Output().Uint64(); got != 0x9 {
			t.Errorf("tick %d: expected output %#x, got %#x", i, 0x9, got)
		}
	}
}

func Test_step_validation(t *testing.T) {
	a := wire(t, 1)
	if err := a.SetInput(ms.Vec{1}); err != nil {
		t.Fatal(err)
	}
	checkInval(t, ms.Step())
	checkInval(t, ms.Step(nil))
	checkInval(t, ms.Step(a, nil))
	d := wire(t, 1)
	d.Dispose()
	checkInval(t, ms.Step(a, d))
	// a failed Step must not have advanced a.
	if got := a.Output().Uint64(); got != 0 {
		t.Errorf("expected output 0 after failed steps, got %d", got)
	}
	if err := ms.Step(a); err != nil {
		t.Fatal(err)
	}
	if got := a.Output().Uint64(); got != 1 {
		t.Errorf("expected output 1, got %d", got)
	}
}

func Test_connect_validation(t *testing.T) {
	a := wire(t, 2)
	src := wire(t, 2)
	td := []struct {
		name string
		fn   func() error
	}{
		{"zero count", func() error { return a.Connect(0, src, 0, 0) }},
		{"negative count", func() error { return a.Connect(0, src, 0, -1) }},
		{"nil source", func() error { return a.Connect(0, nil, 0, 1) }},
		{"input range", func() error { return a.Connect(1, src, 0, 2) }},
		{"negative input start", func() error { return a.Connect(-1, src, 0, 1) }},
		{"output range", func() error { return a.Connect(0, src, 1, 2) }},
		{"negative output start", func() error { return a.Connect(0, src, -1, 1) }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			checkInval(t, d.fn())
		})
	}
	// the failed calls left the graph unchanged: both bits still writable.
	if err := a.SetInput(ms.Vec{0x3}); err != nil {
		t.Fatal(err)
	}
	if err := ms.Step(a); err != nil {
		t.Fatal(err)
	}
	if got := a.Output().Uint64(); got != 0x3 {
		t.Errorf("expected output %#x, got %#x", 0x3, got)
	}
}

func Test_disconnect_validation(t *testing.T) {
	a := wire(t, 2)
	checkInval(t, a.Disconnect(0, 0))
	checkInval(t, a.Disconnect(0, 3))
	checkInval(t, a.Disconnect(-1, 1))
	checkInval(t, a.Disconnect(2, 1))
	// disconnecting unconnected bits is not an error.
	if err := a.Disconnect(0, 2); err != nil {
		t.Fatal(err)
	}
}

func Test_reconnect_switches_source(t *testing.T) {
	a := wire(t, 1)
	s0 := wire(t, 1)
	s1 := wire(t, 1)
	if err := s1.SetState(ms.Vec{1}); err != nil {
		t.Fatal(err)
	}
	// s1 holds its set bit across ticks via a self loop.
	if err := s1.Connect(0, s1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := a.Connect(0, s0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := ms.Step(a, s0, s1); err != nil {
		t.Fatal(err)
	}
	if got := a.Output().Uint64(); got != 0 {
		t.Errorf("expected output 0 from s0, got %d", got)
	}
	// relink the same bit to s1.
	if err := a.Connect(0, s1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := ms.Step(a, s0, s1); err != nil {
		t.Fatal(err)
	}
	if got := a.Output().Uint64(); got != 1 {
		t.Errorf("expected output 1 from s1, got %d", got)
	}
}
