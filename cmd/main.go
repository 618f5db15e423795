package main

import (
	"log"

	"github.com/db47h/mooresim"
	"github.com/db47h/mooresim/moorelib"
)

func main() {
	// a 4 bit counter, a one tick delayed copy of it, and a XOR of the two:
	// the XOR output flags the counter bits that toggled on the last tick.
	cnt, err := moorelib.Counter(4)
	if err != nil {
		log.Fatal(err)
	}
	dly, err := moorelib.Wire(4)
	if err != nil {
		log.Fatal(err)
	}
	xor, err := moorelib.Xor(4)
	if err != nil {
		log.Fatal(err)
	}
	if err = dly.Connect(0, cnt, 0, 4); err != nil {
		log.Fatal(err)
	}
	if err = xor.Connect(0, cnt, 0, 4); err != nil {
		log.Fatal(err)
	}
	if err = xor.Connect(4, dly, 0, 4); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 16; i++ {
		if err = mooresim.Step(cnt, dly, xor); err != nil {
			log.Fatal(err)
		}
		log.Printf("count=%2d toggled=%04b", cnt.Output().Uint64(), xor.Output().Uint64())
	}
}
