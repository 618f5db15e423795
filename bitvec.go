package mooresim

// wordBits is the width of the packed representation. Signal i lives at bit
// i%wordBits of word i/wordBits.
const wordBits = 64

// A Vec is a packed vector of binary signals. Signal 0 is the least
// significant bit of word 0; a vector of k signals occupies ceil(k/64)
// words. Bits at index k and above in the last word are not meaningful on
// input and are kept zero by every mutating operation of this package.
//
type Vec []uint64

// NewVec returns a zeroed vector with room for width signals, or nil when
// width is 0.
//
func NewVec(width int) Vec {
	if width <= 0 {
		return nil
	}
	return make(Vec, vecLen(width))
}

// vecLen returns the number of words needed to hold width signals.
func vecLen(width int) int {
	return (width + wordBits - 1) / wordBits
}

// Bit returns the value of signal i. The caller guarantees that i is within
// the vector.
//
func (v Vec) Bit(i int) bool {
	return v[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// SetBit sets signal i to b. The caller guarantees that i is within the
// vector.
//
func (v Vec) SetBit(i int, b bool) {
	if b {
		v[i/wordBits] |= 1 << uint(i%wordBits)
	} else {
		v[i/wordBits] &^= 1 << uint(i%wordBits)
	}
}

// Uint64 returns the low 64 signals of v as an integer, or 0 if v is empty.
//
func (v Vec) Uint64() uint64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// SetUint64 sets the low 64 signals of v. Bits at or above the vector's
// signal width are the caller's to mask.
//
func (v Vec) SetUint64(x uint64) {
	v[0] = x
}

// mask returns a mask covering the low width bits of one word, 0 < width < 64.
func mask(width int) uint64 {
	return 1<<uint(width) - 1
}

// maskTail zeroes the bits at index width and above in the last word of v.
// No-op when width is a multiple of the word size.
func (v Vec) maskTail(width int) {
	if w := width % wordBits; w != 0 {
		v[width/wordBits] &= mask(w)
	}
}
