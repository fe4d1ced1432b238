// Package bits provides the small bit manipulation helpers used
// throughout the emulator: splitting bytes and words into their
// halves, addressing single bits and rotating bytes.
//
// Every function is pure and total. Bit indexes and rotation
// distances are clamped to [0, 7] rather than rejected.
package bits

// Direction is the direction of a shift or rotation.
type Direction uint8

const (
	// Left moves bits towards bit 7.
	Left Direction = iota
	// Right moves bits towards bit 0.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Valid reports whether d is one of Left or Right.
func (d Direction) Valid() bool {
	return d == Left || d == Right
}

// clamp restricts i to the range [0, 7].
func clamp(i int) uint8 {
	if i < 0 {
		return 0
	}
	if i > 7 {
		return 7
	}
	return uint8(i)
}

// LSB4 returns the low nibble of b.
func LSB4(b uint8) uint8 {
	return b & 0x0F
}

// MSB4 returns the high nibble of b.
func MSB4(b uint8) uint8 {
	return b >> 4
}

// LSB8 returns the low byte of w.
func LSB8(w uint16) uint8 {
	return uint8(w & 0xFF)
}

// MSB8 returns the high byte of w.
func MSB8(w uint16) uint8 {
	return uint8(w >> 8)
}

// Merge4 combines two nibbles into a byte, low being the low
// nibble. Only the low nibble of each argument is used.
func Merge4(low, high uint8) uint8 {
	return (high&0x0F)<<4 | low&0x0F
}

// Merge8 combines two bytes into a word, low being the low byte.
func Merge8(low, high uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Val returns the value of the bit at the given index.
func Val(b uint8, i int) uint8 {
	return (b >> clamp(i)) & 1
}

// Test tests the bit at the given index.
func Test(b uint8, i int) bool {
	return Val(b, i) == 1
}

// Set sets the bit at the given index.
func Set(b uint8, i int) uint8 {
	return b | (1 << clamp(i))
}

// Reset resets the bit at the given index.
func Reset(b uint8, i int) uint8 {
	return b &^ (1 << clamp(i))
}

// Edit sets the bit at the given index when v is non-zero, and
// resets it otherwise.
func Edit(b uint8, i int, v uint8) uint8 {
	if v == 0 {
		return Reset(b, i)
	}
	return Set(b, i)
}

// Rotate circularly rotates b by distance bits in the given
// direction. An invalid direction leaves b untouched.
func Rotate(b uint8, dir Direction, distance int) uint8 {
	d := clamp(distance)
	switch dir {
	case Left:
		return b<<d | b>>(8-d)
	case Right:
		return b>>d | b<<(8-d)
	}
	return b
}
