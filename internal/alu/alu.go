// Package alu implements the arithmetic and logic unit of the
// Game Boy CPU. Every operation is stateless: it takes its
// operands and returns a Result holding the computed value and
// the flags the operation produced. Flags not touched by an
// operation are left clear; the CPU decides which of them end up
// in the F register.
package alu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Result is the output of an ALU operation.
type Result struct {
	Value uint16
	Flags Flags
}

// Byte returns the low byte of the result value.
func (r Result) Byte() uint8 {
	return uint8(r.Value)
}

// carryChain computes the carry (or borrow) out of each bit
// position of x op y, where op adds when sign is 1 and subtracts
// when sign is -1. chain[i] is the carry out of bit i-1.
func carryChain(x, y uint8, in bool, sign int) [9]uint8 {
	var chain [9]uint8
	for i := 1; i < 9; i++ {
		c := 0
		if i == 1 && in {
			c = 1
		}
		bx, by := int(bits.Val(x, i-1)), int(bits.Val(y, i-1))
		sum := bx + sign*(by+int(chain[i-1])+c)
		chain[i] = bits.Val(uint8(sum), 1)
	}
	return chain
}

// Add8 adds x, y and the carry in.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add8(x, y uint8, carry bool) Result {
	var c uint8
	if carry {
		c = 1
	}
	low := bits.LSB4(x) + bits.LSB4(y) + c
	high := bits.MSB4(x) + bits.MSB4(y) + bits.MSB4(low)

	r := Result{Value: uint16(bits.Merge4(low, high))}
	chain := carryChain(x, y, carry, 1)

	r.Flags.setIf(FlagZero, r.Value == 0)
	r.Flags.setIf(FlagHalfCarry, chain[4] != 0)
	r.Flags.setIf(FlagCarry, chain[8] != 0)
	return r
}

// Sub8 subtracts y and the borrow in from x.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow from bit 8, or if the corrected high
//	    nibble difference is exactly 0x0F.
func Sub8(x, y uint8, borrow bool) Result {
	var b uint8
	if borrow {
		b = 1
	}
	low := bits.LSB4(x) - bits.LSB4(y) - b
	high := bits.MSB4(x) - bits.MSB4(y) + bits.MSB4(low)

	r := Result{Value: uint16(bits.Merge4(low, high)), Flags: FlagSubtract}
	chain := carryChain(x, y, borrow, -1)

	r.Flags.setIf(FlagZero, r.Value == 0)
	r.Flags.setIf(FlagHalfCarry, chain[4] != 0)
	r.Flags.setIf(FlagCarry, chain[8] != 0 || high == 0x0F)
	return r
}

// merge16 keeps the half carry and carry of r and sets the zero
// flag from the 16-bit value.
func merge16(r Result) Result {
	f := r.Flags & (FlagHalfCarry | FlagCarry)
	f.setIf(FlagZero, r.Value == 0)
	r.Flags = f
	return r
}

// Add16Low adds x and y, taking the flags from the addition of
// the low bytes. The carry out of the low bytes is propagated to
// the high bytes without affecting the flags.
func Add16Low(x, y uint16) Result {
	r := Add8(bits.LSB8(x), bits.LSB8(y), false)

	high := bits.MSB8(x) + bits.MSB8(y)
	if r.Flags.C() {
		high++
	}
	r.Value = bits.Merge8(r.Byte(), high)

	return merge16(r)
}

// Add16High adds x and y, taking the flags from the addition of
// the high bytes (including the carry coming out of the low bytes).
func Add16High(x, y uint16) Result {
	low := uint16(bits.LSB8(x)) + uint16(bits.LSB8(y))
	r := Add8(bits.MSB8(x), bits.MSB8(y), bits.Val(bits.MSB8(low), 0) == 1)

	r.Value = bits.Merge8(bits.LSB8(low), r.Byte())

	return merge16(r)
}

func checkDirection(dir bits.Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("alu: direction %d: %w", dir, types.ErrBadParameter)
	}
	return nil
}

// Shift performs a logical shift of x by one bit.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Not affected.
//	C - Contains the bit shifted out.
func Shift(x uint8, dir bits.Direction) (Result, error) {
	if err := checkDirection(dir); err != nil {
		return Result{}, err
	}

	var r Result
	if dir == bits.Right {
		r.Flags.setIf(FlagCarry, bits.Test(x, 0))
		x >>= 1
	} else {
		r.Flags.setIf(FlagCarry, bits.Test(x, 7))
		x <<= 1
	}
	r.Flags.setIf(FlagZero, x == 0)
	r.Value = uint16(x)

	return r, nil
}

// ShiftRA performs an arithmetic right shift of x, keeping the
// sign bit.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0.
func ShiftRA(x uint8) Result {
	var r Result
	r.Flags.setIf(FlagCarry, bits.Test(x, 0))

	x = x>>1 | x&0x80

	r.Flags.setIf(FlagZero, x == 0)
	r.Value = uint16(x)
	return r
}

// Rotate rotates x by one bit. The bit leaving one side enters
// the other.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	C - Contains the bit rotated out.
func Rotate(x uint8, dir bits.Direction) (Result, error) {
	if err := checkDirection(dir); err != nil {
		return Result{}, err
	}

	var r Result
	r.Flags.setIf(FlagCarry, (dir == bits.Left && bits.Test(x, 7)) || (dir == bits.Right && bits.Test(x, 0)))

	x = bits.Rotate(x, dir, 1)
	r.Flags.setIf(FlagZero, x == 0)
	r.Value = uint16(x)

	return r, nil
}

// CarryRotate rotates x by one bit through the carry flag: the
// carry of flags enters the vacated side, and the bit rotated out
// becomes the new carry.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit rotated out.
func CarryRotate(x uint8, dir bits.Direction, flags Flags) (Result, error) {
	if err := checkDirection(dir); err != nil {
		return Result{}, err
	}

	lost := bits.Test(x, 7)
	if dir == bits.Right {
		lost = bits.Test(x, 0)
	}

	r, _ := Shift(x, dir)
	r.Flags = 0

	if flags.C() {
		if dir == bits.Right {
			r.Value |= 0x80
		} else {
			r.Value |= 0x01
		}
	}

	r.Flags.setIf(FlagZero, r.Value == 0)
	r.Flags.setIf(FlagCarry, lost)

	return r, nil
}

func zero(v uint8) Result {
	r := Result{Value: uint16(v)}
	r.Flags.setIf(FlagZero, v == 0)
	return r
}

// And returns x & y, setting only the zero flag.
func And(x, y uint8) Result {
	return zero(x & y)
}

// Or returns x | y, setting only the zero flag.
func Or(x, y uint8) Result {
	return zero(x | y)
}

// Xor returns x ^ y, setting only the zero flag.
func Xor(x, y uint8) Result {
	return zero(x ^ y)
}

// Swap exchanges the nibbles of x, setting only the zero flag.
func Swap(x uint8) Result {
	return zero(bits.Merge4(bits.MSB4(x), bits.LSB4(x)))
}

// DecimalAdjust corrects a, the result of a BCD addition or
// subtraction, using the N, H and C flags the operation produced.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	C - Set if the correction carried (kept set on subtraction).
func DecimalAdjust(a uint8, flags Flags) Result {
	carry := flags.C()
	if !flags.N() {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if flags.H() || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if flags.H() {
			a -= 0x06
		}
	}

	r := zero(a)
	r.Flags.setIf(FlagCarry, carry)
	return r
}
