package alu

// Flags holds the four status flags of the CPU, packed into the
// high nibble of a byte. The low nibble is always zero.
type Flags uint8

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero Flags = 1 << 7
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract Flags = 1 << 6
	// FlagHalfCarry is set on a carry (or borrow) across the
	// boundary between the low and the high nibble.
	FlagHalfCarry Flags = 1 << 5
	// FlagCarry is set on a carry (or borrow) out of the byte.
	FlagCarry Flags = 1 << 4

	flagMask = FlagZero | FlagSubtract | FlagHalfCarry | FlagCarry
)

// NewFlags builds Flags from the four individual flag values.
func NewFlags(z, n, h, c bool) Flags {
	var f Flags
	if z {
		f |= FlagZero
	}
	if n {
		f |= FlagSubtract
	}
	if h {
		f |= FlagHalfCarry
	}
	if c {
		f |= FlagCarry
	}
	return f
}

// Has returns true if all the given flags are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Set sets the given flags.
func (f *Flags) Set(flag Flags) {
	*f = (*f | flag) & flagMask
}

// Clear clears the given flags.
func (f *Flags) Clear(flag Flags) {
	*f &^= flag
}

// setIf sets flag when cond holds.
func (f *Flags) setIf(flag Flags, cond bool) {
	if cond {
		f.Set(flag)
	}
}

// Z reports whether the zero flag is set.
func (f Flags) Z() bool { return f.Has(FlagZero) }

// N reports whether the subtract flag is set.
func (f Flags) N() bool { return f.Has(FlagSubtract) }

// H reports whether the half carry flag is set.
func (f Flags) H() bool { return f.Has(FlagHalfCarry) }

// C reports whether the carry flag is set.
func (f Flags) C() bool { return f.Has(FlagCarry) }

// String renders the flags as ZNHC, using a dash for each
// flag that is not set.
func (f Flags) String() string {
	s := []byte("----")
	for i, c := range "ZNHC" {
		if f&(FlagZero>>i) != 0 {
			s[i] = byte(c)
		}
	}
	return string(s)
}
