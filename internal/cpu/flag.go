package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/alu"
	"github.com/thelolagemann/gbcore/internal/types"
)

// FlagSource selects where a flag of the F register comes from
// after an ALU instruction.
type FlagSource uint8

const (
	// Clear resets the flag.
	Clear FlagSource = iota
	// Set sets the flag.
	Set
	// FromALU copies the flag from the result of the ALU.
	FromALU
	// FromCPU keeps the current value of the flag.
	FromCPU
)

func (s FlagSource) value(cpu, result bool) (bool, error) {
	switch s {
	case Clear:
		return false, nil
	case Set:
		return true, nil
	case FromALU:
		return result, nil
	case FromCPU:
		return cpu, nil
	}
	return false, fmt.Errorf("cpu: flag source %d: %w", s, types.ErrBadParameter)
}

// combineFlags sets F from the given source of each flag. F is left
// untouched if any source is invalid.
func (c *CPU) combineFlags(z, n, h, cy FlagSource) error {
	f, r := c.Flags(), c.alu.Flags

	sources := [4]struct {
		src  FlagSource
		flag alu.Flags
	}{
		{z, alu.FlagZero},
		{n, alu.FlagSubtract},
		{h, alu.FlagHalfCarry},
		{cy, alu.FlagCarry},
	}

	var out alu.Flags
	for _, s := range sources {
		v, err := s.src.value(f.Has(s.flag), r.Has(s.flag))
		if err != nil {
			return err
		}
		if v {
			out.Set(s.flag)
		}
	}
	c.F = uint8(out)
	return nil
}

// Flag sources of the instruction groups, in Z, N, H, C order.
var (
	addFlags   = [4]FlagSource{FromALU, Clear, FromALU, FromALU}
	incFlags   = [4]FlagSource{FromALU, Clear, FromALU, FromCPU}
	subFlags   = [4]FlagSource{FromALU, Set, FromALU, FromALU}
	decFlags   = [4]FlagSource{FromALU, Set, FromALU, FromCPU}
	andFlags   = [4]FlagSource{FromALU, Clear, Set, Clear}
	orFlags    = [4]FlagSource{FromALU, Clear, Clear, Clear}
	shiftFlags = [4]FlagSource{FromALU, Clear, Clear, FromALU}
	rotAFlags  = [4]FlagSource{Clear, Clear, Clear, FromALU}
	swapFlags  = [4]FlagSource{FromALU, Clear, Clear, Clear}
	addHLFlags = [4]FlagSource{FromCPU, Clear, FromALU, FromALU}
	spFlags    = [4]FlagSource{Clear, Clear, FromALU, FromALU}
	cplFlags   = [4]FlagSource{FromCPU, Set, Set, FromCPU}
	sccfFlags  = [4]FlagSource{FromCPU, Clear, Clear, FromALU}
	daaFlags   = [4]FlagSource{FromALU, FromCPU, Clear, FromALU}
)

func (c *CPU) applyFlags(s [4]FlagSource) error {
	return c.combineFlags(s[0], s[1], s[2], s[3])
}
