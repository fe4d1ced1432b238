package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

func newJoypad(t *testing.T) (*State, *cpu.CPU, *mmu.Bus) {
	t.Helper()
	arena := mmu.NewArena()
	bus := mmu.NewBus(arena)
	io, err := arena.NewComponent(types.IORegisters.Size())
	require.NoError(t, err)
	require.NoError(t, bus.Plug(io, types.IORegisters.Start, types.IORegisters.End))
	c, err := cpu.New(bus)
	require.NoError(t, err)
	s, err := New(c)
	require.NoError(t, err)
	return s, c, bus
}

// selectGroup writes P1 the way a program would, then notifies
// the joypad.
func selectGroup(t *testing.T, s *State, bus *mmu.Bus, v uint8) uint8 {
	t.Helper()
	require.NoError(t, bus.Write(types.P1, v))
	require.NoError(t, s.Listen(types.P1))
	return bus.Read(types.P1)
}

func TestNew(t *testing.T) {
	_, _, bus := newJoypad(t)
	assert.Equal(t, uint8(0xFF), bus.Read(types.P1))

	_, err := New(nil)
	assert.ErrorIs(t, err, types.ErrBadParameter)
}

func TestState_Press(t *testing.T) {
	s, c, bus := newJoypad(t)

	require.NoError(t, s.Press(ButtonA))
	require.NoError(t, s.Press(ButtonDown))
	assert.Equal(t, uint8(1<<cpu.Joypad), c.IF())

	// action buttons
	assert.Equal(t, uint8(0xDE), selectGroup(t, s, bus, 0x10))
	// direction buttons
	assert.Equal(t, uint8(0xE7), selectGroup(t, s, bus, 0x20))
	// both groups
	assert.Equal(t, uint8(0xC6), selectGroup(t, s, bus, 0x00))
	// none
	assert.Equal(t, uint8(0xFF), selectGroup(t, s, bus, 0x30))

	require.NoError(t, s.Release(ButtonA))
	assert.Equal(t, uint8(0xDF), selectGroup(t, s, bus, 0x10))
}

func TestState_Listen(t *testing.T) {
	s, _, bus := newJoypad(t)
	require.NoError(t, s.Press(ButtonStart))

	// other addresses leave P1 alone
	require.NoError(t, bus.Write(types.P1, 0x10))
	require.NoError(t, s.Listen(types.SB))
	assert.Equal(t, uint8(0x10), bus.Read(types.P1))

	require.NoError(t, s.Listen(types.P1))
	assert.Equal(t, uint8(0xD7), bus.Read(types.P1))
}
