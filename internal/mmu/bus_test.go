package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/types"
)

func newTestBus(t *testing.T) (*Arena, *Bus) {
	t.Helper()
	a := NewArena()
	return a, NewBus(a)
}

func TestArena_NewComponent(t *testing.T) {
	a := NewArena()

	c, err := a.NewComponent(0x2000)
	require.NoError(t, err)
	assert.Equal(t, 0x2000, c.Size())
	assert.True(t, c.Owner())
	assert.NotZero(t, c.Block())
	for _, v := range c.Bytes() {
		require.Zero(t, v)
	}

	empty, err := a.NewComponent(0)
	require.NoError(t, err)
	assert.Zero(t, empty.Size())
	assert.Zero(t, empty.Block())

	_, err = a.NewComponent(MaxBlockSize + 1)
	assert.ErrorIs(t, err, types.ErrOutOfMemory)

	_, err = a.NewComponent(-1)
	assert.ErrorIs(t, err, types.ErrBadParameter)
}

func TestArena_Share(t *testing.T) {
	a, b := newTestBus(t)

	wram, err := a.NewComponent(0x2000)
	require.NoError(t, err)
	echo, err := a.NewComponent(0)
	require.NoError(t, err)

	require.NoError(t, a.Share(echo, wram))
	assert.Equal(t, wram.Block(), echo.Block())
	assert.False(t, echo.Owner())

	require.NoError(t, b.Plug(wram, 0xC000, 0xDFFF))
	require.NoError(t, b.Plug(echo, 0xE000, 0xFDFF))

	require.NoError(t, b.Write(0xC010, 0x42))
	assert.Equal(t, uint8(0x42), b.Read(0xE010))
	require.NoError(t, b.Write(0xFDFF, 0x24))
	assert.Equal(t, uint8(0x24), b.Read(0xDDFF))

	// freeing the sharer must not release the memory
	a.Free(echo)
	assert.Equal(t, uint8(0x42), b.Read(0xC010))

	empty, err := a.NewComponent(0)
	require.NoError(t, err)
	other, err := a.NewComponent(0)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Share(other, empty), types.ErrBadParameter, "a source without memory")
	assert.ErrorIs(t, a.Share(echo, wram), types.ErrBadParameter, "echo is still plugged")
	assert.True(t, echo.Plugged())
	assert.Equal(t, uint16(0xE000), echo.Start)

	// once unplugged it can be shared again, and its old range is gone
	require.NoError(t, b.Unplug(echo))
	assert.False(t, b.Mapped(0xE000))
	require.NoError(t, a.Share(echo, wram))
}

func TestArena_Free(t *testing.T) {
	a, b := newTestBus(t)

	c, err := a.NewComponent(0x10)
	require.NoError(t, err)
	require.NoError(t, b.Plug(c, 0x8000, 0x800F))
	require.NoError(t, b.Write(0x8000, 0x01))

	id := c.Block()
	a.Free(c)
	assert.Nil(t, a.Block(id))
	assert.Zero(t, c.Size())
	assert.False(t, c.Plugged())

	// the cells are left behind, but can no longer reach the memory
	assert.Equal(t, uint8(0xFF), b.Read(0x8000))
	assert.False(t, b.Mapped(0x8000))
	assert.ErrorIs(t, b.Write(0x8000, 0x02), types.ErrAddress)

	// a new block never reuses a released ID
	d, err := a.NewComponent(0x10)
	require.NoError(t, err)
	assert.NotEqual(t, id, d.Block())
	assert.Equal(t, uint8(0xFF), b.Read(0x8000))

	// double free is harmless
	a.Free(c)

	// the range can take a new component
	require.NoError(t, b.Plug(d, 0x8000, 0x800F))
	require.NoError(t, b.Write(0x8000, 0x03))
	assert.Equal(t, uint8(0x03), d.Bytes()[0])
}

func TestBus_Plug(t *testing.T) {
	a, b := newTestBus(t)

	c, err := a.NewComponent(0x100)
	require.NoError(t, err)
	d, err := a.NewComponent(0x100)
	require.NoError(t, err)

	require.NoError(t, b.Plug(c, 0x1000, 0x10FF))
	assert.True(t, c.Plugged())
	assert.Equal(t, uint16(0x1000), c.Start)
	assert.Equal(t, uint16(0x10FF), c.End)

	t.Run("overlap", func(t *testing.T) {
		assert.ErrorIs(t, b.Plug(d, 0x10FF, 0x11FE), types.ErrAddress)
		assert.False(t, b.Mapped(0x1100), "a failed plug must not map anything")
	})
	t.Run("too large", func(t *testing.T) {
		assert.ErrorIs(t, b.Plug(d, 0x2000, 0x2100), types.ErrAddress)
	})
	t.Run("inverted", func(t *testing.T) {
		assert.ErrorIs(t, b.Plug(d, 0x2100, 0x2000), types.ErrAddress)
	})
	t.Run("no memory", func(t *testing.T) {
		empty, err := a.NewComponent(0)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Plug(empty, 0x3000, 0x3000), types.ErrBadParameter)
		assert.ErrorIs(t, b.ForcedPlug(empty, 0x3000, 0x3000, 0), types.ErrBadParameter)
	})
}

func TestBus_ForcedPlug(t *testing.T) {
	a, b := newTestBus(t)

	cart, err := a.NewComponent(0x8000)
	require.NoError(t, err)
	boot, err := a.NewComponent(0x100)
	require.NoError(t, err)
	cart.Bytes()[0x0000] = 0xCA
	cart.Bytes()[0x0100] = 0xFE
	boot.Bytes()[0x0000] = 0xB0

	require.NoError(t, b.ForcedPlug(cart, 0x0000, 0x7FFF, 0))
	require.NoError(t, b.ForcedPlug(boot, 0x0000, 0x00FF, 0))
	assert.Equal(t, uint8(0xB0), b.Read(0x0000))
	assert.Equal(t, uint8(0xFE), b.Read(0x0100))

	// hand over back to the cartridge
	require.NoError(t, b.Unplug(boot))
	assert.False(t, b.Mapped(0x0000))
	require.NoError(t, b.ForcedPlug(cart, 0x0000, 0x7FFF, 0))
	assert.Equal(t, uint8(0xCA), b.Read(0x0000))

	t.Run("offset", func(t *testing.T) {
		window, err := a.NewComponent(0x10)
		require.NoError(t, err)
		window.Bytes()[0x0C] = 0x77
		require.NoError(t, b.ForcedPlug(window, 0x9000, 0x9003, 0x0C))
		assert.Equal(t, uint8(0x77), b.Read(0x9000))
		assert.ErrorIs(t, b.ForcedPlug(window, 0x9000, 0x9003, 0x0D), types.ErrAddress)
	})
}

func TestBus_Unplug(t *testing.T) {
	a, b := newTestBus(t)

	c, err := a.NewComponent(0x20)
	require.NoError(t, err)
	require.NoError(t, b.Plug(c, 0xFF80, 0xFF9F))
	require.NoError(t, b.Write(0xFF80, 0x11))

	require.NoError(t, b.Unplug(c))
	assert.False(t, c.Plugged())
	assert.Equal(t, uint8(0xFF), b.Read(0xFF80))
	assert.Equal(t, uint8(0x11), c.Bytes()[0], "unplug must keep the memory")

	// unplugging a never plugged component leaves address 0 alone
	low, err := a.NewComponent(1)
	require.NoError(t, err)
	require.NoError(t, b.Plug(low, 0x0000, 0x0000))
	other, err := a.NewComponent(1)
	require.NoError(t, err)
	require.NoError(t, b.Unplug(other))
	assert.True(t, b.Mapped(0x0000))
}

func TestBus_ReadWrite(t *testing.T) {
	a, b := newTestBus(t)

	assert.Equal(t, uint8(0xFF), b.Read(0x1234))
	assert.ErrorIs(t, b.Write(0x1234, 0), types.ErrAddress)

	c, err := a.NewComponent(4)
	require.NoError(t, err)
	require.NoError(t, b.Plug(c, 0xC000, 0xC003))

	require.NoError(t, b.Write16(0xC000, 0xBEEF))
	assert.Equal(t, uint8(0xEF), b.Read(0xC000))
	assert.Equal(t, uint8(0xBE), b.Read(0xC001))
	assert.Equal(t, uint16(0xBEEF), b.Read16(0xC000))

	// high half unmapped: the low half is still written
	err = b.Write16(0xC003, 0x1234)
	assert.ErrorIs(t, err, types.ErrAddress)
	assert.Equal(t, uint8(0x34), b.Read(0xC003))
	assert.Equal(t, uint16(0xFF34), b.Read16(0xC003))

	// low half unmapped: nothing is written
	err = b.Write16(0xBFFF, 0xABCD)
	assert.ErrorIs(t, err, types.ErrAddress)
	assert.Equal(t, uint8(0xEF), b.Read(0xC000))
}

func TestBus_ReadOnly(t *testing.T) {
	a, b := newTestBus(t)

	rom, err := a.NewComponent(0x100)
	require.NoError(t, err)
	rom.Bytes()[0x10] = 0x42
	rom.ReadOnly = true
	require.NoError(t, b.Plug(rom, 0x0000, 0x00FF))

	assert.NoError(t, b.Write(0x0010, 0x99))
	assert.Equal(t, uint8(0x42), b.Read(0x0010))

	// a writable alias of the same block still writes through
	alias, err := a.NewComponent(0)
	require.NoError(t, err)
	require.NoError(t, a.Share(alias, rom))
	require.NoError(t, b.Plug(alias, 0x1000, 0x10FF))
	require.NoError(t, b.Write(0x1010, 0x99))
	assert.Equal(t, uint8(0x99), b.Read(0x0010))
}
