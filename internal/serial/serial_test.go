package serial

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/types"
)

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func newBus(t *testing.T) *mmu.Bus {
	t.Helper()
	arena := mmu.NewArena()
	bus := mmu.NewBus(arena)
	io, err := arena.NewComponent(types.IORegisters.Size())
	require.NoError(t, err)
	require.NoError(t, bus.Plug(io, types.IORegisters.Start, types.IORegisters.End))
	return bus
}

func TestController_Listen(t *testing.T) {
	bus := newBus(t)
	var out bytes.Buffer
	c, err := NewController(bus, &out)
	require.NoError(t, err)

	for _, b := range []byte("Passed") {
		require.NoError(t, bus.Write(types.SB, b))
		require.NoError(t, c.Listen(types.SB))
		// the transfer start does not repeat the byte
		require.NoError(t, c.Listen(types.SC))
	}
	assert.Equal(t, "Passed", out.String())
}

func TestController_Errors(t *testing.T) {
	_, err := NewController(nil, nil)
	assert.ErrorIs(t, err, types.ErrBadParameter)

	c, err := NewController(newBus(t), failingWriter{})
	require.NoError(t, err)
	assert.ErrorIs(t, c.Listen(types.SB), errWrite)

	discard, err := NewController(newBus(t), nil)
	require.NoError(t, err)
	assert.NoError(t, discard.Listen(types.SB))
}
