package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before it is assembled.
type Opt func(gb *GameBoy)

// WithBootROM sets the boot ROM for the emulator. The
// emulator then starts at 0x0000 with cleared registers,
// rather than in the state the boot ROM leaves behind.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootImage = rom
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithListener adds l to the bus listeners. External
// listeners run after the built-in ones, in the order they
// were added.
func WithListener(l Listener) Opt {
	return func(gb *GameBoy) {
		gb.external = append(gb.external, l)
	}
}

// WithDisplay attaches a display, ticked once per cycle.
func WithDisplay(t Ticker) Opt {
	return func(gb *GameBoy) {
		gb.display = t
	}
}

// WithSerialOutput forwards every byte written to the
// serial port to w.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}
