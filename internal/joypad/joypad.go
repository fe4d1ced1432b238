// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. The program selects
// either the action or the direction buttons by writing to P1,
// and then reads bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State holds one bit per button, set while the button is
	// pressed. The lower 4 bits are the action buttons, the upper
	// 4 bits the direction buttons.
	State Button

	cpu *cpu.CPU
}

// New returns a new joypad with every button released, reading
// and updating P1 through the bus of c.
func New(c *cpu.CPU) (*State, error) {
	if c == nil || c.Bus() == nil {
		return nil, fmt.Errorf("joypad: no cpu: %w", types.ErrBadParameter)
	}
	s := &State{cpu: c}
	if err := c.Bus().Write(types.P1, 0xFF); err != nil {
		return nil, fmt.Errorf("joypad: %w", err)
	}
	return s, nil
}

// Press presses a button and requests the joypad interrupt.
func (s *State) Press(button Button) error {
	s.State = bits.Set(s.State, int(button))
	s.cpu.RequestInterrupt(cpu.Joypad)
	return s.refresh()
}

// Release releases a button.
func (s *State) Release(button Button) error {
	s.State = bits.Reset(s.State, int(button))
	return s.refresh()
}

// Listen refreshes the input lines when the program selects a
// button group through P1.
func (s *State) Listen(address uint16) error {
	if address != types.P1 {
		return nil
	}
	return s.refresh()
}

func (s *State) refresh() error {
	bus := s.cpu.Bus()
	selected := bus.Read(types.P1) & (types.Bit4 | types.Bit5)

	var lines uint8
	if selected&types.Bit4 == 0 {
		lines |= bits.MSB4(s.State)
	}
	if selected&types.Bit5 == 0 {
		lines |= bits.LSB4(s.State)
	}

	if err := bus.Write(types.P1, 0xC0|selected|^lines&0x0F); err != nil {
		return fmt.Errorf("joypad: %w", err)
	}
	return nil
}
