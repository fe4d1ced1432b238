package types

import "errors"

// The error taxonomy shared by every part of the emulator. Errors
// returned by the core wrap one of these, and callers are
// expected to test for them with errors.Is.
var (
	// ErrBadParameter is returned for invalid arguments, such as an
	// unknown shift direction or a component without memory.
	ErrBadParameter = errors.New("bad parameter")
	// ErrAddress is returned for invalid or overlapping bus ranges,
	// and for writes to an unmapped address.
	ErrAddress = errors.New("address error")
	// ErrOutOfMemory is returned when a memory block cannot be
	// allocated.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrIO is returned when a ROM image is unreadable or malformed.
	ErrIO = errors.New("input/output error")
	// ErrUnknownInstruction is returned when the CPU fetches an
	// opcode it cannot decode.
	ErrUnknownInstruction = errors.New("unknown instruction")
)
