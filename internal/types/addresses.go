package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

// Region is an inclusive range of the 16-bit address space.
type Region struct {
	Start uint16
	End   uint16
}

// Size returns the number of addresses covered by the region.
func (r Region) Size() int {
	return int(r.End) - int(r.Start) + 1
}

// Contains reports whether addr lies within the region.
func (r Region) Contains(addr uint16) bool {
	return addr >= r.Start && addr <= r.End
}

// The memory map of the Game Boy. Every region is inclusive
// at both ends.
var (
	// BootROM is mapped over the start of the cartridge until
	// the boot ROM disables itself through BDIS.
	BootROM = Region{0x0000, 0x00FF}
	// CartridgeROM holds the two 16kB banks of a ROM only
	// cartridge.
	CartridgeROM = Region{0x0000, 0x7FFF}
	// VideoRAM holds the tile data and the background maps.
	VideoRAM = Region{0x8000, 0x9FFF}
	// ExternalRAM is RAM provided by the cartridge.
	ExternalRAM = Region{0xA000, 0xBFFF}
	// WorkRAM is the internal working RAM.
	WorkRAM = Region{0xC000, 0xDFFF}
	// EchoRAM mirrors the first 7.5kB of WorkRAM.
	EchoRAM = Region{0xE000, 0xFDFF}
	// OAM is the sprite attribute table.
	OAM = Region{0xFE00, 0xFE9F}
	// Unusable is the prohibited area between OAM and the IO
	// registers.
	Unusable = Region{0xFEA0, 0xFEFF}
	// IORegisters holds the memory-mapped hardware registers.
	IORegisters = Region{0xFF00, 0xFF7F}
	// HighRAM is the zero page RAM used by the stack and the
	// fast LDH instructions.
	HighRAM = Region{0xFF80, 0xFFFE}
)

const (
	// P1 is the address of the P1 hardware register. The P1
	// hardware register is used to select the input keys to
	// be read by the CPU, and to read the state of the joypad.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register. The SB
	// hardware register is used to transfer data between the
	// CPU and the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. It holds
	// the high byte of the 16-bit internal counter, and any write
	// to it resets the whole counter to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. TIMA is
	// incremented on every falling edge of the counter bit selected
	// by TAC. When it overflows it is reloaded from TMA and a timer
	// interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register.
	//
	//  Bit 2   - Timer Enable
	//  Bit 1-0 - Input Clock Select
	//            00: counter bit 9 (4096 Hz)
	//            01: counter bit 3 (262144 Hz)
	//            10: counter bit 5 (65536 Hz)
	//            11: counter bit 7 (16384 Hz)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// LCDC is the first of the display controller registers
	// (0xFF40 - 0xFF4B).
	LCDC HardwareAddress = 0xFF40
	// BDIS is the address of the BDIS hardware register. The BDIS
	// hardware register is used only to disable the boot ROM. Any
	// write to it unmaps the boot ROM.
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to Enable interrupts. Writing a 1
	// to a bit in IE Enables the corresponding interrupt, and writing
	// a 0 disables the interrupt.
	IE HardwareAddress = 0xFFFF
)
