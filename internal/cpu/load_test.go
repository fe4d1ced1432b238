package cpu

import "testing"

func TestInstruction_Load(t *testing.T) {
	// 0x01 - LD BC,d16
	testInstruction(t, "LD BC,d16", []uint8{0x01, 0x34, 0x12}, func(t *testing.T) {
		step(t)
		expectWord(t, "BC", cpu.BC.Uint16(), 0x1234)
		expectPC(t, startPC+3)
		expectCycles(t, 3)
	})
	// 0x31 - LD SP,d16
	testInstruction(t, "LD SP,d16", []uint8{0x31, 0xF0, 0xDF}, func(t *testing.T) {
		step(t)
		expectWord(t, "SP", cpu.SP, 0xDFF0)
	})
	// 0x02 - LD (BC),A
	testInstruction(t, "LD (BC),A", []uint8{0x02}, func(t *testing.T) {
		cpu.A = 0x42
		cpu.BC.SetUint16(ramAddr)
		step(t)
		expectByte(t, "(BC)", bus.Read(ramAddr), 0x42)
		expectWord(t, "last write", cpu.LastWrite(), ramAddr)
		expectCycles(t, 2)
	})
	// 0x1A - LD A,(DE)
	testInstruction(t, "LD A,(DE)", []uint8{0x1A}, func(t *testing.T) {
		cpu.DE.SetUint16(ramAddr + 5)
		_ = bus.Write(ramAddr+5, 0x99)
		step(t)
		expectByte(t, "A", cpu.A, 0x99)
		expectWord(t, "last write", cpu.LastWrite(), 0)
	})
	// 0x22 - LD (HL+),A
	testInstruction(t, "LD (HL+),A", []uint8{0x22}, func(t *testing.T) {
		cpu.A = 0x56
		cpu.HL.SetUint16(ramAddr)
		step(t)
		expectByte(t, "(HL)", bus.Read(ramAddr), 0x56)
		expectWord(t, "HL", cpu.HL.Uint16(), ramAddr+1)
	})
	// 0x32 - LD (HL-),A
	testInstruction(t, "LD (HL-),A", []uint8{0x32}, func(t *testing.T) {
		cpu.A = 0x65
		cpu.HL.SetUint16(ramAddr + 1)
		step(t)
		expectByte(t, "(HL)", bus.Read(ramAddr+1), 0x65)
		expectWord(t, "HL", cpu.HL.Uint16(), ramAddr)
	})
	// 0x2A - LD A,(HL+)
	testInstruction(t, "LD A,(HL+)", []uint8{0x2A}, func(t *testing.T) {
		cpu.HL.SetUint16(ramAddr)
		_ = bus.Write(ramAddr, 0x11)
		step(t)
		expectByte(t, "A", cpu.A, 0x11)
		expectWord(t, "HL", cpu.HL.Uint16(), ramAddr+1)
	})
	// 0x3A - LD A,(HL-)
	testInstruction(t, "LD A,(HL-)", []uint8{0x3A}, func(t *testing.T) {
		cpu.HL.SetUint16(0x0000)
		step(t)
		expectWord(t, "HL", cpu.HL.Uint16(), 0xFFFF)
	})
	// 0x06, 0x0E, ... - LD r,d8
	for r := uint8(0); r < 8; r++ {
		if r == RegHLIndirect {
			continue
		}
		code := r
		testInstruction(t, "LD "+registerNames[r]+",d8", []uint8{0x06 | r<<3, 0xAB}, func(t *testing.T) {
			step(t)
			expectByte(t, registerNames[code], cpu.registerGet(code), 0xAB)
			expectPC(t, startPC+2)
			expectCycles(t, 2)
		})
	}
	// 0x36 - LD (HL),d8
	testInstruction(t, "LD (HL),d8", []uint8{0x36, 0x5A}, func(t *testing.T) {
		cpu.HL.SetUint16(ramAddr)
		step(t)
		expectByte(t, "(HL)", bus.Read(ramAddr), 0x5A)
		expectCycles(t, 3)
	})
	// 0x40 - 0x7F - LD r,r'
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == RegHLIndirect || src == RegHLIndirect {
				continue
			}
			d, s := dst, src
			testInstruction(t, Direct[0x40|d<<3|s].Name, []uint8{0x40 | d<<3 | s}, func(t *testing.T) {
				cpu.registerSet(s, 0x3C)
				step(t)
				expectByte(t, registerNames[d], cpu.registerGet(d), 0x3C)
				expectCycles(t, 1)
			})
		}
	}
	// 0x70 - LD (HL),B
	testInstruction(t, "LD (HL),B", []uint8{0x70}, func(t *testing.T) {
		cpu.HL.SetUint16(ramAddr)
		cpu.B = 0x77
		step(t)
		expectByte(t, "(HL)", bus.Read(ramAddr), 0x77)
		expectCycles(t, 2)
	})
	// 0x7E - LD A,(HL)
	testInstruction(t, "LD A,(HL)", []uint8{0x7E}, func(t *testing.T) {
		cpu.HL.SetUint16(ramAddr)
		_ = bus.Write(ramAddr, 0x88)
		step(t)
		expectByte(t, "A", cpu.A, 0x88)
	})
	// 0x08 - LD (a16),SP
	testInstruction(t, "LD (a16),SP", []uint8{0x08, 0x00, 0xC1}, func(t *testing.T) {
		cpu.SP = 0xFFF8
		step(t)
		expectWord(t, "(a16)", bus.Read16(0xC100), 0xFFF8)
		expectCycles(t, 5)
	})
	// 0xEA - LD (a16),A
	testInstruction(t, "LD (a16),A", []uint8{0xEA, 0x10, 0xC0}, func(t *testing.T) {
		cpu.A = 0x21
		step(t)
		expectByte(t, "(a16)", bus.Read(0xC010), 0x21)
		expectCycles(t, 4)
	})
	// 0xFA - LD A,(a16)
	testInstruction(t, "LD A,(a16)", []uint8{0xFA, 0x10, 0xC0}, func(t *testing.T) {
		_ = bus.Write(0xC010, 0x12)
		step(t)
		expectByte(t, "A", cpu.A, 0x12)
	})
	// 0xE0 - LDH (a8),A
	testInstruction(t, "LDH (a8),A", []uint8{0xE0, 0x80}, func(t *testing.T) {
		cpu.A = 0x44
		step(t)
		expectByte(t, "(FF80)", bus.Read(0xFF80), 0x44)
		expectWord(t, "last write", cpu.LastWrite(), 0xFF80)
		expectCycles(t, 3)
	})
	// 0xF0 - LDH A,(a8)
	testInstruction(t, "LDH A,(a8)", []uint8{0xF0, 0x90}, func(t *testing.T) {
		_ = bus.Write(0xFF90, 0x45)
		step(t)
		expectByte(t, "A", cpu.A, 0x45)
	})
	// 0xE2 - LD (C),A
	testInstruction(t, "LD (C),A", []uint8{0xE2}, func(t *testing.T) {
		cpu.A, cpu.C = 0x46, 0x85
		step(t)
		expectByte(t, "(FF85)", bus.Read(0xFF85), 0x46)
		expectCycles(t, 2)
	})
	// 0xF2 - LD A,(C)
	testInstruction(t, "LD A,(C)", []uint8{0xF2}, func(t *testing.T) {
		cpu.C = 0x86
		_ = bus.Write(0xFF86, 0x47)
		step(t)
		expectByte(t, "A", cpu.A, 0x47)
	})
	// 0xF9 - LD SP,HL
	testInstruction(t, "LD SP,HL", []uint8{0xF9}, func(t *testing.T) {
		cpu.HL.SetUint16(0xD000)
		step(t)
		expectWord(t, "SP", cpu.SP, 0xD000)
		expectCycles(t, 2)
	})
}

func TestInstruction_Stack(t *testing.T) {
	// 0xC5 - PUSH BC, 0xD1 - POP DE
	testInstruction(t, "PUSH BC POP DE", []uint8{0xC5, 0xD1}, func(t *testing.T) {
		cpu.BC.SetUint16(0x1234)
		step(t)
		expectWord(t, "SP", cpu.SP, startSP-2)
		expectByte(t, "(SP)", bus.Read(startSP-2), 0x34)
		expectByte(t, "(SP+1)", bus.Read(startSP-1), 0x12)
		expectCycles(t, 4)

		step(t)
		expectWord(t, "DE", cpu.DE.Uint16(), 0x1234)
		expectWord(t, "SP", cpu.SP, startSP)
		expectCycles(t, 3)
	})
	// 0xF1 - POP AF
	testInstruction(t, "POP AF", []uint8{0xF1}, func(t *testing.T) {
		cpu.SP = ramAddr
		_ = bus.Write16(ramAddr, 0x12FF)
		step(t)
		expectByte(t, "A", cpu.A, 0x12)
		expectByte(t, "F", cpu.F, 0xF0)
	})
	// 0xF5 - PUSH AF
	testInstruction(t, "PUSH AF", []uint8{0xF5}, func(t *testing.T) {
		cpu.AF.SetUint16(0xABCD)
		step(t)
		expectWord(t, "(SP)", bus.Read16(cpu.SP), 0xABC0)
	})
}

func TestPush(t *testing.T) {
	resetCPU(t)

	cpu.SP = 1
	if err := cpu.Push(0xBEEF); err != nil {
		t.Fatal(err)
	}
	expectWord(t, "SP", cpu.SP, 1)
	expectWord(t, "(1)", bus.Read16(1), 0xBEEF)
	expectWord(t, "pop", cpu.Pop(), 0xBEEF)
	expectWord(t, "SP", cpu.SP, 3)
}
