package bits

import "testing"

func TestSplitMerge(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := uint8(v)
		if got := Merge4(LSB4(b), MSB4(b)); got != b {
			t.Errorf("Merge4(LSB4, MSB4) of %02x = %02x", b, got)
		}
	}

	w := uint16(0xBEEF)
	if LSB8(w) != 0xEF || MSB8(w) != 0xBE {
		t.Errorf("expected EF/BE, got %02x/%02x", LSB8(w), MSB8(w))
	}
	if got := Merge8(0xEF, 0xBE); got != w {
		t.Errorf("expected %04x, got %04x", w, got)
	}
	if got := Merge4(0x1F, 0x2A); got != 0xAF {
		t.Errorf("expected only low nibbles to be merged, got %02x", got)
	}
}

func TestBit(t *testing.T) {
	t.Run("val", func(t *testing.T) {
		if Val(0b1000_0000, 7) != 1 || Val(0b1000_0000, 6) != 0 {
			t.Errorf("unexpected bit values")
		}
		// out of range indexes are clamped
		if Val(0b1000_0000, 12) != 1 || Val(0b0000_0001, -3) != 1 {
			t.Errorf("expected clamped indexes")
		}
	})
	t.Run("set and reset", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			if v := Set(0, i); v != 1<<i || !Test(v, i) {
				t.Errorf("Set(0, %d) = %08b", i, v)
			}
			if v := Reset(0xFF, i); v != 0xFF&^(1<<i) || Test(v, i) {
				t.Errorf("Reset(0xFF, %d) = %08b", i, v)
			}
		}
	})
	t.Run("edit", func(t *testing.T) {
		if Edit(0, 3, 42) != 0b1000 {
			t.Errorf("expected bit 3 to be set")
		}
		if Edit(0xFF, 3, 0) != 0xF7 {
			t.Errorf("expected bit 3 to be reset")
		}
	})
}

func TestRotate(t *testing.T) {
	tests := []struct {
		in       uint8
		dir      Direction
		distance int
		want     uint8
	}{
		{0b1000_0001, Left, 1, 0b0000_0011},
		{0b1000_0001, Right, 1, 0b1100_0000},
		{0xA5, Left, 0, 0xA5},
		{0x12, Left, 4, 0x21},
		{0x12, Right, 4, 0x21},
		{0b0000_0001, Left, 7, 0b1000_0000},
		{0b0000_0001, Left, 9, 0b1000_0000}, // clamped to 7
		{0x5A, Direction(9), 3, 0x5A},
	}
	for _, tt := range tests {
		if got := Rotate(tt.in, tt.dir, tt.distance); got != tt.want {
			t.Errorf("Rotate(%08b, %s, %d) = %08b, want %08b", tt.in, tt.dir, tt.distance, got, tt.want)
		}
	}
}
