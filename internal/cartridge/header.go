package cartridge

import (
	"fmt"
	"strings"
)

// The cartridge header is located at 0x0100-0x014F.
const (
	headerStart   = 0x0100
	headerEnd     = 0x0150
	titleStart    = 0x0134
	titleEnd      = 0x0144
	cgbFlag       = 0x0143
	typeAddress   = 0x0147
	romSize       = 0x0148
	ramSize       = 0x0149
	checksumStart = 0x0134
	checksumEnd   = 0x014C
	checksum      = 0x014D
)

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var ramMap = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Type is the cartridge type stored at 0x0147. It tells
// which memory bank controller, if any, the cartridge carries.
type Type uint8

const (
	ROM              Type = 0x00
	MBC1             Type = 0x01
	MBC1RAM          Type = 0x02
	MBC1RAMBATT      Type = 0x03
	MBC2             Type = 0x05
	MBC2BATT         Type = 0x06
	ROMRAM           Type = 0x08
	ROMRAMBATT       Type = 0x09
	MBC3TIMERBATT    Type = 0x0F
	MBC3TIMERRAMBATT Type = 0x10
	MBC3             Type = 0x11
	MBC3RAM          Type = 0x12
	MBC3RAMBATT      Type = 0x13
	MBC5             Type = 0x19
	MBC5RAM          Type = 0x1A
	MBC5RAMBATT      Type = 0x1B
	POCKETCAMERA     Type = 0xFC
)

var typeNames = map[Type]string{
	ROM:              "ROM",
	MBC1:             "MBC1",
	MBC1RAM:          "MBC1+RAM",
	MBC1RAMBATT:      "MBC1+RAM+BATTERY",
	MBC2:             "MBC2",
	MBC2BATT:         "MBC2+BATTERY",
	ROMRAM:           "ROM+RAM",
	ROMRAMBATT:       "ROM+RAM+BATTERY",
	MBC3TIMERBATT:    "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT: "MBC3+TIMER+RAM+BATTERY",
	MBC3:             "MBC3",
	MBC3RAM:          "MBC3+RAM",
	MBC3RAMBATT:      "MBC3+RAM+BATTERY",
	MBC5:             "MBC5",
	MBC5RAM:          "MBC5+RAM",
	MBC5RAMBATT:      "MBC5+RAM+BATTERY",
	POCKETCAMERA:     "POCKET CAMERA",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(0x%02X)", uint8(t))
}

// Header represents the header of a cartridge. The header
// contains information about the cartridge itself, and the
// hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game, upper case ASCII padded
	// with zeros. Colour cartridges use the last byte as a flag.
	Title string

	// 0x0143 - CartridgeGBMode of the game.
	CartridgeGBMode Flag

	CartridgeType  Type
	ROMSize        uint
	RAMSize        uint
	HeaderChecksum uint8

	computed uint8
}

// parseHeader parses the header of the given ROM image. The
// image must hold at least the whole header.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < headerEnd {
		return Header{}, fmt.Errorf("image too short for a header: %d bytes", len(rom))
	}
	h := Header{}

	switch rom[cgbFlag] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	title := rom[titleStart:titleEnd]
	if h.CartridgeGBMode != FlagOnlyDMG {
		title = title[:len(title)-1]
	}
	h.Title = strings.TrimRight(string(title), "\x00 ")

	h.CartridgeType = Type(rom[typeAddress])
	// 32kB x (1 << n)
	h.ROMSize = (32 * 1024) << (rom[romSize] & 0x0F)
	h.RAMSize = ramMap[rom[ramSize]]
	h.HeaderChecksum = rom[checksum]

	for _, b := range rom[checksumStart : checksumEnd+1] {
		h.computed = h.computed - b - 1
	}
	return h, nil
}

// ChecksumValid reports whether the header checksum matches the
// header bytes. The boot ROM refuses to start a cartridge that
// fails it.
func (h Header) ChecksumValid() bool {
	return h.computed == h.HeaderChecksum
}

func (h Header) Hardware() string {
	if h.CartridgeGBMode == FlagOnlyDMG {
		return "DMG"
	}
	return "CGB"
}

func (h Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB",
		h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
