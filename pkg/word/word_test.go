package word_test

import (
	"testing"

	"lc3/pkg/word"
)

func TestSignExtend(t *testing.T) {
	tests := []struct {
		Name     string
		Value    uint16
		BitCount uint
		Want     uint16
	}{
		{"imm5 positive", 0b01111, 5, 0x000F},
		{"imm5 negative", 0b10001, 5, 0xFFF1},
		{"offset6 positive", 0b011111, 6, 0x001F},
		{"offset6 negative", 0b100000, 6, 0xFFE0},
		{"pcoffset9 positive", 0b011111111, 9, 0x00FF},
		{"pcoffset9 negative", 0b100000000, 9, 0xFF00},
		{"pcoffset11 negative", 0b11111111100, 11, 0xFFFC},
		{"full width, high bit clear", 0x7FFF, 16, 0x7FFF},
		{"full width, high bit set", 0x8000, 16, 0x8000},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if have := word.SignExtend(test.Value, test.BitCount); have != test.Want {
				t.Errorf("SignExtend(%#x, %d) = %#x, want %#x", test.Value, test.BitCount, have, test.Want)
			}
		})
	}
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		Input string
		Want  uint16
	}{
		{"0x3000", 0x3000},
		{"x3000", 0x3000},
		{"0xFF", 0x00FF},
	}

	for _, test := range tests {
		have, err := word.DecodeHex(test.Input)
		if err != nil {
			t.Fatalf("DecodeHex(%q) returned error: %v", test.Input, err)
		}

		if have != test.Want {
			t.Errorf("DecodeHex(%q) = %#x, want %#x", test.Input, have, test.Want)
		}
	}

	if _, err := word.DecodeHex("not-hex"); err == nil {
		t.Error("DecodeHex(\"not-hex\") expected error, got nil")
	}
}
