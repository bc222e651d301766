// Package sevenseg encodes BCD digits into seven-segment patterns. All
// patterns follow the active-low convention: a 0 bit means the segment or
// digit line is driven.
package sevenseg

import "fmt"

// SegmentPattern is a 7-bit active-low segment pattern. Bit 0 is segment a,
// bit 6 is segment g.
type SegmentPattern uint8

// DecimalPointOff is the constant active-low level of the decimal point line.
// The clock never lights the decimal point.
const DecimalPointOff uint8 = 1

// encodeTable maps a digit to its segment pattern. Entries 0-9 are the
// standard seven-segment glyphs. Entries 10-15 never arise from the counter
// chain; they render as hex glyphs A-F so that out-of-range digits stay
// deterministic.
var encodeTable = [16]SegmentPattern{
	0b1000000, // 0
	0b1111001, // 1
	0b0100100, // 2
	0b0110000, // 3
	0b0011001, // 4
	0b0010010, // 5
	0b0000010, // 6
	0b1111000, // 7
	0b0000000, // 8
	0b0010000, // 9
	0b0001000, // A
	0b0000011, // b
	0b1000110, // C
	0b0100001, // d
	0b0000110, // E
	0b0001110, // F
}

// Encode maps a BCD digit to its active-low segment pattern. The digit must
// be in [0, 15]; anything else means an upstream counter violated its range
// invariant, and Encode panics.
func Encode(digit uint8) SegmentPattern {
	if digit > 15 {
		panic(fmt.Sprintf("digit %d out of range [0, 15]", digit))
	}

	return encodeTable[digit]
}

// AnodeMask returns the active-low digit-enable pattern that drives only the
// digit at the given index. Digit 0 maps to the most significant of the
// numDigits bits, so a 4-digit display enables digit 0 with 0111. It panics
// if the index is not in [0, numDigits) or if numDigits is larger than 8.
func AnodeMask(index, numDigits int) uint8 {
	if numDigits < 1 || numDigits > 8 {
		panic(fmt.Sprintf("numDigits %d out of range [1, 8]", numDigits))
	}
	if index < 0 || index >= numDigits {
		panic(fmt.Sprintf("digit index %d out of range [0, %d)",
			index, numDigits))
	}

	allOff := uint8(1<<numDigits - 1)
	return allOff &^ (1 << (numDigits - 1 - index))
}
