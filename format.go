package pebbles

import (
	"io"
	"math/big"
	"strings"
)

// Radix selects the alternate radix of formatted output. The zero value is
// Hex.
type Radix int

const (
	// Hex renders the alternate line in hexadecimal, one digit per 4 bits.
	Hex Radix = iota
	// Oct renders the alternate line in octal, one digit per 3 bits.
	Oct
)

// RadixNamed finds the radix with the given name, "hex" or "oct".
func RadixNamed(name string) (Radix, bool) {
	switch name {
	case "hex":
		return Hex, true
	case "oct":
		return Oct, true
	}
	return 0, false
}

func (r Radix) String() string {
	switch r {
	case Hex:
		return "hex"
	case Oct:
		return "oct"
	}
	return "radix(" + string(rune('0'+r)) + ")"
}

// chunkBits returns the number of bits one digit of the radix covers.
func (r Radix) chunkBits() uint {
	if r == Oct {
		return 3
	}
	return 4
}

// marker returns the subscript glyph that ends the radix's line.
func (r Radix) marker() string {
	if r == Oct {
		return "₈"
	}
	return "₁₆"
}

// Format renders a value of a kind as three lines, separated by newlines
// with no trailing newline:
//
//	-86₁₀
//	   a    a₁₆
//	1010 1010₂
//
// The first line is the value in decimal, signed or unsigned per the kind.
// The second is the unsigned bit pattern in the alternate radix and the
// third in binary, both split into one chunk per alternate-radix digit,
// most significant first. Binary chunks are always full width, so the two
// lines align column for column; on the alternate line the run of leading
// zero digits renders as blanks, though the last digit always appears. When
// the kind's width is not a multiple of the digit width, the first chunk
// covers only the remaining bits.
func Format(kind Kind, v *big.Int, radix Radix) string {
	var b strings.Builder
	cb := radix.chunkBits()
	widths := chunkWidths(kind.Bits(), cb)

	b.WriteString(kind.SignedView(v).String())
	b.WriteString("₁₀")
	b.WriteByte('\n')

	digits := make([]uint64, len(widths))
	rest := new(big.Int).Set(v)
	d := new(big.Int)
	for i := len(widths) - 1; i >= 0; i-- {
		w := widths[i]
		d.And(rest, big.NewInt(int64(1)<<w-1))
		digits[i] = d.Uint64()
		rest.Rsh(rest, w)
	}

	const digitChars = "0123456789abcdef"
	leading := true
	for i, w := range widths {
		if i > 0 {
			b.WriteByte(' ')
		}
		if digits[i] != 0 || i == len(widths)-1 {
			leading = false
		}
		if leading {
			b.WriteString(strings.Repeat(" ", int(w)))
			continue
		}
		b.WriteString(strings.Repeat(" ", int(w)-1))
		b.WriteByte(digitChars[digits[i]])
	}
	b.WriteString(radix.marker())
	b.WriteByte('\n')

	for i, w := range widths {
		if i > 0 {
			b.WriteByte(' ')
		}
		for bit := w; bit > 0; bit-- {
			b.WriteByte('0' + byte(digits[i]>>(bit-1)&1))
		}
	}
	b.WriteString("₂")

	return b.String()
}

// Fprint writes Format's three lines to w, with a trailing newline.
func Fprint(w io.Writer, kind Kind, v *big.Int, radix Radix) error {
	_, err := io.WriteString(w, Format(kind, v, radix)+"\n")
	return err
}

// chunkWidths returns the bit width of each digit chunk, most significant
// first. Every chunk is cb wide except the first, which covers the
// remainder when cb does not divide bits evenly.
func chunkWidths(bits, cb uint) []uint {
	n := (bits + cb - 1) / cb
	widths := make([]uint, n)
	for i := range widths {
		widths[i] = cb
	}
	if r := bits % cb; r != 0 {
		widths[0] = r
	}
	return widths
}
