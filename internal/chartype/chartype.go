// Package chartype classifies source bytes. The tables are built once at
// package initialisation and every query is a single table lookup.
package chartype

// Class is a bit set of byte classes.
type Class uint8

const (
	IdentStart Class = 1 << iota
	IdentContinue
	Whitespace
	Decimal
	Octal
	Hex
	Special // bytes that can begin an operator or literal delimiter
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alpha   = lower + upper
	decimal = "0123456789"
	special = "^!$%&/()=?{[]}+*~<>|,;.:-'\"\\@#"
)

var table = build()

func build() (t [256]Class) {
	set := func(c Class, chars string) {
		for i := 0; i < len(chars); i++ {
			t[chars[i]] |= c
		}
	}
	set(IdentStart, alpha)
	set(IdentContinue, alpha+decimal+"_")
	set(Whitespace, "\t\r\n ")
	set(Decimal, decimal)
	set(Octal, "01234567")
	set(Hex, decimal+"abcdefABCDEF")
	set(Special, special)
	// non-ASCII bytes only ever continue or start identifiers
	for b := 0x80; b <= 0xFF; b++ {
		t[b] = IdentStart | IdentContinue
	}
	return t
}

// Is reports whether b belongs to every class in c.
func Is(b byte, c Class) bool { return table[b]&c == c }

func IsIdentStart(b byte) bool    { return table[b]&IdentStart != 0 }
func IsIdentContinue(b byte) bool { return table[b]&IdentContinue != 0 }
func IsWhitespace(b byte) bool    { return table[b]&Whitespace != 0 }
func IsDecimal(b byte) bool       { return table[b]&Decimal != 0 }
func IsOctal(b byte) bool         { return table[b]&Octal != 0 }
func IsHex(b byte) bool           { return table[b]&Hex != 0 }
func IsSpecial(b byte) bool       { return table[b]&Special != 0 }
