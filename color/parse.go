package color

import (
	"strconv"
	"strings"
)

// Parse interprets a query-string token as a color. listSep is the
// list separator of the active locale (see the locale package).
//
// Branches are tried in order and the first one attempted decides the
// result:
//
//  1. Empty or whitespace-only input yields the zero Color.
//  2. If the token contains listSep it must be a list of 3 or 4
//     decimal channel values in 0-255 ("R,G,B" or "R,G,B,A"); a wrong
//     count or a malformed component yields the zero Color with no
//     further interpretation.
//  3. A run of exactly 3, 6 or 8 hex digits anywhere in the token
//     decodes as rgb, rrggbb or rrggbbaa. Runs of any other length do
//     not qualify and the token falls through.
//  4. Anything else is looked up as a color name, case-insensitively.
//
// Parse never fails; unintelligible input yields the zero Color.
func Parse(value string, listSep rune) Color {
	if strings.TrimSpace(value) == "" {
		return Color{}
	}

	// The separator commits the token to the numeric form: a bad
	// component list is a zero Color, never a hex or name match.
	if strings.ContainsRune(value, listSep) {
		return parseChannelList(value, listSep)
	}

	if run, ok := hexRun(value); ok {
		return decodeHex(run)
	}

	if c, ok := Lookup(value); ok {
		return c
	}
	return Color{}
}

// parseChannelList decodes "R<sep>G<sep>B" or "R<sep>G<sep>B<sep>A".
// Components are bare decimal byte values: no sign, no spaces, no
// trimming.
func parseChannelList(value string, sep rune) Color {
	parts := strings.Split(value, string(sep))
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}
	}

	var ch [4]uint8
	ch[3] = 255
	for i, part := range parts {
		if !isDigits(part) {
			return Color{}
		}
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Color{}
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

// isDigits reports whether s consists of one or more ASCII decimal
// digits and nothing else.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// hexRun scans value for maximal runs of hex digits and returns the
// first one of length 3, 6 or 8. A 4-digit run is not a 3-digit match
// with a digit left over; it simply does not qualify.
func hexRun(value string) (string, bool) {
	for i := 0; i < len(value); {
		if !isHexDigit(value[i]) {
			i++
			continue
		}
		start := i
		for i < len(value) && isHexDigit(value[i]) {
			i++
		}
		switch i - start {
		case 3, 6, 8:
			return value[start:i], true
		}
	}
	return "", false
}

// decodeHex expands a qualifying hex run into a Color. In the 3-digit
// form each digit doubles (f -> ff); the 8-digit form carries alpha in
// its final pair.
func decodeHex(run string) Color {
	switch len(run) {
	case 3:
		return Color{
			R: hexDigit(run[0]) * 17,
			G: hexDigit(run[1]) * 17,
			B: hexDigit(run[2]) * 17,
			A: 255,
		}
	case 6:
		return Color{
			R: hexDigit(run[0])*16 + hexDigit(run[1]),
			G: hexDigit(run[2])*16 + hexDigit(run[3]),
			B: hexDigit(run[4])*16 + hexDigit(run[5]),
			A: 255,
		}
	case 8:
		return Color{
			R: hexDigit(run[0])*16 + hexDigit(run[1]),
			G: hexDigit(run[2])*16 + hexDigit(run[3]),
			B: hexDigit(run[4])*16 + hexDigit(run[5]),
			A: hexDigit(run[6])*16 + hexDigit(run[7]),
		}
	}
	return Color{}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexDigit(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
