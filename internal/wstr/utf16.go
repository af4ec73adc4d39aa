// Package wstr converts between Go strings and the store's native UTF-16LE
// wire forms: plain text, NUL-terminated text, and the NUL-separated,
// double-NUL-terminated multi-string encoding.
package wstr

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encode converts s to UTF-16LE bytes with no terminator. Strings containing
// NUL are rejected: every wire form this package serves is NUL-delimited.
func Encode(s string) ([]byte, error) {
	if strings.ContainsRune(s, 0) {
		return nil, ErrEmbeddedNUL
	}
	return utf16le.NewEncoder().Bytes([]byte(s))
}

// EncodeZ converts s to UTF-16LE bytes with a single trailing NUL.
func EncodeZ(s string) ([]byte, error) {
	b, err := Encode(s)
	if err != nil {
		return nil, err
	}
	return append(b, 0, 0), nil
}

// Units converts s to UTF-16 code units with no terminator.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeUnits converts UTF-16 code units back to a string.
func DecodeUnits(u []uint16) string {
	return string(utf16.Decode(u))
}

// Decode converts UTF-16LE bytes to a string. No terminator is expected or
// trimmed.
func Decode(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrOddLength
	}
	return decodeUTF16LE(data), nil
}

// DecodeZ converts UTF-16LE bytes to a string, trimming one trailing NUL
// terminator if present. This is the inverse of EncodeZ and tolerates data
// written without the terminator.
func DecodeZ(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrOddLength
	}
	if len(data) >= 2 && data[len(data)-2] == 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-2]
	}
	return decodeUTF16LE(data), nil
}

// decodeUTF16LE decodes UTF-16LE bytes without intermediate allocations.
// Registry names and values are overwhelmingly ASCII, so an ASCII fast path
// pays for itself.
func decodeUTF16LE(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// Fast path: in UTF-16LE, ASCII chars are [byte, 0x00].
	allASCII := true
	for i := 0; i+1 < len(data); i += 2 {
		if data[i+1] != 0 || data[i] >= 0x80 {
			allASCII = false
			break
		}
	}

	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i+1 < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	// Slow path: full decode, surrogate-pair aware.
	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8
		if r >= 0xD800 && r <= 0xDBFF && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				r = 0x10000 + ((r-0xD800)<<10 | (r2 - 0xDC00))
				i += 2
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
