package layout

import (
	"golang.org/x/text/encoding/unicode"
)

// utf16Encoding describes the file's 16-bit code units: little-endian, no
// BOM. A fresh decoder is built per call since transform.Transformer is
// not safe for concurrent reuse, and strings here are short-lived anyway.
var utf16Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeString turns raw char16 bytes (as returned by CharactersAt) into
// a Go string. Lone/invalid surrogates decode to the Unicode replacement
// character rather than panicking; the source format never validates
// surrogate pairs, so this is the only safe default.
func DecodeString(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	out, err := utf16Encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// StringAt decodes the i-th string of the table at (stringsOffset, charsOffset).
func StringAt(data []byte, stringsOffset, charsOffset int64, i int) (string, error) {
	raw, err := CharactersAt(data, stringsOffset, charsOffset, i)
	if err != nil {
		return "", err
	}
	return DecodeString(raw)
}
