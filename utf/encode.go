package utf

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encode converts s into a buffer of the given encoding form, without byte
// order mark. 16- and 32-bit code units are written in the given byte order.
// Invalid UTF-8 in s is converted to U+FFFD.
func Encode(enc EncForm, order binary.ByteOrder, s string) ([]byte, error) {
	var e encoding.Encoding
	big := isBigEndian(order)
	switch enc {
	case UTF8:
		e = unicode.UTF8
	case UTF16:
		if big {
			e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		} else {
			e = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		}
	case UTF32:
		if big {
			e = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
		} else {
			e = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
		}
	default:
		return nil, fmt.Errorf("cannot encode text as %s", enc)
	}
	b, err := e.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding text as %s: %w", enc, err)
	}
	return b, nil
}

func isBigEndian(order binary.ByteOrder) bool {
	return order != nil && order.Uint16([]byte{0, 1}) == 1
}
