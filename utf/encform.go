package utf

import (
	"fmt"
	"strings"
)

// EncForm is the encoding form of a text buffer. Its numeric value is the width
// of one code unit in bytes, clients may rely on this for buffer arithmetic.
type EncForm uint8

const (
	UTF8  EncForm = 1 // 8-bit code units
	UTF16 EncForm = 2 // 16-bit code units
	UTF32 EncForm = 4 // 32-bit code units
)

// Width returns the size of one code unit in bytes.
func (enc EncForm) Width() int {
	return int(enc)
}

func (enc EncForm) String() string {
	switch enc {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF32:
		return "UTF-32"
	}
	return fmt.Sprintf("EncForm(%d)", uint8(enc))
}

// ParseEncForm reads an encoding form name like "utf16", "UTF-16" or "16".
func ParseEncForm(s string) (EncForm, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.TrimPrefix(strings.ReplaceAll(n, "-", ""), "utf")
	switch n {
	case "8":
		return UTF8, nil
	case "16":
		return UTF16, nil
	case "32":
		return UTF32, nil
	}
	return 0, fmt.Errorf("unknown encoding form: %q", s)
}
