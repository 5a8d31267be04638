package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "limit", "limits":
		pterm.Info.Println("Termination policies")
		pterm.Println(`
  none     decode until the end of the input
  count    decode at most max:<n> characters
  buffer   decode characters in front of byte offset end:<n>
  both     count and buffer limit combined

  A UTF-16 surrogate pair is checked one code unit beyond its trail
  surrogate, so a pair right at the buffer end is not decoded.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
  enc:<utf8|utf16|utf32>    set encoding form
  order:<le|be>             set byte order of 16/32-bit code units
  limit:<none|count|buffer|both>
  max:<n>                   character count for count limits
  end:<n|len>               byte offset for buffer limits
  font:<path>               load a TrueType/OpenType font
  hex:<bytes>               decode raw bytes, e.g. hex:F0 9F 98 80
  text:<string>             encode a string and decode it again
  seg:<string>              build a glyph segment with the loaded font
  help:limits               explain termination policies
  quit
	`)
	}
}
