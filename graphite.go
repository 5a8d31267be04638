/*
Package graphite is the text entry point of a complex-script shaping engine.

Raw text buffers in one of the encoding forms UTF-8, UTF-16 or UTF-32 are
decoded into code points (package utf), which are mapped to glyphs of a font
face (packages font and segment).

Please note that the buffers handed to this package are never copied. They
must not change while a call is in progress.

# Status

Decoding and segment building are complete. Graphite rule tables (Silf, Glat,
Gloc) are accessible as raw tables only.

# Links

Graphite technology:
https://graphite.sil.org/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package graphite

import (
	"github.com/npillmayer/graphite/font"
	"github.com/npillmayer/graphite/segment"
	"github.com/npillmayer/graphite/utf"
	"golang.org/x/image/math/fixed"
)

// Encoding forms, re-exported for convenience.
const (
	UTF8  = utf.UTF8
	UTF16 = utf.UTF16
	UTF32 = utf.UTF32
)

// CodePoints decodes all complete characters of text. 16- and 32-bit code
// units are expected in little endian order.
func CodePoints(enc utf.EncForm, text []byte) []uint32 {
	// the end of the slice bounds decoding; a BufferLimit would drop a
	// surrogate pair at the very end
	cps, _ := utf.Decode(enc, text, utf.NoLimit{})
	return cps
}

// CountUnicodeCharacters counts the characters in front of byte offset end,
// stopping at a NUL character. errPos is the byte offset of the first
// malformed character, or -1 if there is none.
func CountUnicodeCharacters(enc utf.EncForm, text []byte, end int) (count int, errPos int) {
	return utf.CountCharacters(enc, text, end)
}

// MakeSegment decodes text and maps it to glyphs of a font face, for a font
// size of ppem pixels per em. At most maxChars characters are processed;
// maxChars <= 0 means no limit, as with segment.Params.MaxSlots.
func MakeSegment(face font.Face, enc utf.EncForm, text []byte, ppem fixed.Int26_6,
	maxChars int) (*segment.Segment, error) {
	//
	if face == nil || len(text) == 0 {
		return &segment.Segment{}, nil
	}
	params := segment.Params{Size: ppem}
	if maxChars <= 0 {
		return segment.Make(face, enc, text, utf.NoLimit{}, params)
	}
	return segment.Make(face, enc, text, utf.CountLimit(maxChars), params)
}
