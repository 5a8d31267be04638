/*
Package font gives the shaping engine access to a font face: glyph lookup,
advances, and the raw binary tables of the font.

Decoded code points are correlated with glyph data through the [Face]
interface. [SFNTFace] implements it for TrueType and OpenType fonts, using
golang.org/x/image/font/sfnt for cmap and metrics and its own table directory
for raw table access.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'graphite.font'
func tracer() tracing.Trace {
	return tracing.Select("graphite.font")
}

// GlyphIndex is a glyph's position in a font. Index 0 is ".notdef".
type GlyphIndex uint16

// NOTDEF is the glyph index for ".notdef".
const NOTDEF = GlyphIndex(0)

// ErrNoTable is returned for a table which is not present in a font.
var ErrNoTable = errors.New("font table not present")

// Face is the font access layer of the shaping engine.
type Face interface {
	// GlyphIndex maps a code point to a glyph. Code points without a glyph
	// map to NOTDEF without an error.
	GlyphIndex(cid uint32) (GlyphIndex, error)
	// Advance returns the horizontal advance of a glyph for a font size of
	// ppem pixels per em.
	Advance(gid GlyphIndex, ppem fixed.Int26_6) (fixed.Int26_6, error)
	// UnitsPerEm returns the design units per em.
	UnitsPerEm() int
	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int
	// Table returns the binary data of the table with the given tag.
	Table(tag Tag) ([]byte, error)
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("font format: %s", message)
}
