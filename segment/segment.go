/*
Package segment builds glyph segments from decoded text.

A [Builder] is a character processor for package utf: every code point the
decoder hands over is mapped to a glyph of a font face, together with its
advance and its Unicode script. The resulting [Segment] may be split into
runs of uniform script for further shaping.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/graphite/font"
	"github.com/npillmayer/graphite/utf"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'graphite.segment'
func tracer() tracing.Trace {
	return tracing.Select("graphite.segment")
}

// Slot is a character of a segment together with its glyph.
type Slot struct {
	CodePoint uint32
	Index     int // character index within the segment
	Glyph     font.GlyphIndex
	Advance   fixed.Int26_6
	Script    language.Script
}

// Params control segment building.
type Params struct {
	Size     fixed.Int26_6 // font size in pixels per em
	MaxSlots int           // stop after this many slots; 0 means no limit
}

// Segment is a sequence of slots, in logical order.
type Segment struct {
	Slots    []Slot
	Warnings []Warning
	Advance  fixed.Int26_6 // sum of all slot advances
}

// Run is a range of slots [Start, End) of the same script.
type Run struct {
	Start, End int
	Script     language.Script
}

// Runs splits a segment into script runs. Characters of script Common or
// Inherited join the run they are in; leading ones join the first run with
// a real script.
func (seg *Segment) Runs() []Run {
	var runs []Run
	for i, slot := range seg.Slots {
		sc := slot.Script
		if len(runs) == 0 {
			runs = append(runs, Run{Start: i, End: i + 1, Script: sc})
			continue
		}
		cur := &runs[len(runs)-1]
		switch {
		case isNeutral(sc), sc == cur.Script:
			cur.End = i + 1
		case isNeutral(cur.Script):
			cur.Script = sc
			cur.End = i + 1
		default:
			runs = append(runs, Run{Start: i, End: i + 1, Script: sc})
		}
	}
	return runs
}

func isNeutral(sc language.Script) bool {
	return sc == language.Common || sc == language.Inherited
}

// --- Builder ---------------------------------------------------------------

// Builder collects slots from decoded code points. It implements
// utf.CharProcessor and utf.MalformedObserver.
type Builder struct {
	face      font.Face
	params    Params
	seg       Segment
	malformed int // byte offset of pending malformed char, or -1
	err       error
}

var (
	_ utf.CharProcessor     = (*Builder)(nil)
	_ utf.MalformedObserver = (*Builder)(nil)
)

// NewBuilder creates a builder for a font face.
func NewBuilder(face font.Face, params Params) *Builder {
	return &Builder{face: face, params: params, malformed: -1}
}

// ProcessChar maps cid to a glyph and appends a slot. It stops decoding if
// the font face reports an error or the maximum number of slots is reached.
func (b *Builder) ProcessChar(cid uint32) bool {
	inx := len(b.seg.Slots)
	if b.malformed >= 0 {
		b.seg.Warnings = append(b.seg.Warnings, Warning{
			Index:    inx,
			Pos:      b.malformed,
			Issue:    "malformed input replaced by U+FFFD",
			Severity: SeverityMajor,
		})
		b.malformed = -1
	}
	gid, err := b.face.GlyphIndex(cid)
	if err != nil {
		b.err = err
		return false
	}
	if gid == font.NOTDEF {
		b.seg.Warnings = append(b.seg.Warnings, Warning{
			Index:    inx,
			Pos:      -1,
			Issue:    fmt.Sprintf("no glyph for U+%04X", cid),
			Severity: SeverityMinor,
		})
	}
	adv, err := b.face.Advance(gid, b.params.Size)
	if err != nil {
		b.err = err
		return false
	}
	script := language.Unknown
	if cid <= utf8.MaxRune {
		script = language.LookupScript(rune(cid))
	}
	b.seg.Slots = append(b.seg.Slots, Slot{
		CodePoint: cid,
		Index:     inx,
		Glyph:     gid,
		Advance:   adv,
		Script:    script,
	})
	b.seg.Advance += adv
	return b.params.MaxSlots <= 0 || len(b.seg.Slots) < b.params.MaxSlots
}

// CharsProcessed returns the number of slots.
func (b *Builder) CharsProcessed() int {
	return len(b.seg.Slots)
}

// Malformed remembers the position of a malformed character, which will be
// attached as a warning to the next slot.
func (b *Builder) Malformed(pos int) {
	b.malformed = pos
}

// Segment returns the segment built so far, or the first error of the font
// face.
func (b *Builder) Segment() (*Segment, error) {
	if b.err != nil {
		return nil, errSegment(b.err)
	}
	seg := b.seg
	return &seg, nil
}

// Make decodes buf and builds a segment from it.
func Make[L utf.Limit](face font.Face, enc utf.EncForm, buf []byte, limit L, params Params) (*Segment, error) {
	b := NewBuilder(face, params)
	end := utf.Process(enc, buf, limit, b)
	seg, err := b.Segment()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("segment of %d slots from %d bytes, %d warnings",
		len(seg.Slots), end, len(seg.Warnings))
	return seg, nil
}

// errSegment wraps an error as a user-facing segment error.
func errSegment(err error) error {
	return fmt.Errorf("building segment: %w", err)
}
