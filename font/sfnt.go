package font

import (
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTFace is a TrueType or OpenType font with its original bytes.
//
// An SFNTFace is not safe for concurrent use, as it re-uses a lookup buffer.
type SFNTFace struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
	tables   map[Tag]tableRecord
	order    []Tag
	buf      sfnt.Buffer
}

var _ Face = (*SFNTFace)(nil)

type tableRecord struct {
	offset uint32
	size   uint32
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*SFNTFace, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory. The
// bytes must not change as long as the face is in use.
func ParseOpenTypeFont(fbytes []byte) (*SFNTFace, error) {
	f := &SFNTFace{Binary: fbytes}
	var err error
	if f.tables, f.order, err = parseTableDirectory(fbytes); err != nil {
		return nil, err
	}
	if f.SFNT, err = sfnt.Parse(fbytes); err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	if f.Fontname, err = f.SFNT.Name(&f.buf, sfnt.NameIDFull); err != nil {
		tracer().Infof("font has no full name: %v", err)
	}
	tracer().Debugf("loaded font %q with %d tables", f.Fontname, len(f.tables))
	return f, nil
}

// GlyphIndex maps a code point to a glyph using the font's cmap.
func (f *SFNTFace) GlyphIndex(cid uint32) (GlyphIndex, error) {
	if cid > utf8.MaxRune {
		return NOTDEF, nil
	}
	gid, err := f.SFNT.GlyphIndex(&f.buf, rune(cid))
	if err != nil {
		return NOTDEF, fmt.Errorf("glyph lookup for U+%04X: %w", cid, err)
	}
	return GlyphIndex(gid), nil
}

// Advance returns the unhinted advance of a glyph.
func (f *SFNTFace) Advance(gid GlyphIndex, ppem fixed.Int26_6) (fixed.Int26_6, error) {
	adv, err := f.SFNT.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("advance of glyph %d: %w", gid, err)
	}
	return adv, nil
}

func (f *SFNTFace) UnitsPerEm() int {
	return int(f.SFNT.UnitsPerEm())
}

func (f *SFNTFace) NumGlyphs() int {
	return f.SFNT.NumGlyphs()
}

// Table returns the bytes of a table. The slice shares memory with the font.
func (f *SFNTFace) Table(tag Tag) ([]byte, error) {
	rec, ok := f.tables[tag]
	if !ok {
		return nil, fmt.Errorf("table %s: %w", tag, ErrNoTable)
	}
	return f.Binary[rec.offset : rec.offset+rec.size], nil
}

// TableTags returns the tags of all tables, in the order of the table directory.
func (f *SFNTFace) TableTags() []Tag {
	return slices.Clone(f.order)
}

// parseTableDirectory reads the offset table and table records.
// https://learn.microsoft.com/en-us/typography/opentype/spec/otff#table-directory
func parseTableDirectory(font []byte) (map[Tag]tableRecord, []Tag, error) {
	if len(font) < 12 {
		return nil, nil, errFontFormat("font header too short")
	}
	fontType := u32(font)
	if !(fontType == 0x4f54544f || // OTTO
		fontType == 0x00010000 || // TrueType
		fontType == 0x74727565) { // true
		return nil, nil, errFontFormat(fmt.Sprintf("font type not supported: %x", fontType))
	}
	n := int(u16(font[4:]))
	if 12+16*n > len(font) {
		return nil, nil, errFontFormat("table record entries")
	}
	tables := make(map[Tag]tableRecord, n)
	order := make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		b := font[12+16*i:]
		tag := Tag(u32(b))
		off, size := u32(b[8:12]), u32(b[12:16])
		end := uint64(off) + uint64(size)
		if end > uint64(len(font)) {
			return nil, nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, end, len(font)))
		}
		tables[tag] = tableRecord{offset: off, size: size}
		order = append(order, tag)
	}
	return tables, order, nil
}
