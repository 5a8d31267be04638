package segment

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/graphite/font"
	"github.com/npillmayer/graphite/utf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// --- Test Suite Preparation ------------------------------------------------

type SegmentTestEnviron struct {
	suite.Suite
	face *font.SFNTFace
}

// listen for 'go test' command --> run test methods
func TestSegmentFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphite.segment")
	defer teardown()
	suite.Run(t, new(SegmentTestEnviron))
}

// run once, before test suite methods
func (env *SegmentTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("graphite.font").SetTraceLevel(tracing.LevelError)
	face, err := font.ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		env.T().Fatalf("cannot parse Go Regular: %v", err)
	}
	env.face = face
}

// --- Tests -----------------------------------------------------------------

func (env *SegmentTestEnviron) TestLatinSegment() {
	seg, err := Make(env.face, utf.UTF8, []byte("Hello"), utf.NoLimit{}, Params{Size: fixed.I(12)})
	env.Require().NoError(err)
	env.Len(seg.Slots, 5)
	var sum fixed.Int26_6
	for i, slot := range seg.Slots {
		env.Equal(i, slot.Index)
		env.NotEqual(font.NOTDEF, slot.Glyph, "glyph for %q", rune(slot.CodePoint))
		env.Equal(language.Latin, slot.Script)
		sum += slot.Advance
	}
	env.Equal(sum, seg.Advance)
	env.Greater(int(seg.Advance), 0)
	env.Empty(seg.Warnings)
	env.Equal([]Run{{Start: 0, End: 5, Script: language.Latin}}, seg.Runs())
}

func (env *SegmentTestEnviron) TestScriptRuns() {
	buf, err := utf.Encode(utf.UTF16, binary.LittleEndian, "abc αβγ")
	env.Require().NoError(err)
	seg, err := Make(env.face, utf.UTF16, buf, utf.EndLimit(len(buf)), Params{Size: fixed.I(10)})
	env.Require().NoError(err)
	env.Len(seg.Slots, 7)
	env.Equal([]Run{
		{Start: 0, End: 4, Script: language.Latin},
		{Start: 4, End: 7, Script: language.Greek},
	}, seg.Runs())
}

func (env *SegmentTestEnviron) TestLeadingNeutralJoinsFirstRun() {
	seg, err := Make(env.face, utf.UTF8, []byte("1 ab"), utf.NoLimit{}, Params{})
	env.Require().NoError(err)
	env.Equal([]Run{{Start: 0, End: 4, Script: language.Latin}}, seg.Runs())
}

func (env *SegmentTestEnviron) TestMalformedInput() {
	seg, err := Make(env.face, utf.UTF8, []byte("a\x80b"), utf.NoLimit{}, Params{Size: fixed.I(12)})
	env.Require().NoError(err)
	env.Len(seg.Slots, 3)
	env.Equal(utf.ReplacementChar, seg.Slots[1].CodePoint)
	env.Equal(1, seg.Count(SeverityMajor))
	for _, w := range seg.Warnings {
		if w.Severity == SeverityMajor {
			env.Equal(1, w.Index)
			env.Equal(1, w.Pos)
		}
	}
}

func (env *SegmentTestEnviron) TestMissingGlyph() {
	seg, err := Make(env.face, utf.UTF8, []byte("aก"), utf.NoLimit{}, Params{})
	env.Require().NoError(err)
	env.Len(seg.Slots, 2)
	env.Equal(font.NOTDEF, seg.Slots[1].Glyph)
	env.Equal(1, seg.Count(SeverityMinor))
}

func (env *SegmentTestEnviron) TestSlotLimits() {
	seg, err := Make(env.face, utf.UTF8, []byte("abcdef"), utf.NoLimit{}, Params{MaxSlots: 2})
	env.Require().NoError(err)
	env.Len(seg.Slots, 2)
	seg, err = Make(env.face, utf.UTF8, []byte("abcdef"), utf.CountLimit(4), Params{})
	env.Require().NoError(err)
	env.Len(seg.Slots, 4)
}

func (env *SegmentTestEnviron) TestFaceError() {
	_, err := Make(failingFace{}, utf.UTF8, []byte("abc"), utf.NoLimit{}, Params{})
	env.Error(err)
	env.ErrorIs(err, errBroken)
}

// --- Helpers ---------------------------------------------------------------

var errBroken = errors.New("broken face")

type failingFace struct{}

func (failingFace) GlyphIndex(uint32) (font.GlyphIndex, error) { return 0, errBroken }
func (failingFace) Advance(font.GlyphIndex, fixed.Int26_6) (fixed.Int26_6, error) {
	return 0, errBroken
}
func (failingFace) UnitsPerEm() int                { return 1000 }
func (failingFace) NumGlyphs() int                 { return 0 }
func (failingFace) Table(font.Tag) ([]byte, error) { return nil, font.ErrNoTable }
