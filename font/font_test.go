package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func TestTags(t *testing.T) {
	assert.Equal(t, "cmap", TagCmap.String())
	assert.Equal(t, Tag(0x636d6170), TagCmap)
	assert.Equal(t, "OS/2", TagOS2.String())
	assert.Equal(t, "ab  ", MakeTag("ab").String())
}

func TestGoRegularFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphite.font")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	t.Logf("loaded font = %s", f.Fontname)
	assert.Equal(t, 2048, f.UnitsPerEm())
	assert.Greater(t, f.NumGlyphs(), 100)
	//
	gid, err := f.GlyphIndex('A')
	assert.NoError(t, err)
	assert.NotEqual(t, NOTDEF, gid)
	adv, err := f.Advance(gid, fixed.I(12))
	assert.NoError(t, err)
	assert.Greater(t, int(adv), 0)
	//
	gid, err = f.GlyphIndex(0x110000)
	assert.NoError(t, err)
	assert.Equal(t, NOTDEF, gid)
}

func TestTableAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphite.font")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.Contains(t, f.TableTags(), TagCmap)
	cmap, err := f.Table(TagCmap)
	assert.NoError(t, err)
	assert.NotEmpty(t, cmap)
	head, err := f.Table(TagHead)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(head), 20)
	assert.Equal(t, uint16(f.UnitsPerEm()), u16(head[18:]))
	_, err = f.Table(TagSilf)
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestInvalidFont(t *testing.T) {
	_, err := ParseOpenTypeFont([]byte("not a font"))
	assert.Error(t, err)
	_, err = ParseOpenTypeFont([]byte{0, 1, 0, 0, 0, 9, 0, 0, 0, 0, 0, 0})
	assert.Error(t, err)
}
