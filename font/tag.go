package font

// Tag is a 4-byte table identifier, e.g. 'cmap'.
type Tag uint32

// MakeTag creates a Tag from a string, e.g.
//
//	MakeTag("cmap")
//
// Shorter strings are padded with spaces, longer ones are cut.
func MakeTag(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	return string([]byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	})
}

// Tags of tables relevant for shaping.
var (
	TagCmap = MakeTag("cmap")
	TagHead = MakeTag("head")
	TagGlyf = MakeTag("glyf")
	TagHdmx = MakeTag("hdmx")
	TagHhea = MakeTag("hhea")
	TagHmtx = MakeTag("hmtx")
	TagLoca = MakeTag("loca")
	TagKern = MakeTag("kern")
	TagMaxp = MakeTag("maxp")
	TagName = MakeTag("name")
	TagOS2  = MakeTag("OS/2")
	TagPost = MakeTag("post")
	// Graphite tables
	TagFeat = MakeTag("Feat")
	TagGlat = MakeTag("Glat")
	TagGloc = MakeTag("Gloc")
	TagSilf = MakeTag("Silf")
	TagSile = MakeTag("Sile")
	TagSill = MakeTag("Sill")
)

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
