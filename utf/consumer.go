package utf

import "encoding/binary"

// ReplacementChar is delivered in place of a malformed character.
const ReplacementChar uint32 = 0xFFFD

// utf8SizeLUT maps the high nibble of a lead byte to the length of the
// sequence. 0 marks a trailing byte found in lead position.
var utf8SizeLUT = [16]int{
	1, 1, 1, 1, 1, 1, 1, 1, // 1 byte
	0, 0, 0, 0, // trailing byte
	2, 2, // 2 bytes
	3, // 3 bytes
	4, // 4 bytes
}

// utf8MaskLUT strips the size marker off a lead byte, indexed by sequence length.
var utf8MaskLUT = [5]byte{0x80, 0x00, 0xC0, 0xE0, 0xF0}

const (
	leadSurrogateMin  = 0xD800
	leadSurrogateMax  = 0xDBFF
	trailSurrogateMin = 0xDC00
	trailSurrogateMax = 0xDFFF
	// lead<<10 + trail - surrogateOffset yields the scalar value
	surrogateOffset = leadSurrogateMin<<10 + trailSurrogateMin - 0x10000
)

// cursor is a position in a caller-owned buffer. The buffer is never copied or
// modified.
type cursor struct {
	buf []byte
	pos int
}

// Pos returns the byte offset of the next character to decode.
func (c *cursor) Pos() int {
	return c.pos
}

// fits checks the physical bounds of the slice, independent of any Limit.
func (c *cursor) fits(pos int, width int) bool {
	return pos >= 0 && pos+width <= len(c.buf)
}

// --- UTF-8 -----------------------------------------------------------------

// Utf8Consumer decodes one character at a time from 8-bit code units.
type Utf8Consumer struct {
	cursor
}

// NewUtf8Consumer creates a consumer positioned at the start of buf.
func NewUtf8Consumer(buf []byte) *Utf8Consumer {
	return &Utf8Consumer{cursor{buf: buf}}
}

// ConsumeChar decodes the character at the current position. It returns false
// if the character would extend past the limit; the position is unchanged in
// this case. A trailing byte in lead position yields U+FFFD and skips one byte.
//
// Callers must have made sure that limit.InBuffer holds for the current position.
func (c *Utf8Consumer) ConsumeChar(limit Limit) (uint32, bool) {
	cid, ok, _ := consumeUTF8(c, limit)
	return cid, ok
}

func consumeUTF8[L Limit](c *Utf8Consumer, limit L) (cid uint32, ok bool, malformed bool) {
	if !c.fits(c.pos, 1) {
		return 0, false, false
	}
	seqSz := utf8SizeLUT[c.buf[c.pos]>>4]
	if seqSz == 0 {
		c.pos++
		return ReplacementChar, true, true
	}
	last := c.pos + seqSz - 1
	if !limit.InBuffer(last, 1) || !c.fits(last, 1) {
		return 0, false, false
	}
	cid = uint32(c.buf[c.pos] ^ utf8MaskLUT[seqSz])
	for i := 1; i < seqSz; i++ {
		// continuation bytes are masked with 0x7F, not 0x3F
		cid = cid<<6 | uint32(c.buf[c.pos+i]&0x7F)
	}
	c.pos += seqSz
	return cid, true, false
}

// --- UTF-16 ----------------------------------------------------------------

// Utf16Consumer decodes one character at a time from 16-bit code units.
type Utf16Consumer struct {
	cursor
	order binary.ByteOrder
}

// NewUtf16Consumer creates a consumer positioned at the start of buf, reading
// code units in the given byte order (little endian if nil).
func NewUtf16Consumer(buf []byte, order binary.ByteOrder) *Utf16Consumer {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Utf16Consumer{cursor: cursor{buf: buf}, order: order}
}

// ConsumeChar decodes the character at the current position, combining
// surrogate pairs. A lead surrogate followed by anything else than a trail
// surrogate yields U+FFFD, with both units consumed.
//
// Unlike the UTF-8 consumer, the position has already moved past a lead
// surrogate when ConsumeChar returns false because its trail unit is out of
// bounds.
func (c *Utf16Consumer) ConsumeChar(limit Limit) (uint32, bool) {
	cid, ok, _ := consumeUTF16(c, limit)
	return cid, ok
}

func consumeUTF16[L Limit](c *Utf16Consumer, limit L) (cid uint32, ok bool, malformed bool) {
	if !c.fits(c.pos, 2) {
		return 0, false, false
	}
	cid = uint32(c.order.Uint16(c.buf[c.pos:]))
	c.pos += 2
	if cid < leadSurrogateMin || cid > leadSurrogateMax {
		return cid, true, false
	}
	// the check is made one unit beyond the trail surrogate
	if !limit.InBuffer(c.pos+2, 2) || !c.fits(c.pos, 2) {
		return 0, false, false
	}
	trail := uint32(c.order.Uint16(c.buf[c.pos:]))
	c.pos += 2
	if trail < trailSurrogateMin || trail > trailSurrogateMax {
		return ReplacementChar, true, true
	}
	return cid<<10 + trail - surrogateOffset, true, false
}

// --- UTF-32 ----------------------------------------------------------------

// Utf32Consumer decodes 32-bit code units. Values are passed on unchecked.
type Utf32Consumer struct {
	cursor
	order binary.ByteOrder
}

// NewUtf32Consumer creates a consumer positioned at the start of buf, reading
// code units in the given byte order (little endian if nil).
func NewUtf32Consumer(buf []byte, order binary.ByteOrder) *Utf32Consumer {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Utf32Consumer{cursor: cursor{buf: buf}, order: order}
}

// ConsumeChar returns the code unit at the current position verbatim.
func (c *Utf32Consumer) ConsumeChar(limit Limit) (uint32, bool) {
	cid, ok, _ := consumeUTF32(c, limit)
	return cid, ok
}

func consumeUTF32[L Limit](c *Utf32Consumer, _ L) (cid uint32, ok bool, malformed bool) {
	if !c.fits(c.pos, 4) {
		return 0, false, false
	}
	cid = c.order.Uint32(c.buf[c.pos:])
	c.pos += 4
	return cid, true, false
}
