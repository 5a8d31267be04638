package utf

import "encoding/binary"

// CharProcessor receives decoded code points.
type CharProcessor interface {
	// ProcessChar accepts a code point and returns false if decoding should stop.
	ProcessChar(cid uint32) bool
	// CharsProcessed returns the number of characters accepted so far.
	CharsProcessed() int
}

// MalformedObserver may optionally be implemented by a CharProcessor. Malformed
// is called with the byte offset of a malformed character right before
// U+FFFD is handed to ProcessChar.
type MalformedObserver interface {
	Malformed(pos int)
}

// Process decodes buf, reading 16- and 32-bit code units in little endian
// order. See [ProcessWithOrder].
func Process[L Limit](enc EncForm, buf []byte, limit L, proc CharProcessor) int {
	return ProcessWithOrder(enc, binary.LittleEndian, buf, limit, proc)
}

// ProcessWithOrder decodes characters from buf and hands them to proc, until
// the limit reports that no more characters are needed, the next character
// does not fit into the buffer, or proc asks to stop. Decoding starts at
// offset 0, which has to be a character boundary. Unknown encoding forms are
// treated as UTF-32.
//
// Reading never goes past len(buf), whatever the limit. ProcessWithOrder
// returns the byte offset where decoding stopped. A nil order reads little
// endian code units.
func ProcessWithOrder[L Limit](enc EncForm, order binary.ByteOrder, buf []byte, limit L,
	proc CharProcessor) int {
	//
	if order == nil {
		order = binary.LittleEndian
	}
	obs, _ := proc.(MalformedObserver)
	var end int
	switch enc {
	case UTF8:
		c := Utf8Consumer{cursor{buf: buf}}
		for limit.NeedMoreChars(c.pos, 1, proc.CharsProcessed()) {
			start := c.pos
			cid, ok, malformed := consumeUTF8(&c, limit)
			if !ok {
				break
			}
			if malformed && obs != nil {
				obs.Malformed(start)
			}
			if !proc.ProcessChar(cid) {
				break
			}
		}
		end = c.pos
	case UTF16:
		c := Utf16Consumer{cursor: cursor{buf: buf}, order: order}
		for limit.NeedMoreChars(c.pos, 2, proc.CharsProcessed()) {
			start := c.pos
			cid, ok, malformed := consumeUTF16(&c, limit)
			if !ok {
				break
			}
			if malformed && obs != nil {
				obs.Malformed(start)
			}
			if !proc.ProcessChar(cid) {
				break
			}
		}
		end = c.pos
	default:
		c := Utf32Consumer{cursor: cursor{buf: buf}, order: order}
		for limit.NeedMoreChars(c.pos, 4, proc.CharsProcessed()) {
			cid, ok, _ := consumeUTF32(&c, limit)
			if !ok {
				break
			}
			if !proc.ProcessChar(cid) {
				break
			}
		}
		end = c.pos
	}
	tracer().Debugf("decoded %d chars from %s buffer, stopped at offset %d/%d",
		proc.CharsProcessed(), enc, end, len(buf))
	return end
}
