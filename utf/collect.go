package utf

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// Collector is a CharProcessor which keeps all code points. If StopAtNul is
// set, decoding stops at the first NUL character, which is not collected.
type Collector struct {
	CodePoints []uint32
	StopAtNul  bool
}

var _ CharProcessor = (*Collector)(nil)

// ProcessChar appends cid.
func (c *Collector) ProcessChar(cid uint32) bool {
	if cid == 0 && c.StopAtNul {
		return false
	}
	c.CodePoints = append(c.CodePoints, cid)
	return true
}

// CharsProcessed returns the number of collected code points.
func (c *Collector) CharsProcessed() int {
	return len(c.CodePoints)
}

// Runes returns the collected code points as runes. Values outside the
// Unicode range are converted to U+FFFD.
func (c *Collector) Runes() []rune {
	runes := make([]rune, len(c.CodePoints))
	for i, cid := range c.CodePoints {
		if cid > utf8.MaxRune {
			runes[i] = utf8.RuneError
			continue
		}
		runes[i] = rune(cid)
	}
	return runes
}

func (c *Collector) String() string {
	var sb strings.Builder
	for _, r := range c.Runes() {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Decode collects all code points of buf (little endian for 16/32-bit units)
// which the limit lets through. It returns the code points and the offset
// where decoding stopped.
func Decode[L Limit](enc EncForm, buf []byte, limit L) ([]uint32, int) {
	return DecodeWithOrder(enc, binary.LittleEndian, buf, limit)
}

// DecodeWithOrder is [Decode] with an explicit byte order.
func DecodeWithOrder[L Limit](enc EncForm, order binary.ByteOrder, buf []byte, limit L) ([]uint32, int) {
	c := &Collector{CodePoints: make([]uint32, 0, len(buf)/max(enc.Width(), 1))}
	end := ProcessWithOrder(enc, order, buf, limit, c)
	return c.CodePoints, end
}

// --- Counting --------------------------------------------------------------

type charCounter struct {
	count  int
	errPos int
}

func (cc *charCounter) ProcessChar(cid uint32) bool {
	if cid == 0 {
		return false
	}
	cc.count++
	return true
}

func (cc *charCounter) CharsProcessed() int {
	return cc.count
}

func (cc *charCounter) Malformed(pos int) {
	if cc.errPos < 0 {
		cc.errPos = pos
	}
}

// CountCharacters counts the characters of buf in front of byte offset end,
// stopping at a NUL character. errPos is the byte offset of the first
// malformed character, or -1. Malformed characters are counted.
func CountCharacters(enc EncForm, buf []byte, end int) (count int, errPos int) {
	cc := &charCounter{errPos: -1}
	Process(enc, buf, EndLimit(end), cc)
	return cc.count, cc.errPos
}
