package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/graphite/segment"
	"github.com/npillmayer/graphite/utf"
	"github.com/pterm/pterm"
	"golang.org/x/image/math/fixed"
)

// tracingCollector collects code points together with malformed positions.
type tracingCollector struct {
	utf.Collector
	malformed []int
}

func (tc *tracingCollector) Malformed(pos int) {
	tc.malformed = append(tc.malformed, pos)
}

func hexOp(intp *Intp, op *Op) (error, bool) {
	s := strings.Join(strings.Fields(op.arg), "")
	buf, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err), false
	}
	intp.decode(buf)
	return nil, false
}

func textOp(intp *Intp, op *Op) (error, bool) {
	buf, err := utf.Encode(intp.enc, intp.order, op.arg)
	if err != nil {
		return err, false
	}
	pterm.Printf("buffer = % x\n", buf)
	intp.decode(buf)
	return nil, false
}

func segOp(intp *Intp, op *Op) (error, bool) {
	if intp.face == nil {
		return errors.New("no font loaded, use font:<path>"), false
	}
	buf, err := utf.Encode(intp.enc, intp.order, op.arg)
	if err != nil {
		return err, false
	}
	b := segment.NewBuilder(intp.face, segment.Params{Size: fixed.I(12)})
	utf.ProcessWithOrder(intp.enc, intp.order, buf, intp.makeLimit(len(buf)), b)
	seg, err := b.Segment()
	if err != nil {
		return err, false
	}
	printSegment(seg)
	return nil, false
}

func (intp *Intp) decode(buf []byte) {
	tc := &tracingCollector{}
	end := utf.ProcessWithOrder(intp.enc, intp.order, buf, intp.makeLimit(len(buf)), tc)
	data := [][]string{
		{"Index", "Code Point", "Char"},
	}
	for i, cid := range tc.CodePoints {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("U+%04X", cid),
			printable(cid),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("decoded %d characters, stopped at offset %d of %d bytes\n",
		tc.CharsProcessed(), end, len(buf))
	for _, pos := range tc.malformed {
		pterm.Warning.Printf("malformed character at offset %d\n", pos)
	}
}

func printSegment(seg *segment.Segment) {
	data := [][]string{
		{"Index", "Code Point", "Char", "Glyph", "Advance", "Script"},
	}
	for _, slot := range seg.Slots {
		data = append(data, []string{
			fmt.Sprintf("%d", slot.Index),
			fmt.Sprintf("U+%04X", slot.CodePoint),
			printable(slot.CodePoint),
			fmt.Sprintf("%d", slot.Glyph),
			slot.Advance.String(),
			slot.Script.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	for _, run := range seg.Runs() {
		pterm.Printf("run [%d:%d] script %s\n", run.Start, run.End, run.Script)
	}
	pterm.Printf("total advance = %s\n", seg.Advance)
	for _, w := range seg.Warnings {
		pterm.Warning.Println(w.String())
	}
}

func printable(cid uint32) string {
	if cid > unicode.MaxRune || !unicode.IsPrint(rune(cid)) {
		return "."
	}
	return string(rune(cid))
}
