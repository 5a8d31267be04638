package main

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/graphite/utf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphite.cli")
	defer teardown()
	//
	intp := &Intp{enc: utf.UTF8, order: binary.LittleEndian, end: -1}
	cmd, err := intp.parseCommand("enc:utf16 max:3 text:hello world")
	assert.NoError(t, err)
	assert.Equal(t, []Op{
		{code: ENC, arg: "utf16"},
		{code: MAX, arg: "3"},
		{code: TEXT, arg: "hello world"},
	}, cmd.ops)
	cmd, _ = intp.parseCommand("bogus")
	assert.Equal(t, HELP, cmd.ops[0].code)
}

func TestSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphite.cli")
	defer teardown()
	//
	intp := &Intp{enc: utf.UTF8, order: binary.LittleEndian, end: -1}
	cmd, _ := intp.parseCommand("enc:32 order:be limit:both max:2 end:8")
	err, quit := intp.execute(cmd)
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, utf.UTF32, intp.enc)
	assert.Equal(t, "BE", orderName(intp.order))
	assert.Equal(t, utf.EndAndCountLimit(8, 2), intp.makeLimit(100))
	intp.limit, intp.end = limitBuffer, -1
	assert.Equal(t, utf.EndLimit(100), intp.makeLimit(100))
	//
	cmd, _ = intp.parseCommand("limit:sideways")
	err, _ = intp.execute(cmd)
	assert.Error(t, err)
	cmd, _ = intp.parseCommand("quit")
	_, quit = intp.execute(cmd)
	assert.True(t, quit)
}

func TestHelpTopics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graphite.cli")
	defer teardown()
	//
	intp := &Intp{enc: utf.UTF8, order: binary.LittleEndian, end: -1}
	for _, topic := range []string{"", "limits"} {
		err, quit := helpOp(intp, &Op{code: HELP, arg: topic})
		assert.NoError(t, err)
		assert.False(t, quit)
	}
}
