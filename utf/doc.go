/*
Package utf decodes raw text buffers into Unicode code points for the shaping
pipeline.

A caller hands in a byte buffer tagged with an encoding form ([UTF8], [UTF16]
or [UTF32]), a termination policy ([Limit]) and a [CharProcessor]. [Process]
then selects the consumer matching the encoding form and feeds one code point
at a time to the processor, until either the policy reports that no more
characters are needed, the next character would cross the buffer boundary,
or the processor asks to stop.

Four termination policies are provided:

▪︎ [NoLimit] relies on the processor (or the end of the slice) to stop decoding,
e.g. for NUL-terminated text.

▪︎ [CharacterCountLimit] stops after a given number of characters.

▪︎ [BufferLimit] stops at a byte offset. Characters straddling the offset are
not decoded.

▪︎ [BufferAndCharacterCountLimit] combines the two.

Decoding never fails. Malformed characters are replaced by U+FFFD and decoding
continues; a truncated character at the buffer boundary ends decoding silently.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package utf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphite.utf'
func tracer() tracing.Trace {
	return tracing.Select("graphite.utf")
}
