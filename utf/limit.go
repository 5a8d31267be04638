package utf

// Limit is a termination policy for decoding.
//
// Positions are byte offsets into the buffer handed to [Process]. width is the
// code unit width of the current encoding form.
type Limit interface {
	// InBuffer reports whether the code unit of the given width starting at
	// byte offset pos lies completely in front of the buffer end.
	InBuffer(pos int, width int) bool
	// NeedMoreChars reports whether decoding should try another character
	// starting at pos, given that nProcessed characters have been accepted
	// by the processor so far.
	NeedMoreChars(pos int, width int, nProcessed int) bool
}

// NoLimit never stops decoding by itself. It relies on the processor to stop,
// e.g. at a terminating NUL, or on the end of the buffer slice.
type NoLimit struct{}

func (NoLimit) InBuffer(int, int) bool { return true }

func (NoLimit) NeedMoreChars(int, int, int) bool { return true }

// CharacterCountLimit limits the number of characters processed. It does not
// know where the buffer ends.
type CharacterCountLimit struct {
	max int
}

// CountLimit creates a policy which lets at most n characters through.
func CountLimit(n int) CharacterCountLimit {
	return CharacterCountLimit{max: n}
}

func (CharacterCountLimit) InBuffer(int, int) bool { return true }

func (l CharacterCountLimit) NeedMoreChars(_ int, _ int, nProcessed int) bool {
	return nProcessed < l.max
}

// BufferLimit processes as many characters as fit in front of a byte offset.
// Characters straddling the end are not processed.
type BufferLimit struct {
	end int // exclusive
}

// EndLimit creates a policy with an exclusive buffer end at byte offset end.
func EndLimit(end int) BufferLimit {
	return BufferLimit{end: end}
}

// InBuffer checks the last byte of the code unit against the end, so a 16-bit
// unit needs 2 bytes and a 32-bit unit 4 bytes of room.
func (l BufferLimit) InBuffer(pos int, width int) bool {
	return pos+width <= l.end
}

func (l BufferLimit) NeedMoreChars(pos int, width int, _ int) bool {
	return l.InBuffer(pos, width)
}

// End returns the exclusive end offset.
func (l BufferLimit) End() int {
	return l.end
}

// BufferAndCharacterCountLimit processes at most a given number of characters
// in front of a byte offset.
type BufferAndCharacterCountLimit struct {
	BufferLimit
	max int
}

// EndAndCountLimit creates a policy bounded by both a byte offset and a
// character count.
func EndAndCountLimit(end int, n int) BufferAndCharacterCountLimit {
	return BufferAndCharacterCountLimit{BufferLimit: BufferLimit{end: end}, max: n}
}

func (l BufferAndCharacterCountLimit) NeedMoreChars(pos int, width int, nProcessed int) bool {
	return nProcessed < l.max && l.InBuffer(pos, width)
}

var (
	_ Limit = NoLimit{}
	_ Limit = CharacterCountLimit{}
	_ Limit = BufferLimit{}
	_ Limit = BufferAndCharacterCountLimit{}
)
