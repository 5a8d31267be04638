package segment

import "fmt"

// Severity is the severity level of a segment warning.
type Severity int

const (
	// SeverityMajor indicates that the input text was damaged.
	SeverityMajor Severity = iota
	// SeverityMinor indicates a cosmetic issue, e.g. a missing glyph.
	SeverityMinor
)

func (s Severity) String() string {
	switch s {
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// Warning is an issue found while building a segment. Segments with warnings
// are still usable.
type Warning struct {
	Index    int    // slot index
	Pos      int    // byte offset in the input buffer, -1 if unknown
	Issue    string // human-readable description
	Severity Severity
}

func (w Warning) String() string {
	if w.Pos >= 0 {
		return fmt.Sprintf("[%s] slot %d at offset %d: %s", w.Severity, w.Index, w.Pos, w.Issue)
	}
	return fmt.Sprintf("[%s] slot %d: %s", w.Severity, w.Index, w.Issue)
}

// Count returns the number of warnings with severity s.
func (seg *Segment) Count(s Severity) int {
	n := 0
	for _, w := range seg.Warnings {
		if w.Severity == s {
			n++
		}
	}
	return n
}
