package punct

// DefaultMarks is the set of punctuation marks considered by default.
const DefaultMarks = `;:,.!?¡¿—…"«»“”`

// Position classifies where a mark run sits relative to its source line.
type Position string

// Position constants.
const (
	PositionBegin  Position = "B" // line starts with the run
	PositionEnd    Position = "E" // line ends with the run
	PositionMiddle Position = "I" // run between two chunks
	PositionAlone  Position = "A" // the run is the whole line
)

// Mark records one punctuation run removed by Preserve. Marks are immutable
// once created; their identity is their position in the record sequence.
type Mark struct {
	Line     int      // zero-based index of the source line
	Text     string   // the matched run, verbatim, including inner whitespace
	Position Position // where the run sat in its line
}

// Run is one matched punctuation run within a single line. Runs are
// ephemeral: they exist only during matching and are not persisted.
type Run struct {
	Text  string // the matched substring, including enclosed whitespace
	Start int    // byte offset of the first matched byte
	End   int    // byte offset one past the last matched byte
}
