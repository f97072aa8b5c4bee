package punct

import (
	"strings"
	"unicode"
)

// Restore rebuilds punctuated lines from processed chunks and the mark
// records produced by Preserve. This is the reverse of Preserve:
//
//	punct.Restore([]string{"hello", "my world"}, marks)
//	// ["hello, my world!"]
//
// The chunks must align one-to-one in count and order with the chunks
// Preserve returned; that alignment is the caller's responsibility. A
// misaligned input is not rejected: when marks run out, the remaining
// chunks become the remaining lines, and when chunks run out, the
// remaining marks are joined into one final line. Before a mark is
// attached, the adjoining chunk is right-trimmed so the punctuation joins
// without a preceding space.
func Restore(chunks []string, marks []Mark) []string {
	// the walk rewrites chunk heads when merging, so work on a copy
	pending := make([]string, len(chunks))
	copy(pending, chunks)

	lines := []string{}
	num := 0
	ci, mi := 0, 0
	for {
		if mi == len(marks) {
			return append(lines, pending[ci:]...)
		}

		// nothing was processed for the remaining marks; emit them as one
		// final line
		if ci == len(pending) {
			var b strings.Builder
			for _, m := range marks[mi:] {
				b.WriteString(m.Text)
			}
			return append(lines, b.String())
		}

		current := marks[mi]
		if current.Line != num {
			// the current chunk's line has no pending mark; emit it as is
			lines = append(lines, pending[ci])
			ci++
			num++
			continue
		}

		pending[ci] = strings.TrimRightFunc(pending[ci], unicode.IsSpace)
		switch current.Position {
		case PositionBegin:
			pending[ci] = current.Text + pending[ci]
			mi++

		case PositionEnd:
			lines = append(lines, pending[ci]+current.Text)
			ci++
			mi++
			num++

		case PositionAlone:
			lines = append(lines, current.Text)
			mi++
			num++

		default: // PositionMiddle
			if ci+1 == len(pending) {
				// the text after this mark was never processed: fold the
				// mark into the sole remaining chunk
				pending[ci] += current.Text
			} else {
				pending[ci+1] = pending[ci] + current.Text + pending[ci+1]
				ci++
			}
			mi++
		}
	}
}
