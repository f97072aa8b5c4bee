package punct

// Preserve removes punctuation from lines while recording everything needed
// to put it back. It returns the concatenation, across all lines, of the
// non-empty punctuation-free chunks in left-to-right order, and the ordered
// mark records. Empty chunks are dropped: they carry no restoration
// information and never consume a restore slot. Empty lines contribute no
// chunks and no marks.
//
//	p.Preserve([]string{"hello, my world!"})
//	// chunks: ["hello", "my world"]
//	// marks:  [{0 ", " I} {0 "!" E}]
//
// The Mark Line field refers to the index of the source line within lines,
// not to any chunk index.
func (p *Punctuator) Preserve(lines []string) ([]string, []Mark) {
	chunks := []string{}
	marks := []Mark{}
	for num, line := range lines {
		lineChunks, lineMarks := p.preserveLine(line, num)
		for _, chunk := range lineChunks {
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
		}
		marks = append(marks, lineMarks...)
	}
	return chunks, marks
}

// preserveLine splits a single line into chunks and mark records.
func (p *Punctuator) preserveLine(line string, num int) ([]string, []Mark) {
	guarded := p.matcher.guardDigits(line)

	runs := p.matcher.Find(guarded)
	if len(runs) == 0 {
		return []string{p.matcher.unguardText(guarded)}, nil
	}

	// the line is a single punctuation run
	if len(runs) == 1 && runs[0].Text == guarded {
		return nil, []Mark{{Line: num, Text: guarded, Position: PositionAlone}}
	}

	// classify each run by where it sits in the line: begin (B), end (E),
	// or in the middle (I)
	marks := make([]Mark, len(runs))
	for i, run := range runs {
		position := PositionMiddle
		switch {
		case i == 0 && run.Start == 0:
			position = PositionBegin
		case i == len(runs)-1 && run.End == len(guarded):
			position = PositionEnd
		}
		marks[i] = Mark{Line: num, Text: run.Text, Position: position}
	}

	// split the line at each run, keeping the gaps as chunks
	chunks := make([]string, 0, len(runs)+1)
	prev := 0
	for _, run := range runs {
		chunks = append(chunks, p.matcher.unguardText(guarded[prev:run.Start]))
		prev = run.End
	}
	chunks = append(chunks, p.matcher.unguardText(guarded[prev:]))

	return chunks, marks
}
