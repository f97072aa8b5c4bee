// Package punct hides punctuation from downstream text-processing engines
// and restores it afterwards at the original position.
//
// Text engines handle punctuation inconsistently: some discard it silently,
// others reject punctuated input outright. This package solves that by
// splitting lines into punctuation-free chunks plus an ordered record of
// removed marks, and re-interleaving processed chunks with those marks
// afterwards.
//
// # Quick Start
//
// Create a Punctuator, preserve, process the chunks, restore:
//
//	p, err := punct.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chunks, marks := p.Preserve([]string{"hello, my world!"})
//	// chunks: ["hello", "my world"], safe to feed to any engine
//
//	processed := engine.Run(chunks) // same count and order as chunks
//
//	lines := punct.Restore(processed, marks)
//	// lines: ["hello, my world!"] with the engine's output in place
//
// Or let Apply drive the round trip:
//
//	lines, err := p.Apply(ctx, input, engine)
//
// # Preservation Pipeline
//
// Preserve walks each line through these stages:
//
//  1. Digit guarding (decimal separators are never treated as marks)
//  2. Run detection (maximal whitespace+marks+whitespace runs)
//  3. Splitting into chunks and positioned mark records
//  4. Unguarding of every emitted chunk
//
// Restore is the inverse: an iterative walk over the processed chunks and
// the mark records, aligned by source line index. The caller must keep
// chunk count and order intact between Preserve and Restore; mismatches
// degrade gracefully rather than fail.
//
// # Configuration
//
// Use functional options to customize the Punctuator:
//
//	p, err := punct.New(
//	    punct.WithMarks(",.?!"),
//	    punct.WithLogger(logger),
//	)
//
// Named mark sets can be loaded from YAML via LoadProfiles:
//
//	profiles, err := punct.LoadProfiles(data)
//	marks, err := profiles.Marks("prosodic")
//	p, err := punct.New(punct.WithMarks(marks))
//
// # Removal Without Restoration
//
// When punctuation should be dropped for good, Remove replaces every
// punctuation run with a single space and trims the result:
//
//	p.Remove("well, hello!") // "well hello"
package punct
