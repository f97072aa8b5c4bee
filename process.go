package punct

import (
	"context"
	"fmt"
)

// Processor consumes punctuation-free chunks and produces processed chunks.
// Implementations must keep chunk count and order intact for lossless
// restoration; a Processor that does not is tolerated but restoration
// quality degrades.
type Processor interface {
	Process(ctx context.Context, chunks []string) ([]string, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, chunks []string) ([]string, error)

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, chunks []string) ([]string, error) {
	return f(ctx, chunks)
}

// Apply runs lines through proc with punctuation hidden: it preserves the
// lines, hands the punctuation-free chunks to proc, and restores the marks
// into proc's output. Returns ErrProcess if proc fails.
func (p *Punctuator) Apply(ctx context.Context, lines []string, proc Processor) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunks, marks := p.Preserve(lines)
	p.log.Debug().
		Int("lines", len(lines)).
		Int("chunks", len(chunks)).
		Int("marks", len(marks)).
		Msg("preserved punctuation")

	processed, err := proc.Process(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcess, err)
	}
	if len(processed) != len(chunks) {
		p.log.Warn().
			Int("sent", len(chunks)).
			Int("received", len(processed)).
			Msg("processor changed chunk count; restoration may be lossy")
	}

	return Restore(processed, marks), nil
}
