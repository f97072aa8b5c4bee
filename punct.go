package punct

import (
	"github.com/rs/zerolog"
)

// Punctuator hides punctuation from a downstream text-processing engine and
// restores it afterwards. Create with New(), configure via options.
// A Punctuator is immutable after construction and safe for concurrent use.
type Punctuator struct {
	cfg     punctuatorConfig
	matcher *Matcher
	log     zerolog.Logger
}

// punctuatorConfig holds internal configuration for Punctuator.
type punctuatorConfig struct {
	marks string
}

// Option configures a Punctuator.
type Option func(*Punctuator)

// WithMarks sets the punctuation marks to recognize. Each mark is a single
// character; duplicates are collapsed. Defaults to DefaultMarks.
func WithMarks(marks string) Option {
	return func(p *Punctuator) {
		p.cfg.marks = marks
	}
}

// WithLogger sets the logger used for processing diagnostics.
// Logging is disabled by default.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Punctuator) {
		p.log = log
	}
}

// New creates a Punctuator with default configuration.
// Use options to customize behavior (e.g., WithMarks, WithLogger).
// Returns ErrInvalidMarks if the configured mark set is not usable.
func New(opts ...Option) (*Punctuator, error) {
	p := &Punctuator{
		cfg: punctuatorConfig{marks: DefaultMarks},
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	matcher, err := NewMatcher(p.cfg.marks)
	if err != nil {
		return nil, err
	}
	p.matcher = matcher

	return p, nil
}

// Marks returns the deduplicated mark characters this Punctuator recognizes.
func (p *Punctuator) Marks() string {
	return p.matcher.Marks()
}

// Remove returns text with every punctuation run replaced by a single space
// and the result trimmed. Unlike Preserve, nothing is recorded: the marks
// are gone for good. Applying Remove twice equals applying it once.
func (p *Punctuator) Remove(text string) string {
	return p.matcher.Strip(text)
}

// RemoveLines applies Remove to each line, returning a slice of the same
// length and order.
func (p *Punctuator) RemoveLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = p.matcher.Strip(line)
	}
	return out
}
