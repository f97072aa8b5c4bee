package punct

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Digit-guard placeholders use Unicode Private Use Area characters, one per
// configured mark. These are guaranteed to not conflict with any standard
// characters, so a guarded decimal separator passes through run detection
// unchanged. Unguarding converts them back before chunks are returned.
const (
	guardBase rune = 0xE000 // U+E000: Private Use Area start
	guardMax  rune = 0xF8FF // U+F8FF: Private Use Area end
)

// Matcher recognizes maximal punctuation runs in a line: optional
// whitespace, one or more configured marks, optional whitespace.
// Consecutive runs merge into a single match. A Matcher is immutable after
// construction and safe for concurrent use.
type Matcher struct {
	marks   string          // deduplicated mark characters
	runs    *regexp.Regexp  // (\s*[marks]+\s*)+
	guard   *regexp2.Regexp // (?<=digit)[marks](?=digit)
	toGuard map[rune]rune   // mark -> placeholder
	unguard *strings.Replacer
}

// NewMatcher builds a Matcher for the given mark characters. Duplicates are
// collapsed; order is irrelevant. Returns ErrInvalidMarks for an empty set,
// invalid UTF-8, whitespace characters, or characters in the reserved
// guard range.
func NewMatcher(marks string) (*Matcher, error) {
	if marks == "" {
		return nil, fmt.Errorf("%w: empty mark set", ErrInvalidMarks)
	}
	if !utf8.ValidString(marks) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidMarks)
	}

	seen := make(map[rune]bool, len(marks))
	deduped := make([]rune, 0, len(marks))
	for _, r := range marks {
		if unicode.IsSpace(r) {
			return nil, fmt.Errorf("%w: whitespace character %q in mark set", ErrInvalidMarks, r)
		}
		if r >= guardBase && r <= guardMax {
			return nil, fmt.Errorf("%w: character %q is in the reserved guard range", ErrInvalidMarks, r)
		}
		if !seen[r] {
			seen[r] = true
			deduped = append(deduped, r)
		}
	}

	class := classEscape(deduped)
	runs, err := regexp.Compile(`(\s*[` + class + `]+\s*)+`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMarks, err)
	}
	guard, err := regexp2.Compile(`(?<=\d)[`+class+`](?=\d)`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMarks, err)
	}

	toGuard := make(map[rune]rune, len(deduped))
	pairs := make([]string, 0, 2*len(deduped))
	for i, r := range deduped {
		placeholder := guardBase + rune(i)
		toGuard[r] = placeholder
		pairs = append(pairs, string(placeholder), string(r))
	}

	return &Matcher{
		marks:   string(deduped),
		runs:    runs,
		guard:   guard,
		toGuard: toGuard,
		unguard: strings.NewReplacer(pairs...),
	}, nil
}

// Marks returns the deduplicated mark characters this Matcher recognizes.
func (m *Matcher) Marks() string {
	return m.marks
}

// Strip replaces every punctuation run in line with a single space and
// trims leading and trailing whitespace. The input is not mutated.
func (m *Matcher) Strip(line string) string {
	return strings.TrimSpace(m.runs.ReplaceAllString(line, " "))
}

// Find returns the ordered, non-overlapping punctuation runs in line,
// leftmost first.
func (m *Matcher) Find(line string) []Run {
	indexes := m.runs.FindAllStringIndex(line, -1)
	if indexes == nil {
		return nil
	}
	found := make([]Run, len(indexes))
	for i, idx := range indexes {
		found[i] = Run{Text: line[idx[0]:idx[1]], Start: idx[0], End: idx[1]}
	}
	return found
}

// guardDigits replaces every mark character sitting directly between two
// digits with its placeholder, so decimal separators survive run detection.
// The lookaround pattern is zero-width on both sides: in "1,2,3" both
// separators are guarded, since no digit is consumed by a match.
func (m *Matcher) guardDigits(line string) string {
	guarded, err := m.guard.ReplaceFunc(line, func(match regexp2.Match) string {
		r, _ := utf8.DecodeRuneInString(match.String())
		return string(m.toGuard[r])
	}, -1, -1)
	if err != nil {
		return line
	}
	return guarded
}

// unguardText reverses guardDigits on a chunk.
func (m *Matcher) unguardText(chunk string) string {
	return m.unguard.Replace(chunk)
}

// classEscape escapes runes for use inside a regexp character class.
func classEscape(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
