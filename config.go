package punct

import (
	"fmt"

	"github.com/alnah/go-punct/internal/yamlutil"
)

// Built-in profile names.
const (
	ProfileDefault  = "default"
	ProfileMinimal  = "minimal"
	ProfileProsodic = "prosodic"
)

// Profiles maps profile names to mark sets.
type Profiles map[string]string

// BuiltinProfiles returns the built-in named mark sets.
func BuiltinProfiles() Profiles {
	return Profiles{
		ProfileDefault:  DefaultMarks,
		ProfileMinimal:  `,.?!`,
		ProfileProsodic: `,.;:?!…—`,
	}
}

// profilesDoc is the YAML shape accepted by LoadProfiles:
//
//	profiles:
//	  quotes: '"«»“”'
//	  terse: '.!?'
type profilesDoc struct {
	Profiles map[string]string `yaml:"profiles"`
}

// LoadProfiles parses named mark sets from YAML data, validates each one
// against the matcher construction rules, and merges them over the
// built-in profiles. A loaded profile may override a built-in of the same
// name. Returns ErrProfileParse for malformed YAML and ErrInvalidMarks for
// a profile whose mark set is not usable.
func LoadProfiles(data []byte) (Profiles, error) {
	var doc profilesDoc
	if err := yamlutil.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileParse, err)
	}

	merged := BuiltinProfiles()
	for name, marks := range doc.Profiles {
		if _, err := NewMatcher(marks); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		merged[name] = marks
	}
	return merged, nil
}

// Marks returns the mark set registered under name.
func (p Profiles) Marks(name string) (string, error) {
	marks, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return marks, nil
}
