package resume

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// patternsFile mirrors Patterns for YAML decoding. Every field is optional;
// unset fields keep their defaults.
type patternsFile struct {
	Headings             map[string][]string `yaml:"headings"`
	FallbackKeywords     map[string][]string `yaml:"fallback_keywords"`
	Months               map[string]string   `yaml:"months"`
	JobTitleWords        []string            `yaml:"job_title_words"`
	OrgWords             []string            `yaml:"org_words"`
	PersonalEmailDomains []string            `yaml:"personal_email_domains"`
	SeparatorGlyphs      string              `yaml:"separator_glyphs"`
	StreetWords          []string            `yaml:"street_words"`
	LocationWords        []string            `yaml:"location_words"`
	Cities               []string            `yaml:"cities"`
	States               []string            `yaml:"states"`
	CommonWords          []string            `yaml:"common_words"`
}

// LoadPatternsYAML reads a partial pattern override file and merges it over
// the defaults. Per-section and per-group lists replace wholesale rather than
// append, so a locale file can both add and remove synonyms. The merged
// result is re-validated before use.
func LoadPatternsYAML(path string) (*Patterns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns file: %w", err)
	}
	return MergePatternsYAML(data)
}

// MergePatternsYAML merges YAML override bytes over DefaultPatterns.
func MergePatternsYAML(data []byte) (*Patterns, error) {
	var file patternsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode patterns yaml: %w", err)
	}

	p := DefaultPatterns()
	for name, synonyms := range file.Headings {
		sec := Section(name)
		if _, ok := p.Headings[sec]; !ok {
			return nil, fmt.Errorf("unknown section %q in patterns yaml", name)
		}
		p.Headings[sec] = synonyms
	}
	for name, keywords := range file.FallbackKeywords {
		p.FallbackKeywords[FieldGroup(name)] = keywords
	}
	for name, num := range file.Months {
		p.Months[name] = num
	}
	if file.JobTitleWords != nil {
		p.JobTitleWords = file.JobTitleWords
	}
	if file.OrgWords != nil {
		p.OrgWords = file.OrgWords
	}
	if file.PersonalEmailDomains != nil {
		p.PersonalEmailDomains = file.PersonalEmailDomains
	}
	if file.SeparatorGlyphs != "" {
		p.SeparatorGlyphs = file.SeparatorGlyphs
	}
	if file.StreetWords != nil {
		p.StreetWords = file.StreetWords
	}
	if file.LocationWords != nil {
		p.LocationWords = file.LocationWords
	}
	if file.Cities != nil {
		p.Cities = file.Cities
	}
	if file.States != nil {
		p.States = file.States
	}
	if file.CommonWords != nil {
		p.CommonWords = file.CommonWords
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("merged patterns invalid: %w", err)
	}
	return p, nil
}
