package resume

import (
	"sort"
	"strings"
)

// headingMatch records one detected heading line. Ephemeral: only used to
// compute spans, ordered by line index.
type headingMatch struct {
	section Section
	line    int
	variant string
}

// DetectSections splits text into logical sections by heading lines.
//
// The result is total: every Section key is present, missing sections map to
// "". Works when sections appear in any order, headings carry extra words
// ("Professional Experience"), or the same logical section is headed twice
// ("Experience" and later "Internships" both map to experience; their bodies
// are joined with a blank line, in document order).
//
// When no heading matches anywhere, all bodies are empty — whole-document
// fallback is the caller's decision, not the segmenter's.
func (p *Patterns) DetectSections(text string) map[Section]string {
	sections := make(map[Section]string, len(SectionOrder))
	for _, sec := range SectionOrder {
		sections[sec] = ""
	}

	lines := strings.Split(text, "\n")

	var matches []headingMatch
	for i, line := range lines {
		normalized := strings.ToLower(strings.TrimSpace(line))
		if normalized == "" {
			continue
		}
		if sec, variant, ok := p.matchHeading(normalized); ok {
			matches = append(matches, headingMatch{section: sec, line: i, variant: variant})
		}
	}

	if len(matches) == 0 {
		return sections
	}

	sort.SliceStable(matches, func(a, b int) bool { return matches[a].line < matches[b].line })

	// Slice between successive headings; a heading directly followed by the
	// next heading contributes an empty span.
	for idx, m := range matches {
		start := m.line + 1
		end := len(lines)
		if idx+1 < len(matches) {
			end = matches[idx+1].line
		}
		body := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		if body == "" {
			continue
		}
		if sections[m.section] != "" {
			sections[m.section] += "\n\n" + body
		} else {
			sections[m.section] = body
		}
	}

	return sections
}

// matchHeading tests a lowercase-trimmed line against every synonym of every
// section, in SectionOrder then synonym-list order; the first match wins.
//
// A line is a heading for a synonym v when it equals v, starts with "v ",
// ends with " v", contains v as a standalone token, or starts with "v:" or
// "v-". Before matching, standalone zero digits are mapped to "o" — the one
// place the aggressive OCR zero→O substitution is safe, because heading lines
// carry no numeric data.
func (p *Patterns) matchHeading(normalized string) (Section, string, bool) {
	candidates := []string{normalized}
	if deZeroed := strings.ReplaceAll(normalized, "0", "o"); deZeroed != normalized {
		candidates = append(candidates, deZeroed)
	}

	for _, sec := range SectionOrder {
		for _, v := range p.Headings[sec] {
			for _, line := range candidates {
				if line == v ||
					strings.HasPrefix(line, v+" ") ||
					strings.HasSuffix(line, " "+v) ||
					strings.Contains(" "+line+" ", " "+v+" ") ||
					strings.HasPrefix(line, v+":") ||
					strings.HasPrefix(line, v+"-") {
					return sec, v, true
				}
			}
		}
	}
	return "", "", false
}
