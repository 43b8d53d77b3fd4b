package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// --- Redaction ---

var (
	urlAnyRe       = regexp.MustCompile(`https?://\S+|www\.\S+`)
	streetLineRe   = regexp.MustCompile(`(?im)^.*\b\d+[,\s]+[A-Za-z].*\b(street|st|road|rd|avenue|ave|lane|ln|block|sector|phase|nagar|colony|apartment|apt|flat|floor|building|tower|plot|house)\b.*$`)
	postcodeNearRe = regexp.MustCompile(`\b\d{5,6}\b`)
	multiSpaceRe   = regexp.MustCompile(` {2,}`)
)

// RedactPersonalInfo strips contact details, addresses and standalone name
// lines from text. Passes run in a fixed order so that later, coarser passes
// never see fragments the earlier ones should have consumed.
func (p *Patterns) RedactPersonalInfo(text string) string {
	text = phoneFindRe.ReplaceAllString(text, " ")
	text = emailFindRe.ReplaceAllString(text, " ")
	text = urlAnyRe.ReplaceAllString(text, " ")
	for _, g := range p.SeparatorGlyphs {
		text = strings.ReplaceAll(text, string(g), " ")
	}
	text = streetLineRe.ReplaceAllString(text, " ")
	text = p.redactPostcodes(text)
	text = p.redactPlaces(text)
	text = p.redactNameLines(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpaceRe.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// redactPostcodes removes 5-to-6 digit runs, but only on lines that also carry a
// location keyword. Bare numbers elsewhere (scores, revenue figures) survive.
func (p *Patterns) redactPostcodes(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsAnyWordFold(line, p.LocationWords) && !containsAnyWordFold(line, p.StreetWords) {
			continue
		}
		lines[i] = postcodeNearRe.ReplaceAllString(line, " ")
	}
	return strings.Join(lines, "\n")
}

func (p *Patterns) redactPlaces(text string) string {
	for _, name := range p.Cities {
		text = replaceWordFold(text, name)
	}
	for _, name := range p.States {
		text = replaceWordFold(text, name)
	}
	return text
}

// redactNameLines blanks lines that are nothing but a 2-4 word capitalized
// name, excluding lines containing common résumé vocabulary or job-title
// words.
func (p *Patterns) redactNameLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		words := strings.Fields(trimmed)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if containsAnyWordFold(trimmed, p.CommonWords) || containsAnyWordFold(trimmed, p.JobTitleWords) {
			continue
		}
		ok := true
		for _, w := range words {
			if !nameWordRe.MatchString(w) || w[0] < 'A' || w[0] > 'Z' {
				ok = false
				break
			}
		}
		if ok {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// replaceWordFold removes whole-word, case-insensitive occurrences of name.
// Matching walks the original text on rune boundaries with EqualFold instead
// of indexing into a lowered copy, since lowercasing can change UTF-8 byte
// lengths and desync the offsets.
func replaceWordFold(text, name string) string {
	if name == "" {
		return text
	}
	var b strings.Builder
	i := 0
	for i < len(text) {
		if len(text)-i >= len(name) && strings.EqualFold(text[i:i+len(name)], name) {
			end := i + len(name)
			beforeOK := i == 0 || !isWordByte(text[i-1])
			afterOK := end == len(text) || !isWordByte(text[end])
			if beforeOK && afterOK {
				b.WriteString(" ")
				i = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// StripHeaderLines drops leading lines that look like contact-header noise: a
// line with two or more contact indicators anywhere, or a lone URL, email or
// phone within the first five lines. The first body-looking line stops the
// scan.
func (p *Patterns) StripHeaderLines(text string) string {
	lines := strings.Split(text, "\n")
	start := 0
	for i, line := range lines {
		if i >= 5 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			start = i + 1
			continue
		}
		indicators := 0
		if emailFindRe.MatchString(trimmed) {
			indicators++
		}
		if phoneFindRe.MatchString(trimmed) {
			indicators++
		}
		if urlAnyRe.MatchString(trimmed) {
			indicators++
		}
		if containsAnyWordFold(trimmed, p.LocationWords) {
			indicators++
		}
		lone := indicators == 1 && len(strings.Fields(trimmed)) <= 3
		if indicators >= 2 || lone || p.LikelyPersonName(trimmed) && len(strings.Fields(trimmed)) <= 4 {
			start = i + 1
			continue
		}
		break
	}
	return strings.TrimSpace(strings.Join(lines[start:], "\n"))
}

// SignificantChars counts non-whitespace, non-punctuation runes — used to
// decide whether redaction left any real content behind.
func SignificantChars(text string) int {
	n := 0
	for _, r := range text {
		switch {
		case r == ' ' || r == '\n' || r == '\t' || r == '\r':
		case strings.ContainsRune(`.,;:!?-_()[]{}|/\'"`, r):
		default:
			n++
		}
	}
	return n
}
