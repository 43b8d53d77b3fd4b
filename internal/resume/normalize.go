package resume

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// MinDocumentLength is the shortest input (after normalization) the parser
// will attempt to segment. Anything shorter resolves to an empty record.
const MinDocumentLength = 10

// Header region sizing for contact extraction: the larger of the first
// headerLines lines and the first headerChars characters, capped at headerCap.
const (
	headerLines = 50
	headerChars = 2000
	headerCap   = 3000
)

var (
	hspaceRe     = regexp.MustCompile(`[ \t]+`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	trailSpaceRe = regexp.MustCompile(` +\n`)
)

// ocrSubstitutions is the fixed table of safe OCR confusion fixes applied to
// body text. It is deliberately tiny: every rule here can corrupt legitimate
// characters, so only substitutions that are near-certain noise in résumé
// prose are listed. The lossy digit-zero→O rule is NOT here — it would destroy
// phones, years and postcodes — it is applied only to heading-line candidates
// in matchHeading.
var ocrSubstitutions = []struct{ from, to string }{
	{" | ", " I "}, // pipe between words is almost always a broken capital I
	{"ﬁ", "fi"},
	{"ﬂ", "fl"},
}

// Normalize canonicalizes line endings and whitespace while preserving line
// structure, applies the OCR substitution table, and trims. Idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = hspaceRe.ReplaceAllString(text, " ")
	text = trailSpaceRe.ReplaceAllString(text, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	for _, sub := range ocrSubstitutions {
		// To a fixpoint: adjacent separators ("a | | b") leave a fresh
		// occurrence behind after one non-overlapping ReplaceAll pass.
		for strings.Contains(text, sub.from) {
			text = strings.ReplaceAll(text, sub.from, sub.to)
		}
	}
	return strings.TrimSpace(text)
}

// HeaderRegion returns the top-of-document slice used for contact extraction:
// the larger of the first 50 lines or the first 2000 characters, capped at
// 3000 characters (rune-safe).
func HeaderRegion(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}
	header := strings.Join(lines, "\n")

	if first := strutil.TruncateWith(text, headerChars, ""); len(first) > len(header) {
		header = first
	}
	return strutil.TruncateWith(header, headerCap, "")
}

// containsAnyFold reports whether text contains any of the keywords,
// case-insensitively. Used by the full-document fallback gates.
func containsAnyFold(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// containsAnyWordFold is the whole-word variant, needed where the keyword
// table holds short words ("in", "at") that would match inside ordinary
// vocabulary as substrings.
func containsAnyWordFold(text string, keywords []string) bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	for _, w := range words {
		for _, kw := range keywords {
			if w == kw {
				return true
			}
		}
	}
	return false
}
