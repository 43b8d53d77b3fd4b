package resume

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	datePrefixRe     = regexp.MustCompile(`(?i)^(issued|completed|earned|obtained|received|date:?)\s*:?\s*`)
	mmYYYYRe         = regexp.MustCompile(`^(\d{1,2})[/-](\d{4})$`)
	isoYYYYMMRe      = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})$`)
	ddmmYYYYRe       = regexp.MustCompile(`^\d{1,2}[/-](\d{1,2})[/-](\d{4})$`)
	embeddedMMYYYYRe = regexp.MustCompile(`(\d{1,2})[/-](\d{4})`)
	bareYearRe       = regexp.MustCompile(`^(19|20)\d{2}$`)
	yearPrefixRe     = regexp.MustCompile(`(?i)^(from|start|since|to|end|until|graduated|completed)[:\s]*`)
)

// presentMarkers are explicit "still ongoing" values: they normalize to
// absence, not to an error.
var presentMarkers = map[string]bool{
	"present": true, "current": true, "now": true, "ongoing": true,
	"till date": true, "till now": true, "till present": true,
}

// IsPresentMarker reports whether s is an explicit current/ongoing marker.
func IsPresentMarker(s string) bool {
	return presentMarkers[strings.ToLower(strings.TrimSpace(s))]
}

// NormalizeDate converts a date string to canonical MM/YYYY form. Patterns are
// tried in fixed precedence: exact MM/YYYY, ISO YYYY-MM, month-name + year,
// DD/MM/YYYY (day dropped), bare year (January assumed), and finally an
// MM/YYYY substring embedded in noisier text. A match with month outside 1-12
// is rejected and the next pattern is tried. Returns ok=false when nothing
// matches — never a malformed passthrough.
func (p *Patterns) NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	s = strings.TrimSpace(datePrefixRe.ReplaceAllString(s, ""))

	if m := mmYYYYRe.FindStringSubmatch(s); m != nil {
		if out, ok := monthYear(m[1], m[2]); ok {
			return out, true
		}
	}
	if m := isoYYYYMMRe.FindStringSubmatch(s); m != nil {
		if out, ok := monthYear(m[2], m[1]); ok {
			return out, true
		}
	}
	// Month-name match: the name appearing earliest in the string wins
	// (longer name on a tie), so "jan to mar 2023" resolves deterministically.
	lower := strings.ToLower(s)
	bestIdx, bestLen, bestNum := -1, 0, ""
	for name, num := range p.Months {
		idx := strings.Index(lower, name)
		if idx < 0 {
			continue
		}
		if bestIdx == -1 || idx < bestIdx || (idx == bestIdx && len(name) > bestLen) {
			bestIdx, bestLen, bestNum = idx, len(name), num
		}
	}
	if bestIdx >= 0 {
		if year := yearRe.FindString(s); year != "" {
			return bestNum + "/" + year, true
		}
	}
	if m := ddmmYYYYRe.FindStringSubmatch(s); m != nil {
		if out, ok := monthYear(m[1], m[2]); ok {
			return out, true
		}
	}
	if bareYearRe.MatchString(s) {
		return "01/" + s, true
	}
	if m := embeddedMMYYYYRe.FindStringSubmatch(s); m != nil {
		if out, ok := monthYear(m[1], m[2]); ok {
			return out, true
		}
	}
	return "", false
}

// monthYear zero-pads and range-checks a month, returning "MM/YYYY".
func monthYear(month, year string) (string, bool) {
	n, err := strconv.Atoi(month)
	if err != nil || n < 1 || n > 12 {
		return "", false
	}
	return fmt.Sprintf("%02d/%s", n, year), true
}

// ExtractYear pulls a 4-digit year out of an education date string.
// Leading range words (from/since/to/until/graduated/...) are stripped first.
// Present/current/ongoing markers report present=true with no year. When no
// year token is found both returns are empty — absence, not an error.
func ExtractYear(s string) (year string, present bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if IsPresentMarker(s) {
		return "", true
	}
	s = yearPrefixRe.ReplaceAllString(s, "")
	return yearRe.FindString(s), false
}

// yearOrZero parses a 4-digit year for sorting; anything unparseable sorts as 0.
func yearOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
