package resume

import "strings"

// SplitName splits a candidate full name into (first, last). Two words map
// directly; three or more keep the first word as the first name and join the
// rest. Empty input yields two absent values.
func SplitName(fullName string) (first, last string) {
	words := strings.Fields(strings.TrimSpace(fullName))
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	case 2:
		return words[0], words[1]
	default:
		return words[0], strings.Join(words[1:], " ")
	}
}

// LikelyPersonName reports whether text plausibly names a person rather than
// a job title or an organization: no job-title or org keyword anywhere, and
// every word purely alphabetic apart from hyphens and apostrophes.
func (p *Patterns) LikelyPersonName(text string) bool {
	if containsAnyWordFold(text, p.JobTitleWords) || containsAnyWordFold(text, p.OrgWords) {
		return false
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !nameWordRe.MatchString(w) {
			return false
		}
	}
	return true
}

// CleanPhone strips whitespace, hyphens and parentheses.
func CleanPhone(phone string) string {
	return phoneCleanRe.ReplaceAllString(strings.TrimSpace(phone), "")
}

// ValidPhone cleans phone and accepts it only as 10-15 digits with an
// optional leading '+'. Invalid input returns "" — never a malformed value.
func ValidPhone(phone string) string {
	cleaned := CleanPhone(phone)
	if phoneValidRe.MatchString(cleaned) {
		return cleaned
	}
	return ""
}

// ValidEmail accepts only a strict local@domain.tld address, lower-cased.
func ValidEmail(email string) string {
	email = strings.TrimSpace(email)
	if emailStrictRe.MatchString(email) {
		return strings.ToLower(email)
	}
	return ""
}

// ValidPostcode accepts only 5-digit (US convention) or 6-digit (Indian
// convention) numeric strings.
func ValidPostcode(code string) string {
	code = strings.TrimSpace(code)
	if postcode5Re.MatchString(code) || postcode6Re.MatchString(code) {
		return code
	}
	return ""
}

// RepairURL validates a credential/portfolio link, prepending https:// when
// the scheme is missing. Inputs shorter than 10 characters are rejected
// outright — they are fragments, not links. Anything still invalid after
// repair resolves to "".
func RepairURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) < 10 {
		return ""
	}
	if urlStrictRe.MatchString(raw) {
		return raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return ""
	}
	raw = "https://" + raw
	if !urlStrictRe.MatchString(raw) {
		return ""
	}
	return raw
}

// FallbackEmail extracts an email by regex, preferring the header region and,
// within a region, personal-domain addresses over corporate ones.
func (p *Patterns) FallbackEmail(text string) string {
	for _, region := range []string{HeaderRegion(text), text} {
		matches := emailFindRe.FindAllString(region, -1)
		if len(matches) == 0 {
			continue
		}
		for _, email := range matches {
			lower := strings.ToLower(email)
			for _, domain := range p.PersonalEmailDomains {
				if strings.Contains(lower, domain) {
					return lower
				}
			}
		}
		return strings.ToLower(matches[0])
	}
	return ""
}

// FallbackPhone extracts the first phone-like sequence that survives
// validation, header region first.
func (p *Patterns) FallbackPhone(text string) string {
	for _, region := range []string{HeaderRegion(text), text} {
		for _, m := range phoneFindRe.FindAllString(region, -1) {
			if phone := ValidPhone(m); phone != "" {
				return phone
			}
		}
	}
	return ""
}

// FallbackURLs extracts the first linkedin/github/leetcode profile URLs from
// the full document.
func (p *Patterns) FallbackURLs(text string) (linkedin, github, leetcode string) {
	return linkedinRe.FindString(text), githubRe.FindString(text), leetcodeRe.FindString(text)
}

// FallbackName scans the first non-empty header lines for something that
// looks like a person's name and splits it. Lines carrying an email, phone or
// URL are skipped; the first plausible candidate of at most four words wins.
func (p *Patterns) FallbackName(text string) (first, last string) {
	seen := 0
	for _, line := range strings.Split(HeaderRegion(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if emailFindRe.MatchString(line) || phoneFindRe.MatchString(line) || strings.Contains(line, "/") {
			continue
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		if p.LikelyPersonName(line) {
			return SplitName(line)
		}
	}
	return "", ""
}

// FallbackContacts builds a ContactRecord from regex extraction alone — the
// path taken when no structured extractor is available or its contact output
// is unusable.
func (p *Patterns) FallbackContacts(text string) ContactRecord {
	var c ContactRecord
	c.FirstName, c.LastName = p.FallbackName(text)
	c.Email = p.FallbackEmail(text)
	c.Phone = p.FallbackPhone(text)
	c.LinkedInURL, c.GitHubURL, c.LeetCodeURL = p.FallbackURLs(text)
	return c
}
