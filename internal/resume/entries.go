package resume

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// --- Extractor output cleaning ---
//
// Structured extractors return JSON whose shape we do not fully trust: keys
// drift (job_title vs title vs position), lists arrive wrapped in an object,
// dates come in a dozen formats. Each Clean* function below takes the raw
// payload for one field group and produces validated domain values, reporting
// ok=false when the payload is unusable so the caller can fall back.

var wrapperKeys = []string{"items", "entries", "data", "results", "list"}

// unwrapList decodes raw into a list of objects, tolerating a single wrapper
// object keyed by the group name or a generic collection key.
func unwrapList(raw json.RawMessage, groupKeys ...string) ([]map[string]any, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var anyVal any
	if err := json.Unmarshal(raw, &anyVal); err != nil {
		return nil, false
	}
	switch v := anyVal.(type) {
	case []any:
		return objectList(v)
	case map[string]any:
		for _, key := range append(groupKeys, wrapperKeys...) {
			if inner, ok := v[key].([]any); ok {
				return objectList(inner)
			}
		}
	}
	return nil, false
}

func objectList(items []any) ([]map[string]any, bool) {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// pickString returns the first non-empty string value among the alias keys.
// Numeric values are rendered without a fraction so years survive extractors
// that emit them as numbers.
func pickString(m map[string]any, aliases ...string) string {
	for _, key := range aliases {
		switch v := m[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
		}
	}
	return ""
}

func pickStringList(m map[string]any, aliases ...string) []string {
	for _, key := range aliases {
		items, ok := m[key].([]any)
		if !ok {
			continue
		}
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// CleanExperience validates an experience payload. Dates normalize to
// MM/YYYY, present-markers become an absent end date, and entries with
// neither a job title nor an employer are dropped. List order is preserved —
// extractors emit reverse-chronological order and we trust it.
func (p *Patterns) CleanExperience(raw json.RawMessage) ([]ExperienceEntry, bool) {
	items, ok := unwrapList(raw, "experience", "experiences", "work_experience", "jobs")
	if !ok {
		return nil, false
	}
	var out []ExperienceEntry
	for _, m := range items {
		e := ExperienceEntry{
			JobTitle:    pickString(m, "job_title", "title", "position", "role"),
			Employer:    pickString(m, "employer", "company", "company_name", "organization"),
			Location:    pickString(m, "location", "city"),
			Description: pickString(m, "description", "summary", "details"),
		}
		if d, ok := p.NormalizeDate(pickString(m, "start_date", "start", "from")); ok {
			e.StartDate = d
		}
		end := pickString(m, "end_date", "end", "to")
		if !IsPresentMarker(end) {
			if d, ok := p.NormalizeDate(end); ok {
				e.EndDate = d
			}
		}
		if e.JobTitle == "" && e.Employer == "" {
			incrEntriesDropped()
			continue
		}
		out = append(out, e)
	}
	return out, len(out) > 0
}

// CleanEducation validates an education payload. Dates reduce to bare years,
// entries with neither a school nor a degree are dropped, and the result is
// sorted most-recent-first by (end year, start year) with undated entries
// last.
func (p *Patterns) CleanEducation(raw json.RawMessage) ([]EducationEntry, bool) {
	items, ok := unwrapList(raw, "education", "educations", "schools")
	if !ok {
		return nil, false
	}
	var out []EducationEntry
	for _, m := range items {
		e := EducationEntry{
			SchoolName: pickString(m, "school_name", "school", "institution", "university", "college"),
			Degree:     pickString(m, "degree", "qualification"),
			Field:      pickString(m, "field", "field_of_study", "major", "specialization"),
			Grade:      pickString(m, "grade", "gpa", "cgpa", "percentage"),
		}
		if y, _ := ExtractYear(pickString(m, "start_year", "start_date", "start", "from")); y != "" {
			e.StartYear = y
		}
		if y, present := ExtractYear(pickString(m, "end_year", "end_date", "end", "to", "graduation_year")); y != "" && !present {
			e.EndYear = y
		}
		if e.SchoolName == "" && e.Degree == "" {
			incrEntriesDropped()
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, false
	}
	sort.SliceStable(out, func(i, j int) bool {
		if a, b := yearOrZero(out[i].EndYear), yearOrZero(out[j].EndYear); a != b {
			return a > b
		}
		return yearOrZero(out[i].StartYear) > yearOrZero(out[j].StartYear)
	})
	return out, true
}

// CleanCertificates validates a certifications payload. The credential URL is
// repaired or discarded, the issue date normalizes to MM/YYYY, and unnamed
// certificates are dropped.
func (p *Patterns) CleanCertificates(raw json.RawMessage) ([]CertificateEntry, bool) {
	items, ok := unwrapList(raw, "certifications", "certificates")
	if !ok {
		return nil, false
	}
	var out []CertificateEntry
	for _, m := range items {
		c := CertificateEntry{
			CertificateName: pickString(m, "certificate_name", "name", "title", "certification"),
			Issuer:          pickString(m, "issuer", "issuing_organization", "organization", "authority"),
			CredentialURL:   RepairURL(pickString(m, "credential_url", "url", "link")),
		}
		if d, ok := p.NormalizeDate(pickString(m, "issue_date", "date", "issued", "year")); ok {
			c.IssueDate = d
		}
		if c.CertificateName == "" {
			incrEntriesDropped()
			continue
		}
		out = append(out, c)
	}
	return out, len(out) > 0
}

// CleanProjects validates a projects payload; unnamed projects are dropped.
func (p *Patterns) CleanProjects(raw json.RawMessage) ([]ProjectEntry, bool) {
	items, ok := unwrapList(raw, "projects")
	if !ok {
		return nil, false
	}
	var out []ProjectEntry
	for _, m := range items {
		pr := ProjectEntry{
			ProjectName:  pickString(m, "project_name", "name", "title"),
			Description:  pickString(m, "description", "summary", "details"),
			Technologies: pickStringList(m, "technologies", "tech_stack", "tools", "skills"),
			ProjectURL:   RepairURL(pickString(m, "project_url", "url", "link", "github")),
		}
		if pr.ProjectName == "" {
			incrEntriesDropped()
			continue
		}
		out = append(out, pr)
	}
	return out, len(out) > 0
}

// CleanSkills validates a skills payload: either an object with technical and
// soft buckets, or a flat list treated as technical.
func CleanSkills(raw json.RawMessage) (SkillGroups, bool) {
	if len(raw) == 0 {
		return SkillGroups{}, false
	}
	var anyVal any
	if err := json.Unmarshal(raw, &anyVal); err != nil {
		return SkillGroups{}, false
	}
	switch v := anyVal.(type) {
	case map[string]any:
		g := SkillGroups{
			Technical: pickStringList(v, "technical", "technical_skills", "hard_skills", "skills"),
			Soft:      pickStringList(v, "soft", "soft_skills", "interpersonal"),
		}
		return g, len(g.Technical) > 0 || len(g.Soft) > 0
	case []any:
		var flat []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					flat = append(flat, s)
				}
			}
		}
		return SkillGroups{Technical: flat}, len(flat) > 0
	}
	return SkillGroups{}, false
}

// CleanAchievements validates an achievements payload: a list of strings,
// possibly wrapped, with object items reduced to their title/description.
func CleanAchievements(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var anyVal any
	if err := json.Unmarshal(raw, &anyVal); err != nil {
		return nil, false
	}
	items, ok := anyVal.([]any)
	if !ok {
		if m, isMap := anyVal.(map[string]any); isMap {
			for _, key := range append([]string{"achievements", "awards"}, wrapperKeys...) {
				if inner, isList := m[key].([]any); isList {
					items, ok = inner, true
					break
				}
			}
		}
	}
	if !ok {
		return nil, false
	}
	var out []string
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, s)
			}
		case map[string]any:
			if s := pickString(v, "title", "name", "achievement", "description"); s != "" {
				out = append(out, s)
			}
		}
	}
	return out, len(out) > 0
}

// CleanContacts validates a contacts payload. Every field passes through its
// validator; invalid values come back absent rather than malformed, so the
// caller can fill gaps from regex extraction.
func (p *Patterns) CleanContacts(raw json.RawMessage) (ContactRecord, bool) {
	if len(raw) == 0 {
		return ContactRecord{}, false
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ContactRecord{}, false
	}
	if inner, ok := m["contacts"].(map[string]any); ok {
		m = inner
	} else if inner, ok := m["contact"].(map[string]any); ok {
		m = inner
	}
	var c ContactRecord
	c.FirstName = pickString(m, "first_name", "firstname", "given_name")
	c.LastName = pickString(m, "last_name", "lastname", "surname", "family_name")
	if c.FirstName == "" && c.LastName == "" {
		if full := pickString(m, "full_name", "name"); full != "" && p.LikelyPersonName(full) {
			c.FirstName, c.LastName = SplitName(full)
		}
	}
	c.DesiredTitle = pickString(m, "desired_title", "headline", "title")
	c.Email = ValidEmail(pickString(m, "email", "email_address"))
	c.Phone = ValidPhone(pickString(m, "phone", "phone_number", "mobile", "contact_number"))
	c.Country = pickString(m, "country")
	c.City = pickString(m, "city", "town")
	c.Address = pickString(m, "address", "street_address")
	c.Postcode = ValidPostcode(pickString(m, "postcode", "pincode", "zip", "zip_code"))
	c.LinkedInURL = RepairURL(pickString(m, "linkedin_url", "linkedin"))
	c.GitHubURL = RepairURL(pickString(m, "github_url", "github"))
	c.LeetCodeURL = RepairURL(pickString(m, "leetcode_url", "leetcode"))
	return c, c != (ContactRecord{})
}

// CleanSummary validates a summary payload: a bare JSON string or an object
// with a summary/text key.
func CleanSummary(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", false
	}
	s = pickString(m, "summary", "text", "profile", "objective")
	return s, s != ""
}
