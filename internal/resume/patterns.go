// Package resume is a rule-based résumé segmentation and normalization engine.
//
// It splits free-form résumé text (usually PDF-extracted, possibly OCR-noisy)
// into labeled logical sections and extracts structured contact and entry data
// using deterministic text rules. An optional StructuredExtractor collaborator
// can supply richer entry data; the engine validates its shape and falls back
// to its own regex extraction when the collaborator is absent or unusable.
package resume

import (
	"fmt"
	"regexp"
)

// Section is a logical résumé section. The set is closed: every parse produces
// exactly one (possibly empty) body per section.
type Section string

const (
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionAchievements   Section = "achievements"
)

// SectionOrder is the fixed iteration order for heading matching. When a line
// could match synonyms of two sections (it should not — synonym sets are
// disjoint), the section listed first wins. Keep this order stable: it is the
// documented tie-break.
var SectionOrder = []Section{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionProjects,
	SectionAchievements,
}

// FieldGroup identifies one extraction target for the orchestrator and the
// structured-extractor collaborator.
type FieldGroup string

const (
	GroupContacts       FieldGroup = "contacts"
	GroupExperience     FieldGroup = "experience"
	GroupEducation      FieldGroup = "education"
	GroupSkills         FieldGroup = "skills"
	GroupProjects       FieldGroup = "projects"
	GroupCertifications FieldGroup = "certifications"
	GroupAchievements   FieldGroup = "achievements"
	GroupSummary        FieldGroup = "summary"
)

// --- Fixed grammars (not configurable) ---

var (
	emailFindRe   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	emailStrictRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneFindRe   = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	phoneCleanRe  = regexp.MustCompile(`[\s\-()]`)
	phoneValidRe  = regexp.MustCompile(`^\+?\d{10,15}$`)
	postcode5Re   = regexp.MustCompile(`^\d{5}$`)
	postcode6Re   = regexp.MustCompile(`^\d{6}$`)
	yearRe        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	nameWordRe    = regexp.MustCompile(`^[A-Za-z\-']+$`)

	// urlStrictRe accepts http(s) URLs with a real host (domain, localhost or IP).
	urlStrictRe = regexp.MustCompile(`(?i)^https?://(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}\.?|localhost|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})(?::\d+)?(?:/?|[/?]\S+)$`)

	linkedinRe = regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/[^\s)]+`)
	githubRe   = regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[^\s)]+`)
	leetcodeRe = regexp.MustCompile(`(?i)https?://(?:www\.)?leetcode\.com/[^\s)]+`)
)

// Patterns holds the heuristic tables the engine matches against. Instances
// are immutable after construction and safe for concurrent use; locale
// variants are built by merging overrides over DefaultPatterns (see
// LoadPatternsYAML).
type Patterns struct {
	// Headings maps each section to its ordered, lowercase heading synonyms.
	// Sets must be pairwise disjoint across sections (Validate enforces this).
	Headings map[Section][]string

	// FallbackKeywords gate full-document extraction for a field group whose
	// section heading was not found.
	FallbackKeywords map[FieldGroup][]string

	// Months maps lowercase month names (full and abbreviated) to "01".."12".
	Months map[string]string

	// JobTitleWords and OrgWords disqualify a candidate string as a person name.
	JobTitleWords []string
	OrgWords      []string

	// PersonalEmailDomains are preferred when several emails are present.
	PersonalEmailDomains []string

	// Redaction tables.
	SeparatorGlyphs string   // glyph class used between header fragments
	StreetWords     []string // street-type keywords for address patterns
	LocationWords   []string // words that mark a nearby 5-6 digit run as a postcode
	Cities          []string // known city names (uppercase), one national table
	States          []string // known state names (uppercase), same country
	CommonWords     []string // words that keep a capitalized line from being a name line
}

// DefaultPatterns returns the built-in English tables.
func DefaultPatterns() *Patterns {
	return &Patterns{
		Headings: map[Section][]string{
			SectionSummary: {
				"summary", "professional summary", "career summary",
				"profile", "about me", "about",
				"objective", "career objective", "professional objective",
				"personal statement", "overview", "executive summary",
			},
			SectionExperience: {
				"experience", "work experience", "professional experience",
				"employment", "employment history", "work history",
				"career history", "job experience", "industry experience",
				"internship", "internships", "internship experience",
				"industrial training", "training", "apprenticeship",
				"practical experience", "hands-on experience",
			},
			SectionEducation: {
				"education", "academic", "academics", "academic background",
				"educational background", "educational qualifications",
				"qualification", "qualifications", "education & qualifications",
				"academic qualifications", "schooling", "education details",
				"education history",
			},
			SectionSkills: {
				"technical skills", "technical skill", "skills", "skillset",
				"tech skills", "core skills", "key skills", "hard skills",
				"professional skills", "technical proficiencies",
				"technical proficiency", "technical expertise", "software skills",
				"tools & technologies", "tools and technologies", "technologies",
				"tech stack", "technical toolkit", "programming skills",
				"programming languages", "programming language", "it skills",
				"computer skills", "domain skills", "specialized skills",
				"primary skills", "relevant skills", "development skills",
				"technical competencies", "skill highlights", "skills highlights",
				"languages", "language", "tools", "tool", "technical tools",
				"software tools", "developer tools",
			},
			SectionCertifications: {
				"certificate", "certificates", "certification", "certifications",
				"courses", "trainings", "skill certifications", "online courses",
				"licenses", "credentials",
			},
			SectionProjects: {
				"projects", "project", "personal projects", "side projects",
				"portfolio projects", "key projects", "notable projects",
				"selected projects", "project experience", "project work",
			},
			SectionAchievements: {
				"achievements", "achievement", "awards", "award", "honors",
				"honor", "accomplishments", "accomplishment", "recognition",
				"recognitions", "awards & achievements", "honors & awards",
			},
		},
		FallbackKeywords: map[FieldGroup][]string{
			GroupExperience:     {"experience", "work", "employment"},
			GroupEducation:      {"education", "university", "college", "degree"},
			GroupProjects:       {"project", "portfolio", "github"},
			GroupCertifications: {"certificate", "certification", "license", "credential"},
		},
		Months: map[string]string{
			"january": "01", "february": "02", "march": "03", "april": "04",
			"may": "05", "june": "06", "july": "07", "august": "08",
			"september": "09", "october": "10", "november": "11", "december": "12",
			"jan": "01", "feb": "02", "mar": "03", "apr": "04",
			"jun": "06", "jul": "07", "aug": "08",
			"sep": "09", "sept": "09", "oct": "10", "nov": "11", "dec": "12",
		},
		JobTitleWords: []string{
			"engineer", "developer", "manager", "analyst", "designer",
			"specialist", "consultant", "director", "lead", "senior", "junior",
			"associate", "architect", "scientist", "researcher", "coordinator",
			"executive",
		},
		OrgWords: []string{
			"university", "college", "institute", "school", "corporation",
			"inc", "ltd", "llc", "company", "technologies", "solutions",
			"systems",
		},
		PersonalEmailDomains: []string{
			"gmail", "outlook", "yahoo", "hotmail", "icloud", "protonmail",
		},
		SeparatorGlyphs: `◇•|`,
		StreetWords: []string{
			"street", "st", "road", "rd", "avenue", "ave", "lane", "ln",
			"drive", "dr", "boulevard", "blvd", "nagar", "colony", "area",
		},
		LocationWords: []string{
			"near", "at", "in", "from", "to", "address", "location", "city",
			"state", "country", "postal", "zip", "pin",
		},
		Cities: []string{
			"COIMBATORE", "CHENNAI", "BANGALORE", "MUMBAI", "DELHI",
			"HYDERABAD", "PUNE", "KOLKATA", "AHMEDABAD", "JAIPUR", "LUCKNOW",
			"KANPUR", "NAGPUR", "INDORE", "THANE", "BHOPAL", "VISAKHAPATNAM",
			"PATNA", "VADODARA", "GHAZIABAD", "LUDHIANA", "AGRA", "NASHIK",
			"MEERUT", "RAJKOT", "VARANASI", "SRINAGAR", "AMRITSAR", "RANCHI",
			"GWALIOR", "CHANDIGARH", "JODHPUR", "RAIPUR", "KOTA", "GUWAHATI",
			"MYSORE", "BHUBANESWAR", "COCHIN", "TRIVANDRUM", "MADURAI", "SURAT",
		},
		States: []string{
			"TAMILNADU", "KARNATAKA", "MAHARASHTRA", "DELHI", "GUJARAT",
			"RAJASTHAN", "PUNJAB", "WEST BENGAL", "BIHAR", "ODISHA",
			"ANDHRA PRADESH", "TELANGANA", "KERALA", "HARYANA",
			"UTTAR PRADESH", "MADHYA PRADESH", "ASSAM", "JHARKHAND",
			"CHHATTISGARH", "HIMACHAL PRADESH", "UTTARAKHAND", "GOA",
			"PUDUCHERRY",
		},
		CommonWords: []string{
			"the", "and", "or", "of", "in", "at", "to", "for", "with", "on",
			"is", "are", "was", "were", "be", "been", "have", "has", "had",
			"do", "does", "did", "will", "would", "should", "could", "may",
			"might", "must", "can",
		},
	}
}

// Validate checks the invariants the segmenter relies on: every section has at
// least one synonym, and no synonym belongs to two sections.
func (p *Patterns) Validate() error {
	seen := make(map[string]Section)
	for _, sec := range SectionOrder {
		variants := p.Headings[sec]
		if len(variants) == 0 {
			return fmt.Errorf("patterns: section %q has no heading synonyms", sec)
		}
		for _, v := range variants {
			if prev, ok := seen[v]; ok {
				return fmt.Errorf("patterns: synonym %q assigned to both %q and %q", v, prev, sec)
			}
			seen[v] = sec
		}
	}
	return nil
}
