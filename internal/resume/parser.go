package resume

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/anatolykoptev/go-kit/strutil"
)

// DefaultMaxSectionChars caps how much of a section is handed to the
// structured extractor in a single call.
const DefaultMaxSectionChars = 8000

// Options configures a Parser. Zero values are filled with defaults: built-in
// patterns, no extractor (pure regex path), the default slog logger.
type Options struct {
	Patterns        *Patterns
	Extractor       StructuredExtractor
	MaxSectionChars int
	Logger          *slog.Logger
}

// Parser turns raw résumé text into a ResumeRecord. It is safe for
// concurrent use: all state is set at construction and read-only afterwards.
type Parser struct {
	patterns  *Patterns
	extractor StructuredExtractor
	maxChars  int
	log       *slog.Logger
}

// NewParser builds a Parser from opts.
func NewParser(opts Options) *Parser {
	p := &Parser{
		patterns:  opts.Patterns,
		extractor: opts.Extractor,
		maxChars:  opts.MaxSectionChars,
		log:       opts.Logger,
	}
	if p.patterns == nil {
		p.patterns = DefaultPatterns()
	}
	if p.maxChars <= 0 {
		p.maxChars = DefaultMaxSectionChars
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	return p
}

// Parse processes one résumé. It never fails: malformed or too-short input
// yields an empty record, and every extractor problem degrades to the regex
// fallback or to absence.
func (p *Parser) Parse(ctx context.Context, raw string) ResumeRecord {
	incrParseRequests()

	text := Normalize(raw)
	if len(text) < MinDocumentLength {
		p.log.Debug("document below minimum length, returning empty record",
			slog.Int("len", len(text)))
		return ResumeRecord{}
	}

	sections := p.patterns.DetectSections(text)
	found := 0
	for _, body := range sections {
		if body != "" {
			found++
		}
	}
	incrSectionsDetected(int64(found))
	p.log.Debug("sections detected", slog.Int("count", found))

	var rec ResumeRecord
	rec.Contact = p.parseContacts(ctx, text)
	rec.Summary = p.parseSummary(ctx, sections[SectionSummary])
	rec.Experience = p.parseExperience(ctx, text, sections[SectionExperience])

	rec.Education = p.parseEducation(ctx, text, sections[SectionEducation])
	if body, ok := p.groupText(text, sections[SectionCertifications], GroupCertifications); ok {
		if out, usable := p.patterns.CleanCertificates(p.extract(ctx, GroupCertifications, body)); usable {
			rec.Certifications = out
		}
	}
	if body, ok := p.groupText(text, sections[SectionProjects], GroupProjects); ok {
		if out, usable := p.patterns.CleanProjects(p.extract(ctx, GroupProjects, body)); usable {
			rec.Projects = out
		}
	}
	if body, ok := p.groupText(text, sections[SectionSkills], GroupSkills); ok {
		if out, usable := CleanSkills(p.extract(ctx, GroupSkills, body)); usable {
			rec.Skills = out
		}
	}
	if body, ok := p.groupText(text, sections[SectionAchievements], GroupAchievements); ok {
		if out, usable := CleanAchievements(p.extract(ctx, GroupAchievements, body)); usable {
			rec.Achievements = out
		}
	}
	return rec
}

// groupText picks the text to extract a field group from: the detected
// section when present, the full document when the group's keyword gate fires
// anywhere in it, nothing otherwise. Groups without a section or a keyword
// hit are skipped entirely so the extractor is never called speculatively.
func (p *Parser) groupText(full, section string, group FieldGroup) (string, bool) {
	if section != "" {
		return strutil.TruncateWith(section, p.maxChars, ""), true
	}
	if p.extractor == nil {
		return "", false
	}
	if containsAnyFold(full, p.patterns.FallbackKeywords[group]) {
		return strutil.TruncateWith(full, p.maxChars, ""), true
	}
	return "", false
}

// extract runs the structured extractor for one group, converting every
// failure mode to a nil payload the Clean* layer treats as unusable.
func (p *Parser) extract(ctx context.Context, group FieldGroup, text string) json.RawMessage {
	if p.extractor == nil || text == "" {
		return nil
	}
	incrExtractorCalls()
	var raw json.RawMessage
	err := TrackOperation(ctx, "extract_"+string(group), func(ctx context.Context) error {
		var err error
		raw, err = p.extractor.Extract(ctx, group, text)
		return err
	})
	if err != nil {
		incrExtractorErrors()
		p.log.Warn("extractor failed", slog.String("group", string(group)), slog.Any("error", err))
		return nil
	}
	return raw
}

// parseContacts always computes the regex fallback and uses it to fill any
// field the extractor left empty. The extractor sees only the header region.
func (p *Parser) parseContacts(ctx context.Context, text string) ContactRecord {
	fallback := p.patterns.FallbackContacts(text)

	var c ContactRecord
	if p.extractor != nil {
		raw := p.extract(ctx, GroupContacts, HeaderRegion(text))
		if got, usable := p.patterns.CleanContacts(raw); usable {
			c = got
		} else if raw != nil {
			incrExtractorUnusable()
		}
	}
	if c == (ContactRecord{}) {
		incrRegexFallbacks()
	}
	if c.FirstName == "" && c.LastName == "" {
		c.FirstName, c.LastName = fallback.FirstName, fallback.LastName
	}
	if c.Email == "" {
		c.Email = fallback.Email
	}
	if c.Phone == "" {
		c.Phone = fallback.Phone
	}
	if c.LinkedInURL == "" {
		c.LinkedInURL = fallback.LinkedInURL
	}
	if c.GitHubURL == "" {
		c.GitHubURL = fallback.GitHubURL
	}
	if c.LeetCodeURL == "" {
		c.LeetCodeURL = fallback.LeetCodeURL
	}
	return c
}

// parseSummary builds the summary strictly from the summary section: text
// appearing under any other heading never leaks in. The extractor output is
// preferred; otherwise the section itself, header-stripped and redacted.
// A summary reduced below MinDocumentLength significant characters by
// redaction is treated as absent.
func (p *Parser) parseSummary(ctx context.Context, section string) string {
	if section == "" {
		return ""
	}
	if p.extractor != nil {
		raw := p.extract(ctx, GroupSummary, strutil.TruncateWith(section, p.maxChars, ""))
		if s, usable := CleanSummary(raw); usable {
			if redacted := p.patterns.RedactPersonalInfo(s); SignificantChars(redacted) >= MinDocumentLength {
				return redacted
			}
			incrSummariesCollapsed()
			return ""
		}
		if raw != nil {
			incrExtractorUnusable()
		}
	}
	incrRegexFallbacks()
	stripped := p.patterns.StripHeaderLines(section)
	redacted := p.patterns.RedactPersonalInfo(stripped)
	if SignificantChars(redacted) < MinDocumentLength {
		incrSummariesCollapsed()
		return ""
	}
	return redacted
}

// parseExperience extracts from the experience section when present; with no
// section but a keyword hit the extractor re-runs over the full document,
// since experience has no regex re-derivation to fall back to.
func (p *Parser) parseExperience(ctx context.Context, full, section string) []ExperienceEntry {
	body, ok := p.groupText(full, section, GroupExperience)
	if !ok {
		return nil
	}
	raw := p.extract(ctx, GroupExperience, body)
	out, usable := p.patterns.CleanExperience(raw)
	if usable {
		return out
	}
	if raw != nil {
		incrExtractorUnusable()
	}
	// The section slice may have cut mid-entry; one retry over the whole
	// document is the only second chance.
	if section != "" && p.extractor != nil {
		raw = p.extract(ctx, GroupExperience, strutil.TruncateWith(full, p.maxChars, ""))
		if out, usable = p.patterns.CleanExperience(raw); usable {
			return out
		}
		if raw != nil {
			incrExtractorUnusable()
		}
	}
	return nil
}

// parseEducation follows the same shape as parseExperience: a found-but-
// unusable section earns one retry over the whole document, since degrees
// often sit in a sidebar the section slice missed.
func (p *Parser) parseEducation(ctx context.Context, full, section string) []EducationEntry {
	body, ok := p.groupText(full, section, GroupEducation)
	if !ok {
		return nil
	}
	raw := p.extract(ctx, GroupEducation, body)
	out, usable := p.patterns.CleanEducation(raw)
	if usable {
		return out
	}
	if raw != nil {
		incrExtractorUnusable()
	}
	if section != "" && p.extractor != nil {
		raw = p.extract(ctx, GroupEducation, strutil.TruncateWith(full, p.maxChars, ""))
		if out, usable = p.patterns.CleanEducation(raw); usable {
			return out
		}
		if raw != nil {
			incrExtractorUnusable()
		}
	}
	return nil
}
