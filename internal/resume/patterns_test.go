package resume

import (
	"strings"
	"testing"
)

// --- Validate ---

func TestDefaultPatternsValid(t *testing.T) {
	if err := DefaultPatterns().Validate(); err != nil {
		t.Fatalf("DefaultPatterns().Validate() = %v", err)
	}
}

func TestValidateRejectsSharedSynonym(t *testing.T) {
	p := DefaultPatterns()
	p.Headings[SectionProjects] = append(p.Headings[SectionProjects], "achievements")

	err := p.Validate()
	if err == nil {
		t.Fatal("Validate accepted a synonym shared across two sections")
	}
	if !strings.Contains(err.Error(), "achievements") {
		t.Errorf("error %q does not name the offending synonym", err)
	}
}

func TestValidateRejectsEmptySection(t *testing.T) {
	p := DefaultPatterns()
	p.Headings[SectionSkills] = nil
	if p.Validate() == nil {
		t.Fatal("Validate accepted a section with no synonyms")
	}
}

func TestSectionOrderCoversAllSections(t *testing.T) {
	p := DefaultPatterns()
	if len(SectionOrder) != len(p.Headings) {
		t.Fatalf("SectionOrder has %d sections, Headings has %d", len(SectionOrder), len(p.Headings))
	}
	for _, sec := range SectionOrder {
		if _, ok := p.Headings[sec]; !ok {
			t.Errorf("section %q missing from default headings", sec)
		}
	}
}

// Every synonym is stored lowercase: heading matching lowercases the input
// line once and never the tables.
func TestHeadingSynonymsLowercase(t *testing.T) {
	p := DefaultPatterns()
	for sec, variants := range p.Headings {
		for _, v := range variants {
			if v != strings.ToLower(v) {
				t.Errorf("section %q synonym %q is not lowercase", sec, v)
			}
		}
	}
}

// --- MergePatternsYAML ---

func TestMergePatternsYAML(t *testing.T) {
	t.Run("partial override replaces one section", func(t *testing.T) {
		p, err := MergePatternsYAML([]byte("headings:\n  summary: [\"resumen\", \"perfil\"]\n"))
		if err != nil {
			t.Fatalf("MergePatternsYAML: %v", err)
		}
		if got := p.Headings[SectionSummary]; len(got) != 2 || got[0] != "resumen" {
			t.Errorf("summary synonyms = %v", got)
		}
		// Untouched sections keep their defaults.
		if len(p.Headings[SectionExperience]) == 0 {
			t.Error("experience synonyms lost during merge")
		}
	})

	t.Run("override breaking disjointness rejected", func(t *testing.T) {
		_, err := MergePatternsYAML([]byte("headings:\n  summary: [\"education\"]\n"))
		if err == nil {
			t.Fatal("merge accepted a synonym already owned by another section")
		}
	})

	t.Run("unknown section rejected", func(t *testing.T) {
		_, err := MergePatternsYAML([]byte("headings:\n  hobbies: [\"hobbies\"]\n"))
		if err == nil {
			t.Fatal("merge accepted an unknown section name")
		}
	})

	t.Run("scalar overrides", func(t *testing.T) {
		p, err := MergePatternsYAML([]byte("personal_email_domains: [\"web.de\", \"gmx\"]\nseparator_glyphs: \"~\"\n"))
		if err != nil {
			t.Fatalf("MergePatternsYAML: %v", err)
		}
		if len(p.PersonalEmailDomains) != 2 || p.SeparatorGlyphs != "~" {
			t.Errorf("overrides not applied: %v %q", p.PersonalEmailDomains, p.SeparatorGlyphs)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := MergePatternsYAML([]byte("headings: [not a map")); err == nil {
			t.Fatal("invalid yaml accepted")
		}
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		p, err := MergePatternsYAML(nil)
		if err != nil {
			t.Fatalf("MergePatternsYAML(nil): %v", err)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("defaults after empty merge invalid: %v", err)
		}
	})
}
