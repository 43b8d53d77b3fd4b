package extractor

import (
	"testing"

	"github.com/anatolykoptev/go_resume/internal/resume"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fences", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "surrounding whitespace", in: "  \n{\"a\":1}\n  ", want: `{"a":1}`},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Every field group the parser can ask about must have a prompt; an
// unprompted group would silently disable extraction for it.
func TestGroupPromptsComplete(t *testing.T) {
	groups := []resume.FieldGroup{
		resume.GroupContacts, resume.GroupExperience, resume.GroupEducation,
		resume.GroupSkills, resume.GroupCertifications, resume.GroupProjects,
		resume.GroupAchievements, resume.GroupSummary,
	}
	for _, g := range groups {
		if _, ok := groupPrompts[g]; !ok {
			t.Errorf("no prompt for field group %q", g)
		}
	}
}
