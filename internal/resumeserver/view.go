package resumeserver

import "github.com/anatolykoptev/go_resume/internal/resume"

// --- Output projections ---
//
// The wire shapes differ from the internal record in two legacy-compatible
// ways: education renames school_name to institution and always emits its
// year keys (empty string when unknown, so consumers can diff records
// field-by-field), and certificates use camelCase keys.

// EducationView is the wire shape of one education entry.
type EducationView struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field_of_study"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Grade       string `json:"grade"`
}

// CertificateView is the wire shape of one certificate entry.
type CertificateView struct {
	CertificateName string `json:"certificateName"`
	Issuer          string `json:"issuer,omitempty"`
	IssueDate       string `json:"issueDate,omitempty"`
	CredentialURL   string `json:"credentialUrl,omitempty"`
}

// RecordView is the wire shape of a full parse result.
type RecordView struct {
	Contact        resume.ContactRecord     `json:"contact"`
	Summary        string                   `json:"summary,omitempty"`
	Experience     []resume.ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationView          `json:"education"`
	Skills         resume.SkillGroups       `json:"skills"`
	Certifications []CertificateView        `json:"certifications,omitempty"`
	Projects       []resume.ProjectEntry    `json:"projects,omitempty"`
	Achievements   []string                 `json:"achievements,omitempty"`
}

// NewRecordView projects an internal record onto the wire shapes.
func NewRecordView(rec resume.ResumeRecord) RecordView {
	view := RecordView{
		Contact:      rec.Contact,
		Summary:      rec.Summary,
		Experience:   rec.Experience,
		Education:    make([]EducationView, 0, len(rec.Education)),
		Skills:       rec.Skills,
		Projects:     rec.Projects,
		Achievements: rec.Achievements,
	}
	for _, e := range rec.Education {
		view.Education = append(view.Education, EducationView{
			Institution: e.SchoolName,
			Degree:      e.Degree,
			Field:       e.Field,
			StartYear:   e.StartYear,
			EndYear:     e.EndYear,
			Grade:       e.Grade,
		})
	}
	for _, c := range rec.Certifications {
		view.Certifications = append(view.Certifications, CertificateView{
			CertificateName: c.CertificateName,
			Issuer:          c.Issuer,
			IssueDate:       c.IssueDate,
			CredentialURL:   c.CredentialURL,
		})
	}
	return view
}
