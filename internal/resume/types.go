package resume

// ContactRecord holds the identity and contact fields of a parsed résumé.
// Absent values are empty strings, never placeholders.
type ContactRecord struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	DesiredTitle string `json:"desired_title,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Country      string `json:"country,omitempty"`
	City         string `json:"city,omitempty"`
	Address      string `json:"address,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	GitHubURL    string `json:"github_url,omitempty"`
	LeetCodeURL  string `json:"leetcode_url,omitempty"`
}

// ExperienceEntry is one job. Dates are MM/YYYY; an empty EndDate means the
// role is current.
type ExperienceEntry struct {
	JobTitle    string `json:"job_title,omitempty"`
	Employer    string `json:"employer,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one school or program. Years are bare 4-digit strings; an
// empty EndYear on an otherwise dated entry means study is ongoing.
type EducationEntry struct {
	SchoolName string `json:"school_name,omitempty"`
	Degree     string `json:"degree,omitempty"`
	Field      string `json:"field,omitempty"`
	StartYear  string `json:"start_year,omitempty"`
	EndYear    string `json:"end_year,omitempty"`
	Grade      string `json:"grade,omitempty"`
}

// CertificateEntry is one certification or license.
type CertificateEntry struct {
	CertificateName string `json:"certificate_name,omitempty"`
	Issuer          string `json:"issuer,omitempty"`
	IssueDate       string `json:"issue_date,omitempty"`
	CredentialURL   string `json:"credential_url,omitempty"`
}

// ProjectEntry is one personal or professional project.
type ProjectEntry struct {
	ProjectName  string   `json:"project_name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	ProjectURL   string   `json:"project_url,omitempty"`
}

// SkillGroups carries the two skill buckets. Either may be empty.
type SkillGroups struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
}

// ResumeRecord is the aggregate result of a parse. Every field may be empty;
// Parse never fails outright.
type ResumeRecord struct {
	Contact        ContactRecord      `json:"contact"`
	Summary        string             `json:"summary,omitempty"`
	Experience     []ExperienceEntry  `json:"experience,omitempty"`
	Education      []EducationEntry   `json:"education,omitempty"`
	Skills         SkillGroups        `json:"skills"`
	Certifications []CertificateEntry `json:"certifications,omitempty"`
	Projects       []ProjectEntry     `json:"projects,omitempty"`
	Achievements   []string           `json:"achievements,omitempty"`
}

// RequiredAnyOf maps each entry kind to the field keys of which at least one
// must be non-empty for the entry to be kept. Policy is data, not code, so a
// test can assert it directly.
var RequiredAnyOf = map[FieldGroup][]string{
	GroupExperience:     {"job_title", "employer"},
	GroupEducation:      {"school_name", "degree"},
	GroupCertifications: {"certificate_name"},
	GroupProjects:       {"project_name"},
}
