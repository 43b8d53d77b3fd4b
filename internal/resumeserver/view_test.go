package resumeserver

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_resume/internal/resume"
)

func TestNewRecordViewEducationKeys(t *testing.T) {
	rec := resume.ResumeRecord{
		Education: []resume.EducationEntry{
			{SchoolName: "State University", Degree: "BSc", EndYear: "2018"},
		},
	}
	data, err := json.Marshal(NewRecordView(rec))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	// school_name is renamed on the wire, and year keys are always emitted so
	// consumers can diff records field by field.
	if !strings.Contains(out, `"institution":"State University"`) {
		t.Errorf("institution key missing: %s", out)
	}
	if strings.Contains(out, "school_name") {
		t.Errorf("internal key leaked to the wire: %s", out)
	}
	if !strings.Contains(out, `"start_year":""`) {
		t.Errorf("empty start_year not emitted: %s", out)
	}
	if !strings.Contains(out, `"end_year":"2018"`) {
		t.Errorf("end_year missing: %s", out)
	}
}

func TestNewRecordViewCertificateKeys(t *testing.T) {
	rec := resume.ResumeRecord{
		Certifications: []resume.CertificateEntry{
			{CertificateName: "AWS SA", IssueDate: "06/2021"},
		},
	}
	data, err := json.Marshal(NewRecordView(rec))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, `"certificateName":"AWS SA"`) {
		t.Errorf("camelCase certificate key missing: %s", out)
	}
	if !strings.Contains(out, `"issueDate":"06/2021"`) {
		t.Errorf("camelCase issue date missing: %s", out)
	}
	if strings.Contains(out, "certificate_name") {
		t.Errorf("internal key leaked to the wire: %s", out)
	}
}

func TestNewRecordViewEmptyRecord(t *testing.T) {
	view := NewRecordView(resume.ResumeRecord{})
	if view.Education == nil {
		t.Error("education must be an empty list, not null")
	}
	if len(view.Certifications) != 0 || len(view.Experience) != 0 {
		t.Errorf("empty record produced entries: %+v", view)
	}
}
