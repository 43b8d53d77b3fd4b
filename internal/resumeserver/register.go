// Package resumeserver exposes the resume parser over MCP. Three read-only
// tools cover the pipeline at different depths: full parse, section
// segmentation only, and redaction only.
package resumeserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/resume"
)

// ParseInput is the request shape shared by all three tools.
type ParseInput struct {
	Text string `json:"text" jsonschema:"Raw resume text to process"`
}

// SectionsOutput maps detected section names to their text spans. Sections
// whose headings were not found are omitted.
type SectionsOutput struct {
	Sections map[string]string `json:"sections"`
}

// RedactOutput carries text with personal information removed.
type RedactOutput struct {
	Text string `json:"text"`
}

// RegisterTools registers resume_parse, resume_sections and resume_redact on
// the given MCP server.
func RegisterTools(server *mcp.Server, parser *resume.Parser, patterns *resume.Patterns) {
	registerParse(server, parser)
	registerSections(server, patterns)
	registerRedact(server, patterns)
}

func registerParse(server *mcp.Server, parser *resume.Parser) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_parse",
		Description: "Parse raw resume text into a structured record: contacts, summary, experience, education, skills, certifications, projects, achievements. Dates normalize to MM/YYYY, education years to YYYY sorted most recent first. Fields that cannot be extracted are omitted, never guessed.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ParseInput) (*mcp.CallToolResult, RecordView, error) {
		if input.Text == "" {
			return nil, RecordView{}, errors.New("text is required")
		}
		rec := parser.Parse(ctx, input.Text)
		return nil, NewRecordView(rec), nil
	})
}

func registerSections(server *mcp.Server, patterns *resume.Patterns) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_sections",
		Description: "Split resume text into logical sections (summary, experience, education, skills, certifications, projects, achievements) by heading detection. Returns only the sections whose headings were found.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input ParseInput) (*mcp.CallToolResult, SectionsOutput, error) {
		if input.Text == "" {
			return nil, SectionsOutput{}, errors.New("text is required")
		}
		detected := patterns.DetectSections(resume.Normalize(input.Text))
		out := SectionsOutput{Sections: make(map[string]string)}
		for sec, body := range detected {
			if body != "" {
				out.Sections[string(sec)] = body
			}
		}
		return nil, out, nil
	})
}

func registerRedact(server *mcp.Server, patterns *resume.Patterns) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_redact",
		Description: "Remove personal information from resume text: emails, phone numbers, URLs, addresses, postcodes, city and state names, standalone name lines. Returns the redacted text.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input ParseInput) (*mcp.CallToolResult, RedactOutput, error) {
		if input.Text == "" {
			return nil, RedactOutput{}, errors.New("text is required")
		}
		return nil, RedactOutput{Text: patterns.RedactPersonalInfo(resume.Normalize(input.Text))}, nil
	})
}
