// Package extractor provides the LLM-backed implementation of the structured
// extractor the resume parser falls back from. It is deliberately thin: one
// call per field group, fenced-JSON cleanup, no retries. Shape validation of
// the returned payload belongs to the parser, not here.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_resume/internal/resume"
)

const systemPrompt = `You extract structured data from resume text.
Respond with JSON only: no prose, no markdown fences, no explanations.
Omit fields you cannot find rather than inventing values.`

// groupPrompts maps each field group to the instruction describing the JSON
// shape expected back. Keys mirror the parser's cleaning layer.
var groupPrompts = map[resume.FieldGroup]string{
	resume.GroupContacts: `Extract contact details as a JSON object with keys:
first_name, last_name, desired_title, email, phone, country, city, address,
postcode, linkedin_url, github_url, leetcode_url.`,
	resume.GroupExperience: `Extract work experience as a JSON array of objects with keys:
job_title, employer, start_date, end_date, location, description.
Keep the order of the source text. Use "Present" for current roles.`,
	resume.GroupEducation: `Extract education as a JSON array of objects with keys:
school_name, degree, field, start_year, end_year, grade.`,
	resume.GroupSkills: `Extract skills as a JSON object with keys:
technical (array of strings), soft (array of strings).`,
	resume.GroupCertifications: `Extract certifications as a JSON array of objects with keys:
certificate_name, issuer, issue_date, credential_url.`,
	resume.GroupProjects: `Extract projects as a JSON array of objects with keys:
project_name, description, technologies (array of strings), project_url.`,
	resume.GroupAchievements: `Extract achievements and awards as a JSON array of strings.`,
	resume.GroupSummary:      `Extract the professional summary as a single JSON string.`,
}

// Extractor calls an LLM once per field group and returns its raw JSON.
type Extractor struct {
	client  *llm.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

// Options configures New. RatePerSecond <= 0 disables rate limiting.
type Options struct {
	Client        *llm.Client
	RatePerSecond float64
	Burst         int
	Logger        *slog.Logger
}

// New builds an Extractor around a go-kit llm client.
func New(opts Options) *Extractor {
	e := &Extractor{client: opts.Client, log: opts.Logger}
	if e.log == nil {
		e.log = slog.Default()
	}
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		e.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}
	return e
}

// Extract implements resume.StructuredExtractor. One attempt per call; any
// failure is returned immediately for the parser to handle.
func (e *Extractor) Extract(ctx context.Context, group resume.FieldGroup, text string) (json.RawMessage, error) {
	prompt, ok := groupPrompts[group]
	if !ok {
		return nil, fmt.Errorf("extract %s: no prompt for group", group)
	}
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("extract %s: %w", group, err)
		}
	}

	raw, err := e.client.Complete(ctx, systemPrompt,
		fmt.Sprintf("%s\n\nResume text:\n%s", prompt, text),
		llm.WithChatTemperature(0.0),
	)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", group, err)
	}

	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("extract %s: empty response", group)
	}
	if !json.Valid([]byte(cleaned)) {
		e.log.Debug("extractor returned invalid json",
			slog.String("group", string(group)), slog.Int("len", len(cleaned)))
		return nil, fmt.Errorf("extract %s: response is not valid JSON", group)
	}
	return json.RawMessage(cleaned), nil
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
