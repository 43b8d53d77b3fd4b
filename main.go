// go_resume — resume parsing MCP server.
//
// Exposes three MCP tools: resume_parse, resume_sections, resume_redact.
// Segmentation and field normalization run on deterministic rules; structured
// extraction of entry groups is delegated to an optional LLM extractor with a
// regex fallback.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/extractor"
	"github.com/anatolykoptev/go_resume/internal/resume"
	"github.com/anatolykoptev/go_resume/internal/resumeserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	_ = godotenv.Load()

	slog.Info("starting go_resume",
		slog.String("port", mcpPort),
	)

	patterns := loadPatterns()
	parser := resume.NewParser(resume.Options{
		Patterns:        patterns,
		Extractor:       buildExtractor(),
		MaxSectionChars: env.Int("MAX_SECTION_CHARS", resume.DefaultMaxSectionChars),
	})

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_resume",
		Version: version,
	}, nil)

	resumeserver.RegisterTools(server, parser, patterns)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_resume",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      resume.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

// loadPatterns returns the built-in tables, with PATTERNS_FILE overrides
// merged on top when configured. A broken override file falls back to the
// defaults rather than refusing to start.
func loadPatterns() *resume.Patterns {
	path := env.Str("PATTERNS_FILE", "")
	if path == "" {
		return resume.DefaultPatterns()
	}
	p, err := resume.LoadPatternsYAML(path)
	if err != nil {
		slog.Warn("patterns file rejected, using defaults",
			slog.String("path", path), slog.Any("error", err))
		return resume.DefaultPatterns()
	}
	slog.Info("patterns loaded", slog.String("path", path))
	return p
}

// buildExtractor wires the LLM extractor when an API key is configured.
// Without one the parser runs on the pure regex path.
func buildExtractor() resume.StructuredExtractor {
	apiKey := env.Str("LLM_API_KEY", "")
	if apiKey == "" {
		slog.Info("no LLM configured, running regex-only")
		return nil
	}
	client := llm.NewClient(
		env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		apiKey,
		env.Str("LLM_MODEL", "gemini-2.5-flash"),
		llm.WithFallbackKeys(env.List("LLM_API_KEY_FALLBACKS", "")),
		llm.WithMaxTokens(env.Int("LLM_MAX_TOKENS", 8192)),
		llm.WithTemperature(env.Float("LLM_TEMPERATURE", 0.0)),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)
	return extractor.New(extractor.Options{
		Client:        client,
		RatePerSecond: env.Float("LLM_RATE_PER_SECOND", 2),
		Burst:         env.Int("LLM_RATE_BURST", 4),
	})
}
