package resume

import (
	"context"
	"encoding/json"
)

// StructuredExtractor produces structured JSON for one field group from a
// slice of résumé text. Implementations may call out to an LLM or any other
// service; the parser treats any error, nil payload or malformed shape as a
// signal to fall back, never as a failure of the parse.
type StructuredExtractor interface {
	Extract(ctx context.Context, group FieldGroup, text string) (json.RawMessage, error)
}

// ExtractorFunc adapts a function to the StructuredExtractor interface.
type ExtractorFunc func(ctx context.Context, group FieldGroup, text string) (json.RawMessage, error)

func (f ExtractorFunc) Extract(ctx context.Context, group FieldGroup, text string) (json.RawMessage, error) {
	return f(ctx, group, text)
}
