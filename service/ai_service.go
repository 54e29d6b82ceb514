package service

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// CompletionRequest describes a single schema-constrained model call.
type CompletionRequest struct {
	System     string
	Prompt     string
	SchemaName string
	Schema     *jsonschema.Definition
}

// CompletionService maps a prompt plus an expected output schema to raw
// structured output. The pipelines validate the returned bytes against the
// declared schema before anything is handed to a caller.
type CompletionService interface {
	Complete(ctx context.Context, req CompletionRequest) ([]byte, error)
}
