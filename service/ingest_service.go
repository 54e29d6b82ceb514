package service

import (
	"context"
	"fmt"
	"log"

	"github.com/docusage/docusage-be/database"
	"github.com/docusage/docusage-be/types"
)

type IngestService struct {
	store   database.DocumentStore
	sources []types.Source
}

func NewIngestService(store database.DocumentStore, sources []types.Source) *IngestService {
	if len(sources) == 0 {
		sources = types.DefaultSources
	}
	return &IngestService{
		store:   store,
		sources: sources,
	}
}

// Sources returns the recognized source set.
func (s *IngestService) Sources() []types.Source {
	return s.sources
}

// Ingest validates and appends one document. Failures are reported as a
// boolean, not an error: the callers of this boundary only need a pass/fail
// signal.
func (s *IngestService) Ingest(ctx context.Context, source, name, content string) types.IngestResult {
	input, err := s.validate(source, name, content)
	if err != nil {
		log.Printf("ingest rejected: %v", err)
		return types.IngestResult{Success: false}
	}
	if _, err := s.store.Append(ctx, *input); err != nil {
		log.Printf("ingest failed: %v", err)
		return types.IngestResult{Success: false}
	}
	return types.IngestResult{Success: true}
}

// Seed validates every record and resets the store to exactly that set. Unlike
// Ingest this is an admin operation, so failures propagate.
func (s *IngestService) Seed(ctx context.Context, inputs []types.DocumentInput) error {
	for i, input := range inputs {
		if _, err := s.validate(string(input.Source), input.Name, input.Content); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return s.store.ReplaceAll(ctx, inputs)
}

func (s *IngestService) validate(source, name, content string) (*types.DocumentInput, error) {
	src, ok := types.ParseSource(source, s.sources)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized source %q", types.ErrValidation, source)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", types.ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", types.ErrValidation)
	}
	return &types.DocumentInput{Source: src, Name: name, Content: content}, nil
}
