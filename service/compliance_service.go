package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docusage/docusage-be/database"
	"github.com/docusage/docusage-be/types"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Canned verdict for an empty policy knowledge base.
const (
	EmptyPolicyBaseReason  = "The knowledge base is empty."
	EmptyPolicyBaseSummary = "Cannot check for policy violations because no policy documents have been indexed. Please add documents in the 'Data Sources' section."
)

const complianceSystemPrompt = "You are an expert AI specializing in detecting policy violations in documents. " +
	"You will be given a text snippet and a knowledge base of company policies. " +
	"Compare the document against every policy in the knowledge base. " +
	"If the document violates one or more policies, set needsUpdate to true, give a concise one-sentence reason, " +
	"and provide a detailed point-by-point explanation of each violation in the summary, with a suggested correction for each. " +
	"If the document is fully compliant, set needsUpdate to false, set the reason to \"The document is compliant with all policies.\", " +
	"and leave the summary empty."

var complianceSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"needsUpdate": {
			Type:        jsonschema.Boolean,
			Description: "Whether the document needs to be updated to conform to policy.",
		},
		"reason": {
			Type:        jsonschema.String,
			Description: "A brief, one-sentence explanation of the result.",
		},
		"summary": {
			Type:        jsonschema.String,
			Description: "A point-by-point summary of policy violations. Empty when no violations are found.",
		},
	},
	Required: []string{"needsUpdate", "reason", "summary"},
}

type ComplianceService struct {
	store      database.DocumentStore
	completion CompletionService
	timeout    time.Duration
}

func NewComplianceService(store database.DocumentStore, completion CompletionService, timeout time.Duration) *ComplianceService {
	return &ComplianceService{
		store:      store,
		completion: completion,
		timeout:    timeout,
	}
}

// CheckCompliance compares the given text against the indexed policy corpus.
// It never writes to the store.
func (s *ComplianceService) CheckCompliance(ctx context.Context, documentText string) (*types.ComplianceResult, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, fmt.Errorf("%w: document text must not be empty", types.ErrValidation)
	}

	docs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return &types.ComplianceResult{
			NeedsUpdate: true,
			Reason:      EmptyPolicyBaseReason,
			Summary:     EmptyPolicyBaseSummary,
		}, nil
	}

	prompt := fmt.Sprintf("Document Text:\n```\n%s\n```\n\nKnowledge Base:\n```\n%s\n```", documentText, BuildContext(docs))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.completion.Complete(ctx, CompletionRequest{
		System:     complianceSystemPrompt,
		Prompt:     prompt,
		SchemaName: "detect_policy_violations",
		Schema:     &complianceSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCompletion, err)
	}

	var result types.ComplianceResult
	if err := jsonschema.VerifySchemaAndUnmarshal(complianceSchema, raw, &result); err != nil {
		return nil, fmt.Errorf("%w: output failed schema validation: %v", types.ErrCompletion, err)
	}
	// Invariant: a compliant document carries no violation summary.
	if !result.NeedsUpdate {
		result.Summary = ""
	}
	return &result, nil
}
