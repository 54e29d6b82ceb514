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

// NoKnowledgeBaseAnswer is returned without a model call when the knowledge
// base holds no documents.
const NoKnowledgeBaseAnswer = "There are no documents in the knowledge base yet. Please add documents in the 'Data Sources' section, then ask your question again."

const answerSystemPrompt = "You are an AI assistant answering questions about internal company documents. " +
	"Answer the question using only the information in the provided documents. " +
	"Cite the names of the documents you used in the sources field. " +
	"If the documents do not contain the information needed, say that no answer was found instead of inventing one."

var answerSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"answer": {
			Type:        jsonschema.String,
			Description: "The answer to the question.",
		},
		"sources": {
			Type:        jsonschema.Array,
			Description: "The names of the documents used to answer the question.",
			Items:       &jsonschema.Definition{Type: jsonschema.String},
		},
	},
	Required: []string{"answer", "sources"},
}

type AnswerService struct {
	store      database.DocumentStore
	completion CompletionService
	timeout    time.Duration
}

func NewAnswerService(store database.DocumentStore, completion CompletionService, timeout time.Duration) *AnswerService {
	return &AnswerService{
		store:      store,
		completion: completion,
		timeout:    timeout,
	}
}

// Answer responds to a question grounded in the current corpus. It never
// writes to the store.
func (s *AnswerService) Answer(ctx context.Context, question string) (*types.AnswerResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question must not be empty", types.ErrValidation)
	}

	docs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return &types.AnswerResult{
			Answer:  NoKnowledgeBaseAnswer,
			Sources: []string{},
		}, nil
	}

	prompt := fmt.Sprintf("Question: %s\n\nDocuments:\n%s", question, BuildContext(docs))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.completion.Complete(ctx, CompletionRequest{
		System:     answerSystemPrompt,
		Prompt:     prompt,
		SchemaName: "answer_question",
		Schema:     &answerSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCompletion, err)
	}

	var result types.AnswerResult
	if err := jsonschema.VerifySchemaAndUnmarshal(answerSchema, raw, &result); err != nil {
		return nil, fmt.Errorf("%w: output failed schema validation: %v", types.ErrCompletion, err)
	}
	if result.Sources == nil {
		result.Sources = []string{}
	}
	return &result, nil
}
