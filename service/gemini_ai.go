package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/api/option"
)

type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	modelName  string
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:    apiKeys,
		currentKey: 0,
		modelName:  modelName,
	}

	err := service.initClient()
	if err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		return err
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) Complete(ctx context.Context, req CompletionRequest) ([]byte, error) {
	model := s.client.GenerativeModel(s.modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = toGenaiSchema(req.Schema)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		// Try rotating API key if there's an error
		if err := s.rotateAPIKey(); err != nil {
			return nil, err
		}
		model = s.client.GenerativeModel(s.modelName)
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = toGenaiSchema(req.Schema)
		resp, err = model.GenerateContent(ctx, genai.Text(req.Prompt))
		if err != nil {
			return nil, err
		}
	}

	if len(resp.Candidates) == 0 {
		return nil, errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					content += string(text)
				}
			}
		}
	}
	return []byte(content), nil
}

// toGenaiSchema converts the declared output schema into the Gemini schema
// type. Only the shapes the pipelines declare are covered.
func toGenaiSchema(def *jsonschema.Definition) *genai.Schema {
	if def == nil {
		return nil
	}
	schema := &genai.Schema{
		Description: def.Description,
	}
	switch def.Type {
	case jsonschema.Object:
		schema.Type = genai.TypeObject
		if len(def.Properties) > 0 {
			schema.Properties = make(map[string]*genai.Schema, len(def.Properties))
			for name := range def.Properties {
				prop := def.Properties[name]
				schema.Properties[name] = toGenaiSchema(&prop)
			}
		}
		schema.Required = def.Required
	case jsonschema.Array:
		schema.Type = genai.TypeArray
		schema.Items = toGenaiSchema(def.Items)
	case jsonschema.Boolean:
		schema.Type = genai.TypeBoolean
	case jsonschema.Number:
		schema.Type = genai.TypeNumber
	case jsonschema.Integer:
		schema.Type = genai.TypeInteger
	default:
		schema.Type = genai.TypeString
	}
	return schema
}
