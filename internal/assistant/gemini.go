package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient implements LLMClient using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient creates a new Gemini LLM client.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("assistant: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelID: modelID}, nil
}

// Complete sends the system prompt and input parts to Gemini and returns the
// concatenated text of the first candidate.
func (c *GeminiClient) Complete(ctx context.Context, system string, parts []Part) (string, error) {
	model := c.client.GenerativeModel(c.modelID)
	if strings.TrimSpace(system) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}
	// The prompt contracts a single JSON object as the entire output.
	model.ResponseMIMEType = "application/json"

	in := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if len(p.Data) > 0 {
			in = append(in, genai.Blob{MIMEType: p.MIMEType, Data: p.Data})
			continue
		}
		in = append(in, genai.Text(p.Text))
	}
	if len(in) == 0 {
		return "", errors.New("assistant: gemini requires at least one input part")
	}

	resp, err := model.GenerateContent(ctx, in...)
	if err != nil {
		return "", fmt.Errorf("assistant: gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("assistant: gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("assistant: gemini returned empty content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return out.String(), nil
}

// Close releases resources held by the Gemini client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
