package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/saicharanbm/finTrack/internal/parsererror"
)

// GeminiClient implements Client on the Google Gemini API. Gemini has no
// strict schema mode here, so the schema document is appended to the
// instruction and the local validator does the enforcing.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed generation capability.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Provider() string {
	return "gemini"
}

// Close releases the underlying API connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(req.Temperature)

	prompt := fmt.Sprintf("%s\n\n### OUTPUT SCHEMA\nThe reply must be a single JSON object matching this JSON schema exactly, with no additional properties:\n%s\n\n### USER MESSAGE\n%s",
		req.Instruction, string(req.Schema), req.Input)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &parsererror.TransportError{Provider: c.Provider(), Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &parsererror.TransportError{Provider: c.Provider(), Err: fmt.Errorf("no candidates in response")}
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", &parsererror.TransportError{Provider: c.Provider(), Err: fmt.Errorf("empty reply")}
	}

	return out, nil
}
