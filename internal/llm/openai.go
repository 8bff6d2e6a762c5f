package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/saicharanbm/finTrack/internal/parsererror"
)

// OpenAIClient implements Client on the OpenAI chat completion API using
// strict JSON-schema structured output, so the reply shape is enforced by
// the provider as well as by the local validator.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates an OpenAI-backed generation capability. baseURL
// may point at any OpenAI-compatible endpoint; leave it empty for the
// default API.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAIClient) Provider() string {
	return "openai"
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.Instruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Input,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.SchemaName,
				Schema: req.Schema,
				Strict: true,
			},
		},
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", &parsererror.TransportError{Provider: c.Provider(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &parsererror.TransportError{Provider: c.Provider(), Err: fmt.Errorf("no choices in response")}
	}

	return resp.Choices[0].Message.Content, nil
}
