// Package openai adapts the OpenAI Chat Completions API to the model.Model
// interface used by the grocery workers.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/hupe1980/grocerymesh/model"
)

// Options configure the OpenAI model adapter. Fields mirror a small subset
// of Chat Completion parameters; extend via functional options without
// breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Model wraps the OpenAI Chat Completions API behind model.Model.
type Model struct {
	client *openai.Client
	opts   Options
}

// Compile-time interface assertion.
var _ model.Model = (*Model)(nil)

// NewModel creates a new OpenAI model using the official client. The API key
// is read from the environment by the SDK.
func NewModel(optFns ...func(o *Options)) *Model {
	client := openai.NewClient()
	return NewModelFromClient(&client, optFns...)
}

// NewModelFromClient creates a new OpenAI model from an existing client.
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Complete performs a single non-streaming chat completion.
func (m *Model) Complete(ctx context.Context, req model.Request) (model.Response, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.Instructions != "" {
		messages = append(messages, openai.SystemMessage(req.Instructions))
	}
	messages = append(messages, openai.UserMessage(req.Input))

	completion, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               m.opts.Model,
		Messages:            messages,
		Temperature:         openai.Float(m.opts.Temperature),
		MaxCompletionTokens: openai.Int(m.opts.MaxCompletionTokens),
	})
	if err != nil {
		return model.Response{}, fmt.Errorf("openai completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return model.Response{}, fmt.Errorf("openai completion returned no choices")
	}
	return model.Response{Text: completion.Choices[0].Message.Content}, nil
}

// Info returns metadata about the model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "openai"}
}
