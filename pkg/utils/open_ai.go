package utils

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"yourmyth/pkg/metrics"
)

func newOpenAIClient(s LLMSettings) *openai.Client {
	cfg := openai.DefaultConfig(s.APIKey)
	if s.BaseURL != "" {
		cfg.BaseURL = s.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}

type OpenAICompletionClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAICompletionClient(s LLMSettings) *OpenAICompletionClient {
	model := s.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAICompletionClient{
		client:  newOpenAIClient(s),
		model:   model,
		timeout: s.Timeout,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (res string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream("openai", "completion", start, err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	temperature := opts.Temperature
	if temperature == 0 {
		// a zero temperature is dropped by omitempty on the wire
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature:      temperature,
		MaxTokens:        opts.MaxTokens,
		TopP:             opts.TopP,
		FrequencyPenalty: opts.FrequencyPenalty,
		PresencePenalty:  opts.PresencePenalty,
		Stop:             opts.Stop,
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai completion: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai completion returned no choices", ErrUpstream)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

type OpenAIEmbeddingClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIEmbeddingClient(s LLMSettings) *OpenAIEmbeddingClient {
	model := s.Model
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbeddingClient{
		client:  newOpenAIClient(s),
		model:   model,
		timeout: s.Timeout,
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vectors, err := c.GetEmbeddings(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vectors[0], nil
}

func (c *OpenAIEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) (out []pgvector.Vector, err error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no input texts provided", ErrInvalidInput)
	}

	start := time.Now()
	defer func() { metrics.ObserveUpstream("openai", "embedding", start, err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	input := make([]string, len(texts))
	for i, t := range texts {
		input[i] = ToASCII(t)
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: input,
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai embeddings: %v", ErrUpstream, err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: openai embeddings returned %d vectors for %d inputs", ErrUpstream, len(resp.Data), len(texts))
	}

	out = make([]pgvector.Vector, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("%w: openai embeddings index %d out of range", ErrUpstream, d.Index)
		}
		out[d.Index] = pgvector.NewVector(d.Embedding)
	}
	return out, nil
}
