package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
	"yourmyth/pkg/metrics"
)

func newGeminiClient(s LLMSettings) (*genai.Client, error) {
	opts := []option.ClientOption{option.WithAPIKey(s.APIKey)}
	if s.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(s.BaseURL))
	}
	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// GeminiCompletionClient implements CompletionClientInterface using Google's Gemini models
type GeminiCompletionClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiCompletionClient(s LLMSettings) (*GeminiCompletionClient, error) {
	if s.Model == "" {
		s.Model = "gemini-1.5-flash" // Free tier model
	}
	client, err := newGeminiClient(s)
	if err != nil {
		return nil, err
	}
	return &GeminiCompletionClient{client: client, model: s.Model, timeout: s.Timeout}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (res string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream("gemini", "completion", start, err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(opts.Temperature)
	model.SetTopP(opts.TopP)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	if len(opts.Stop) > 0 {
		model.StopSequences = opts.Stop
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini completion: %v", ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated by Gemini", ErrUpstream)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// Close closes the Gemini client
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

// GeminiEmbeddingClient implements EmbeddingClientInterface using Gemini's embedding models
type GeminiEmbeddingClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiEmbeddingClient(s LLMSettings) (*GeminiEmbeddingClient, error) {
	if s.Model == "" {
		s.Model = "text-embedding-004"
	}
	client, err := newGeminiClient(s)
	if err != nil {
		return nil, err
	}
	return &GeminiEmbeddingClient{client: client, model: s.Model, timeout: s.Timeout}, nil
}

func (c *GeminiEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vectors, err := c.GetEmbeddings(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vectors[0], nil
}

// GetEmbeddings batch processes multiple texts
func (c *GeminiEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) (out []pgvector.Vector, err error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no input texts provided", ErrInvalidInput)
	}

	start := time.Now()
	defer func() { metrics.ObserveUpstream("gemini", "embedding", start, err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	em := c.client.EmbeddingModel(c.model)
	batch := em.NewBatch()
	for _, t := range texts {
		batch.AddContent(genai.Text(ToASCII(t)))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini embeddings: %v", ErrUpstream, err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: gemini returned %d embeddings for %d inputs", ErrUpstream, len(resp.Embeddings), len(texts))
	}

	out = make([]pgvector.Vector, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		out[i] = pgvector.NewVector(e.Values)
	}
	return out, nil
}

// Close closes the Gemini client
func (c *GeminiEmbeddingClient) Close() error {
	return c.client.Close()
}
