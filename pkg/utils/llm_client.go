package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	mem "yourmyth/pkg/memcache"
)

// CompletionOptions are the sampling parameters sent with every completion.
type CompletionOptions struct {
	Temperature      float32
	MaxTokens        int
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
	Stop             []string
}

func DefaultCompletionOptions() CompletionOptions {
	return CompletionOptions{
		Temperature: 0,
		MaxTokens:   500,
		TopP:        1,
	}
}

type CompletionClientInterface interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
}

// LLMSettings selects and configures one provider.
type LLMSettings struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewCompletionClient builds the client for the configured provider. An empty API key
// yields a client whose every call fails with ErrMissingCredential.
func NewCompletionClient(s LLMSettings) (CompletionClientInterface, error) {
	provider := strings.ToLower(strings.TrimSpace(s.Provider))
	if strings.TrimSpace(s.APIKey) == "" {
		return NewMissingCredentialClient(credentialName(provider)), nil
	}

	switch provider {
	case "openai":
		return NewOpenAICompletionClient(s), nil
	case "gemini":
		return NewGeminiCompletionClient(s)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", s.Provider)
	}
}

// NewEmbeddingClient Factory function to create either OpenAI or Gemini client based on config
func NewEmbeddingClient(s LLMSettings) (EmbeddingClientInterface, error) {
	provider := strings.ToLower(strings.TrimSpace(s.Provider))
	if strings.TrimSpace(s.APIKey) == "" {
		return NewMissingCredentialClient(credentialName(provider)), nil
	}

	switch provider {
	case "openai":
		return NewOpenAIEmbeddingClient(s), nil
	case "gemini":
		return NewGeminiEmbeddingClient(s)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", s.Provider)
	}
}

func credentialName(provider string) string {
	switch provider {
	case "gemini":
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// MissingCredentialClient stands in for a provider whose API key is not configured.
type MissingCredentialClient struct {
	key string
}

func NewMissingCredentialClient(key string) *MissingCredentialClient {
	return &MissingCredentialClient{key: key}
}

func (m *MissingCredentialClient) Complete(context.Context, string, CompletionOptions) (string, error) {
	return "", fmt.Errorf("%w: %s is not set", ErrMissingCredential, m.key)
}

func (m *MissingCredentialClient) GetEmbedding(context.Context, string) (pgvector.Vector, error) {
	return pgvector.Vector{}, fmt.Errorf("%w: %s is not set", ErrMissingCredential, m.key)
}

func (m *MissingCredentialClient) GetEmbeddings(context.Context, []string) ([]pgvector.Vector, error) {
	return nil, fmt.Errorf("%w: %s is not set", ErrMissingCredential, m.key)
}

// ToASCII drops every non-ASCII rune; embeddings are computed on the reduced text.
func ToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// memoEmbeddingClient caches query embeddings by the hash of their text.
type memoEmbeddingClient struct {
	inner  EmbeddingClientInterface
	store  mem.MemoStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewMemoEmbeddingClient(inner EmbeddingClientInterface, store mem.MemoStore, ttl time.Duration, logger *zap.Logger) EmbeddingClientInterface {
	if store == nil {
		return inner
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &memoEmbeddingClient{inner: inner, store: store, ttl: ttl, logger: logger}
}

func (m *memoEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	sum := sha256.Sum256([]byte(text))
	key := "embedding:" + hex.EncodeToString(sum[:])

	var cached []float32
	if ok, err := m.store.Get(ctx, key, &cached); err != nil {
		m.logger.Warn("embedding memo read failed", zap.Error(err))
	} else if ok {
		return pgvector.NewVector(cached), nil
	}

	vector, err := m.inner.GetEmbedding(ctx, text)
	if err != nil {
		return pgvector.Vector{}, err
	}
	if err := m.store.Set(ctx, key, vector.Slice(), m.ttl); err != nil {
		m.logger.Warn("embedding memo write failed", zap.Error(err))
	}
	return vector, nil
}

func (m *memoEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	return m.inner.GetEmbeddings(ctx, texts)
}
