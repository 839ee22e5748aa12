package utils

import (
	"fmt"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

type TokenCounterInterface interface {
	Count(text string) int
}

type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

var loaderOnce sync.Once

// NewTokenCounter loads a BPE encoding such as "p50k_base" from the embedded offline ranks.
func NewTokenCounter(encoding string) (*TokenCounter, error) {
	loaderOnce.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
	})

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load encoding %s: %w", encoding, err)
	}
	return &TokenCounter{enc: enc}, nil
}

func (t *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(t.enc.Encode(text, nil, nil))
}
