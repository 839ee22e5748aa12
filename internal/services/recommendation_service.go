package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/models/response_models"
	"yourmyth/internal/repositories"
	"yourmyth/pkg/utils"
)

// MaxRequestWords bounds the free-text activities of a recommendation request.
const MaxRequestWords = 700

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, req request_models.RecommendationRequest) (response_models.RecommendationResponse, error)
}

type RecommendationService struct {
	embeddings utils.EmbeddingClientInterface
	index      repositories.IPlaceEmbeddingRepository
	completion utils.CompletionClientInterface
	prompts    *PromptTemplates
	options    utils.CompletionOptions
	topK       int
	logger     *zap.Logger
}

func NewRecommendationService(
	embeddings utils.EmbeddingClientInterface,
	index repositories.IPlaceEmbeddingRepository,
	completion utils.CompletionClientInterface,
	prompts *PromptTemplates,
	options utils.CompletionOptions,
	topK int,
	logger *zap.Logger,
) RecommendationServiceInterface {
	if topK <= 0 {
		topK = 5
	}
	return &RecommendationService{
		embeddings: embeddings,
		index:      index,
		completion: completion,
		prompts:    prompts,
		options:    options,
		topK:       topK,
		logger:     logger,
	}
}

func (s *RecommendationService) Recommend(ctx context.Context, req request_models.RecommendationRequest) (response_models.RecommendationResponse, error) {
	country, ok := canonicalCountry(req.Country)
	if !ok {
		return response_models.RecommendationResponse{}, fmt.Errorf("%w: unsupported country %q", utils.ErrInvalidInput, req.Country)
	}
	activities := strings.TrimSpace(req.Activities)
	if activities == "" {
		return response_models.RecommendationResponse{}, fmt.Errorf("%w: activities are required", utils.ErrInvalidInput)
	}
	if TooManyWords(activities, MaxRequestWords) {
		return response_models.RecommendationResponse{}, utils.ErrInputTooLong
	}

	query, err := s.prompts.Render(TemplateRecommendation, map[string]any{
		"country":         country,
		"recommendations": activities,
	})
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	// One embedding and one index query per request; the documents found feed the answer.
	vector, err := s.embeddings.GetEmbedding(ctx, query)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}
	docs, err := s.index.SearchByVector(ctx, vector, s.topK)
	if err != nil {
		s.logger.Error("vector search failed", zap.Error(err))
		return response_models.RecommendationResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	sources := make([]response_models.SourceDocument, 0, len(docs))
	contents := make([]string, 0, len(docs))
	for _, d := range docs {
		sources = append(sources, response_models.SourceDocument{
			PlaceID:    d.PlaceID,
			Name:       d.Name,
			Content:    d.Content,
			Tags:       append([]string{}, d.Tags...),
			Similarity: d.Similarity,
		})
		contents = append(contents, d.Content)
	}

	prompt, err := s.prompts.Render(TemplateStuffQA, map[string]any{
		"context":  strings.Join(contents, "\n\n"),
		"question": query,
	})
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	answer, err := s.completion.Complete(ctx, prompt, s.options)
	if err != nil {
		return response_models.RecommendationResponse{}, err
	}

	s.logger.Info("recommendation generated",
		zap.String("country", country),
		zap.Int("sources", len(sources)))

	return response_models.RecommendationResponse{
		Country:        country,
		Recommendation: answer,
		Sources:        sources,
	}, nil
}

// TooManyWords reports whether text holds more than limit whitespace-separated words.
func TooManyWords(text string, limit int) bool {
	return len(strings.Fields(text)) > limit
}

func canonicalCountry(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Countries {
		if strings.EqualFold(c.Name, name) {
			return c.Name, true
		}
	}
	return "", false
}
