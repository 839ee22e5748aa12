package llm_fx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"yourmyth/internal/config"
	"yourmyth/internal/repositories"
	"yourmyth/internal/services"
	mem "yourmyth/pkg/memcache"
	"yourmyth/pkg/utils"
)

const embeddingMemoTTL = 24 * time.Hour

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideEmbeddingClient,
	ProvideCompletionOptions,
	ProvideTokenCounter,
	services.NewPromptTemplates,
	ProvideRecommendationService,
	ProvideItineraryService)

// ProvideCompletionClient creates a completion client for LLM_PROVIDER. A missing key is
// not fatal: requests fail with a credential error instead.
func ProvideCompletionClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.CompletionClientInterface, error) {
	settings := completionSettings(cfg)
	logger.Info("initializing completion client",
		zap.String("provider", settings.Provider),
		zap.String("model", settings.Model),
		zap.Bool("has_key", settings.APIKey != ""))

	client, err := utils.NewCompletionClient(settings)
	if err != nil {
		return nil, fmt.Errorf("completion client: %w", err)
	}
	closeOnStop(lc, client)
	return client, nil
}

// ProvideEmbeddingClient creates an embedding client for EMBEDDING_PROVIDER, memoized through the memo store.
func ProvideEmbeddingClient(lc fx.Lifecycle, cfg *config.Config, store mem.MemoStore, logger *zap.Logger) (utils.EmbeddingClientInterface, error) {
	settings := embeddingSettings(cfg)
	logger.Info("initializing embedding client",
		zap.String("provider", settings.Provider),
		zap.String("model", settings.Model),
		zap.Bool("has_key", settings.APIKey != ""))

	client, err := utils.NewEmbeddingClient(settings)
	if err != nil {
		return nil, fmt.Errorf("embedding client: %w", err)
	}
	closeOnStop(lc, client)
	return utils.NewMemoEmbeddingClient(client, store, embeddingMemoTTL, logger), nil
}

// closeOnStop releases provider clients that hold connections, such as Gemini's.
func closeOnStop(lc fx.Lifecycle, client any) {
	if closer, ok := client.(io.Closer); ok && lc != nil {
		lc.Append(fx.StopHook(closer.Close))
	}
}

func ProvideCompletionOptions(cfg *config.Config) utils.CompletionOptions {
	opts := utils.DefaultCompletionOptions()
	opts.Temperature = cfg.LLMTemperature
	if cfg.LLMMaxTokens > 0 {
		opts.MaxTokens = cfg.LLMMaxTokens
	}
	return opts
}

func ProvideTokenCounter() (utils.TokenCounterInterface, error) {
	return utils.NewTokenCounter("p50k_base")
}

func ProvideRecommendationService(
	cfg *config.Config,
	embeddings utils.EmbeddingClientInterface,
	index repositories.IPlaceEmbeddingRepository,
	completion utils.CompletionClientInterface,
	prompts *services.PromptTemplates,
	options utils.CompletionOptions,
	logger *zap.Logger,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(embeddings, index, completion, prompts, options, cfg.VectorTopK, logger)
}

func ProvideItineraryService(
	places services.PlaceServiceInterface,
	completion utils.CompletionClientInterface,
	prompts *services.PromptTemplates,
	geocoder services.GeocodingServiceInterface,
	tokens utils.TokenCounterInterface,
	options utils.CompletionOptions,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(places, completion, prompts, geocoder, tokens, options, logger)
}

func completionSettings(cfg *config.Config) utils.LLMSettings {
	settings := utils.LLMSettings{
		Provider: strings.ToLower(cfg.LLMProvider),
		Timeout:  cfg.LLMTimeout(),
	}
	switch settings.Provider {
	case "gemini":
		settings.APIKey = cfg.Credentials.GeminiAPIKey
		settings.Model = cfg.GeminiModel
	default:
		settings.APIKey = cfg.Credentials.OpenAIAPIKey
		settings.Model = cfg.OpenAIModel
	}
	return settings
}

func embeddingSettings(cfg *config.Config) utils.LLMSettings {
	settings := utils.LLMSettings{
		Provider: strings.ToLower(cfg.EmbeddingProvider),
		Timeout:  cfg.LLMTimeout(),
	}
	switch settings.Provider {
	case "gemini":
		settings.APIKey = cfg.Credentials.GeminiAPIKey
		settings.Model = cfg.GeminiEmbeddingModel
	default:
		settings.APIKey = cfg.Credentials.OpenAIAPIKey
		settings.Model = cfg.OpenAIEmbeddingModel
	}
	return settings
}
