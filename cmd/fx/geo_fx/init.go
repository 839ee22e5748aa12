package geo_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"yourmyth/internal/config"
	"yourmyth/internal/services"
	mem "yourmyth/pkg/memcache"
	"yourmyth/pkg/utils"
)

var Module = fx.Provide(
	provideGeocoder, provideWeatherClient, provideWeatherService)

func provideGeocoder(cfg *config.Config, cache mem.MemoStore, logger *zap.Logger) services.GeocodingServiceInterface {
	return services.NewNominatimClient(cfg.NominatimURL, cfg.UserAgent, cache, logger)
}

func provideWeatherClient(cfg *config.Config) services.WeatherClientInterface {
	return services.NewOpenMeteoClient(cfg.OpenMeteoURL)
}

func provideWeatherService(
	geocoder services.GeocodingServiceInterface,
	weather services.WeatherClientInterface,
	completion utils.CompletionClientInterface,
	prompts *services.PromptTemplates,
	logger *zap.Logger,
) services.WeatherServiceInterface {
	return services.NewWeatherService(geocoder, weather, completion, prompts, logger)
}
