package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/models/response_models"
	"yourmyth/pkg/metrics"
	"yourmyth/pkg/utils"
)

const weatherSummaryMaxTokens = 150

type WeatherClientInterface interface {
	CurrentWeather(ctx context.Context, at response_models.Coordinates) (response_models.WeatherConditions, error)
}

// -------------- Open-Meteo forecast client ---------------

type OpenMeteoClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewOpenMeteoClient(baseURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *OpenMeteoClient) CurrentWeather(ctx context.Context, at response_models.Coordinates) (cond response_models.WeatherConditions, err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream("open-meteo", "current_weather", start, err) }()

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(at.Lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(at.Lng, 'f', 4, 64))
	q.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return cond, fmt.Errorf("open-meteo request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return cond, fmt.Errorf("%w: open-meteo http error: %v", utils.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return cond, fmt.Errorf("%w: open-meteo bad status: %s", utils.ErrUpstream, resp.Status)
	}

	var payload struct {
		CurrentWeather *struct {
			Temperature   float64 `json:"temperature"`
			WindSpeed     float64 `json:"windspeed"`
			WindDirection float64 `json:"winddirection"`
			WeatherCode   int     `json:"weathercode"`
			Time          string  `json:"time"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return cond, fmt.Errorf("%w: open-meteo decode: %v", utils.ErrUpstream, err)
	}
	if payload.CurrentWeather == nil {
		return cond, fmt.Errorf("%w: open-meteo response has no current_weather", utils.ErrUpstream)
	}

	cw := payload.CurrentWeather
	observed, err := utils.ParseMinuteTime(cw.Time, time.UTC)
	if err != nil {
		return cond, fmt.Errorf("%w: open-meteo time: %v", utils.ErrUpstream, err)
	}

	return response_models.WeatherConditions{
		TemperatureC:     cw.Temperature,
		WindSpeedKmh:     cw.WindSpeed,
		WindDirectionDeg: cw.WindDirection,
		WeatherCode:      cw.WeatherCode,
		ObservedAt:       observed,
	}, nil
}

// -------------- weather flow ---------------

type WeatherServiceInterface interface {
	Lookup(ctx context.Context, place string) (response_models.WeatherResponse, error)
	Summarize(ctx context.Context, req request_models.WeatherSummaryRequest) (response_models.WeatherResponse, error)
}

type WeatherService struct {
	geocoder   GeocodingServiceInterface
	weather    WeatherClientInterface
	completion utils.CompletionClientInterface
	prompts    *PromptTemplates
	logger     *zap.Logger
}

func NewWeatherService(
	geocoder GeocodingServiceInterface,
	weather WeatherClientInterface,
	completion utils.CompletionClientInterface,
	prompts *PromptTemplates,
	logger *zap.Logger,
) WeatherServiceInterface {
	return &WeatherService{
		geocoder:   geocoder,
		weather:    weather,
		completion: completion,
		prompts:    prompts,
		logger:     logger,
	}
}

func (s *WeatherService) Lookup(ctx context.Context, place string) (response_models.WeatherResponse, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return response_models.WeatherResponse{}, fmt.Errorf("%w: place is required", utils.ErrInvalidInput)
	}

	coords, err := s.geocoder.Geocode(ctx, place)
	if err != nil {
		return response_models.WeatherResponse{}, err
	}
	conditions, err := s.weather.CurrentWeather(ctx, coords)
	if err != nil {
		return response_models.WeatherResponse{}, err
	}

	return response_models.WeatherResponse{
		Place:      response_models.GeocodedPlace{Name: place, Latitude: coords.Lat, Longitude: coords.Lng},
		Conditions: conditions,
	}, nil
}

func (s *WeatherService) Summarize(ctx context.Context, req request_models.WeatherSummaryRequest) (response_models.WeatherResponse, error) {
	result, err := s.Lookup(ctx, req.Place)
	if err != nil {
		return response_models.WeatherResponse{}, err
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		question = "What is the weather like right now?"
	}

	prompt, err := s.prompts.Render(TemplateWeatherSummary, map[string]any{
		"place":      result.Place.Name,
		"conditions": describeConditions(result.Conditions),
		"question":   question,
	})
	if err != nil {
		return response_models.WeatherResponse{}, err
	}

	opts := utils.DefaultCompletionOptions()
	opts.MaxTokens = weatherSummaryMaxTokens
	summary, err := s.completion.Complete(ctx, prompt, opts)
	if err != nil {
		return response_models.WeatherResponse{}, err
	}

	s.logger.Info("weather summarized", zap.String("place", result.Place.Name))
	result.Summary = summary
	return result, nil
}

func describeConditions(c response_models.WeatherConditions) string {
	return fmt.Sprintf("temperature %.1f °C, wind %.1f km/h from %.0f°, weather code %d, observed %s UTC",
		c.TemperatureC, c.WindSpeedKmh, c.WindDirectionDeg, c.WeatherCode, c.ObservedAt.UTC().Format("2006-01-02 15:04"))
}
