package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/models/response_models"
	"yourmyth/pkg/metrics"
	"yourmyth/pkg/utils"
)

// DefaultJSONTripDays is the duration of a JSON plan request that leaves it out.
const DefaultJSONTripDays = 1

type ItineraryServiceInterface interface {
	Plan(ctx context.Context, req request_models.PlanRequest) (response_models.PlanResponse, error)
	PlanSequential(ctx context.Context, req request_models.PlanRequest) (response_models.SequentialPlanResponse, error)
	PlanJSON(ctx context.Context, req request_models.JSONPlanRequest) (response_models.JSONPlanResponse, error)
}

type ItineraryService struct {
	places     PlaceServiceInterface
	completion utils.CompletionClientInterface
	prompts    *PromptTemplates
	geocoder   GeocodingServiceInterface
	tokens     utils.TokenCounterInterface
	options    utils.CompletionOptions
	logger     *zap.Logger
}

func NewItineraryService(
	places PlaceServiceInterface,
	completion utils.CompletionClientInterface,
	prompts *PromptTemplates,
	geocoder GeocodingServiceInterface,
	tokens utils.TokenCounterInterface,
	options utils.CompletionOptions,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		places:     places,
		completion: completion,
		prompts:    prompts,
		geocoder:   geocoder,
		tokens:     tokens,
		options:    options,
		logger:     logger,
	}
}

// selection runs the place selector for a plan request.
func (s *ItineraryService) selection(ctx context.Context, req request_models.PlanRequest) (response_models.SelectionResponse, int, error) {
	if strings.TrimSpace(req.Location) == "" {
		return response_models.SelectionResponse{}, 0, fmt.Errorf("%w: location is required", utils.ErrInvalidInput)
	}
	duration, err := normalizeDuration(req.Duration)
	if err != nil {
		return response_models.SelectionResponse{}, 0, err
	}
	sel, err := s.places.Select(ctx, request_models.SelectPlacesRequest{
		Location: req.Location,
		Tags:     req.Filters,
		Duration: duration,
	})
	if err != nil {
		return response_models.SelectionResponse{}, 0, err
	}
	return sel, duration, nil
}

func (s *ItineraryService) Plan(ctx context.Context, req request_models.PlanRequest) (response_models.PlanResponse, error) {
	sel, duration, err := s.selection(ctx, req)
	if err != nil {
		return response_models.PlanResponse{}, err
	}

	prompt, err := s.prompts.Render(TemplateItinerary, map[string]any{
		"location": req.Location,
		"filters":  JoinList(req.Filters),
		"duration": duration,
	})
	if err != nil {
		return response_models.PlanResponse{}, err
	}

	itinerary, err := s.completion.Complete(ctx, prompt, s.options)
	if err != nil {
		return response_models.PlanResponse{}, err
	}

	s.logger.Info("itinerary planned",
		zap.String("location", req.Location),
		zap.Int("duration", duration),
		zap.Int("selected", len(sel.Places)))

	return response_models.PlanResponse{Places: sel.Places, Map: sel.Map, Itinerary: itinerary}, nil
}

func (s *ItineraryService) PlanSequential(ctx context.Context, req request_models.PlanRequest) (response_models.SequentialPlanResponse, error) {
	sel, duration, err := s.selection(ctx, req)
	if err != nil {
		return response_models.SequentialPlanResponse{}, err
	}

	placesPrompt, err := s.prompts.Render(TemplatePlaces, map[string]any{
		"location": req.Location,
		"filters":  JoinList(req.Filters),
		"duration": duration,
	})
	if err != nil {
		return response_models.SequentialPlanResponse{}, err
	}
	suggested, err := s.completion.Complete(ctx, placesPrompt, s.options)
	if err != nil {
		return response_models.SequentialPlanResponse{}, err
	}

	itineraryPrompt, err := s.prompts.Render(TemplateItineraryFromPlaces, map[string]any{"places": suggested})
	if err != nil {
		return response_models.SequentialPlanResponse{}, err
	}
	itinerary, err := s.completion.Complete(ctx, itineraryPrompt, s.options)
	if err != nil {
		return response_models.SequentialPlanResponse{}, err
	}

	return response_models.SequentialPlanResponse{
		Places:          sel.Places,
		Map:             sel.Map,
		SuggestedPlaces: suggested,
		Itinerary:       itinerary,
	}, nil
}

func (s *ItineraryService) PlanJSON(ctx context.Context, req request_models.JSONPlanRequest) (response_models.JSONPlanResponse, error) {
	if strings.TrimSpace(req.Location) == "" {
		return response_models.JSONPlanResponse{}, fmt.Errorf("%w: location is required", utils.ErrInvalidInput)
	}
	if err := validateActivities(req.Activities); err != nil {
		return response_models.JSONPlanResponse{}, err
	}
	duration := req.Duration
	switch {
	case duration == 0:
		duration = DefaultJSONTripDays
	case duration < 0:
		return response_models.JSONPlanResponse{}, fmt.Errorf("%w: duration must be at least 1 day", utils.ErrInvalidInput)
	}

	prompt, err := s.prompts.Render(TemplateItineraryJSON, map[string]any{
		"location":   req.Location,
		"activities": JoinList(req.Activities),
		"duration":   duration,
	})
	if err != nil {
		return response_models.JSONPlanResponse{}, err
	}

	raw, err := s.completion.Complete(ctx, prompt, s.options)
	if err != nil {
		return response_models.JSONPlanResponse{}, err
	}

	resp := response_models.JSONPlanResponse{
		Raw:        raw,
		TokenCount: s.tokens.Count(raw),
		Places:     []response_models.GeocodedPlace{},
	}
	metrics.GeneratedTokens.WithLabelValues("itinerary_json").Observe(float64(resp.TokenCount))

	doc, err := ParseItinerary(raw)
	if err != nil {
		s.logger.Warn("model returned an invalid itinerary", zap.Error(err), zap.Int("tokens", resp.TokenCount))
		resp.Error = err.Error()
		return resp, nil
	}

	resp.Valid = true
	resp.Itinerary = &doc
	resp.Places = s.geocoder.GeocodeAll(ctx, doc.PlaceNames())
	resp.Map, _ = MapViewFromGeocoded(resp.Places)

	s.logger.Info("json itinerary planned",
		zap.String("location", req.Location),
		zap.Int("days", len(doc.Days)),
		zap.Int("geocoded", len(resp.Places)),
		zap.Int("tokens", resp.TokenCount))
	return resp, nil
}

func validateActivities(activities []string) error {
	if len(activities) == 0 {
		return fmt.Errorf("%w: at least one activity is required", utils.ErrInvalidInput)
	}
	for _, a := range activities {
		known := false
		for _, v := range Activities {
			if a == v {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: unknown activity %q", utils.ErrInvalidInput, a)
		}
	}
	return nil
}
