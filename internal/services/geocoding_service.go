package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"yourmyth/internal/models/response_models"
	mem "yourmyth/pkg/memcache"
	"yourmyth/pkg/metrics"
	"yourmyth/pkg/utils"
)

type GeocodingServiceInterface interface {
	Geocode(ctx context.Context, name string) (response_models.Coordinates, error)
	// GeocodeAll resolves names in order, dropping duplicates and names that fail to resolve.
	GeocodeAll(ctx context.Context, names []string) []response_models.GeocodedPlace
}

// -------------- Nominatim search client ---------------

type NominatimClient struct {
	HTTP       *http.Client
	BaseURL    string
	UserAgent  string
	Cache      mem.MemoStore // optional
	DefaultTTL time.Duration
	logger     *zap.Logger
}

func NewNominatimClient(baseURL, userAgent string, cache mem.MemoStore, logger *zap.Logger) *NominatimClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NominatimClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  userAgent,
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
		logger:     logger,
	}
}

func (c *NominatimClient) Geocode(ctx context.Context, name string) (response_models.Coordinates, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return response_models.Coordinates{}, fmt.Errorf("%w: empty place name", utils.ErrInvalidInput)
	}

	key := "geocode:" + strings.ToLower(name)
	if c.Cache != nil {
		var cached response_models.Coordinates
		if ok, err := c.Cache.Get(ctx, key, &cached); err != nil {
			c.logger.Warn("geocode memo read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	coords, err := c.search(ctx, name)
	if err != nil {
		return response_models.Coordinates{}, err
	}

	if c.Cache != nil {
		if err := c.Cache.Set(ctx, key, coords, c.DefaultTTL); err != nil {
			c.logger.Warn("geocode memo write failed", zap.Error(err))
		}
	}
	return coords, nil
}

func (c *NominatimClient) search(ctx context.Context, name string) (coords response_models.Coordinates, err error) {
	start := time.Now()
	defer func() {
		if !errors.Is(err, utils.ErrPlaceNotFound) {
			metrics.ObserveUpstream("nominatim", "search", start, err)
		}
	}()

	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return coords, fmt.Errorf("nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return coords, fmt.Errorf("%w: nominatim http error: %v", utils.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return coords, fmt.Errorf("%w: nominatim bad status: %s", utils.ErrUpstream, resp.Status)
	}

	var hits []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return coords, fmt.Errorf("%w: nominatim decode: %v", utils.ErrUpstream, err)
	}
	if len(hits) == 0 {
		return coords, fmt.Errorf("%w: %s", utils.ErrPlaceNotFound, name)
	}

	lat, errLat := strconv.ParseFloat(hits[0].Lat, 64)
	lng, errLng := strconv.ParseFloat(hits[0].Lon, 64)
	if errLat != nil || errLng != nil {
		return coords, fmt.Errorf("%w: nominatim returned bad coordinates for %s", utils.ErrUpstream, name)
	}
	return response_models.Coordinates{Lat: lat, Lng: lng}, nil
}

func (c *NominatimClient) GeocodeAll(ctx context.Context, names []string) []response_models.GeocodedPlace {
	return geocodeAll(ctx, c, names, c.logger)
}

func geocodeAll(ctx context.Context, g interface {
	Geocode(ctx context.Context, name string) (response_models.Coordinates, error)
}, names []string, logger *zap.Logger) []response_models.GeocodedPlace {
	out := []response_models.GeocodedPlace{}
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if ctx.Err() != nil {
			logger.Warn("geocoding stopped", zap.Error(ctx.Err()))
			break
		}

		coords, err := g.Geocode(ctx, name)
		if err != nil {
			logger.Warn("geocoding failed, skipping place", zap.String("place", name), zap.Error(err))
			continue
		}
		out = append(out, response_models.GeocodedPlace{Name: name, Latitude: coords.Lat, Longitude: coords.Lng})
	}
	return out
}
