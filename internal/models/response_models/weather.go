package response_models

import "time"

type WeatherConditions struct {
	TemperatureC     float64   `json:"temperature_c"`
	WindSpeedKmh     float64   `json:"wind_speed_kmh"`
	WindDirectionDeg float64   `json:"wind_direction_deg"`
	WeatherCode      int       `json:"weather_code"`
	ObservedAt       time.Time `json:"observed_at"`
}

type WeatherResponse struct {
	Place      GeocodedPlace     `json:"place"`
	Conditions WeatherConditions `json:"conditions"`
	Summary    string            `json:"summary,omitempty"`
}
