package services

import (
	"fmt"
	"strconv"

	"yourmyth/internal/models/response_models"
)

const (
	selectionZoom = 12
	geocodedZoom  = 16
)

// MapViewFromPlaces centres on the first (highest-rated) place. It reports false when
// there is nothing to show.
func MapViewFromPlaces(places []response_models.Place) (*response_models.MapView, bool) {
	if len(places) == 0 {
		return nil, false
	}

	markers := make([]response_models.MapMarker, 0, len(places))
	for _, p := range places {
		markers = append(markers, response_models.MapMarker{
			Lat:   p.Latitude,
			Lng:   p.Longitude,
			Popup: fmt.Sprintf("%s (%s)", p.Name, formatRating(p.Rating)),
		})
	}

	return &response_models.MapView{
		Center:  response_models.Coordinates{Lat: places[0].Latitude, Lng: places[0].Longitude},
		Zoom:    selectionZoom,
		Markers: markers,
	}, true
}

// MapViewFromGeocoded centres on the centroid of the points.
func MapViewFromGeocoded(points []response_models.GeocodedPlace) (*response_models.MapView, bool) {
	if len(points) == 0 {
		return nil, false
	}

	var sumLat, sumLng float64
	markers := make([]response_models.MapMarker, 0, len(points))
	for _, p := range points {
		sumLat += p.Latitude
		sumLng += p.Longitude
		markers = append(markers, response_models.MapMarker{Lat: p.Latitude, Lng: p.Longitude, Popup: p.Name})
	}

	n := float64(len(points))
	return &response_models.MapView{
		Center:  response_models.Coordinates{Lat: sumLat / n, Lng: sumLng / n},
		Zoom:    geocodedZoom,
		Markers: markers,
	}, true
}

func formatRating(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}
