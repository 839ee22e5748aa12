package services

import (
	"sort"
	"strings"

	"yourmyth/internal/models/response_models"
)

// PlacesPerDay is how many places a trip day is planned around.
const PlacesPerDay = 2

// SelectPlaces keeps the places whose address contains location (case-insensitive) and that
// carry at least one of tags, orders them by descending rating and keeps 2 per trip day.
// Ties keep dataset order; places without a rating come last. The input slice is not modified.
func SelectPlaces(places []response_models.Place, location string, tags []string, duration int) []response_models.Place {
	selected := []response_models.Place{}
	if duration <= 0 || len(tags) == 0 {
		return selected
	}

	needle := strings.ToLower(location)
	wanted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		wanted[t] = struct{}{}
	}

	for _, p := range places {
		if !strings.Contains(strings.ToLower(p.Address), needle) {
			continue
		}
		if !hasAnyTag(p, wanted) {
			continue
		}
		selected = append(selected, p)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return ratingBefore(selected[i].Rating, selected[j].Rating)
	})

	// compared in days so a huge duration cannot overflow the bound
	if duration < (len(selected)+PlacesPerDay-1)/PlacesPerDay {
		selected = selected[:PlacesPerDay*duration]
	}
	return selected
}

func hasAnyTag(p response_models.Place, wanted map[string]struct{}) bool {
	for _, t := range p.Tags {
		if _, ok := wanted[t]; ok {
			return true
		}
	}
	return false
}

// ratingBefore orders rated places by descending rating ahead of unrated ones.
func ratingBefore(a, b *float64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}
