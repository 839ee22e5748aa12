package services

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yourmyth/internal/models/response_models"
)

func rating(v float64) *float64 { return &v }

func samplePlaces() []response_models.Place {
	return []response_models.Place{
		{Name: "Rhodes Old Town", Address: "Old Town, Rhodes 851 00, Greece", Tags: []string{"museum", "church"}, Rating: rating(4.8), Latitude: 36.4451, Longitude: 28.2276},
		{Name: "Elli Beach", Address: "Rhodes 851 00, Greece", Tags: []string{"beach"}, Rating: rating(4.5), Latitude: 36.4520, Longitude: 28.2220},
		{Name: "Rhodes Beach", Address: "Rhodes Beach, RHODES, Greece", Tags: []string{"beach", "bar"}, Rating: rating(4.6), Latitude: 36.4500, Longitude: 28.2250},
		{Name: "Lindos Acropolis", Address: "Lindos 851 07, Greece", Tags: []string{"museum", "temple"}, Rating: rating(4.7), Latitude: 36.0916, Longitude: 28.0878},
		{Name: "Acropolis Museum", Address: "Dionysiou Areopagitou 15, Athens 117 42, Greece", Tags: []string{"museum"}, Rating: rating(4.9), Latitude: 37.9685, Longitude: 23.7285},
		{Name: "Kallithea Springs", Address: "Kallithea, Rhodes 851 05, Greece", Tags: []string{"beach"}, Rating: nil, Latitude: 36.3800, Longitude: 28.2400},
		{Name: "Mandraki Harbour Cafe", Address: "Mandraki, Rhodes 851 00, Greece", Tags: []string{"coffee"}, Rating: rating(4.5), Latitude: 36.4510, Longitude: 28.2260},
	}
}

func names(places []response_models.Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.Name
	}
	return out
}

func TestSelectPlaces_RhodesExample(t *testing.T) {
	got := SelectPlaces(samplePlaces(), "Rhodes", []string{"museum", "beach"}, 1)
	assert.Equal(t, []string{"Rhodes Old Town", "Rhodes Beach"}, names(got))
}

func TestSelectPlaces_Properties(t *testing.T) {
	places := samplePlaces()
	cases := []struct {
		location string
		tags     []string
		duration int
	}{
		{"Rhodes", []string{"museum", "beach"}, 1},
		{"rhodes", []string{"beach"}, 3},
		{"Greece", []string{"museum", "beach", "coffee"}, 2},
		{"Greece", []string{"temple"}, 5},
		{"", []string{"museum"}, 10},
	}

	for _, tc := range cases {
		got := SelectPlaces(places, tc.location, tc.tags, tc.duration)
		assert.LessOrEqual(t, len(got), 2*tc.duration)

		for _, p := range got {
			assert.Contains(t, strings.ToLower(p.Address), strings.ToLower(tc.location))
			matched := false
			for _, tag := range tc.tags {
				if p.HasTag(tag) {
					matched = true
				}
			}
			assert.True(t, matched, "%s has none of %v", p.Name, tc.tags)
		}

		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1].Rating, got[i].Rating
			if prev == nil {
				assert.Nil(t, cur, "unrated place sorted before a rated one")
				continue
			}
			if cur != nil {
				assert.GreaterOrEqual(t, *prev, *cur)
			}
		}
	}
}

func TestSelectPlaces_MissingRatingLast(t *testing.T) {
	got := SelectPlaces(samplePlaces(), "Rhodes", []string{"beach"}, 5)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Rhodes Beach", "Elli Beach", "Kallithea Springs"}, names(got))
}

func TestSelectPlaces_StableTies(t *testing.T) {
	got := SelectPlaces(samplePlaces(), "Rhodes", []string{"beach", "coffee"}, 5)
	// Elli Beach and Mandraki Harbour Cafe share 4.5 and keep dataset order.
	assert.Equal(t, []string{"Rhodes Beach", "Elli Beach", "Mandraki Harbour Cafe", "Kallithea Springs"}, names(got))
}

func TestSelectPlaces_Empty(t *testing.T) {
	places := samplePlaces()

	assert.Empty(t, SelectPlaces(places, "Crete", []string{"beach"}, 3))
	assert.Empty(t, SelectPlaces(places, "Rhodes", []string{"ski"}, 3))
	assert.Empty(t, SelectPlaces(places, "Rhodes", nil, 3))
	assert.Empty(t, SelectPlaces(places, "Rhodes", []string{"beach"}, 0))
	assert.Empty(t, SelectPlaces(nil, "Rhodes", []string{"beach"}, 3))
	assert.NotNil(t, SelectPlaces(places, "Crete", []string{"beach"}, 3))
}

func TestSelectPlaces_TagsAreCaseSensitive(t *testing.T) {
	assert.Empty(t, SelectPlaces(samplePlaces(), "Rhodes", []string{"Beach"}, 3))
}

func TestSelectPlaces_IdempotentAndPure(t *testing.T) {
	places := samplePlaces()
	snapshot := samplePlaces()

	first := SelectPlaces(places, "Greece", []string{"museum", "beach"}, 2)
	second := SelectPlaces(places, "Greece", []string{"museum", "beach"}, 2)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, places, "input must not be reordered")
}

func TestSelectPlaces_HugeDuration(t *testing.T) {
	var got []response_models.Place
	require.NotPanics(t, func() {
		got = SelectPlaces(samplePlaces(), "Rhodes", []string{"beach"}, math.MaxInt/2+1)
	})
	assert.Equal(t, []string{"Rhodes Beach", "Elli Beach", "Kallithea Springs"}, names(got))

	got = SelectPlaces(samplePlaces(), "Rhodes", []string{"beach"}, math.MaxInt)
	assert.Len(t, got, 3)
}
