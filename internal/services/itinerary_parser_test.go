package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yourmyth/pkg/utils"
)

const rhodesItinerary = `[
  {
    "location": "Rhodes",
    "summary": "Medieval town and beaches.",
    "duration": 2,
    "activities": ["museum", "beach"],
    "itinerary": {
      "Day 2": {"places": ["Elli Beach", " "]},
      "Day 1": {"places": ["Lindos Acropolis", "Old Town"]}
    }
  }
]`

func TestParseItinerary_List(t *testing.T) {
	doc, err := ParseItinerary(rhodesItinerary)
	require.NoError(t, err)

	assert.Equal(t, "Rhodes", doc.Location)
	assert.Equal(t, "Medieval town and beaches.", doc.Summary)
	assert.Equal(t, 2, doc.Duration)
	assert.Equal(t, []string{"museum", "beach"}, doc.Activities)
	require.Len(t, doc.Days, 2)
	assert.Equal(t, 1, doc.Days[0].Day)
	assert.Equal(t, "Day 1", doc.Days[0].Label)
	assert.Equal(t, []string{"Lindos Acropolis", "Old Town"}, doc.Days[0].Places)
	assert.Equal(t, []string{"Elli Beach"}, doc.Days[1].Places, "blank names are dropped")
	assert.Equal(t, []string{"Lindos Acropolis", "Old Town", "Elli Beach"}, doc.PlaceNames())
}

func TestParseItinerary_WrappedOutput(t *testing.T) {
	cases := map[string]string{
		"fenced":           "```json\n" + rhodesItinerary + "\n```",
		"prose":            "Sure! Here is your itinerary:\n" + rhodesItinerary + "\nEnjoy your trip.",
		"bom":              "\uFEFF" + rhodesItinerary,
		"bracket in prose": "Here is your itinerary [in JSON]:\n" + rhodesItinerary,
		"brace in prose":   "Plan {draft} below.\n```json\n" + rhodesItinerary + "\n```",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseItinerary(raw)
			require.NoError(t, err)
			assert.Len(t, doc.Days, 2)
		})
	}
}

func TestParseItinerary_SingleObject(t *testing.T) {
	doc, err := ParseItinerary(`{"location":"Corfu","duration":"3 days","activities":"walk, bar",
		"itinerary":{"day_10":{"places":["A"]},"day_2":{"places":["B"]},"arrival":{"places":["C"]},"1":{"places":[]}}}`)
	require.NoError(t, err)

	assert.Equal(t, 3, doc.Duration)
	assert.Equal(t, []string{"walk", "bar"}, doc.Activities)

	var labels []string
	for _, d := range doc.Days {
		labels = append(labels, d.Label)
	}
	assert.Equal(t, []string{"1", "day_2", "day_10", "arrival"}, labels)
	assert.Equal(t, []int{1, 2, 10, 4}, []int{doc.Days[0].Day, doc.Days[1].Day, doc.Days[2].Day, doc.Days[3].Day})
}

func TestParseItinerary_DurationDefaultsToDayCount(t *testing.T) {
	doc, err := ParseItinerary(`{"itinerary":{"Day 1":{"places":["A"]}}}`)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Duration)
	assert.Equal(t, []string{}, doc.Activities)
}

func TestParseItinerary_SkipsInvalidListEntries(t *testing.T) {
	doc, err := ParseItinerary(`[{"location":"nowhere"},{"location":"Kos","itinerary":{"Day 1":{"places":["Asklepion"]}}}]`)
	require.NoError(t, err)
	assert.Equal(t, "Kos", doc.Location)
}

func TestParseItinerary_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":          "I cannot help with that.",
		"truncated":         `[{"itinerary": {"Day 1": {"places": ["A"`,
		"empty list":        `[]`,
		"missing itinerary": `{"location":"Rhodes"}`,
		"itinerary list":    `{"itinerary":[{"places":["A"]}]}`,
		"no days":           `{"itinerary":{}}`,
		"day not object":    `{"itinerary":{"Day 1":["A"]}}`,
		"missing places":    `{"itinerary":{"Day 1":{"spots":["A"]}}}`,
		"places not list":   `{"itinerary":{"Day 1":{"places":"A"}}}`,
		"null places":       `{"itinerary":{"Day 1":{"places":null}}}`,
		"non-string place":  `{"itinerary":{"Day 1":{"places":[1,2]}}}`,
		"list of scalars":   `[1, 2]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseItinerary(raw)
			assert.ErrorIs(t, err, utils.ErrInvalidItinerary)
		})
	}
}

func TestExtractJSONValue(t *testing.T) {
	assert.Equal(t, `{"a":"}"}`, extractJSONValue(`x {"a":"}"} y`))
	assert.Equal(t, `[{"a":[1]}]`, extractJSONValue(`list: [{"a":[1]}] done`))
	assert.Equal(t, "", extractJSONValue("nothing here"))
	assert.Equal(t, `{"b":1}`, extractJSONValue(`see [note] and {oops then {"b":1}`))
}

func TestParseItinerary_ObjectAfterBracketedProse(t *testing.T) {
	doc, err := ParseItinerary("Here is your itinerary [in JSON]:\n" +
		`{"location":"Rhodes","itinerary":{"Day 1":{"places":["Elli Beach"]}}}`)
	require.NoError(t, err)
	assert.Equal(t, "Rhodes", doc.Location)
	assert.Equal(t, []string{"Elli Beach"}, doc.PlaceNames())
}
