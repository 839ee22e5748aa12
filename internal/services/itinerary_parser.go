package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"yourmyth/internal/models/response_models"
	"yourmyth/pkg/utils"
)

var dayNumberPattern = regexp.MustCompile(`\d+`)

// ParseItinerary validates model output against the itinerary document shape. The JSON may be
// wrapped in markdown fences or prose, and may be a single object or a list of them; the first
// list entry with a usable itinerary wins.
func ParseItinerary(raw string) (response_models.ItineraryDocument, error) {
	payload := extractJSONValue(cleanModelOutput(raw))
	if payload == "" {
		return response_models.ItineraryDocument{}, fmt.Errorf("%w: no JSON found in model output", utils.ErrInvalidItinerary)
	}

	var entries []json.RawMessage
	if strings.HasPrefix(payload, "[") {
		if err := json.Unmarshal([]byte(payload), &entries); err != nil {
			return response_models.ItineraryDocument{}, fmt.Errorf("%w: %v", utils.ErrInvalidItinerary, err)
		}
		if len(entries) == 0 {
			return response_models.ItineraryDocument{}, fmt.Errorf("%w: empty list", utils.ErrInvalidItinerary)
		}
	} else {
		entries = []json.RawMessage{json.RawMessage(payload)}
	}

	var firstErr error
	for i, entry := range entries {
		doc, err := parseItineraryEntry(entry)
		if err == nil {
			return doc, nil
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return response_models.ItineraryDocument{}, fmt.Errorf("%w: %v", utils.ErrInvalidItinerary, firstErr)
}

func parseItineraryEntry(entry json.RawMessage) (response_models.ItineraryDocument, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		return response_models.ItineraryDocument{}, fmt.Errorf("entry is not an object")
	}

	rawItinerary, ok := fields["itinerary"]
	if !ok {
		return response_models.ItineraryDocument{}, fmt.Errorf(`missing "itinerary"`)
	}

	var days map[string]json.RawMessage
	if err := json.Unmarshal(rawItinerary, &days); err != nil || days == nil {
		return response_models.ItineraryDocument{}, fmt.Errorf(`"itinerary" must be an object of days`)
	}
	if len(days) == 0 {
		return response_models.ItineraryDocument{}, fmt.Errorf(`"itinerary" has no days`)
	}

	parsedDays := make([]response_models.ItineraryDay, 0, len(days))
	for key, rawDay := range days {
		var day struct {
			Places []json.RawMessage `json:"places"`
		}
		var dayFields map[string]json.RawMessage
		if err := json.Unmarshal(rawDay, &dayFields); err != nil {
			return response_models.ItineraryDocument{}, fmt.Errorf("day %q must be an object", key)
		}
		rawPlaces, ok := dayFields["places"]
		if !ok {
			return response_models.ItineraryDocument{}, fmt.Errorf(`day %q is missing "places"`, key)
		}
		if string(bytes.TrimSpace(rawPlaces)) == "null" {
			return response_models.ItineraryDocument{}, fmt.Errorf(`day %q: "places" must be a list`, key)
		}
		if err := json.Unmarshal(rawDay, &day); err != nil {
			return response_models.ItineraryDocument{}, fmt.Errorf(`day %q: "places" must be a list`, key)
		}

		places := make([]string, 0, len(day.Places))
		for _, rawPlace := range day.Places {
			var name string
			if err := json.Unmarshal(rawPlace, &name); err != nil {
				return response_models.ItineraryDocument{}, fmt.Errorf("day %q: places must be strings", key)
			}
			if name = strings.TrimSpace(name); name != "" {
				places = append(places, name)
			}
		}
		parsedDays = append(parsedDays, response_models.ItineraryDay{Label: key, Places: places})
	}

	orderDays(parsedDays)

	doc := response_models.ItineraryDocument{
		Location:   decodeString(fields["location"]),
		Summary:    decodeString(fields["summary"]),
		Duration:   decodeInt(fields["duration"]),
		Activities: decodeStringList(fields["activities"]),
		Days:       parsedDays,
	}
	if doc.Duration <= 0 {
		doc.Duration = len(parsedDays)
	}
	return doc, nil
}

// orderDays sorts by the number in the day key; keys without one follow in lexical order.
// Day is the key's number, or the 1-based position for keys without one.
func orderDays(days []response_models.ItineraryDay) {
	numbers := make(map[string]int, len(days))
	for _, d := range days {
		if m := dayNumberPattern.FindString(d.Label); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				numbers[d.Label] = n
			}
		}
	}

	sort.SliceStable(days, func(i, j int) bool {
		ni, iok := numbers[days[i].Label]
		nj, jok := numbers[days[j].Label]
		switch {
		case iok && jok && ni != nj:
			return ni < nj
		case iok != jok:
			return iok
		default:
			return days[i].Label < days[j].Label
		}
	})

	for i := range days {
		if n, ok := numbers[days[i].Label]; ok {
			days[i].Day = n
		} else {
			days[i].Day = i + 1
		}
	}
}

// cleanModelOutput strips a BOM and markdown code fences.
func cleanModelOutput(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "\uFEFF")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// extractJSONValue returns the first balanced, valid JSON object or array in s, or "".
// Brackets in surrounding prose are skipped.
func extractJSONValue(s string) string {
	for start := 0; start < len(s); start++ {
		if s[start] != '{' && s[start] != '[' {
			continue
		}
		if candidate := balancedFrom(s, start); candidate != "" && json.Valid([]byte(candidate)) {
			return candidate
		}
	}
	return ""
}

// balancedFrom returns s[start:] up to the bracket closing the one at start, or "".
func balancedFrom(s string, start int) string {
	open := s[start]
	closing := byte('}')
	if open == '[' {
		closing = ']'
	}

	inString := false
	escape := false
	depth := 0
	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func decodeInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if json.Unmarshal(raw, &f) == nil {
		return int(f)
	}
	if m := dayNumberPattern.FindString(decodeString(raw)); m != "" {
		n, _ := strconv.Atoi(m)
		return n
	}
	return 0
}

func decodeStringList(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}

	var list []any
	if json.Unmarshal(raw, &list) == nil {
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	for _, part := range strings.Split(decodeString(raw), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
