package response_models

type ItineraryDay struct {
	Day    int      `json:"day"`
	Label  string   `json:"label"`
	Places []string `json:"places"`
}

// ItineraryDocument is the validated shape of a model-generated JSON itinerary.
type ItineraryDocument struct {
	Location   string         `json:"location"`
	Summary    string         `json:"summary"`
	Duration   int            `json:"duration"`
	Activities []string       `json:"activities"`
	Days       []ItineraryDay `json:"days"`
}

// PlaceNames returns every place of every day in day order.
func (d ItineraryDocument) PlaceNames() []string {
	var names []string
	for _, day := range d.Days {
		names = append(names, day.Places...)
	}
	return names
}

type PlanResponse struct {
	Places    []Place  `json:"places"`
	Map       *MapView `json:"map,omitempty"`
	Itinerary string   `json:"itinerary"`
}

type SequentialPlanResponse struct {
	Places          []Place  `json:"places"`
	Map             *MapView `json:"map,omitempty"`
	SuggestedPlaces string   `json:"suggested_places"`
	Itinerary       string   `json:"itinerary"`
}

// JSONPlanResponse carries either a valid itinerary or the failure text with the raw output.
type JSONPlanResponse struct {
	Valid      bool               `json:"valid"`
	Itinerary  *ItineraryDocument `json:"itinerary,omitempty"`
	Error      string             `json:"error,omitempty"`
	Raw        string             `json:"raw"`
	TokenCount int                `json:"token_count"`
	Places     []GeocodedPlace    `json:"places"`
	Map        *MapView           `json:"map,omitempty"`
}
