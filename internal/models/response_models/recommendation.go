package response_models

type SourceDocument struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Similarity float64  `json:"similarity"`
}

type RecommendationResponse struct {
	Country        string           `json:"country"`
	Recommendation string           `json:"recommendation"`
	Sources        []SourceDocument `json:"sources"`
}
