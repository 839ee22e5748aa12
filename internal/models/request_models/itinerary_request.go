package request_models

type RecommendationRequest struct {
	Country    string `json:"country" binding:"required"`
	Activities string `json:"activities" binding:"required"`
}

type PlanRequest struct {
	Location string   `json:"location" binding:"required"`
	Filters  []string `json:"filters" binding:"required,min=1"`
	Duration int      `json:"duration"`
}

type JSONPlanRequest struct {
	Location   string   `json:"location" binding:"required"`
	Activities []string `json:"activities" binding:"required,min=1"`
	Duration   int      `json:"duration"`
}

type WeatherSummaryRequest struct {
	Place    string `json:"place" binding:"required"`
	Question string `json:"question"`
}
