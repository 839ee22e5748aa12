package request_models

type SelectPlacesRequest struct {
	Location string   `json:"location" binding:"required"`
	Tags     []string `json:"tags" binding:"required,min=1"`
	Duration int      `json:"duration"`
}
