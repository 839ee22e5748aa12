package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/services"
	"yourmyth/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
	logger         *zap.Logger
}

func NewWeatherController(weatherService services.WeatherServiceInterface, logger *zap.Logger) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
		logger:         logger,
	}
}

// GetWeather godoc
// @Summary Current weather at a place
// @Tags Weather
// @Produce json
// @Param place query string true "Place name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /weather [get]
func (w *WeatherController) GetWeather(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		utils.RespondError(c, http.StatusBadRequest, "place is required")
		return
	}

	resp, err := w.weatherService.Lookup(c.Request.Context(), place)
	if err != nil {
		utils.HandleServiceError(c, w.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, "Weather fetched successfully")
}

func (w *WeatherController) SummarizeWeather(c *gin.Context) {
	var req request_models.WeatherSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "place is required")
		return
	}

	resp, err := w.weatherService.Summarize(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, w.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, "Weather summarized successfully")
}
