package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/services"
	"yourmyth/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
	logger       *zap.Logger
}

func NewPlacesController(placeService services.PlaceServiceInterface, logger *zap.Logger) *PlacesController {
	return &PlacesController{
		placeService: placeService,
		logger:       logger,
	}
}

// ListFilters godoc
// @Summary List place filters
// @Description Every category tag found in the places dataset, sorted
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /places/filters [get]
func (p *PlacesController) ListFilters(c *gin.Context) {
	filters, err := p.placeService.ListFilters(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, filters, "Filters fetched successfully")
}

// ListActivities godoc
// @Summary List activity categories
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /places/activities [get]
func (p *PlacesController) ListActivities(c *gin.Context) {
	utils.RespondSuccess(c, p.placeService.ListActivities(), "Activities fetched successfully")
}

// ListCountries godoc
// @Summary List supported countries
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /countries [get]
func (p *PlacesController) ListCountries(c *gin.Context) {
	utils.RespondSuccess(c, p.placeService.ListCountries(), "Countries fetched successfully")
}

// SelectPlaces godoc
// @Summary Select places for a trip
// @Description Top-rated places matching a location and any of the tags, two per trip day
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.SelectPlacesRequest true "Selection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /places/select [post]
func (p *PlacesController) SelectPlaces(c *gin.Context) {
	var req request_models.SelectPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	selection, err := p.placeService.Select(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, selection, "Places selected successfully")
}
