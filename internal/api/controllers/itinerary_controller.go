package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/services"
	"yourmyth/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// Plan godoc
// @Summary Daily itinerary for a location
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Location, filters and duration"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/plan [post]
func (i *ItineraryController) Plan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.Plan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

// PlanSequential godoc
// @Summary Itinerary planned one day at a time
// @Description Each day is generated with the previous days as context
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Location, filters and duration"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itineraries/sequential [post]
func (i *ItineraryController) PlanSequential(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.PlanSequential(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}

// PlanJSON godoc
// @Summary Structured itinerary with geocoded places
// @Description A model answer that is not a valid itinerary is returned with valid=false
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.JSONPlanRequest true "Location, activities and duration"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/json [post]
func (i *ItineraryController) PlanJSON(c *gin.Context) {
	var req request_models.JSONPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.PlanJSON(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	message := "Travel plan created successfully"
	if !plan.Valid {
		message = "Model output is not a valid itinerary"
	}
	utils.RespondSuccess(c, plan, message)
}
