package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yourmyth/internal/models/request_models"
	"yourmyth/internal/services"
	"yourmyth/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
	logger                *zap.Logger
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface, logger *zap.Logger) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
		logger:                logger,
	}
}

// Recommend godoc
// @Summary Travel recommendations for a country
// @Description Answers free-text activity preferences using the places most similar to the request
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.RecommendationRequest true "Country and activities"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /recommendations [post]
func (r *RecommendationController) Recommend(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := r.recommendationService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, r.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, "Recommendation created successfully")
}
