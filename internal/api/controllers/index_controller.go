package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yourmyth/internal/services"
	"yourmyth/pkg/utils"
)

type IndexController struct {
	embededService services.EmbededServiceInterface
	logger         *zap.Logger
}

func NewIndexController(embededService services.EmbededServiceInterface, logger *zap.Logger) *IndexController {
	return &IndexController{
		embededService: embededService,
		logger:         logger,
	}
}

// IndexPlaces godoc
// @Summary Rebuild the vector index
// @Description Embeds every place in the places table and upserts it into the vector index
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /places/index [post]
func (i *IndexController) IndexPlaces(c *gin.Context) {
	indexed, err := i.embededService.IndexPlaces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"indexed": indexed}, "Places indexed successfully")
}

// IndexStatus godoc
// @Summary Vector index size
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /places/index [get]
func (i *IndexController) IndexStatus(c *gin.Context) {
	count, err := i.embededService.CountIndexed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"documents": count}, "Index status fetched successfully")
}
