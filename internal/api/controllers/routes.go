package controllers

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine,
	placesController *PlacesController,
	recommendationController *RecommendationController,
	itineraryController *ItineraryController,
	weatherController *WeatherController,
	indexController *IndexController) {

	placesGroup := r.Group("/places")
	placesGroup.GET("/filters", placesController.ListFilters)
	placesGroup.GET("/activities", placesController.ListActivities)
	placesGroup.POST("/select", placesController.SelectPlaces)
	placesGroup.GET("/index", indexController.IndexStatus)
	placesGroup.POST("/index", indexController.IndexPlaces)

	r.GET("/countries", placesController.ListCountries)
	r.POST("/recommendations", recommendationController.Recommend)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.POST("/plan", itineraryController.Plan)
	itineraryGroup.POST("/sequential", itineraryController.PlanSequential)
	itineraryGroup.POST("/json", itineraryController.PlanJSON)

	weatherGroup := r.Group("/weather")
	weatherGroup.GET("", weatherController.GetWeather)
	weatherGroup.POST("/summary", weatherController.SummarizeWeather)
}
