package controllers_fx

import (
	"go.uber.org/fx"
	"yourmyth/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewIndexController))
