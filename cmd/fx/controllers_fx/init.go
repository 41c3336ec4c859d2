package controllers_fx

import (
	"go.uber.org/fx"
	"tripweaver/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewTripController))
