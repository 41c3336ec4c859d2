package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripweaver/cmd/fx/account_fx"
	"tripweaver/cmd/fx/controllers_fx"
	"tripweaver/cmd/fx/db_fx"
	"tripweaver/cmd/fx/destination_fx"
	"tripweaver/cmd/fx/planner_fx"
	"tripweaver/cmd/fx/trip_fx"
	"tripweaver/internal/api/controllers"
	"tripweaver/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		destination_fx.Module,
		trip_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	destinationController *controllers.DestinationController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, destinationController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	destinationController *controllers.DestinationController,
	tripController *controllers.TripController) {

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	api.GET("/users/me", middleware.JWTAuthMiddleware(), accountController.Me)

	destinations := api.Group("/destinations")
	destinations.GET("", destinationController.GetDestinations)
	destinations.GET("/:id", destinationController.GetDestinationById)
	destinations.GET("/:id/attractions", destinationController.GetAttractions)
	destinations.GET("/:id/hotels", destinationController.GetHotels)
	destinations.GET("/:id/restaurants", destinationController.GetRestaurants)

	trips := api.Group("/trips")
	trips.POST("/plan", middleware.OptionalJWTAuthMiddleware(), tripController.PlanTrip)
	trips.GET("", middleware.JWTAuthMiddleware(), tripController.GetTrips)
	trips.GET("/:id", middleware.JWTAuthMiddleware(), tripController.GetTripById)
	trips.PUT("/:id", middleware.JWTAuthMiddleware(), tripController.UpdateTrip)
	trips.DELETE("/:id", middleware.JWTAuthMiddleware(), tripController.DeleteTrip)
}
