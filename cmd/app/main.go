package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/accountfx"
	"voyago/cmd/fx/controllersfx"
	"voyago/cmd/fx/generationfx"
	"voyago/cmd/fx/itineraryfx"
	"voyago/cmd/fx/placesfx"
	"voyago/cmd/fx/preferencesfx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		generationfx.Module,
		placesfx.Module,
		itineraryfx.Module,
		preferencesfx.Module,
		accountfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := utils.GetEnvWithDefault("PORT", "8080")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
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
	itineraryController *controllers.ItineraryController,
	preferenceController *controllers.PreferenceController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, itineraryController, preferenceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	preferenceController *controllers.PreferenceController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	aiGroup := r.Group("/ai")
	aiGroup.Use(middleware.JWTAuthMiddleware())
	aiGroup.POST("/generate-itinerary", itineraryController.GenerateItinerary)
	aiGroup.POST("/generate-itinerary-stream", itineraryController.GenerateItineraryStream)
	aiGroup.POST("/summarize-preferences", preferenceController.SummarizePreferences)
}
