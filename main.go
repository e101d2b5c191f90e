package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sumacommu/sumatest-sub000/config"
	_ "github.com/sumacommu/sumatest-sub000/docs" // Swagger docs
	"github.com/sumacommu/sumatest-sub000/handlers"
	"github.com/sumacommu/sumatest-sub000/middleware"
	"github.com/sumacommu/sumatest-sub000/services"
)

// @title           Sumatest API
// @version         1.0
// @description     Matchmaking API for an online fighting game, mirrored by the HTML site routes

// @host      localhost:8080
// @BasePath  /api

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Use(middleware.Session())

	userService := services.NewUserService(config.DB)
	matchmakingService := services.NewMatchmakingService(config.DB)
	setupService := services.NewSetupService(config.DB)

	authHandler := handlers.NewAuthHandler(userService)
	pageHandler := handlers.NewPageHandler(userService)
	soloHandler := handlers.NewSoloHandler(matchmakingService, userService)
	setupHandler := handlers.NewSetupHandler(setupService)
	apiHandler := handlers.NewAPIHandler(matchmakingService, setupService, userService)

	// Site routes
	r.GET("/", pageHandler.Home)
	r.GET("/auth/google", authHandler.Login)
	r.GET("/auth/google/callback", authHandler.Callback)
	r.GET("/logout", authHandler.Logout)
	r.GET("/team", middleware.RequireUser(), pageHandler.Team)

	solo := r.Group("/solo")
	solo.Use(middleware.RequireUser())
	{
		solo.GET("", soloHandler.Index)
		solo.POST("/match", soloHandler.Match)
		solo.GET("/check", soloHandler.Check)
		solo.GET("/cancel", soloHandler.Cancel)
		solo.POST("/update", soloHandler.UpdateRoom)
		solo.GET("/setup/:matchId", setupHandler.ShowSetup)
		solo.POST("/setup/:matchId", setupHandler.SelectCharacter)
		solo.POST("/setup/:matchId/mii", setupHandler.SetMiiMoves)
		solo.GET("/stage/:matchId", setupHandler.ShowStage)
		solo.POST("/stage/:matchId", setupHandler.SelectStage)
	}

	// API routes, same contract over the same services
	api := r.Group("/api")
	api.Use(cors.New(corsConfig()))
	api.Use(middleware.RequireUserJSON())
	{
		api.GET("/solo", apiHandler.GetSolo)
		api.POST("/solo/match", apiHandler.RequestMatch)
		api.GET("/solo/check", apiHandler.CheckStatus)
		api.GET("/solo/cancel", apiHandler.CancelWaiting)
		api.POST("/solo/update", apiHandler.UpdateRoom)
		api.GET("/solo/setup/:matchId", apiHandler.GetSetup)
		api.POST("/solo/setup/:matchId", apiHandler.SelectCharacter)
		api.POST("/solo/setup/:matchId/mii", apiHandler.SetMiiMoves)
		api.POST("/solo/stage/:matchId", apiHandler.SelectStage)
	}

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server error: ", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	for _, origin := range strings.Split(origins, ",") {
		cfg.AllowOrigins = append(cfg.AllowOrigins, strings.TrimSpace(origin))
	}
	cfg.AllowCredentials = true
	return cfg
}

// healthHandler reports service liveness
// @Summary Health check
// @Description Check if the server is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
}
