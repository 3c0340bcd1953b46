package main

import (
	"fmt"
	"log"
	"net/http"

	"matchday/backend/internal/auth"
	"matchday/backend/internal/config"
	"matchday/backend/internal/database"
	"matchday/backend/internal/handler"
	"matchday/backend/internal/roster"
	"matchday/backend/internal/teams"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "matchday/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Matchday API
// @version         1.0
// @description     Signup and roster service for pickup soccer matches.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	var generator *teams.Generator
	if config.AppConfig.GroqAPIKey != "" {
		generator = teams.NewGenerator(config.AppConfig.GroqAPIKey, config.AppConfig.GroqModel)
	} else {
		log.Println("Warning: GROQ_API_KEY not set, AI team generation disabled")
	}
	handler.Setup(roster.New(database.DB), generator)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Match routes; creation returns the organizer token, deletion
		// requires it.
		matchRoutes := apiV1.Group("/matches")
		{
			matchRoutes.POST("", handler.CreateMatch)
			matchRoutes.GET("", handler.GetMatches)
			matchRoutes.GET("/:id", handler.GetMatchByID)
			matchRoutes.POST("/:id/token", handler.IssueMatchToken)
			matchRoutes.DELETE("/:id", auth.MatchTokenMiddleware(), handler.DeleteMatch)

			// Self-service signup routes (public; the share link is the
			// only gate, as with a paper signup sheet)
			matchRoutes.POST("/:id/signups", handler.CreateSignup)
			matchRoutes.DELETE("/:id/signups/:signupID", handler.DeleteSignup)
			matchRoutes.PUT("/:id/signups/:signupID/order", handler.ReorderSignupUp)
			matchRoutes.PUT("/:id/signups/:signupID/meal", handler.UpdateSignupMeal)
			matchRoutes.PUT("/:id/signups/:signupID/positions", handler.UpdateSignupPositions)
			matchRoutes.GET("/:id/roster", handler.GetRoster)
			matchRoutes.GET("/:id/events", handler.StreamRosterEvents)

			// Team split routes
			matchRoutes.POST("/:id/teams", handler.GenerateTeams)
			matchRoutes.POST("/:id/teams/ai", handler.GenerateTeamsAI)
		}

		// Share-link resolution (lives outside /matches so the static
		// segment does not clash with the :id wildcard)
		apiV1.GET("/join/:code", handler.GetMatchByCode)

		// Player routes
		playerRoutes := apiV1.Group("/players")
		{
			playerRoutes.POST("", handler.CreatePlayer)
			playerRoutes.GET("", handler.GetPlayers)
			playerRoutes.GET("/:id", handler.GetPlayerByID)
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
