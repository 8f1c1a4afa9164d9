package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/chynybekuuludastan/copywriting_agent/internal/api/handlers"
	ws "github.com/chynybekuuludastan/copywriting_agent/internal/api/websocket"
	"github.com/chynybekuuludastan/copywriting_agent/internal/config"
	"github.com/chynybekuuludastan/copywriting_agent/internal/database"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/video"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/workflow"
)

// Deps carries the services the API routes depend on
type Deps struct {
	RedisClient   *database.RedisClient
	Config        *config.Config
	Engine        *workflow.Engine
	VideoAnalyzer *video.Analyzer
	Hub           *ws.Hub
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, deps Deps) {
	contentHandler := handlers.NewContentHandler(deps.RedisClient, deps.Config, deps.Engine, deps.Hub)
	videoHandler := handlers.NewVideoHandler(deps.VideoAnalyzer)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Content generation routes
	content := api.Group("/content")
	content.Post("/", contentHandler.CreateContent)
	content.Get("/:id", contentHandler.GetContent)
	content.Delete("/:id", contentHandler.CancelContent)
	content.Post("/:id/export", contentHandler.ExportContent)

	// Video caption routes
	api.Post("/video", videoHandler.AnalyzeVideo)

	// WebSocket endpoint for real-time run updates
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws/runs/:id", websocket.New(contentHandler.HandleRunSocket))
}
