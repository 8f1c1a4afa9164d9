package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/chynybekuuludastan/copywriting_agent/internal/api"
	"github.com/chynybekuuludastan/copywriting_agent/internal/api/handlers"
	ws "github.com/chynybekuuludastan/copywriting_agent/internal/api/websocket"
	"github.com/chynybekuuludastan/copywriting_agent/internal/config"
	"github.com/chynybekuuludastan/copywriting_agent/internal/database"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/llm"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/search"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/video"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/workflow"
)

// logrusAdapter bridges the service logging contract onto logrus
type logrusAdapter struct {
	entry *logrus.Entry
}

func newLogrusAdapter(env string) *logrusAdapter {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	if env == "development" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return &logrusAdapter{entry: logrus.NewEntry(l)}
}

func (a *logrusAdapter) fields(keysAndValues []interface{}) *logrus.Entry {
	entry := a.entry
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		entry = entry.WithField(key, keysAndValues[i+1])
	}
	return entry
}

func (a *logrusAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.fields(keysAndValues).Debug(msg)
}

func (a *logrusAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.fields(keysAndValues).Info(msg)
}

func (a *logrusAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.fields(keysAndValues).Error(msg)
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.NewConfig()
	if err := cfg.ValidateRequired(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger := newLogrusAdapter(cfg.Environment)

	// Connect to Redis
	redisClient, err := database.InitRedis(cfg.RedisURI)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// LLM service with the Gemini provider
	llmService := llm.NewService(llm.ServiceOptions{
		DefaultProvider: "gemini",
		RedisClient:     redisClient.Client,
		RateLimit:       rate.Limit(cfg.RateLimit),
		CacheTTL:        cfg.CacheTTL,
		MaxRetries:      cfg.MaxRetries,
		RequestTimeout:  cfg.RequestTimeout,
		Logger:          appLogger,
	})
	defer llmService.Close()

	geminiProvider, err := llm.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini provider: %v", err)
	}
	llmService.RegisterProvider(geminiProvider)

	// Web research
	searchClient := search.NewClient(cfg.BraveSearchURL, cfg.BraveAPIKey,
		search.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		search.WithRedisClient(redisClient.Client),
		search.WithRetries(cfg.MaxRetries),
		search.WithCacheTTL(cfg.CacheTTL),
		search.WithLogger(appLogger),
	)
	searcher := &search.EnrichingClient{
		Client:   searchClient,
		Enricher: search.NewEnricher(cfg.EnrichPages),
	}

	// WebSocket hub for run progress
	hub := ws.NewHub()
	go hub.Run()

	// Content pipeline
	engine := workflow.NewEngine(llmService, searcher, workflow.Options{
		ScoreThreshold: cfg.OptimizeThreshold,
		RefineBelow:    cfg.RefineBelow,
		MaxRefinements: cfg.MaxRefinements,
		ResearchCount:  cfg.ResearchResults,
		ModelName:      cfg.GeminiModel,
		Publisher:      &handlers.HubPublisher{Hub: hub},
		Logger:         appLogger,
	})

	// Video caption pipeline
	videoAnalyzer := video.NewAnalyzer(video.NewStillDirExtractor(), llmService, video.AnalyzerOptions{
		Hashtags: searchClient,
		Logger:   appLogger,
	})

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE",
	}))

	api.SetupRoutes(app, api.Deps{
		RedisClient:   redisClient,
		Config:        cfg,
		Engine:        engine,
		VideoAnalyzer: videoAnalyzer,
		Hub:           hub,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
