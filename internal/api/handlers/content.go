package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	ws "github.com/chynybekuuludastan/copywriting_agent/internal/api/websocket"
	"github.com/chynybekuuludastan/copywriting_agent/internal/config"
	"github.com/chynybekuuludastan/copywriting_agent/internal/database"
	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/workflow"
	"github.com/chynybekuuludastan/copywriting_agent/internal/utils/export"
)

// Run lifecycle statuses reported over the API.
const (
	RunStatusPending   = "pending"
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
	RunStatusCancelled = "cancelled"
)

// ContentRun is the stored record of a generation run
type ContentRun struct {
	ID          uuid.UUID               `json:"id"`
	Status      string                  `json:"status"`
	Request     *models.ContentRequest  `json:"request"`
	Content     string                  `json:"content,omitempty"`
	Metadata    map[string]interface{}  `json:"metadata,omitempty"`
	Research    []models.ResearchResult `json:"research_results,omitempty"`
	Error       string                  `json:"error,omitempty"`
	Export      bool                    `json:"export,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
}

// ContentHandler handles content generation requests
type ContentHandler struct {
	RedisClient *database.RedisClient
	Config      *config.Config
	Engine      *workflow.Engine
	Hub         *ws.Hub

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
}

// NewContentHandler creates a new content handler
func NewContentHandler(redisClient *database.RedisClient, cfg *config.Config, engine *workflow.Engine, hub *ws.Hub) *ContentHandler {
	return &ContentHandler{
		RedisClient: redisClient,
		Config:      cfg,
		Engine:      engine,
		Hub:         hub,
		cancels:     make(map[uuid.UUID]context.CancelFunc),
	}
}

// CreateContent starts a generation run and returns its ID
func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	req := new(models.ContentRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	run := &ContentRun{
		ID:        uuid.New(),
		Status:    RunStatusPending,
		Request:   req,
		Export:    c.QueryBool("export"),
		CreatedAt: time.Now(),
	}
	if err := h.saveRun(c.Context(), run); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to store run: " + err.Error(),
		})
	}

	go h.runWorkflow(run)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"run_id": run.ID,
			"status": run.Status,
		},
	})
}

// runWorkflow executes the pipeline in the background and records the
// outcome.
func (h *ContentHandler) runWorkflow(run *ContentRun) {
	ctx, cancel := context.WithCancel(context.Background())
	h.mu.Lock()
	h.cancels[run.ID] = cancel
	h.mu.Unlock()
	defer func() {
		cancel()
		h.mu.Lock()
		delete(h.cancels, run.ID)
		h.mu.Unlock()
	}()

	run.Status = RunStatusRunning
	h.saveRun(ctx, run)

	response, err := h.Engine.Run(ctx, run.ID.String(), run.Request)

	now := time.Now()
	run.CompletedAt = &now
	switch {
	case err == nil:
		run.Status = RunStatusCompleted
		run.Content = response.Content
		run.Metadata = response.Metadata
		run.Research = response.ResearchResults
		if run.Export {
			if path, exportErr := export.SaveMarkdown(h.Config.ExportDir, run.Request.ContentType, run.Content); exportErr == nil {
				run.Metadata["export_path"] = path
			}
		}
	case errors.Is(err, workflow.ErrCancelled):
		run.Status = RunStatusCancelled
		run.Error = err.Error()
	default:
		run.Status = RunStatusFailed
		run.Error = err.Error()
	}

	// The run context may already be cancelled, store under a fresh one
	h.saveRun(context.Background(), run)

	h.Hub.BroadcastToRun(run.ID, ws.Message{
		Type: "run_finished",
		Data: fiber.Map{
			"run_id": run.ID.String(),
			"status": run.Status,
			"error":  run.Error,
		},
	})
}

// GetContent returns the current state of a run
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	runID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid run ID",
		})
	}

	run, err := h.loadRun(c.Context(), runID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Run not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    run,
	})
}

// CancelContent aborts a running generation
func (h *ContentHandler) CancelContent(c *fiber.Ctx) error {
	runID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid run ID",
		})
	}

	h.mu.Lock()
	cancel, ok := h.cancels[runID]
	h.mu.Unlock()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "No active run with this ID",
		})
	}
	cancel()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"run_id": runID,
			"status": RunStatusCancelled,
		},
	})
}

// ExportContent writes a completed run's content to a markdown file
func (h *ContentHandler) ExportContent(c *fiber.Ctx) error {
	runID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid run ID",
		})
	}

	run, err := h.loadRun(c.Context(), runID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Run not found",
		})
	}
	if run.Status != RunStatusCompleted || run.Content == "" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Run has no content to export",
		})
	}

	path, err := export.SaveMarkdown(h.Config.ExportDir, run.Request.ContentType, run.Content)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to export content: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"run_id": runID,
			"path":   path,
		},
	})
}

func (h *ContentHandler) saveRun(ctx context.Context, run *ContentRun) error {
	return h.RedisClient.Set(ctx, runKey(run.ID), run, h.Config.CacheTTL)
}

func (h *ContentHandler) loadRun(ctx context.Context, runID uuid.UUID) (*ContentRun, error) {
	run := new(ContentRun)
	if err := h.RedisClient.Get(ctx, runKey(runID), run); err != nil {
		return nil, err
	}
	return run, nil
}

func runKey(runID uuid.UUID) string {
	return "run:" + runID.String()
}
