package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/video"
)

// VideoRequest represents a video analysis request. Source points at a
// directory of pre-decoded frame stills.
type VideoRequest struct {
	Source             string                  `json:"source"`
	ContentType        models.VideoContentType `json:"content_type"`
	Keywords           []string                `json:"keywords"`
	MaxFrames          int                     `json:"max_frames,omitempty"`
	CustomInstructions string                  `json:"custom_instructions,omitempty"`
}

// VideoHandler handles video caption generation requests
type VideoHandler struct {
	Analyzer *video.Analyzer
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(analyzer *video.Analyzer) *VideoHandler {
	return &VideoHandler{Analyzer: analyzer}
}

// AnalyzeVideo generates a caption, hashtags and recommendations for a
// short-form video
func (h *VideoHandler) AnalyzeVideo(c *fiber.Ctx) error {
	req := new(VideoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}
	if req.Source == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "source is required",
		})
	}
	if req.ContentType == "" {
		req.ContentType = models.VideoInstagramReel
	}

	result, err := h.Analyzer.AnalyzeVideo(c.Context(), video.Request{
		Source:             req.Source,
		ContentType:        req.ContentType,
		Keywords:           req.Keywords,
		MaxFrames:          req.MaxFrames,
		CustomInstructions: req.CustomInstructions,
	})
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, video.ErrNoFrames) || errors.Is(err, video.ErrNoStills) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
