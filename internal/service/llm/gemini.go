package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements the Provider interface for Google's Gemini API
type GeminiProvider struct {
	modelName string
	client    *genai.Client
	logger    Logger
}

// NewGeminiProvider creates a new Gemini provider using the official client
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, logger Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("a valid Gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-pro-latest"
	}

	if logger == nil {
		logger = &DefaultLogger{}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		modelName: modelName,
		client:    client,
		logger:    logger,
	}, nil
}

// GetName returns the provider name
func (p *GeminiProvider) GetName() string {
	return "gemini"
}

// GenerateText implements the Provider interface
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	model := p.configuredModel(temperature)

	p.logger.Debug("Sending prompt to Gemini", "chars", len(prompt))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		p.logger.Error("Gemini API error", "error", err)
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return extractResponseText(resp)
}

// GenerateWithImages implements the Provider interface. Images are sent
// as JPEG frames alongside the prompt.
func (p *GeminiProvider) GenerateWithImages(ctx context.Context, prompt string, images [][]byte, temperature float32) (string, error) {
	model := p.configuredModel(temperature)

	parts := make([]genai.Part, 0, len(images)+1)
	parts = append(parts, genai.Text(prompt))
	for _, image := range images {
		parts = append(parts, genai.ImageData("jpeg", image))
	}

	p.logger.Debug("Sending prompt with images to Gemini", "images", len(images))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		p.logger.Error("Gemini vision API error", "error", err)
		return "", fmt.Errorf("Gemini vision API error: %w", err)
	}

	return extractResponseText(resp)
}

// Close closes the Gemini client
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

func (p *GeminiProvider) configuredModel(temperature float32) *genai.GenerativeModel {
	model := p.client.GenerativeModel(p.modelName)
	model.SetTemperature(temperature)
	model.SetTopP(0.95)
	model.SetTopK(40)
	model.SetMaxOutputTokens(8192)

	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	return model
}

// extractResponseText concatenates the text parts of a Gemini response
func extractResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("content blocked: %s", resp.PromptFeedback.BlockReason)
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			text += string(textPart)
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
