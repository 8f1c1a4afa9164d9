package video

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/llm"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/prompts"
)

const (
	// DefaultMaxFrames is the number of frames sampled from a video.
	DefaultMaxFrames = 5

	instagramHashtagLimit = 30
	youtubeHashtagLimit   = 15
)

var (
	ErrNoFrames         = errors.New("no frames extracted from video")
	ErrAnalysisFailed   = errors.New("video analysis failed")
	ErrMissingExtractor = errors.New("no frame extractor configured")
)

// FrameExtractor samples frames from a video source as JPEG bytes.
type FrameExtractor interface {
	ExtractFrames(ctx context.Context, source string, maxFrames int) ([][]byte, error)
}

// VisionModel generates text from a prompt plus images. Satisfied by
// the LLM service.
type VisionModel interface {
	GenerateWithImages(ctx context.Context, prompt string, images [][]byte) (string, error)
}

// HashtagSource supplies trending hashtags for a topic and platform.
// Satisfied by the search client.
type HashtagSource interface {
	TrendingHashtags(ctx context.Context, topic, platform string) ([]string, error)
}

// Analyzer turns short-form video into platform-ready captions,
// hashtags and performance recommendations.
type Analyzer struct {
	extractor FrameExtractor
	model     VisionModel
	hashtags  HashtagSource
	maxFrames int
	logger    llm.Logger
}

// AnalyzerOptions configure an Analyzer. Hashtags may be nil, in which
// case only model-generated hashtags are used.
type AnalyzerOptions struct {
	MaxFrames int
	Hashtags  HashtagSource
	Logger    llm.Logger
}

func NewAnalyzer(extractor FrameExtractor, model VisionModel, opts AnalyzerOptions) *Analyzer {
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = DefaultMaxFrames
	}
	if opts.Logger == nil {
		opts.Logger = &llm.DefaultLogger{}
	}
	return &Analyzer{
		extractor: extractor,
		model:     model,
		hashtags:  opts.Hashtags,
		maxFrames: opts.MaxFrames,
		logger:    opts.Logger,
	}
}

// Request describes one video analysis. Source points at the frame
// stills for the clip. MaxFrames of zero uses the analyzer default.
type Request struct {
	Source             string
	ContentType        models.VideoContentType
	Keywords           []string
	MaxFrames          int
	CustomInstructions string
}

// AnalyzeVideo samples frames from the source, asks the vision model
// for a structured breakdown and merges in trending hashtags.
func (a *Analyzer) AnalyzeVideo(ctx context.Context, req Request) (*models.VideoAnalysisResult, error) {
	if a.extractor == nil {
		return nil, ErrMissingExtractor
	}

	maxFrames := req.MaxFrames
	if maxFrames <= 0 {
		maxFrames = a.maxFrames
	}

	frames, err := a.extractor.ExtractFrames(ctx, req.Source, maxFrames)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	platform := PlatformFor(req.ContentType)
	trending := a.trendingHashtags(ctx, req.Keywords, platform)

	prompt := prompts.VideoAnalysis(req.ContentType, req.Keywords, req.CustomInstructions)
	response, err := a.model.GenerateWithImages(ctx, prompt, frames)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	parsed := parseResponse(response, req.ContentType)
	hashtags := mergeHashtags(parsed.Hashtags, trending, req.ContentType)

	metadata := map[string]interface{}{
		"platform":     platform,
		"content_type": string(req.ContentType),
		"frame_count":  len(frames),
		"keywords":     req.Keywords,
	}
	if req.ContentType == models.VideoYouTubeShort {
		metadata["title"] = parsed.Title
		metadata["description"] = parsed.Description
	}

	return &models.VideoAnalysisResult{
		Caption:         parsed.Caption,
		Hashtags:        hashtags,
		Recommendations: parsed.Recommendations,
		Metadata:        metadata,
	}, nil
}

func (a *Analyzer) trendingHashtags(ctx context.Context, keywords []string, platform string) []string {
	if a.hashtags == nil || len(keywords) == 0 {
		return nil
	}

	topic := keywords
	if len(topic) > 3 {
		topic = topic[:3]
	}

	tags, err := a.hashtags.TrendingHashtags(ctx, strings.Join(topic, " "), platform)
	if err != nil {
		a.logger.Error("Trending hashtag lookup failed", "error", err)
		return nil
	}
	return tags
}

// PlatformFor maps a video content type to its platform name.
func PlatformFor(contentType models.VideoContentType) string {
	switch contentType {
	case models.VideoInstagramReel:
		return "instagram"
	case models.VideoYouTubeShort:
		return "youtube"
	case models.VideoTikTok:
		return "tiktok"
	default:
		return "all"
	}
}

// SelectFrameIndices picks evenly spaced frame indices. When the video
// has no more frames than requested every frame is used.
func SelectFrameIndices(totalFrames, maxFrames int) []int {
	if totalFrames <= 0 || maxFrames <= 0 {
		return nil
	}

	if totalFrames <= maxFrames {
		indices := make([]int, totalFrames)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	indices := make([]int, maxFrames)
	for i := 0; i < maxFrames; i++ {
		indices[i] = i * totalFrames / maxFrames
	}
	return indices
}

// parsedResponse is the structured content extracted from the model's
// sectioned reply.
type parsedResponse struct {
	Caption         string
	Title           string
	Description     string
	Hashtags        []string
	Recommendations []string
}

// parseResponse walks the reply line by line, switching sections on
// their headers. Unknown text before any header is ignored.
func parseResponse(response string, contentType models.VideoContentType) parsedResponse {
	var (
		section          string
		captionLines     []string
		descriptionLines []string
		parsed           parsedResponse
	)
	isYouTube := contentType == models.VideoYouTubeShort

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "VIDEO ANALYSIS:"):
			section = "analysis"
			continue
		case strings.Contains(upper, "CAPTION:"):
			section = "caption"
			continue
		case isYouTube && strings.Contains(upper, "TITLE:"):
			section = "title"
			continue
		case isYouTube && strings.Contains(upper, "DESCRIPTION:"):
			section = "description"
			continue
		case strings.Contains(upper, "HASHTAGS:"):
			section = "hashtags"
			continue
		case strings.Contains(upper, "RECOMMENDATIONS:"):
			section = "recommendations"
			continue
		}

		// Markdown headers still carry '#'; hashtag lines do too, so
		// only skip them outside the hashtags section.
		if line == "" || (strings.HasPrefix(line, "#") && section != "hashtags") {
			continue
		}

		switch section {
		case "caption":
			captionLines = append(captionLines, line)
		case "title":
			parsed.Title = line
		case "description":
			descriptionLines = append(descriptionLines, line)
		case "hashtags":
			for _, word := range strings.Fields(line) {
				if strings.HasPrefix(word, "#") {
					parsed.Hashtags = append(parsed.Hashtags, word)
				}
			}
		case "recommendations":
			if item, ok := recommendationItem(line); ok {
				parsed.Recommendations = append(parsed.Recommendations, item)
			} else if n := len(parsed.Recommendations); n > 0 {
				parsed.Recommendations[n-1] += " " + line
			}
		}
	}

	parsed.Caption = strings.TrimSpace(strings.Join(captionLines, "\n"))
	parsed.Description = strings.TrimSpace(strings.Join(descriptionLines, "\n"))

	// When the model folds the title into the caption, split it out.
	if isYouTube && parsed.Title == "" && strings.Contains(parsed.Caption, "\n") {
		parts := strings.SplitN(parsed.Caption, "\n", 2)
		parsed.Title = parts[0]
		if len(parts) > 1 {
			parsed.Description = parts[1]
		}
	}

	return parsed
}

// recommendationItem strips a "1. " or "- " list marker, reporting
// whether the line started a new item.
func recommendationItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") {
		return strings.TrimSpace(line[2:]), true
	}
	if len(line) > 1 && unicode.IsDigit(rune(line[0])) {
		if dot := strings.Index(line, "."); dot > 0 {
			return strings.TrimSpace(line[dot+1:]), true
		}
	}
	return "", false
}

// mergeHashtags combines model and trending hashtags, dropping
// duplicates and applying the platform's limit.
func mergeHashtags(generated, trending []string, contentType models.VideoContentType) []string {
	seen := make(map[string]bool)
	merged := make([]string, 0, len(generated)+len(trending))
	for _, tag := range append(append([]string{}, generated...), trending...) {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}

	limit := 0
	switch contentType {
	case models.VideoInstagramReel:
		limit = instagramHashtagLimit
	case models.VideoYouTubeShort:
		limit = youtubeHashtagLimit
	}
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
