package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/analyzer"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/llm"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/prompts"
)

// Generator produces text from a prompt. Satisfied by the LLM service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Searcher performs web research. Satisfied by the search client.
type Searcher interface {
	Search(ctx context.Context, query string, count int) ([]models.ResearchResult, error)
}

// Publisher receives stage progress events for a run
type Publisher interface {
	Publish(runID, stage, status string)
}

// Errors surfaced by fatal stages
var (
	ErrPromptGeneration  = errors.New("prompt generation failed")
	ErrContentGeneration = errors.New("content generation failed")
	ErrCancelled         = errors.New("workflow cancelled")
)

// Options tune the engine's thresholds and collaborators
type Options struct {
	// ScoreThreshold skips SEO rewriting when the score is already at
	// or above it
	ScoreThreshold float64

	// RefineBelow routes the run back to generation when the final
	// score is below it
	RefineBelow float64

	// MaxRefinements caps the number of refinement rounds
	MaxRefinements int

	// ResearchCount is the number of search results to request
	ResearchCount int

	// ModelName is recorded in run metadata as model_used
	ModelName string

	Publisher Publisher
	Logger    llm.Logger
}

// Engine orchestrates the content generation pipeline:
// research, prompt assembly, generation, direct-response enhancement,
// SEO analysis and conditional re-optimization.
type Engine struct {
	generator      Generator
	searcher       Searcher
	publisher      Publisher
	logger         llm.Logger
	modelName      string
	scoreThreshold float64
	refineBelow    float64
	maxRefinements int
	researchCount  int
}

// NewEngine creates a workflow engine. The searcher may be nil, in which
// case research degrades to none.
func NewEngine(generator Generator, searcher Searcher, opts Options) *Engine {
	if opts.ScoreThreshold == 0 {
		opts.ScoreThreshold = 85
	}
	if opts.RefineBelow == 0 {
		opts.RefineBelow = 60
	}
	if opts.MaxRefinements == 0 {
		opts.MaxRefinements = 2
	}
	if opts.ResearchCount == 0 {
		opts.ResearchCount = 5
	}
	if opts.Logger == nil {
		opts.Logger = &llm.DefaultLogger{}
	}

	return &Engine{
		generator:      generator,
		searcher:       searcher,
		publisher:      opts.Publisher,
		logger:         opts.Logger,
		modelName:      opts.ModelName,
		scoreThreshold: opts.ScoreThreshold,
		refineBelow:    opts.RefineBelow,
		maxRefinements: opts.MaxRefinements,
		researchCount:  opts.ResearchCount,
	}
}

// Run executes the full pipeline for one request. Cancellation is
// honored at stage boundaries and reported as ErrCancelled.
func (e *Engine) Run(ctx context.Context, runID string, request *models.ContentRequest) (*models.ContentResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	state := newState(request)

	state.apply(e.research(ctx, state))
	e.publish(runID, StageResearch, state.Status)

	if err := e.checkCancelled(ctx, state); err != nil {
		return nil, err
	}

	state.apply(e.generatePrompt(state))
	e.publish(runID, StageGeneratePrompt, state.Status)
	if state.Status == StatusPromptFailed {
		return nil, fmt.Errorf("%w: %s", ErrPromptGeneration, state.Error)
	}

	for {
		if err := e.checkCancelled(ctx, state); err != nil {
			return nil, err
		}

		state.apply(e.generateContent(ctx, state))
		e.publish(runID, StageGenerate, state.Status)
		if state.Status == StatusContentFailed {
			return nil, fmt.Errorf("%w: %s", ErrContentGeneration, state.Error)
		}

		if err := e.checkCancelled(ctx, state); err != nil {
			return nil, err
		}

		state.apply(e.enhanceContent(ctx, state))
		e.publish(runID, StageEnhance, state.Status)

		if err := e.checkCancelled(ctx, state); err != nil {
			return nil, err
		}

		state.apply(e.analyzeSEO(state))
		e.publish(runID, StageAnalyzeSEO, state.Status)

		if err := e.checkCancelled(ctx, state); err != nil {
			return nil, err
		}

		state.apply(e.optimizeSEO(ctx, state))
		e.publish(runID, StageOptimizeSEO, state.Status)

		if !e.shouldRefine(state) {
			break
		}

		e.logger.Info("Refining content",
			"run_id", runID,
			"round", state.RefinementCount+1,
			"score", state.Analysis.OverallScore)
		state.RefinementCount++
		state.Content = ""
		state.EnhancedContent = ""
		state.OptimizedContent = ""
		state.Analysis = nil
	}

	state.Status = StatusCompleted
	e.publish(runID, StageOptimizeSEO, state.Status)

	state.Metadata["refinement_count"] = state.RefinementCount
	if e.modelName != "" {
		state.Metadata["model_used"] = e.modelName
	}

	return &models.ContentResponse{
		Content:         state.FinalContent(),
		Metadata:        state.Metadata,
		ResearchResults: state.Research,
	}, nil
}

// research performs web research for the request. Failures are
// non-fatal; the run continues without research.
func (e *Engine) research(ctx context.Context, state *State) Update {
	request := state.Request

	if !request.IncludeResearch {
		return Update{Status: StatusResearchSkipped}
	}
	if e.searcher == nil {
		return Update{Status: StatusResearchFailed, Error: "no search collaborator configured"}
	}

	query := request.Topic
	if len(request.Keywords) > 0 {
		query += " " + strings.Join(request.Keywords, " ")
	}
	query += fmt.Sprintf(" %s writing tips", request.ContentType)

	results, err := e.searcher.Search(ctx, query, e.researchCount)
	if err != nil {
		e.logger.Error("Research failed", "error", err)
		return Update{Status: StatusResearchFailed, Error: err.Error()}
	}

	return Update{Research: results, Status: StatusResearchCompleted}
}

// generatePrompt assembles the generation prompt. Pure and
// deterministic; failure is fatal to the run.
func (e *Engine) generatePrompt(state *State) Update {
	prompt := prompts.Copywriting(state.Request, state.Research)
	if prompt == "" {
		return Update{Status: StatusPromptFailed, Error: "empty prompt assembled"}
	}
	return Update{Prompt: strPtr(prompt), Status: StatusPromptGenerated}
}

// generateContent invokes the model with the assembled prompt. Failure
// is fatal to the run.
func (e *Engine) generateContent(ctx context.Context, state *State) Update {
	content, err := e.generator.Generate(ctx, state.Prompt)
	if err != nil {
		return Update{Status: StatusContentFailed, Error: err.Error()}
	}
	return Update{Content: strPtr(content), Status: StatusContentGenerated}
}

// enhanceContent asks the model to rewrite the content with
// direct-response techniques. On failure the unenhanced content is kept.
func (e *Engine) enhanceContent(ctx context.Context, state *State) Update {
	prompt := prompts.Enhancement(state.Content, state.Request)

	enhanced, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		e.logger.Error("Enhancement failed, keeping original content", "error", err)
		return Update{
			EnhancedContent: strPtr(state.Content),
			Status:          StatusEnhancementFailed,
			Error:           err.Error(),
		}
	}

	return Update{EnhancedContent: strPtr(enhanced), Status: StatusContentEnhanced}
}

// analyzeSEO scores the working content. Non-fatal; scoring itself
// never fails, but absent content skips the stage.
func (e *Engine) analyzeSEO(state *State) Update {
	content := state.workingContent()
	if content == "" {
		return Update{Status: StatusSEOAnalysisSkipped, Error: "no content available for SEO analysis"}
	}

	analysis := analyzer.Analyze(content, state.Request.Keywords, state.Request.ContentType)
	return Update{Analysis: analysis, Status: StatusSEOAnalysisCompleted}
}

// optimizeSEO rewrites the content based on the analysis unless the
// score is already high enough. On failure the prior content is kept.
func (e *Engine) optimizeSEO(ctx context.Context, state *State) Update {
	content := state.workingContent()

	if content == "" || state.Analysis == nil {
		return Update{Status: StatusSEOOptimizeSkipped}
	}

	if state.Analysis.OverallScore >= e.scoreThreshold {
		return Update{
			OptimizedContent: strPtr(content),
			Status:           StatusSEOOptimizeSkipped,
			Metadata:         map[string]interface{}{"seo_score": state.Analysis.OverallScore},
		}
	}

	prompt := prompts.SEOImprovement(state.Analysis, content, state.Request.Keywords)
	optimized, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		e.logger.Error("SEO optimization failed, keeping prior content", "error", err)
		return Update{
			OptimizedContent: strPtr(content),
			Status:           StatusSEOOptimizeFailed,
			Error:            err.Error(),
		}
	}

	return Update{
		OptimizedContent: strPtr(optimized),
		Status:           StatusSEOOptimizeCompleted,
		Metadata:         map[string]interface{}{"seo_score": state.Analysis.OverallScore},
	}
}

// shouldRefine decides whether to loop back to generation for another
// round. The content is regenerated when it scored clearly poorly and
// the refinement budget is not exhausted.
func (e *Engine) shouldRefine(state *State) bool {
	if state.Analysis == nil {
		return false
	}
	return state.Analysis.OverallScore < e.refineBelow &&
		state.RefinementCount < e.maxRefinements
}

func (e *Engine) checkCancelled(ctx context.Context, state *State) error {
	select {
	case <-ctx.Done():
		state.Status = StatusCancelled
		return fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	default:
		return nil
	}
}

func (e *Engine) publish(runID, stage, status string) {
	if e.publisher == nil || runID == "" {
		return
	}
	e.publisher.Publish(runID, stage, status)
}
