package workflow

import (
	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/analyzer"
)

// Stage names
const (
	StageResearch       = "research"
	StageGeneratePrompt = "generate_prompt"
	StageGenerate       = "generate_content"
	StageEnhance        = "enhance_content"
	StageAnalyzeSEO     = "analyze_seo"
	StageOptimizeSEO    = "optimize_seo"
)

// Status tags recorded on the state after each stage
const (
	StatusInitialized           = "initialized"
	StatusResearchSkipped       = "research_skipped"
	StatusResearchFailed        = "research_failed"
	StatusResearchCompleted     = "research_completed"
	StatusPromptGenerated       = "prompt_generated"
	StatusPromptFailed          = "prompt_generation_failed"
	StatusContentGenerated      = "content_generated"
	StatusContentFailed         = "content_generation_failed"
	StatusContentEnhanced       = "content_enhanced"
	StatusEnhancementFailed     = "enhancement_failed"
	StatusSEOAnalysisCompleted  = "seo_analysis_completed"
	StatusSEOAnalysisSkipped    = "seo_analysis_skipped"
	StatusSEOAnalysisFailed     = "seo_analysis_failed"
	StatusSEOOptimizeCompleted  = "seo_optimization_completed"
	StatusSEOOptimizeSkipped    = "seo_optimization_skipped"
	StatusSEOOptimizeFailed     = "seo_optimization_failed"
	StatusCompleted             = "completed"
	StatusCancelled             = "cancelled"
)

// State is the mutable record threaded through the pipeline stages.
// It is exclusively owned by the run that created it.
type State struct {
	Request          *models.ContentRequest
	Research         []models.ResearchResult
	Prompt           string
	Content          string
	EnhancedContent  string
	Analysis         *analyzer.SEOAnalysis
	OptimizedContent string
	Metadata         map[string]interface{}
	Status           string
	Error            string
	RefinementCount  int
}

// Update is a partial state change returned by a stage and merged into
// the state by the engine
type Update struct {
	Research         []models.ResearchResult
	Prompt           *string
	Content          *string
	EnhancedContent  *string
	Analysis         *analyzer.SEOAnalysis
	OptimizedContent *string
	Metadata         map[string]interface{}
	Status           string
	Error            string
}

// newState initializes the workflow state for a request
func newState(request *models.ContentRequest) *State {
	return &State{
		Request: request,
		Metadata: map[string]interface{}{
			"content_type": request.ContentType,
			"topic":        request.Topic,
			"tone":         request.Tone,
			"audience":     request.Audience,
			"word_count":   request.WordCount,
		},
		Status: StatusInitialized,
	}
}

// apply merges a stage update into the state
func (s *State) apply(update Update) {
	if update.Research != nil {
		s.Research = update.Research
	}
	if update.Prompt != nil {
		s.Prompt = *update.Prompt
	}
	if update.Content != nil {
		s.Content = *update.Content
	}
	if update.EnhancedContent != nil {
		s.EnhancedContent = *update.EnhancedContent
	}
	if update.Analysis != nil {
		s.Analysis = update.Analysis
	}
	if update.OptimizedContent != nil {
		s.OptimizedContent = *update.OptimizedContent
	}
	for key, value := range update.Metadata {
		s.Metadata[key] = value
	}
	if update.Status != "" {
		s.Status = update.Status
	}
	if update.Error != "" {
		s.Error = update.Error
	}
}

// FinalContent resolves the content to return, preferring the most
// processed variant
func (s *State) FinalContent() string {
	if s.OptimizedContent != "" {
		return s.OptimizedContent
	}
	if s.EnhancedContent != "" {
		return s.EnhancedContent
	}
	return s.Content
}

// workingContent is the text the analysis and optimization stages act on
func (s *State) workingContent() string {
	if s.EnhancedContent != "" {
		return s.EnhancedContent
	}
	return s.Content
}

func strPtr(s string) *string {
	return &s
}
