package prompts

import (
	"strings"
	"testing"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/analyzer"
)

func TestCopywritingIncludesRequestDetails(t *testing.T) {
	request := &models.ContentRequest{
		ContentType: models.ContentTypeBlogPost,
		Topic:       "sustainable packaging",
		Tone:        models.TonePersuasive,
		Audience:    models.AudienceBusiness,
		Keywords:    []string{"eco friendly", "packaging"},
		WordCount:   800,
	}

	prompt := Copywriting(request, nil)

	for _, want := range []string{
		"sustainable packaging",
		"eco friendly, packaging",
		"Approximately 800 words",
		"blog_post",
		ToneInstructions(models.TonePersuasive),
		AudienceInstructions(models.AudienceBusiness),
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCopywritingNumbersResearchSources(t *testing.T) {
	request := &models.ContentRequest{
		ContentType: models.ContentTypeBlogPost,
		Topic:       "anything",
	}
	research := []models.ResearchResult{
		{Source: "Example", Title: "First Source", Snippet: "Some facts.", URL: "https://example.com/1"},
		{Source: "Example", Title: "Second Source", Snippet: "More facts.", URL: "https://example.com/2"},
	}

	prompt := Copywriting(request, research)

	if !strings.Contains(prompt, "### Source 1: First Source") {
		t.Error("first research source not numbered")
	}
	if !strings.Contains(prompt, "### Source 2: Second Source") {
		t.Error("second research source not numbered")
	}
}

func TestCopywritingOmitsResearchSectionWhenEmpty(t *testing.T) {
	request := &models.ContentRequest{ContentType: models.ContentTypeEmail, Topic: "t"}
	prompt := Copywriting(request, nil)
	if strings.Contains(prompt, "Research Findings") {
		t.Error("research section should be omitted without results")
	}
}

func TestEnhancementPreservesToneAndAudience(t *testing.T) {
	request := &models.ContentRequest{
		ContentType: models.ContentTypeEmail,
		Tone:        models.ToneCasual,
		Audience:    models.AudienceYouth,
	}

	prompt := Enhancement("original body", request)

	for _, want := range []string{"original body", "casual", "youth", "Provide only the enhanced content"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("enhancement prompt missing %q", want)
		}
	}
}

func TestSEOImprovementSummarizesAnalysis(t *testing.T) {
	analysis := analyzer.Analyze(
		"# Short\n\nBody without the keyword.",
		[]string{"conversion"},
		models.ContentTypeBlogPost,
	)

	prompt := SEOImprovement(analysis, "# Short\n\nBody without the keyword.", []string{"conversion"})

	if !strings.Contains(prompt, "Overall SEO Score") {
		t.Error("prompt missing overall score line")
	}
	if !strings.Contains(prompt, "Keyword: conversion") {
		t.Error("prompt missing keyword section")
	}
	if !strings.Contains(prompt, "Add the keyword 'conversion'") {
		t.Error("prompt missing recommendations")
	}
}

func TestSEOImprovementKeywordsInRequestOrder(t *testing.T) {
	keywords := []string{"zeta", "alpha", "middle"}
	content := "# Heading\n\nzeta alpha middle words in a body."
	analysis := analyzer.Analyze(content, keywords, models.ContentTypeBlogPost)

	prompt := SEOImprovement(analysis, content, keywords)

	positions := make([]int, len(keywords))
	for i, keyword := range keywords {
		pos := strings.Index(prompt, "- Keyword: "+keyword)
		if pos < 0 {
			t.Fatalf("prompt missing keyword section for %q", keyword)
		}
		positions[i] = pos
	}
	if !(positions[0] < positions[1] && positions[1] < positions[2]) {
		t.Errorf("keyword sections out of request order: %v", positions)
	}

	if again := SEOImprovement(analysis, content, keywords); again != prompt {
		t.Error("expected identical prompts for identical input")
	}
}

func TestVideoAnalysisYouTubeSections(t *testing.T) {
	prompt := VideoAnalysis(models.VideoYouTubeShort, []string{"cooking"}, "")

	for _, want := range []string{"**CAPTION:**", "**TITLE:**", "**DESCRIPTION:**", "**HASHTAGS:**", "cooking"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("video prompt missing %q", want)
		}
	}
}

func TestVideoAnalysisInstagramOmitsTitle(t *testing.T) {
	prompt := VideoAnalysis(models.VideoInstagramReel, nil, "")

	if strings.Contains(prompt, "**TITLE:**") {
		t.Error("Instagram prompt should not request a separate title")
	}
	if !strings.Contains(prompt, "2200 characters") {
		t.Error("Instagram prompt should target the long caption limit")
	}
}

func TestInstructionFallbacks(t *testing.T) {
	if got := ContentTypeInstructions("nonsense"); got != contentTypeInstructions[models.ContentTypeCustom] {
		t.Error("unknown content type should fall back to custom instructions")
	}
	if got := ToneInstructions("nonsense"); got != toneInstructions[models.ToneConversational] {
		t.Error("unknown tone should fall back to conversational")
	}
	if got := AudienceInstructions("nonsense"); got != audienceInstructions[models.AudienceGeneral] {
		t.Error("unknown audience should fall back to general")
	}
}
