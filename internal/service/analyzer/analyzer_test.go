package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"hello", 2},
		{"paragraph", 3},
		{"optimization", 5},
		{"rhythm", 1},
	}

	for _, tt := range tests {
		if got := countSyllables(tt.word); got != tt.want {
			t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestAnalyzeReadabilityEmptyText(t *testing.T) {
	metrics := AnalyzeReadability("")
	if metrics.FleschReadingEase != 0 || metrics.ReadabilityScore != 0 {
		t.Errorf("expected zeroed metrics for empty text, got %+v", metrics)
	}
}

func TestAnalyzeReadabilityScoreRange(t *testing.T) {
	texts := []string{
		"Go. Run. Win.",
		"The quick brown fox jumps over the lazy dog. It was a bright sunny day.",
		strings.Repeat("The multidimensional organizational infrastructure necessitates comprehensive reconsideration. ", 20),
	}

	for _, text := range texts {
		metrics := AnalyzeReadability(text)
		if metrics.ReadabilityScore < 0 || metrics.ReadabilityScore > 100 {
			t.Errorf("readability score %f out of range for %q", metrics.ReadabilityScore, text[:20])
		}
	}
}

func TestAnalyzeReadabilitySimpleText(t *testing.T) {
	text := "The cat sat on the mat. The dog ran in the park. We had a good day."
	metrics := AnalyzeReadability(text)

	if metrics.FleschReadingEase < 80 {
		t.Errorf("expected high reading ease for simple text, got %f", metrics.FleschReadingEase)
	}
	if metrics.ComplexWordPercentage != 0 {
		t.Errorf("expected no complex words, got %f%%", metrics.ComplexWordPercentage)
	}
}

func TestAnalyzeKeywordsTitleAndDensity(t *testing.T) {
	text := "# Hello World\n\nThis is a test paragraph with hello world in it."
	report := AnalyzeKeywords(text, []string{"hello world"})

	metric, ok := report.Keywords["hello world"]
	if !ok {
		t.Fatal("expected a metric for 'hello world'")
	}
	if !metric.InTitle {
		t.Error("expected in_title to be true")
	}
	if metric.Count < 1 {
		t.Errorf("expected count >= 1, got %d", metric.Count)
	}
	if metric.Density <= 0 {
		t.Errorf("expected positive density, got %f", metric.Density)
	}
	if !metric.InFirstParagraph && !metric.InLastParagraph {
		t.Error("expected keyword to be found in a paragraph")
	}
}

func TestAnalyzeKeywordsEmptyText(t *testing.T) {
	report := AnalyzeKeywords("", []string{"x"})

	metric, ok := report.Keywords["x"]
	if !ok {
		t.Fatal("expected a metric entry even for empty text")
	}
	if metric.Count != 0 || metric.Density != 0 {
		t.Errorf("expected zero count and density, got count=%d density=%f", metric.Count, metric.Density)
	}
	if report.Score != 0 {
		t.Errorf("expected zero score, got %f", report.Score)
	}
}

func TestAnalyzeKeywordsNoKeywords(t *testing.T) {
	report := AnalyzeKeywords("Some content here.", nil)
	if len(report.Keywords) != 0 {
		t.Errorf("expected empty mapping, got %d entries", len(report.Keywords))
	}
	if report.Score != 0 {
		t.Errorf("expected zero score, got %f", report.Score)
	}
}

func TestAnalyzeKeywordsDuplicatesCollapsed(t *testing.T) {
	text := "marketing content about marketing strategy"
	report := AnalyzeKeywords(text, []string{"marketing", "marketing", "strategy"})

	if len(report.Keywords) != 2 {
		t.Errorf("expected 2 entries for duplicated keywords, got %d", len(report.Keywords))
	}
}

func TestAnalyzeKeywordsOneEntryPerKeyword(t *testing.T) {
	keywords := []string{"alpha", "beta", "gamma"}
	report := AnalyzeKeywords("alpha text with beta words", keywords)

	if len(report.Keywords) != len(keywords) {
		t.Errorf("expected %d entries, got %d", len(keywords), len(report.Keywords))
	}
	for _, keyword := range keywords {
		metric, ok := report.Keywords[keyword]
		if !ok {
			t.Errorf("missing entry for %q", keyword)
			continue
		}
		if metric.Count < 0 {
			t.Errorf("negative count for %q", keyword)
		}
	}
}

func TestAnalyzeKeywordsDensityMonotonic(t *testing.T) {
	// Same filtered word count, more keyword occurrences
	once := "growth plans cover market research budget staffing product launch review cycle"
	twice := "growth plans cover growth research budget staffing product launch review cycle"

	d1 := AnalyzeKeywords(once, []string{"growth"}).Keywords["growth"].Density
	d2 := AnalyzeKeywords(twice, []string{"growth"}).Keywords["growth"].Density
	if d2 <= d1 {
		t.Errorf("expected density to increase with occurrences, got %f then %f", d1, d2)
	}
}

func TestOptimalDensityBoundsInclusive(t *testing.T) {
	for _, density := range []float64{0.5, 2.5} {
		optimal := density >= 0.5 && density <= 2.5
		if !optimal {
			t.Errorf("density %f should be optimal", density)
		}
	}

	// 1 occurrence in 200 filtered words is exactly 0.5%
	words := make([]string, 199)
	for i := range words {
		words[i] = "filler" + string(rune('a'+i%26))
	}
	text := "target " + strings.Join(words, " ")
	metric := AnalyzeKeywords(text, []string{"target"}).Keywords["target"]
	if metric.Density != 0.5 {
		t.Fatalf("expected density 0.5, got %f", metric.Density)
	}
	if !metric.OptimalDensity {
		t.Error("density exactly 0.5 must be optimal")
	}
}

func TestAnalyzeStructure(t *testing.T) {
	text := "# A Title For This Article\n\n" +
		"Description: a short summary.\n\n" +
		"## First Section\n\nSome text here.\n\n" +
		"## Second Section\n\n### Detail\n\n" +
		"![diagram](chart.png)\n\n" +
		"See [our guide](/guide) and [the docs](https://example.com/docs)."

	metrics := AnalyzeStructure(text)

	if !metrics.HasTitle {
		t.Error("expected title to be detected")
	}
	if metrics.H2Count != 2 {
		t.Errorf("expected 2 H2 headings, got %d", metrics.H2Count)
	}
	if metrics.H3Count != 1 {
		t.Errorf("expected 1 H3 heading, got %d", metrics.H3Count)
	}
	if !metrics.HasMetaDescription {
		t.Error("expected meta description marker to be detected")
	}
	if !metrics.HasImageAlt {
		t.Error("expected image alt text to be detected")
	}
	if !metrics.HasInternalLinks {
		t.Error("expected internal link to be detected")
	}
	if !metrics.HasExternalLinks {
		t.Error("expected external link to be detected")
	}
}

func TestAnalyzeStructureEmptyText(t *testing.T) {
	metrics := AnalyzeStructure("")
	if metrics.HasTitle || metrics.ParagraphCount != 0 || metrics.WordCount != 0 {
		t.Errorf("expected zeroed metrics for empty text, got %+v", metrics)
	}
}

func TestAnalyzeEmptyContent(t *testing.T) {
	analysis := Analyze("", []string{"x"}, models.ContentTypeBlogPost)

	if analysis.WordCount != 0 {
		t.Errorf("expected zero word count, got %d", analysis.WordCount)
	}
	if analysis.OverallScore < 0 || analysis.OverallScore > 100 {
		t.Errorf("overall score %f out of range", analysis.OverallScore)
	}
	if metric := analysis.KeywordMetrics.Keywords["x"]; metric.Density != 0 {
		t.Errorf("expected zero density, got %f", metric.Density)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	text := "# Testing Content\n\nSome content about testing and quality here.\n\nA second paragraph about testing."
	keywords := []string{"testing", "quality"}

	first := Analyze(text, keywords, models.ContentTypeBlogPost)
	second := Analyze(text, keywords, models.ContentTypeBlogPost)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical analysis for identical input")
	}
}

func TestAnalyzeWellFormedBlogPostScoresHigh(t *testing.T) {
	title := "Content Marketing Guide For Small Business"
	if len(title) < 40 || len(title) > 60 {
		t.Fatalf("test title length %d outside [40,60]", len(title))
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString("Meta description: a complete guide to content marketing for small teams.\n\n")
	b.WriteString("Content marketing helps small firms grow. This guide shows the key steps. ")
	b.WriteString("Each step is short and clear. You can start today.\n\n")
	b.WriteString("## Why Content Marketing Works\n\n")
	b.WriteString("![growth chart](chart.png)\n\n")
	filler := "Good copy builds trust. It brings people to your site. It turns them into buyers. Short words work best. "
	for i := 0; i < 30; i++ {
		b.WriteString(filler)
		if i%6 == 5 {
			b.WriteString("\n\n")
		}
	}
	b.WriteString("\n\n## How To Plan Your Content Marketing\n\n")
	b.WriteString("### Set Goals\n\n")
	b.WriteString("Read [our planning guide](/plan) and [this study](https://example.com/study). ")
	for i := 0; i < 30; i++ {
		b.WriteString(filler)
		if i%6 == 5 {
			b.WriteString("\n\n")
		}
	}
	// Push the keyword toward 1% of filtered words
	for i := 0; i < 4; i++ {
		b.WriteString("Content marketing pays off over months. ")
	}

	content := b.String()
	analysis := Analyze(content, []string{"content marketing"}, models.ContentTypeBlogPost)

	if analysis.WordCount < 1000 {
		t.Fatalf("test document too short: %d words", analysis.WordCount)
	}
	metric := analysis.KeywordMetrics.Keywords["content marketing"]
	if !metric.InTitle || !metric.InFirstParagraph {
		t.Fatalf("keyword placement not satisfied: %+v", metric)
	}
	if analysis.OverallScore <= 80 {
		t.Errorf("expected score above 80 for a well-formed blog post, got %f", analysis.OverallScore)
	}
}

func TestScoreStructurePointAllocation(t *testing.T) {
	full := StructureMetrics{
		HasTitle:           true,
		TitleLength:        50,
		H2Count:            3,
		H3Count:            2,
		HasMetaDescription: true,
		HasImageAlt:        true,
		HasInternalLinks:   true,
		HasExternalLinks:   true,
	}
	// 15+10+10+5+15+10+10+10: every signal at its maximum allocation
	if got := scoreStructure(full); got != 85 {
		t.Errorf("expected maximal structure score of 85, got %f", got)
	}
if got := scoreStructure(StructureMetrics{}); got != 0 {
		t.Errorf("expected empty structure score of 0, got %f", got)
	}
}

func TestWeightsForContentTypes(t *testing.T) {
	tests := []struct {
		contentType models.ContentType
		want        scoreWeights
	}{
		{models.ContentTypeBlogPost, scoreWeights{0.3, 0.3, 0.4}},
		{models.ContentTypeLandingPage, scoreWeights{0.4, 0.2, 0.4}},
		{models.ContentTypeProductDescription, scoreWeights{0.5, 0.2, 0.3}},
		{models.ContentTypeEmail, scoreWeights{0.33, 0.33, 0.34}},
	}

	for _, tt := range tests {
		if got := weightsFor(tt.contentType); got != tt.want {
			t.Errorf("weightsFor(%s) = %+v, want %+v", tt.contentType, got, tt.want)
		}
	}
}

func TestRecommendationsForSparseContent(t *testing.T) {
	analysis := Analyze("A single short line without structure.", []string{"missing"}, models.ContentTypeBlogPost)

	wantSubstrings := []string{
		"Add a clear title",
		"Add the keyword 'missing'",
		"Add more H2 headings",
		"Add more paragraphs",
	}
	for _, want := range wantSubstrings {
		found := false
		for _, rec := range analysis.Recommendations {
			if strings.Contains(rec, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a recommendation containing %q, got %v", want, analysis.Recommendations)
		}
	}
}
