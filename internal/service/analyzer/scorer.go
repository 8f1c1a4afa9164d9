package analyzer

import (
	"fmt"
	"strings"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
)

// SEOAnalysis contains the full analysis results for one piece of content
type SEOAnalysis struct {
	OverallScore    float64            `json:"overall_score"`
	WordCount       int                `json:"word_count"`
	SentenceCount   int                `json:"sentence_count"`
	KeywordMetrics  KeywordReport      `json:"keyword_metrics"`
	Readability     ReadabilityMetrics `json:"readability_metrics"`
	Structure       StructureMetrics   `json:"structure_metrics"`
	Recommendations []string           `json:"recommendations"`
}

type scoreWeights struct {
	keyword     float64
	readability float64
	structure   float64
}

// weightsFor returns the component weights for a content type
func weightsFor(contentType models.ContentType) scoreWeights {
	switch contentType {
	case models.ContentTypeBlogPost:
		return scoreWeights{keyword: 0.3, readability: 0.3, structure: 0.4}
	case models.ContentTypeLandingPage:
		return scoreWeights{keyword: 0.4, readability: 0.2, structure: 0.4}
	case models.ContentTypeProductDescription:
		return scoreWeights{keyword: 0.5, readability: 0.2, structure: 0.3}
	default:
		return scoreWeights{keyword: 0.33, readability: 0.33, structure: 0.34}
	}
}

// Analyze scores content against the target keywords and content type,
// combining keyword, readability and structure sub-scores into a single
// weighted 0-100 score with an ordered recommendation list.
func Analyze(content string, keywords []string, contentType models.ContentType) *SEOAnalysis {
	structure := AnalyzeStructure(content)
	keywordReport := AnalyzeKeywords(content, keywords)
	readability := AnalyzeReadability(content)

	structureScore := scoreStructure(structure)
	weights := weightsFor(contentType)

	overall := keywordReport.Score*weights.keyword +
		readability.ReadabilityScore*weights.readability +
		structureScore*weights.structure
	overall = clamp(overall, 0, 100)

	return &SEOAnalysis{
		OverallScore:    overall,
		WordCount:       structure.WordCount,
		SentenceCount:   structure.SentenceCount,
		KeywordMetrics:  keywordReport,
		Readability:     readability,
		Structure:       structure,
		Recommendations: buildRecommendations(keywords, keywordReport, readability, structure, contentType),
	}
}

// scoreStructure sums fixed point allocations for structural signals,
// clamped to 100
func scoreStructure(s StructureMetrics) float64 {
	score := 0.0
	if s.HasTitle {
		score += 15
	}
	if s.TitleLength >= 40 && s.TitleLength <= 60 {
		score += 10
	} else if s.TitleLength > 0 {
		score += 5
	}
	if s.H2Count >= 2 {
		score += 10
	} else if s.H2Count > 0 {
		score += 5
	}
	if s.H3Count >= 2 {
		score += 5
	}
	if s.HasMetaDescription {
		score += 15
	}
	if s.HasImageAlt {
		score += 10
	}
	if s.HasInternalLinks {
		score += 10
	}
	if s.HasExternalLinks {
		score += 10
	}
	return clamp(score, 0, 100)
}

// buildRecommendations derives an ordered list of improvement suggestions
func buildRecommendations(
	keywords []string,
	keywordReport KeywordReport,
	readability ReadabilityMetrics,
	structure StructureMetrics,
	contentType models.ContentType,
) []string {
	recommendations := []string{}

	// Structure
	if !structure.HasTitle {
		recommendations = append(recommendations, "Add a clear title to the content")
	} else if structure.TitleLength < 40 {
		recommendations = append(recommendations, "Make the title longer (40-60 characters is optimal)")
	} else if structure.TitleLength > 60 {
		recommendations = append(recommendations, "Shorten the title (40-60 characters is optimal)")
	}

	if structure.H2Count < 2 {
		recommendations = append(recommendations, "Add more H2 headings to structure your content")
	}
	if structure.H3Count == 0 && structure.H2Count > 1 {
		recommendations = append(recommendations, "Consider adding H3 subheadings under your main sections")
	}

	// Keywords
	var missingInTitle, missingInHeadings []string
	seen := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		metric, ok := keywordReport.Keywords[keyword]
		if !ok || seen[keyword] {
			continue
		}
		seen[keyword] = true
		if metric.Count == 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Add the keyword '%s' to your content", keyword))
		} else if metric.Density < 0.5 {
			recommendations = append(recommendations,
				fmt.Sprintf("Increase the density of the keyword '%s' (currently %.2f%%)", keyword, metric.Density))
		} else if metric.Density > 2.5 {
			recommendations = append(recommendations,
				fmt.Sprintf("Decrease the density of the keyword '%s' to avoid keyword stuffing (currently %.2f%%)", keyword, metric.Density))
		}
		if !metric.InTitle && structure.HasTitle {
			missingInTitle = append(missingInTitle, keyword)
		}
		if !metric.InHeadings && (structure.H2Count > 0 || structure.H3Count > 0) {
			missingInHeadings = append(missingInHeadings, keyword)
		}
	}
	if len(missingInTitle) > 0 && len(missingInTitle) <= 2 {
		recommendations = append(recommendations,
			fmt.Sprintf("Include these keywords in your title: %s", strings.Join(missingInTitle, ", ")))
	}
	if len(missingInHeadings) > 0 && len(missingInHeadings) <= 3 {
		recommendations = append(recommendations,
			fmt.Sprintf("Include these keywords in your headings: %s", strings.Join(missingInHeadings, ", ")))
	}

	// Readability
	if readability.FleschReadingEase < 60 {
		recommendations = append(recommendations, "Improve readability by using shorter sentences and simpler words")
	}
	if readability.AvgSentenceLength > 20 {
		recommendations = append(recommendations,
			fmt.Sprintf("Reduce average sentence length (currently %.1f words)", readability.AvgSentenceLength))
	}
	if readability.ComplexWordPercentage > 20 {
		recommendations = append(recommendations, "Use simpler words to improve readability")
	}

	// Content length
	switch contentType {
	case models.ContentTypeBlogPost:
		if structure.WordCount < 1000 {
			recommendations = append(recommendations,
				fmt.Sprintf("Increase content length (currently %d words, aim for 1000+ words)", structure.WordCount))
		}
	case models.ContentTypeLandingPage:
		if structure.WordCount < 500 {
			recommendations = append(recommendations,
				fmt.Sprintf("Increase content length (currently %d words, aim for 500+ words)", structure.WordCount))
		}
	}

	// Paragraph structure
	if structure.ParagraphCount < 3 {
		recommendations = append(recommendations, "Add more paragraphs to improve readability")
	}
	if structure.ParagraphCount > 0 &&
		float64(structure.SentenceCount)/float64(structure.ParagraphCount) > 5 {
		recommendations = append(recommendations, "Break long paragraphs into smaller ones for better readability")
	}

	return recommendations
}
