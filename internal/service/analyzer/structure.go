package analyzer

import "strings"

// StructureMetrics contains the content structure analysis results
type StructureMetrics struct {
	HasTitle           bool    `json:"has_title"`
	TitleLength        int     `json:"title_length"`
	H2Count            int     `json:"h2_count"`
	H3Count            int     `json:"h3_count"`
	WordCount          int     `json:"word_count"`
	SentenceCount      int     `json:"sentence_count"`
	ParagraphCount     int     `json:"paragraph_count"`
	AvgParagraphLength float64 `json:"avg_paragraph_length"`
	HasMetaDescription bool    `json:"has_meta_description"`
	HasImageAlt        bool    `json:"has_image_alt"`
	HasInternalLinks   bool    `json:"has_internal_links"`
	HasExternalLinks   bool    `json:"has_external_links"`
}

// AnalyzeStructure extracts title, headings, paragraph counts and the
// presence of links, images and a meta-description marker from the
// markdown-like body. Empty text yields all-zero metrics.
func AnalyzeStructure(text string) StructureMetrics {
	metrics := StructureMetrics{}
	if strings.TrimSpace(text) == "" {
		return metrics
	}

	title := ""
	if match := titlePattern.FindStringSubmatch(text); match != nil {
		title = strings.TrimSpace(match[1])
	}
	metrics.HasTitle = title != ""
	metrics.TitleLength = len(title)

	metrics.H2Count = len(h2Pattern.FindAllString(text, -1))
	metrics.H3Count = len(h3Pattern.FindAllString(text, -1))

	metrics.WordCount = len(tokenizeWords(text))
	metrics.SentenceCount = len(splitSentences(text))
	metrics.ParagraphCount = len(splitParagraphs(text))
	if metrics.ParagraphCount > 0 {
		metrics.AvgParagraphLength = float64(metrics.WordCount) / float64(metrics.ParagraphCount)
	}

	lowered := strings.ToLower(text)
	metrics.HasMetaDescription = strings.Contains(lowered, "description:") ||
		strings.Contains(lowered, "meta description:")

	for _, match := range imageAltPattern.FindAllStringSubmatch(text, -1) {
		if strings.TrimSpace(match[1]) != "" {
			metrics.HasImageAlt = true
			break
		}
	}

	for _, match := range linkPattern.FindAllStringSubmatch(text, -1) {
		url := match[1]
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			metrics.HasExternalLinks = true
		} else {
			metrics.HasInternalLinks = true
		}
	}

	return metrics
}
