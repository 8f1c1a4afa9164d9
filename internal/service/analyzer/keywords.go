package analyzer

import (
	"sort"
	"strings"
)

// KeywordMetric describes how a single target keyword is used in the text
type KeywordMetric struct {
	Keyword          string  `json:"keyword"`
	Count            int     `json:"count"`
	Density          float64 `json:"density"`
	InTitle          bool    `json:"in_title"`
	InHeadings       bool    `json:"in_headings"`
	InFirstParagraph bool    `json:"in_first_paragraph"`
	InLastParagraph  bool    `json:"in_last_paragraph"`
	OptimalDensity   bool    `json:"optimal_density"`
}

// KeywordReport contains the aggregate keyword analysis results
type KeywordReport struct {
	Score    float64                  `json:"keyword_score"`
	Keywords map[string]KeywordMetric `json:"keywords"`
	TopTerms map[string]int           `json:"top_terms"`
}

// AnalyzeKeywords computes per-keyword occurrence, density and placement
// signals for the given target keywords. An empty keyword list yields an
// empty mapping and a zero score.
func AnalyzeKeywords(text string, keywords []string) KeywordReport {
	lowered := strings.ToLower(text)
	words := tokenizeWords(text)

	// Density is computed over the stop-word-filtered word count
	wordFreq := make(map[string]int)
	totalWords := 0
	for _, word := range words {
		if isStopWord(word) {
			continue
		}
		wordFreq[word]++
		totalWords++
	}

	title := firstNonEmptyLine(text)
	headings := headingPattern.FindAllStringSubmatch(text, -1)
	paragraphs := splitParagraphs(text)
	firstParagraph := ""
	lastParagraph := ""
	if len(paragraphs) > 0 {
		firstParagraph = strings.ToLower(paragraphs[0])
		lastParagraph = strings.ToLower(paragraphs[len(paragraphs)-1])
	}

	report := KeywordReport{
		Keywords: make(map[string]KeywordMetric, len(keywords)),
		TopTerms: topTerms(wordFreq, 10),
	}

	points := 0
	for _, keyword := range keywords {
		lowerKeyword := strings.ToLower(keyword)
		if _, seen := report.Keywords[keyword]; seen {
			continue
		}

		var count int
		if strings.Contains(lowerKeyword, " ") {
			count = strings.Count(lowered, lowerKeyword)
		} else {
			count = wordFreq[lowerKeyword]
		}

		density := 0.0
		if totalWords > 0 {
			density = float64(count) / float64(totalWords) * 100
		}

		inHeadings := false
		for _, heading := range headings {
			if strings.Contains(strings.ToLower(heading[1]), lowerKeyword) {
				inHeadings = true
				break
			}
		}

		metric := KeywordMetric{
			Keyword:          keyword,
			Count:            count,
			Density:          density,
			InTitle:          strings.Contains(strings.ToLower(title), lowerKeyword),
			InHeadings:       inHeadings,
			InFirstParagraph: strings.Contains(firstParagraph, lowerKeyword),
			InLastParagraph:  strings.Contains(lastParagraph, lowerKeyword),
			OptimalDensity:   density >= 0.5 && density <= 2.5,
		}
		report.Keywords[keyword] = metric

		if metric.Count > 0 {
			points++
		}
		if metric.InTitle {
			points += 2
		}
		if metric.InHeadings {
			points++
		}
		if metric.InFirstParagraph {
			points++
		}
		if metric.OptimalDensity {
			points++
		}
	}

	// Each keyword can contribute at most 6 points
	maxPoints := len(report.Keywords) * 6
	if maxPoints > 0 {
		report.Score = float64(points) / float64(maxPoints) * 100
	}

	return report
}

// firstNonEmptyLine returns the first non-blank line of text, with any
// leading markdown heading marker stripped
func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
	}
	return ""
}

// topTerms returns the n most frequent terms
func topTerms(freq map[string]int, n int) map[string]int {
	type termCount struct {
		term  string
		count int
	}
	terms := make([]termCount, 0, len(freq))
	for term, count := range freq {
		terms = append(terms, termCount{term, count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].count != terms[j].count {
			return terms[i].count > terms[j].count
		}
		return terms[i].term < terms[j].term
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	top := make(map[string]int, len(terms))
	for _, tc := range terms {
		top[tc.term] = tc.count
	}
	return top
}

// isStopWord checks if a word is a common stop word
func isStopWord(word string) bool {
	return stopWords[word]
}

var stopWords = map[string]bool{
	"the": true, "of": true, "and": true, "a": true, "to": true, "in": true, "is": true, "you": true,
	"that": true, "it": true, "he": true, "was": true, "for": true, "on": true, "are": true, "as": true,
	"with": true, "his": true, "they": true, "i": true, "at": true, "be": true, "this": true, "have": true,
	"from": true, "or": true, "one": true, "had": true, "by": true, "but": true, "not": true, "what": true,
	"all": true, "were": true, "we": true, "when": true, "your": true, "can": true, "said": true, "there": true,
	"use": true, "an": true, "each": true, "which": true, "she": true, "do": true, "how": true, "their": true,
	"if": true, "will": true, "up": true, "other": true, "about": true, "out": true, "many": true, "then": true,
	"them": true, "these": true, "so": true, "some": true, "her": true, "would": true, "make": true, "like": true,
	"him": true, "into": true, "time": true, "has": true, "look": true, "two": true, "more": true, "go": true,
	"see": true, "no": true, "way": true, "could": true, "my": true, "than": true, "been": true, "who": true,
	"its": true, "now": true, "did": true, "get": true, "come": true,
}
