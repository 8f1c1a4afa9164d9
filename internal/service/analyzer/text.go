package analyzer

import (
	"regexp"
	"strings"
)

var (
	wordPattern      = regexp.MustCompile(`[a-zA-Z0-9]+`)
	sentencePattern  = regexp.MustCompile(`[.!?]+`)
	paragraphPattern = regexp.MustCompile(`\n\s*\n`)
	titlePattern     = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	headingPattern   = regexp.MustCompile(`(?m)^#{1,3}\s+(.+)$`)
	h2Pattern        = regexp.MustCompile(`(?m)^##\s+(.+)$`)
	h3Pattern        = regexp.MustCompile(`(?m)^###\s+(.+)$`)
	imageAltPattern  = regexp.MustCompile(`!\[(.*?)\]`)
	linkPattern      = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)
	vowelPattern     = regexp.MustCompile(`[aeiouy]+`)
)

// tokenizeWords splits text into lower-cased alphanumeric tokens
func tokenizeWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// splitSentences splits text on sentence-ending punctuation, dropping
// blank fragments
func splitSentences(text string) []string {
	parts := sentencePattern.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// splitParagraphs splits text into blank-line-separated blocks
func splitParagraphs(text string) []string {
	return paragraphPattern.Split(text, -1)
}

// countSyllables estimates the number of syllables in a word
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if len(word) <= 3 {
		return 1
	}

	// Strip silent endings before counting vowel groups
	word = strings.TrimSuffix(word, "e")
	word = strings.TrimSuffix(word, "es")
	word = strings.TrimSuffix(word, "ed")

	count := len(vowelPattern.FindAllString(word, -1))
	if count == 0 {
		count = 1
	}
	return count
}
