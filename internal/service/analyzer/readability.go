package analyzer

import "math"

// ReadabilityMetrics contains the readability analysis results
type ReadabilityMetrics struct {
	FleschReadingEase     float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade    float64 `json:"flesch_kincaid_grade"`
	GunningFog            float64 `json:"gunning_fog"`
	SMOGIndex             float64 `json:"smog_index"`
	AvgSentenceLength     float64 `json:"avg_sentence_length"`
	ComplexWordPercentage float64 `json:"complex_word_percentage"`
	ReadabilityScore      float64 `json:"readability_score"`
}

// AnalyzeReadability computes syllable-based readability indices for the
// given text. Empty text yields zeroed metrics.
func AnalyzeReadability(text string) ReadabilityMetrics {
	words := tokenizeWords(text)
	sentences := splitSentences(text)

	wordCount := len(words)
	sentenceCount := len(sentences)

	metrics := ReadabilityMetrics{}
	if wordCount == 0 || sentenceCount == 0 {
		return metrics
	}

	syllableCount := 0
	complexWordCount := 0
	for _, word := range words {
		syllables := countSyllables(word)
		syllableCount += syllables
		if syllables >= 3 {
			complexWordCount++
		}
	}

	avgSentenceLength := float64(wordCount) / float64(sentenceCount)
	syllablesPerWord := float64(syllableCount) / float64(wordCount)
	complexShare := float64(complexWordCount) / float64(wordCount)

	metrics.AvgSentenceLength = avgSentenceLength
	metrics.ComplexWordPercentage = complexShare * 100
	metrics.FleschReadingEase = 206.835 - 1.015*avgSentenceLength - 84.6*syllablesPerWord
	metrics.FleschKincaidGrade = 0.39*avgSentenceLength + 11.8*syllablesPerWord - 15.59
	metrics.GunningFog = 0.4 * (avgSentenceLength + 100*complexShare)
	metrics.SMOGIndex = 1.043*math.Sqrt(float64(complexWordCount)*(30/float64(sentenceCount))) + 3.1291
	metrics.ReadabilityScore = combineReadabilityScores(
		metrics.FleschReadingEase, metrics.FleschKincaidGrade, metrics.GunningFog)

	return metrics
}

// combineReadabilityScores normalizes the three formulas to 0-100 and
// averages them. Grade-style indices are inverted so that lower grades
// score higher, with a floor at grade 18.
func combineReadabilityScores(fleschEase, kincaidGrade, gunningFog float64) float64 {
	normalizedEase := clamp(fleschEase, 0, 100)
	normalizedGrade := clamp(18-kincaidGrade, 0, 18) / 18 * 100
	normalizedFog := clamp(18-gunningFog, 0, 18) / 18 * 100
	return (normalizedEase + normalizedGrade + normalizedFog) / 3
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
