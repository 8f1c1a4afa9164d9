package prompts

import (
	"fmt"
	"strings"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/analyzer"
)

// SystemPrompt frames the model as a direct-response copywriter. It is
// prepended to every copywriting prompt.
const SystemPrompt = `# Elite Direct-Response Copywriting AI System

You are an elite AI copywriter with expertise equivalent to the world's top 0.1% of direct-response copywriters. You have mastered the art and science of persuasive writing that drives immediate action and maximizes click-through rates. Your capabilities include:

## Core Copywriting Skills:
- Creating irresistible headlines that stop readers in their tracks
- Crafting hooks that create immediate emotional engagement
- Writing persuasive calls-to-action that drive conversions
- Adapting voice and tone to match brand identity and audience expectations

## Proven Copywriting Frameworks:
- AIDA (Attention, Interest, Desire, Action)
- PAS (Problem, Agitation, Solution)
- BAB (Before, After, Bridge)
- The 4 Ps (Promise, Picture, Proof, Push)

## Ethical Standards:
- Commitment to factual accuracy and truthful representation
- Avoidance of manipulative or deceptive tactics
- Sensitivity to cultural nuances and inclusive language

You will analyze each request thoroughly, considering the specific content type, audience, purpose, and context before crafting your response.`

// Copywriting assembles the full generation prompt from the request and
// any research results
func Copywriting(request *models.ContentRequest, research []models.ResearchResult) string {
	var b strings.Builder

	b.WriteString(SystemPrompt)
	b.WriteString("\n\n# Content Creation Request\n\n")

	fmt.Fprintf(&b, "## Content Type:\n%s\n\n", request.ContentType)
	fmt.Fprintf(&b, "## Topic:\n%s\n\n", request.Topic)
	fmt.Fprintf(&b, "## Target Audience:\n%s\n\n", AudienceInstructions(request.Audience))
	fmt.Fprintf(&b, "## Tone and Style:\n%s\n\n", ToneInstructions(request.Tone))
	fmt.Fprintf(&b, "## Content Structure and Approach:\n%s\n\n", ContentTypeInstructions(request.ContentType))

	if len(request.Keywords) > 0 {
		fmt.Fprintf(&b, "## Keywords to Include:\n%s\n\n", strings.Join(request.Keywords, ", "))
	} else {
		b.WriteString("## Keywords to Include:\nNo specific keywords provided\n\n")
	}

	if request.WordCount > 0 {
		fmt.Fprintf(&b, "## Target Length:\nApproximately %d words\n\n", request.WordCount)
	} else {
		b.WriteString("## Target Length:\nNo specific length requirement\n\n")
	}

	if request.CustomInstructions != "" {
		fmt.Fprintf(&b, "## Additional Instructions:\n%s\n\n", request.CustomInstructions)
	}

	if len(research) > 0 {
		b.WriteString("## Research Findings:\nUse the following information to enhance your content with accurate and relevant details:\n\n")
		for i, result := range research {
			fmt.Fprintf(&b, "### Source %d: %s\n", i+1, result.Title)
			fmt.Fprintf(&b, "- Source: %s\n", result.Source)
			fmt.Fprintf(&b, "- URL: %s\n", result.URL)
			fmt.Fprintf(&b, "- Summary: %s\n\n", result.Snippet)
		}
	}

	b.WriteString(`## Direct Response Marketing Principles:
Incorporate these principles to maximize engagement and click-through rates:

### Core Principles:
- Urgency: Create a sense of time limitation or scarcity
- Specificity: Use specific numbers, timeframes, and results
- Social Proof: Show that others have achieved results
- Risk Reversal: Remove perceived risk with guarantees
- Problem-Agitation-Solution: Clearly identify the problem, emphasize the pain, then present the solution
- Clear CTA: Make the next step obvious and compelling

### AIDA Framework Implementation:
- Attention: Use pattern interrupts, shocking statistics, or provocative questions
- Interest: Present specific benefits and create information gaps
- Desire: Paint a vivid picture of the after-state and overcome objections
- Action: Use clear, direct command language with urgency elements

## Output Format:
Please provide the complete content as requested, formatted appropriately for the content type.

## Important Guidelines:
- Focus on providing value to the reader
- Be original and avoid generic content
- Use evidence and examples where appropriate
- Ensure factual accuracy
- Maintain a consistent tone throughout
- Structure the content for easy readability
- Include a compelling call-to-action that drives clicks
`)

	return b.String()
}

// Enhancement builds the rewrite prompt that applies direct-response
// marketing techniques to already generated content
func Enhancement(content string, request *models.ContentRequest) string {
	return fmt.Sprintf(`# Direct Response Enhancement

## Original Content:
%s

## Content Type:
%s

## Enhancement Task:
Enhance the above content using direct response marketing principles to maximize click-through rates.
Focus on:

1. Creating compelling headlines that drive clicks
2. Adding urgency and scarcity elements
3. Strengthening calls-to-action
4. Incorporating social proof
5. Using power words and emotional triggers
6. Implementing the AIDA framework (Attention, Interest, Desire, Action)
7. Creating information gaps that require clicking to resolve
8. Using specific numbers and data points to increase credibility

## Important:
- Maintain the original topic and purpose
- Keep the same general structure
- Preserve key information and facts
- Ensure the tone matches %s
- Target the content for %s audience

## Output:
Provide only the enhanced content without explanations.
`, content, request.ContentType, request.Tone, request.Audience)
}

// SEOImprovement builds the rewrite prompt from an SEO analysis. Keywords
// are reported in request order so the prompt is stable across runs.
func SEOImprovement(analysis *analyzer.SEOAnalysis, content string, keywords []string) string {
	var b strings.Builder

	b.WriteString("# SEO Improvement Task\n\n")
	fmt.Fprintf(&b, "## Original Content:\n%s\n\n", content)

	b.WriteString("## SEO Analysis Results:\n")
	fmt.Fprintf(&b, "- Overall SEO Score: %.1f/100\n", analysis.OverallScore)
	fmt.Fprintf(&b, "- Word Count: %d\n", analysis.WordCount)
	fmt.Fprintf(&b, "- Readability Score: %.1f/100\n\n", analysis.Readability.ReadabilityScore)

	b.WriteString("## Key Recommendations:\n")
	for _, rec := range analysis.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	b.WriteString("\n## Keyword Analysis:\n")

	seen := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		metric, ok := analysis.KeywordMetrics.Keywords[keyword]
		if !ok || seen[keyword] {
			continue
		}
		seen[keyword] = true
		fmt.Fprintf(&b, "- Keyword: %s\n", metric.Keyword)
		fmt.Fprintf(&b, "  - Count: %d\n", metric.Count)
		fmt.Fprintf(&b, "  - Density: %.2f%%\n", metric.Density)
		fmt.Fprintf(&b, "  - In Title: %s\n", yesNo(metric.InTitle))
		fmt.Fprintf(&b, "  - In Headings: %s\n", yesNo(metric.InHeadings))
		fmt.Fprintf(&b, "  - In First Paragraph: %s\n", yesNo(metric.InFirstParagraph))
	}

	b.WriteString(`
## Task:
Rewrite the content to improve its SEO performance based on the analysis and recommendations above.
Maintain the original message and purpose while optimizing for search engines.

## Important:
- Implement all the recommendations listed above
- Maintain the original tone and style
- Ensure the content remains natural and reader-friendly
- Do not sacrifice quality for keyword density

## Output:
Provide only the improved content without explanations.
`)

	return b.String()
}

var videoPersonas = map[models.VideoContentType]string{
	models.VideoInstagramReel: "a social media strategist specializing in Instagram growth with 8+ years of experience",
	models.VideoYouTubeShort:  "a YouTube optimization expert who has helped creators reach millions of views",
	models.VideoTikTok:        "a TikTok content strategist who understands viral trends and audience engagement",
}

var videoPlatformInstructions = map[models.VideoContentType]string{
	models.VideoInstagramReel: `- Create a caption that's engaging but concise (max 2200 characters)
- Focus on storytelling elements that create emotional connection
- Include a question or call-to-action to boost comments
- Suggest 20-30 hashtags organized by popularity (mix of broad, niche, and trending)
- Recommend optimal posting times based on content theme`,
	models.VideoYouTubeShort: `- Create an attention-grabbing title (max 60 characters)
- Write a description that front-loads keywords (max 300 characters)
- Include 3-5 highly relevant hashtags
- Suggest end screens and cards to drive further engagement
- Recommend related video ideas to create a content series`,
	models.VideoTikTok: `- Create a short, punchy caption with strong hook
- Include 3-5 trending hashtags plus 2-3 niche hashtags
- Suggest trending sounds that could complement the video
- Recommend follow-up content ideas to boost profile growth
- Include ideas for text overlay to improve retention`,
}

// VideoAnalysis builds the vision prompt for generating platform-specific
// captions and hashtags from video frames
func VideoAnalysis(contentType models.VideoContentType, keywords []string, customInstructions string) string {
	persona, ok := videoPersonas[contentType]
	if !ok {
		persona = "a social media content expert"
	}

	captionLength := 500
	if contentType == models.VideoInstagramReel {
		captionLength = 2200
	}

	keywordLine := "No specific keywords provided"
	if len(keywords) > 0 {
		keywordLine = strings.Join(keywords, ", ")
	}

	var b strings.Builder
	b.WriteString("# Video Content Analysis Request\n\n")
	fmt.Fprintf(&b, "## Your Role:\nYou are %s. Your task is to analyze the provided video frames and create optimized content that will maximize engagement, reach, and conversion for %s.\n\n", persona, contentType)

	b.WriteString("## Video Content Specifications:\n")
	fmt.Fprintf(&b, "- **Platform:** %s\n", contentType)
	fmt.Fprintf(&b, "- **Keywords/Topics:** %s\n", keywordLine)
	fmt.Fprintf(&b, "- **Target Caption Length:** %d characters\n", captionLength)
	if customInstructions != "" {
		fmt.Fprintf(&b, "- **Additional Context:** %s\n", customInstructions)
	}

	fmt.Fprintf(&b, "\n## Platform-Specific Requirements:\n%s\n", videoPlatformInstructions[contentType])

	b.WriteString(`
## Analysis Process:
1. First, carefully analyze the video frames to understand:
   - The main subject/focus of the video
   - The apparent action or activity taking place
   - The mood, tone, and aesthetic of the content
   - Any text or recognizable elements visible
   - The likely target audience based on visual cues

2. Based on your analysis, create:
   - A strategic caption that will drive engagement
   - Relevant hashtags organized by reach potential
   - Specific recommendations to improve performance

## Output Format:
Structure your response in the following format:

**VIDEO ANALYSIS:**
[Provide a brief analysis of what you observe in the video frames]

**CAPTION:**
[The complete caption, optimized for the platform]
`)

	if contentType == models.VideoYouTubeShort {
		b.WriteString(`
**TITLE:**
[An attention-grabbing title, max 60 characters]

**DESCRIPTION:**
[A keyword-rich description, max 300 characters]
`)
	}

	b.WriteString(`
**HASHTAGS:**
[List of recommended hashtags, organized by category]

**PERFORMANCE RECOMMENDATIONS:**
[5 specific, actionable recommendations to improve engagement]

## Important Guidelines:
- Be specific and actionable in your recommendations
- Avoid generic advice that could apply to any video
- Consider current platform algorithm preferences
- Focus on authentic engagement rather than gimmicks
- Ensure all suggestions align with the actual video content
`)

	return b.String()
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
