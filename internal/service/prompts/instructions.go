package prompts

import "github.com/chynybekuuludastan/copywriting_agent/internal/models"

var contentTypeInstructions = map[models.ContentType]string{
	models.ContentTypeBlogPost: `Create a high-converting blog post with:
- A headline that uses numbers, power words, and creates curiosity
- An engaging introduction that hooks the reader with a problem or surprising fact
- Well-organized body with benefit-focused subheadings
- Short paragraphs (1-3 sentences) for easy scanning
- Bullet points to highlight key benefits or takeaways
- Strategic use of bold text for important points
- Multiple compelling CTAs throughout the content
- Social proof elements like statistics, testimonials, or case studies
- A strong conclusion with a final, persuasive call-to-action`,
	models.ContentTypeSocialMedia: `Create high-CTR social media content with:
- A pattern-interrupting first line that stops scrolling
- Concise, benefit-focused messaging that creates curiosity
- Strategic use of emojis to draw attention to key points
- Power words that trigger emotional responses
- A clear, compelling call-to-action with urgency elements
- Question-based engagement hooks that prompt responses
- Appropriate hashtags that extend reach
- Appropriate length for the platform with line breaks for scannability`,
	models.ContentTypeEmail: `Create a high-converting email with:
- A subject line that creates curiosity or promises specific value
- A compelling preheader that extends the subject line promise
- An opening line that immediately engages with a question or bold statement
- Short paragraphs (1-2 sentences) for easy mobile reading
- Bullet points to highlight key benefits
- A clear, compelling primary CTA repeated 2-3 times
- Urgency elements like limited time offers or deadlines
- P.S. section that reinforces the main benefit or adds urgency`,
	models.ContentTypeLandingPage: `Create a high-converting landing page with:
- A headline that clearly communicates the unique value proposition
- A subheadline that expands on the main benefit or addresses objections
- Hero section with a clear, compelling primary CTA
- Benefit-focused sections with specific outcomes (not features)
- Multiple strategically placed CTAs with action-oriented language
- Trust indicators including testimonials with specific results
- Risk-reversal elements like guarantees or free trials
- Urgency and scarcity elements that drive immediate action
- FAQ section that preemptively addresses objections`,
	models.ContentTypeProductDescription: `Create a compelling product description with:
- Attention-grabbing headline
- Clear explanation of what the product is
- Emphasis on key features and benefits
- Technical specifications where relevant
- Sensory and emotional language
- Clear call-to-action`,
	models.ContentTypeAdCopy: `Create persuasive ad copy with:
- Attention-grabbing headline
- Clear value proposition
- Emotional triggers
- Sense of urgency
- Strong call-to-action
- Appropriate length for the ad platform`,
	models.ContentTypePressRelease: `Create a professional press release with:
- Compelling headline
- Dateline and location
- Strong lead paragraph with the 5 Ws (who, what, when, where, why)
- Relevant quotes from key stakeholders
- Boilerplate company information
- Contact information`,
	models.ContentTypeCustom: `Create custom content following best practices for:
- Clear and engaging communication
- Proper structure and flow
- Appropriate tone and style
- Compelling calls-to-action where needed
- Relevant and accurate information`,
}

var toneInstructions = map[models.ToneType]string{
	models.ToneProfessional:   "Use formal language, industry terminology, and maintain a serious, authoritative voice.",
	models.ToneConversational: "Write as if having a friendly conversation, using contractions, questions, and a warm, approachable style.",
	models.ToneEnthusiastic:   "Use energetic language, exclamations, and convey excitement and passion about the topic.",
	models.ToneInformative:    "Focus on facts, clear explanations, and educational content without unnecessary embellishment.",
	models.TonePersuasive:     "Use compelling arguments, rhetorical questions, and persuasive techniques to convince the reader.",
	models.ToneHumorous:       "Incorporate appropriate humor, wit, and a light-hearted approach to engage the reader.",
	models.ToneFormal:         "Use proper grammar, avoid contractions, and maintain a sophisticated, academic tone.",
	models.ToneCasual:         "Use relaxed language, slang (when appropriate), and a laid-back, friendly approach.",
}

var audienceInstructions = map[models.AudienceType]string{
	models.AudienceGeneral:   "Write for a broad audience with varied knowledge levels, avoiding jargon and complex concepts without explanation.",
	models.AudienceTechnical: "Use technical terminology, detailed explanations, and assume specialized knowledge in the subject area.",
	models.AudienceBusiness:  "Focus on business value, ROI, and strategic implications using professional business language.",
	models.AudienceConsumer:  "Emphasize benefits over features, use accessible language, and focus on how the product/service improves daily life.",
	models.AudienceExpert:    "Use advanced terminology, in-depth analysis, and assume high-level understanding of the subject matter.",
	models.AudienceBeginner:  "Provide clear explanations, avoid jargon, use analogies, and assume no prior knowledge of the subject.",
	models.AudienceYouth:     "Use simple language, engaging examples, and a more energetic tone appropriate for younger audiences.",
	models.AudienceSenior:    "Use clear, straightforward language, avoid trendy terms, and consider accessibility in your communication.",
}

// ContentTypeInstructions returns writing instructions for a content type
func ContentTypeInstructions(contentType models.ContentType) string {
	if instructions, ok := contentTypeInstructions[contentType]; ok {
		return instructions
	}
	return contentTypeInstructions[models.ContentTypeCustom]
}

// ToneInstructions returns writing instructions for a tone
func ToneInstructions(tone models.ToneType) string {
	if instructions, ok := toneInstructions[tone]; ok {
		return instructions
	}
	return toneInstructions[models.ToneConversational]
}

// AudienceInstructions returns writing instructions for an audience
func AudienceInstructions(audience models.AudienceType) string {
	if instructions, ok := audienceInstructions[audience]; ok {
		return instructions
	}
	return audienceInstructions[models.AudienceGeneral]
}
