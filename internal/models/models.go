package models

import (
	"errors"
	"fmt"
)

// ContentType defines the kind of copy being generated
type ContentType string

const (
	ContentTypeBlogPost           ContentType = "blog_post"
	ContentTypeSocialMedia        ContentType = "social_media"
	ContentTypeEmail              ContentType = "email"
	ContentTypeLandingPage        ContentType = "landing_page"
	ContentTypeProductDescription ContentType = "product_description"
	ContentTypeAdCopy             ContentType = "ad_copy"
	ContentTypePressRelease       ContentType = "press_release"
	ContentTypeCustom             ContentType = "custom"
)

// ToneType defines the voice of the generated copy
type ToneType string

const (
	ToneProfessional   ToneType = "professional"
	ToneConversational ToneType = "conversational"
	ToneEnthusiastic   ToneType = "enthusiastic"
	ToneInformative    ToneType = "informative"
	TonePersuasive     ToneType = "persuasive"
	ToneHumorous       ToneType = "humorous"
	ToneFormal         ToneType = "formal"
	ToneCasual         ToneType = "casual"
)

// AudienceType defines who the copy is written for
type AudienceType string

const (
	AudienceGeneral   AudienceType = "general"
	AudienceTechnical AudienceType = "technical"
	AudienceBusiness  AudienceType = "business"
	AudienceConsumer  AudienceType = "consumer"
	AudienceExpert    AudienceType = "expert"
	AudienceBeginner  AudienceType = "beginner"
	AudienceYouth     AudienceType = "youth"
	AudienceSenior    AudienceType = "senior"
)

// VideoContentType defines the target platform for video captions
type VideoContentType string

const (
	VideoInstagramReel VideoContentType = "instagram_reel"
	VideoYouTubeShort  VideoContentType = "youtube_short"
	VideoTikTok        VideoContentType = "tiktok"
)

// Validation errors
var (
	ErrEmptyTopic         = errors.New("topic is required")
	ErrNegativeWordCount  = errors.New("word count must be positive")
	ErrUnknownContentType = errors.New("unknown content type")
)

var validContentTypes = map[ContentType]bool{
	ContentTypeBlogPost:           true,
	ContentTypeSocialMedia:        true,
	ContentTypeEmail:              true,
	ContentTypeLandingPage:        true,
	ContentTypeProductDescription: true,
	ContentTypeAdCopy:             true,
	ContentTypePressRelease:       true,
	ContentTypeCustom:             true,
}

// ContentRequest describes a single content generation request.
// Keywords are ordered: the first entry is treated as the primary keyword.
type ContentRequest struct {
	ContentType        ContentType  `json:"content_type"`
	Topic              string       `json:"topic"`
	Tone               ToneType     `json:"tone"`
	Audience           AudienceType `json:"audience"`
	Keywords           []string     `json:"keywords"`
	WordCount          int          `json:"word_count,omitempty"`
	IncludeResearch    bool         `json:"include_research"`
	CustomInstructions string       `json:"custom_instructions,omitempty"`
	References         []string     `json:"references,omitempty"`
}

// Validate checks the request and fills in default tone and audience.
// Rejects the request at construction time rather than letting a bad
// value reach the workflow.
func (r *ContentRequest) Validate() error {
	if r.Topic == "" {
		return ErrEmptyTopic
	}
	if r.WordCount < 0 {
		return ErrNegativeWordCount
	}
	if r.ContentType == "" {
		r.ContentType = ContentTypeCustom
	}
	if !validContentTypes[r.ContentType] {
		return fmt.Errorf("%w: %q", ErrUnknownContentType, r.ContentType)
	}
	if r.Tone == "" {
		r.Tone = ToneConversational
	}
	if r.Audience == "" {
		r.Audience = AudienceGeneral
	}
	return nil
}

// PrimaryKeyword returns the first keyword, or an empty string
func (r *ContentRequest) PrimaryKeyword() string {
	if len(r.Keywords) == 0 {
		return ""
	}
	return r.Keywords[0]
}

// ResearchResult is a single web search hit used to ground the copy
type ResearchResult struct {
	Source  string `json:"source"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// ContentResponse is the terminal result of a content generation run
type ContentResponse struct {
	Content         string                 `json:"content"`
	Metadata        map[string]interface{} `json:"metadata"`
	ResearchResults []ResearchResult       `json:"research_results,omitempty"`
}

// VideoAnalysisResult is the result of analyzing video frames for
// platform-specific captions and hashtags
type VideoAnalysisResult struct {
	Caption         string                 `json:"caption"`
	Hashtags        []string               `json:"hashtags"`
	Recommendations []string               `json:"recommendations"`
	Metadata        map[string]interface{} `json:"metadata"`
}
