package models

import (
	"errors"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	req := &ContentRequest{Topic: "email marketing"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ContentType != ContentTypeCustom {
		t.Errorf("content type default = %q", req.ContentType)
	}
	if req.Tone != ToneConversational {
		t.Errorf("tone default = %q", req.Tone)
	}
	if req.Audience != AudienceGeneral {
		t.Errorf("audience default = %q", req.Audience)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		req  ContentRequest
		want error
	}{
		{"empty topic", ContentRequest{}, ErrEmptyTopic},
		{"negative word count", ContentRequest{Topic: "x", WordCount: -1}, ErrNegativeWordCount},
		{"unknown content type", ContentRequest{Topic: "x", ContentType: "novel"}, ErrUnknownContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	req := &ContentRequest{
		ContentType: ContentTypeLandingPage,
		Topic:       "saas onboarding",
		Tone:        ToneEnthusiastic,
		Audience:    AudienceBusiness,
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ContentType != ContentTypeLandingPage || req.Tone != ToneEnthusiastic || req.Audience != AudienceBusiness {
		t.Errorf("explicit values were overwritten: %+v", req)
	}
}

func TestPrimaryKeyword(t *testing.T) {
	req := &ContentRequest{Keywords: []string{"first", "second"}}
	if got := req.PrimaryKeyword(); got != "first" {
		t.Errorf("PrimaryKeyword() = %q", got)
	}
	empty := &ContentRequest{}
	if got := empty.PrimaryKeyword(); got != "" {
		t.Errorf("PrimaryKeyword() on empty = %q", got)
	}
}
