package video

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
)

type fakeExtractor struct {
	frames [][]byte
	err    error
}

func (f *fakeExtractor) ExtractFrames(_ context.Context, _ string, _ int) ([][]byte, error) {
	return f.frames, f.err
}

type fakeVision struct {
	response string
	err      error
	prompt   string
	images   [][]byte
}

func (f *fakeVision) GenerateWithImages(_ context.Context, prompt string, images [][]byte) (string, error) {
	f.prompt = prompt
	f.images = images
	return f.response, f.err
}

type fakeHashtags struct {
	tags  []string
	topic string
}

func (f *fakeHashtags) TrendingHashtags(_ context.Context, topic, _ string) ([]string, error) {
	f.topic = topic
	return f.tags, nil
}

const sampleResponse = `**VIDEO ANALYSIS:**
A person demonstrates a kettlebell routine in a home gym.

**CAPTION:**
Five moves to build real strength at home.
No equipment excuses today.

**HASHTAGS:**
#fitness #homeworkout
#kettlebell

**PERFORMANCE RECOMMENDATIONS:**
1. Hook viewers in the first two seconds with the hardest move.
2. Add on-screen rep counters
   so viewers can follow along.
- Post between 6 and 8 pm.
`

func TestSelectFrameIndices(t *testing.T) {
	tests := []struct {
		total, max int
		want       []int
	}{
		{3, 5, []int{0, 1, 2}},
		{5, 5, []int{0, 1, 2, 3, 4}},
		{100, 5, []int{0, 20, 40, 60, 80}},
		{7, 3, []int{0, 2, 4}},
		{0, 5, nil},
		{10, 0, nil},
	}

	for _, tt := range tests {
		got := SelectFrameIndices(tt.total, tt.max)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SelectFrameIndices(%d, %d) = %v, want %v", tt.total, tt.max, got, tt.want)
		}
	}
}

func TestPlatformFor(t *testing.T) {
	tests := map[models.VideoContentType]string{
		models.VideoInstagramReel: "instagram",
		models.VideoYouTubeShort:  "youtube",
		models.VideoTikTok:        "tiktok",
		"unknown":                 "all",
	}
	for contentType, want := range tests {
		if got := PlatformFor(contentType); got != want {
			t.Errorf("PlatformFor(%s) = %q, want %q", contentType, got, want)
		}
	}
}

func TestParseResponseSections(t *testing.T) {
	parsed := parseResponse(sampleResponse, models.VideoInstagramReel)

	wantCaption := "Five moves to build real strength at home.\nNo equipment excuses today."
	if parsed.Caption != wantCaption {
		t.Errorf("caption = %q, want %q", parsed.Caption, wantCaption)
	}
	wantTags := []string{"#fitness", "#homeworkout", "#kettlebell"}
	if !reflect.DeepEqual(parsed.Hashtags, wantTags) {
		t.Errorf("hashtags = %v, want %v", parsed.Hashtags, wantTags)
	}
	wantRecs := []string{
		"Hook viewers in the first two seconds with the hardest move.",
		"Add on-screen rep counters so viewers can follow along.",
		"Post between 6 and 8 pm.",
	}
	if !reflect.DeepEqual(parsed.Recommendations, wantRecs) {
		t.Errorf("recommendations = %v, want %v", parsed.Recommendations, wantRecs)
	}
}

func TestParseResponseYouTubeSections(t *testing.T) {
	response := `**CAPTION:**
Watch this before your next workout.

**TITLE:**
Five Kettlebell Moves That Actually Work

**DESCRIPTION:**
A short breakdown of the five most effective moves.
Try them at home.

**HASHTAGS:**
#shorts #fitness
`
	parsed := parseResponse(response, models.VideoYouTubeShort)

	if parsed.Title != "Five Kettlebell Moves That Actually Work" {
		t.Errorf("title = %q", parsed.Title)
	}
	wantDesc := "A short breakdown of the five most effective moves.\nTry them at home."
	if parsed.Description != wantDesc {
		t.Errorf("description = %q, want %q", parsed.Description, wantDesc)
	}
}

func TestParseResponseYouTubeTitleFallback(t *testing.T) {
	response := `**CAPTION:**
Five Kettlebell Moves That Actually Work
Here is the breakdown you asked for.
`
	parsed := parseResponse(response, models.VideoYouTubeShort)

	if parsed.Title != "Five Kettlebell Moves That Actually Work" {
		t.Errorf("title fallback = %q", parsed.Title)
	}
	if parsed.Description != "Here is the breakdown you asked for." {
		t.Errorf("description fallback = %q", parsed.Description)
	}
}

func TestMergeHashtagsDedupAndLimit(t *testing.T) {
	generated := []string{"#a", "#b", "#a"}
	trending := []string{"#b", "#c"}
	got := mergeHashtags(generated, trending, models.VideoTikTok)
	want := []string{"#a", "#b", "#c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merged = %v, want %v", got, want)
	}

	var many []string
	for i := 0; i < 40; i++ {
		many = append(many, "#tag"+string(rune('a'+i%26))+string(rune('0'+i/26)))
	}
	if got := mergeHashtags(many, nil, models.VideoInstagramReel); len(got) != instagramHashtagLimit {
		t.Errorf("instagram limit = %d, want %d", len(got), instagramHashtagLimit)
	}
	if got := mergeHashtags(many, nil, models.VideoYouTubeShort); len(got) != youtubeHashtagLimit {
		t.Errorf("youtube limit = %d, want %d", len(got), youtubeHashtagLimit)
	}
}

func TestAnalyzeVideo(t *testing.T) {
	extractor := &fakeExtractor{frames: [][]byte{{0xFF, 0xD8}, {0xFF, 0xD8}}}
	vision := &fakeVision{response: sampleResponse}
	hashtags := &fakeHashtags{tags: []string{"#trendingnow", "#fitness"}}

	analyzer := NewAnalyzer(extractor, vision, AnalyzerOptions{Hashtags: hashtags})
	result, err := analyzer.AnalyzeVideo(context.Background(), Request{
		Source:      "clip-frames",
		ContentType: models.VideoInstagramReel,
		Keywords:    []string{"fitness", "home workout", "strength", "extra"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hashtags.topic != "fitness home workout strength" {
		t.Errorf("trending topic = %q, want first three keywords", hashtags.topic)
	}
	if len(vision.images) != 2 {
		t.Errorf("expected 2 frames sent to the model, got %d", len(vision.images))
	}
	if !strings.Contains(result.Caption, "real strength at home") {
		t.Errorf("caption = %q", result.Caption)
	}

	wantTags := []string{"#fitness", "#homeworkout", "#kettlebell", "#trendingnow"}
	if !reflect.DeepEqual(result.Hashtags, wantTags) {
		t.Errorf("hashtags = %v, want %v", result.Hashtags, wantTags)
	}
	if result.Metadata["platform"] != "instagram" {
		t.Errorf("platform metadata = %v", result.Metadata["platform"])
	}
	if result.Metadata["frame_count"] != 2 {
		t.Errorf("frame_count metadata = %v", result.Metadata["frame_count"])
	}
}

func TestAnalyzeVideoYouTubeMetadata(t *testing.T) {
	extractor := &fakeExtractor{frames: [][]byte{{0xFF}}}
	vision := &fakeVision{response: "**CAPTION:**\nA Title Line\nThe rest of the description.\n"}

	analyzer := NewAnalyzer(extractor, vision, AnalyzerOptions{})
	result, err := analyzer.AnalyzeVideo(context.Background(), Request{Source: "clip", ContentType: models.VideoYouTubeShort})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Metadata["title"] != "A Title Line" {
		t.Errorf("title metadata = %v", result.Metadata["title"])
	}
	if result.Metadata["description"] != "The rest of the description." {
		t.Errorf("description metadata = %v", result.Metadata["description"])
	}
}

func TestAnalyzeVideoNoFrames(t *testing.T) {
	analyzer := NewAnalyzer(&fakeExtractor{}, &fakeVision{}, AnalyzerOptions{})
	if _, err := analyzer.AnalyzeVideo(context.Background(), Request{Source: "clip", ContentType: models.VideoTikTok}); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestAnalyzeVideoModelFailure(t *testing.T) {
	extractor := &fakeExtractor{frames: [][]byte{{1}}}
	vision := &fakeVision{err: errors.New("blocked")}
	analyzer := NewAnalyzer(extractor, vision, AnalyzerOptions{})
	if _, err := analyzer.AnalyzeVideo(context.Background(), Request{Source: "clip", ContentType: models.VideoTikTok}); !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestStillDirExtractor(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"000001.jpg", "000002.jpg", "000003.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	extractor := NewStillDirExtractor()
	frames, err := extractor.ExtractFrames(context.Background(), dir, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if frames[0][0] != 0 || frames[2][0] != 2 {
		t.Errorf("frames not in playback order: %v", frames)
	}
}

func TestStillDirExtractorEmptyDir(t *testing.T) {
	extractor := NewStillDirExtractor()
	if _, err := extractor.ExtractFrames(context.Background(), t.TempDir(), 5); !errors.Is(err, ErrNoStills) {
		t.Fatalf("expected ErrNoStills, got %v", err)
	}
}
