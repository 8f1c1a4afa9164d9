package video

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrNoStills = errors.New("no still images found")

// StillDirExtractor samples frames from a directory of pre-decoded
// JPEG stills, named so that lexical order matches playback order.
// Decoding happens upstream, typically with ffmpeg:
//
//	ffmpeg -i clip.mp4 -vf fps=1 frames/%06d.jpg
type StillDirExtractor struct{}

func NewStillDirExtractor() *StillDirExtractor {
	return &StillDirExtractor{}
}

// ExtractFrames reads up to maxFrames stills from the directory,
// sampled at regular intervals across the sequence.
func (e *StillDirExtractor) ExtractFrames(ctx context.Context, source string, maxFrames int) ([][]byte, error) {
	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("reading stills directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".jpg" || ext == ".jpeg" {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoStills, source)
	}
	sort.Strings(names)

	frames := make([][]byte, 0, maxFrames)
	for _, idx := range SelectFrameIndices(len(names), maxFrames) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(source, names[idx]))
		if err != nil {
			return nil, fmt.Errorf("reading still %s: %w", names[idx], err)
		}
		frames = append(frames, data)
	}
	return frames, nil
}
