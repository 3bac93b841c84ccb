// Package domain defines the value objects exchanged between the
// transcription, analysis, writing, and SEO stages of the pipeline and
// the scoring engines in this service. All types are plain immutable
// values; validation happens once at the service boundary.
package domain

import "errors"

// Validation errors returned when an upstream value object is missing
// required fields.
var (
	ErrNilTranscript  = errors.New("transcript is required")
	ErrNilArticle     = errors.New("article is required")
	ErrNilAnalysis    = errors.New("content analysis is required")
	ErrNilSEOPackage  = errors.New("seo package is required")
	ErrMissingVideoID = errors.New("transcript video_id is required")
)

// TranscriptSource identifies how a transcript was produced.
type TranscriptSource string

const (
	// SourceCaptions means the transcript came from platform captions.
	SourceCaptions TranscriptSource = "captions"
	// SourceWhisper means the transcript came from speech-to-text.
	SourceWhisper TranscriptSource = "whisper"
)

// TranscriptSegment is an individual transcript segment with timing.
type TranscriptSegment struct {
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Transcript is a complete transcript with video metadata, produced by
// the transcription subsystem.
type Transcript struct {
	VideoID         string              `json:"video_id"`
	Title           string              `json:"title"`
	Channel         string              `json:"channel"`
	DurationSeconds int                 `json:"duration_seconds"`
	Transcript      string              `json:"transcript"`
	Segments        []TranscriptSegment `json:"segments"`
	Source          TranscriptSource    `json:"source"`
	Language        string              `json:"language"`
	ThumbnailURL    string              `json:"thumbnail_url,omitempty"`
	UploadDate      string              `json:"upload_date,omitempty"`
}

// Validate checks that the transcript carries its required identity fields.
// Empty transcript text is not an error; filtering degenerates to an
// all-clear result.
func (t *Transcript) Validate() error {
	if t == nil {
		return ErrNilTranscript
	}
	if t.VideoID == "" {
		return ErrMissingVideoID
	}
	return nil
}
