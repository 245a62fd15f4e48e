package domain

import (
	"context"
	"time"
)

type InterviewStatus string

const (
	InterviewStatusScheduled  InterviewStatus = "scheduled"
	InterviewStatusInProgress InterviewStatus = "in_progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusCancelled  InterviewStatus = "cancelled"
)

type Interview struct {
	ID            string          `json:"id"`
	CandidateID   string          `json:"candidate_id"`
	CandidateName string          `json:"candidate_name"`
	Position      string          `json:"position"`
	Status        InterviewStatus `json:"status"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
	CompletedAt   *time.Time      `json:"completed_at"`
	Duration      *int            `json:"duration"` // seconds
	Score         *int            `json:"score"`
	Notes         *string         `json:"notes"`
}

type Speaker string

const (
	SpeakerInterviewer Speaker = "interviewer"
	SpeakerCandidate   Speaker = "candidate"
)

// TranscriptEntry is one utterance; Timestamp is seconds from interview start
type TranscriptEntry struct {
	ID         string  `json:"id"`
	Speaker    Speaker `json:"speaker"`
	Text       string  `json:"text"`
	Timestamp  float64 `json:"timestamp"`
	Confidence float64 `json:"confidence"`
}

// MetricsBundle is a flat key/value set of scoring metrics
type MetricsBundle map[string]any

// InterviewDetail extends Interview with the analysed transcript.
// Transcript and Metrics are omitted for interviews without analysis.
type InterviewDetail struct {
	Interview
	Transcript []TranscriptEntry `json:"transcript,omitempty"`
	Metrics    MetricsBundle     `json:"metrics,omitempty"`
}

// HasAnalysis reports whether transcript/metrics are attached
func (d *InterviewDetail) HasAnalysis() bool {
	return len(d.Transcript) > 0 || d.Metrics != nil
}

// InterviewScript is what the live simulation replays for one interview
type InterviewScript struct {
	Transcript []TranscriptEntry
	Metrics    MetricsBundle
}

type InterviewRepository interface {
	List(ctx context.Context) ([]Interview, error)
	GetByID(ctx context.Context, id string) (*Interview, error)
	// GetDetail returns ErrNotFound when no analysed detail exists
	GetDetail(ctx context.Context, id string) (*InterviewDetail, error)
	Script(ctx context.Context, id string) (*InterviewScript, error)
}

type InterviewUsecase interface {
	ListInterviews(ctx context.Context, params ListParams) ([]Interview, int, error)
	GetInterview(ctx context.Context, id string) (*InterviewDetail, error)
}
