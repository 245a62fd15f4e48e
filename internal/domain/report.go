package domain

import (
	"context"
	"time"
)

type Decision string

const (
	DecisionHire   Decision = "hire"
	DecisionReject Decision = "reject"
	DecisionMaybe  Decision = "maybe"
)

type Report struct {
	ID              string    `json:"id"`
	CandidateID     string    `json:"candidate_id"`
	InterviewID     string    `json:"interview_id"`
	GeneratedAt     time.Time `json:"generated_at"`
	Summary         string    `json:"summary"`
	Recommendations []string  `json:"recommendations"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
	FinalScore      int       `json:"final_score"`
	Decision        Decision  `json:"decision"`
}

type ReportRepository interface {
	GetByCandidateID(ctx context.Context, candidateID string) (*Report, error)
}

// ReportRenderer turns a report into a downloadable document.
// report is nil when the candidate has no report yet.
type ReportRenderer interface {
	RenderPDF(ctx context.Context, candidateID string, report *Report) ([]byte, error)
}

type ReportUsecase interface {
	GetReport(ctx context.Context, candidateID string) (*Report, error)
	RenderReportPDF(ctx context.Context, candidateID string) ([]byte, error)
}
