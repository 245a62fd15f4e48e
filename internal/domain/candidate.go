package domain

import (
	"context"
	"time"
)

type CandidateStatus string

const (
	CandidateStatusNew         CandidateStatus = "new"
	CandidateStatusInterviewed CandidateStatus = "interviewed"
	CandidateStatusHired       CandidateStatus = "hired"
	CandidateStatusRejected    CandidateStatus = "rejected"
)

type Candidate struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           *string         `json:"phone"`
	Position        string          `json:"position"`
	Experience      int             `json:"experience"`
	Skills          []string        `json:"skills"`
	ResumeURL       *string         `json:"resume_url"`
	Status          CandidateStatus `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	InterviewID     *string         `json:"interview_id"`
	Score           *int            `json:"score"`
	MatchPercentage *int            `json:"match_percentage"`
}

// ResumeUpload is the raw resume file attached to a create request
type ResumeUpload struct {
	Filename string
	Data     []byte
}

// CreateCandidateInput holds the creatable fields of a candidate
type CreateCandidateInput struct {
	Name       string        `json:"name" validate:"required,max=200"`
	Email      string        `json:"email" validate:"required,email"`
	Phone      string        `json:"phone" validate:"omitempty,valid_phone"`
	Position   string        `json:"position" validate:"required,max=200"`
	Experience int           `json:"experience" validate:"gte=0,lte=70"`
	Skills     []string      `json:"skills" validate:"max=100,dive,required,max=100"`
	Resume     *ResumeUpload `json:"-" validate:"-"`
}

type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context, params ListParams) ([]Candidate, int, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	CreateCandidate(ctx context.Context, input *CreateCandidateInput) (*Candidate, error)
}

// ResumeStorage stores uploaded resume files under a key
type ResumeStorage interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
}
