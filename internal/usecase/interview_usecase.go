package usecase

import (
	"context"
	"errors"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
)

type interviewUsecase struct {
	repo domain.InterviewRepository
}

func NewInterviewUsecase(repo domain.InterviewRepository) domain.InterviewUsecase {
	return &interviewUsecase{repo: repo}
}

func (u *interviewUsecase) ListInterviews(ctx context.Context, params domain.ListParams) ([]domain.Interview, int, error) {
	interviews, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return Paginate(interviews, params, interviewList)
}

// GetInterview prefers the analysed detail and falls back to the plain
// interview record.
func (u *interviewUsecase) GetInterview(ctx context.Context, id string) (*domain.InterviewDetail, error) {
	detail, err := u.repo.GetDetail(ctx, id)
	if err == nil {
		return detail, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	interview, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Interview not found")
	}
	if err != nil {
		return nil, err
	}
	return &domain.InterviewDetail{Interview: *interview}, nil
}
