package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
)

type reportUsecase struct {
	repo     domain.ReportRepository
	renderer domain.ReportRenderer
}

func NewReportUsecase(repo domain.ReportRepository, renderer domain.ReportRenderer) domain.ReportUsecase {
	return &reportUsecase{
		repo:     repo,
		renderer: renderer,
	}
}

func (u *reportUsecase) GetReport(ctx context.Context, candidateID string) (*domain.Report, error) {
	report, err := u.repo.GetByCandidateID(ctx, candidateID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Report not found")
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// RenderReportPDF always yields a document; candidates without a report
// get the placeholder.
func (u *reportUsecase) RenderReportPDF(ctx context.Context, candidateID string) ([]byte, error) {
	report, err := u.repo.GetByCandidateID(ctx, candidateID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	doc, err := u.renderer.RenderPDF(ctx, candidateID, report)
	if err != nil {
		return nil, fmt.Errorf("failed to render report for candidate %s: %w", candidateID, err)
	}
	return doc, nil
}
