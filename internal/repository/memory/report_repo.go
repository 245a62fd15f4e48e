package memory

import (
	"context"

	"go-interview-backend/internal/domain"
)

type reportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) domain.ReportRepository {
	return &reportRepository{store: store}
}

func (r *reportRepository) GetByCandidateID(ctx context.Context, candidateID string) (*domain.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rep := range r.store.reports {
		if rep.CandidateID == candidateID {
			found := cloneReport(rep)
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
