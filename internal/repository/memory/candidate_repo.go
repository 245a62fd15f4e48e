package memory

import (
	"context"
	"fmt"

	"go-interview-backend/internal/domain"
)

type candidateRepository struct {
	store *Store
}

func NewCandidateRepository(store *Store) domain.CandidateRepository {
	return &candidateRepository{store: store}
}

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Candidate, 0, len(r.store.candidates))
	for _, c := range r.store.candidates {
		out = append(out, cloneCandidate(c))
	}
	return out, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.candidates {
		if c.ID == id {
			found := cloneCandidate(c)
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.candidates {
		if c.ID == candidate.ID {
			return fmt.Errorf("candidate %q already exists", candidate.ID)
		}
	}
	if candidate.InterviewID != nil && !r.store.hasInterviewLocked(*candidate.InterviewID) {
		return fmt.Errorf("candidate %q references unknown interview %q", candidate.ID, *candidate.InterviewID)
	}

	r.store.candidates = append(r.store.candidates, cloneCandidate(*candidate))
	return nil
}

func (s *Store) hasInterviewLocked(id string) bool {
	for _, i := range s.interviews {
		if i.ID == id {
			return true
		}
	}
	return false
}
