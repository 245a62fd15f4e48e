package memory

import (
	"context"

	"go-interview-backend/internal/domain"
)

type interviewRepository struct {
	store *Store
}

func NewInterviewRepository(store *Store) domain.InterviewRepository {
	return &interviewRepository{store: store}
}

func (r *interviewRepository) List(ctx context.Context) ([]domain.Interview, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Interview, 0, len(r.store.interviews))
	for _, i := range r.store.interviews {
		out = append(out, cloneInterview(i))
	}
	return out, nil
}

func (r *interviewRepository) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, i := range r.store.interviews {
		if i.ID == id {
			found := cloneInterview(i)
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *interviewRepository) GetDetail(ctx context.Context, id string) (*domain.InterviewDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.details[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	found := cloneDetail(d)
	return &found, nil
}

// Script returns the interview's own transcript when it has one and the
// demo script otherwise, so any interview id can be streamed.
func (r *interviewRepository) Script(ctx context.Context, id string) (*domain.InterviewScript, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if d, ok := r.store.details[id]; ok && len(d.Transcript) > 0 {
		script := cloneScript(domain.InterviewScript{Transcript: d.Transcript, Metrics: d.Metrics})
		if script.Metrics == nil {
			script.Metrics = cloneMetrics(r.store.defaultScript.Metrics)
		}
		return &script, nil
	}
	script := cloneScript(r.store.defaultScript)
	return &script, nil
}
