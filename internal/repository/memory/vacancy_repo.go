package memory

import (
	"context"
	"fmt"

	"go-interview-backend/internal/domain"
)

type vacancyRepository struct {
	store *Store
}

func NewVacancyRepository(store *Store) domain.VacancyRepository {
	return &vacancyRepository{store: store}
}

func (r *vacancyRepository) List(ctx context.Context) ([]domain.Vacancy, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Vacancy, 0, len(r.store.vacancies))
	for _, v := range r.store.vacancies {
		out = append(out, cloneVacancy(v))
	}
	return out, nil
}

func (r *vacancyRepository) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, v := range r.store.vacancies {
		if v.ID == id {
			found := cloneVacancy(v)
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *vacancyRepository) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, v := range r.store.vacancies {
		if v.ID == vacancy.ID {
			return fmt.Errorf("vacancy %q already exists", vacancy.ID)
		}
	}
	r.store.vacancies = append(r.store.vacancies, cloneVacancy(*vacancy))
	return nil
}

// IncrementApplicants bumps the applicant counter and returns the new value
func (r *vacancyRepository) IncrementApplicants(ctx context.Context, id string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.vacancies {
		if r.store.vacancies[i].ID == id {
			r.store.vacancies[i].ApplicantsCount++
			return r.store.vacancies[i].ApplicantsCount, nil
		}
	}
	return 0, domain.ErrNotFound
}
