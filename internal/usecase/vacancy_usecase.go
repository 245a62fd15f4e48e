package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type vacancyUsecase struct {
	repo     domain.VacancyRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewVacancyUsecase(repo domain.VacancyRepository, validate *validator.Validate) domain.VacancyUsecase {
	return &vacancyUsecase{
		repo:     repo,
		validate: validate,
		now:      time.Now,
	}
}

func (u *vacancyUsecase) ListVacancies(ctx context.Context, params domain.ListParams) ([]domain.Vacancy, int, error) {
	vacancies, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return Paginate(vacancies, params, vacancyList)
}

func (u *vacancyUsecase) CreateVacancy(ctx context.Context, input *domain.CreateVacancyInput) (*domain.Vacancy, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Department = strings.TrimSpace(input.Department)
	input.Location = strings.TrimSpace(input.Location)
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	// Business Validation
	if input.SalaryMin != nil && input.SalaryMax != nil && *input.SalaryMin > *input.SalaryMax {
		return nil, apperror.BadRequest("salary_min cannot be greater than salary_max")
	}

	vacancy := &domain.Vacancy{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Department:       input.Department,
		Location:         input.Location,
		SalaryMin:        input.SalaryMin,
		SalaryMax:        input.SalaryMax,
		Currency:         input.Currency,
		Requirements:     nonNil(input.Requirements),
		Responsibilities: nonNil(input.Responsibilities),
		Benefits:         nonNil(input.Benefits),
		Status:           input.Status,
		CreatedAt:        u.now(),
		ApplicantsCount:  0,
	}
	if vacancy.Currency == "" {
		vacancy.Currency = domain.DefaultCurrency
	}
	if vacancy.Status == "" {
		vacancy.Status = domain.VacancyStatusActive
	}

	if err := u.repo.Create(ctx, vacancy); err != nil {
		return nil, fmt.Errorf("failed to create vacancy: %w", err)
	}
	return vacancy, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
