package domain

import (
	"context"
	"time"
)

type VacancyStatus string

const (
	VacancyStatusActive VacancyStatus = "active"
	VacancyStatusClosed VacancyStatus = "closed"
	VacancyStatusDraft  VacancyStatus = "draft"
)

// DefaultCurrency is applied when a vacancy is created without one
const DefaultCurrency = "RUB"

type Vacancy struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Department       string        `json:"department"`
	Location         string        `json:"location"`
	SalaryMin        *int          `json:"salary_min"`
	SalaryMax        *int          `json:"salary_max"`
	Currency         string        `json:"currency"`
	Requirements     []string      `json:"requirements"`
	Responsibilities []string      `json:"responsibilities"`
	Benefits         []string      `json:"benefits"`
	Status           VacancyStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	ApplicantsCount  int           `json:"applicants_count"`
}

type CreateVacancyInput struct {
	Title            string        `json:"title" validate:"required,max=200"`
	Department       string        `json:"department" validate:"required,max=200"`
	Location         string        `json:"location" validate:"required,max=200"`
	SalaryMin        *int          `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax        *int          `json:"salary_max" validate:"omitempty,gte=0"`
	Currency         string        `json:"currency" validate:"omitempty,len=3"`
	Requirements     []string      `json:"requirements" validate:"dive,required"`
	Responsibilities []string      `json:"responsibilities" validate:"dive,required"`
	Benefits         []string      `json:"benefits" validate:"dive,required"`
	Status           VacancyStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
}

type VacancyRepository interface {
	List(ctx context.Context) ([]Vacancy, error)
	GetByID(ctx context.Context, id string) (*Vacancy, error)
	Create(ctx context.Context, vacancy *Vacancy) error
	IncrementApplicants(ctx context.Context, id string) (int, error)
}

type VacancyUsecase interface {
	ListVacancies(ctx context.Context, params ListParams) ([]Vacancy, int, error)
	CreateVacancy(ctx context.Context, input *CreateVacancyInput) (*Vacancy, error)
}
