package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"
	"go-interview-backend/pkg/upload"
	"go-interview-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo        domain.CandidateRepository
	vacancyRepo domain.VacancyRepository
	resumes     domain.ResumeStorage
	validate    *validator.Validate
	now         func() time.Time
}

func NewCandidateUsecase(repo domain.CandidateRepository, vacancyRepo domain.VacancyRepository, resumes domain.ResumeStorage, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:        repo,
		vacancyRepo: vacancyRepo,
		resumes:     resumes,
		validate:    validate,
		now:         time.Now,
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, params domain.ListParams) ([]domain.Candidate, int, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return Paginate(candidates, params, candidateList)
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Candidate not found")
	}
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, input *domain.CreateCandidateInput) (*domain.Candidate, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Position = strings.TrimSpace(input.Position)

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	candidate := &domain.Candidate{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Position:   input.Position,
		Experience: input.Experience,
		Skills:     input.Skills,
		Status:     domain.CandidateStatusNew,
		CreatedAt:  u.now(),
	}
	if candidate.Skills == nil {
		candidate.Skills = []string{}
	}
	if input.Phone != "" {
		candidate.Phone = &input.Phone
	}

	if input.Resume != nil {
		url, err := u.storeResume(ctx, candidate.ID, input.Resume)
		if err != nil {
			return nil, err
		}
		candidate.ResumeURL = &url
	}

	if err := u.repo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	u.countApplicant(ctx, candidate)
	return candidate, nil
}

// storeResume validates the upload and saves it under resumes/{id}{ext}.
func (u *candidateUsecase) storeResume(ctx context.Context, candidateID string, resume *domain.ResumeUpload) (string, error) {
	result := upload.ValidateResume(resume.Filename, resume.Data)
	if !result.Valid {
		return "", apperror.BadRequest("Invalid resume file: " + result.Error)
	}

	name := candidateID + result.Extension
	if err := u.resumes.Save(ctx, "resumes/"+name, result.ContentType(), resume.Data); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return "", appErr
		}
		return "", apperror.New(http.StatusBadGateway, "Failed to store resume", err)
	}
	return "/api/resumes/" + name, nil
}

// countApplicant bumps applicants_count of the active vacancy whose title
// matches the candidate's position. Failures only get logged.
func (u *candidateUsecase) countApplicant(ctx context.Context, candidate *domain.Candidate) {
	if u.vacancyRepo == nil {
		return
	}
	vacancies, err := u.vacancyRepo.List(ctx)
	if err != nil {
		logger.Log.Warn("Failed to list vacancies for applicant count", "error", err)
		return
	}
	for _, v := range vacancies {
		if v.Status != domain.VacancyStatusActive || !strings.EqualFold(v.Title, candidate.Position) {
			continue
		}
		count, err := u.vacancyRepo.IncrementApplicants(ctx, v.ID)
		if err != nil {
			logger.Log.Warn("Failed to increment applicants", "vacancy_id", v.ID, "error", err)
			return
		}
		logger.Log.Debug("Applicant counted",
			slog.String("vacancy_id", v.ID),
			slog.String("candidate_id", candidate.ID),
			slog.Int("applicants_count", count))
		return
	}
}
