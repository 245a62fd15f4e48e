package usecase_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/repository/memory"
	"go-interview-backend/internal/usecase"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/email"
	"go-interview-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock collaborators
type MockResumeStorage struct {
	mock.Mock
}

func (m *MockResumeStorage) Save(ctx context.Context, key, contentType string, data []byte) error {
	return m.Called(ctx, key, contentType, data).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockMailer) SendNotification(data email.NotificationEmailData) error {
	return m.Called(data).Error(0)
}

type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) RenderPDF(ctx context.Context, candidateID string, report *domain.Report) ([]byte, error) {
	args := m.Called(ctx, candidateID, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type fixture struct {
	store      *memory.Store
	candidates domain.CandidateRepository
	interviews domain.InterviewRepository
	vacancies  domain.VacancyRepository
	reports    domain.ReportRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := memory.NewStore(memory.DefaultFixtures(time.Now()))
	require.NoError(t, err)
	return fixture{
		store:      store,
		candidates: memory.NewCandidateRepository(store),
		interviews: memory.NewInterviewRepository(store),
		vacancies:  memory.NewVacancyRepository(store),
		reports:    memory.NewReportRepository(store),
	}
}

func assertAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func candidateIDs(cs []domain.Candidate) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func TestListCandidates(t *testing.T) {
	fx := newFixture(t)
	uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, new(MockResumeStorage), validation.New())
	ctx := context.Background()

	t.Run("Defaults return everything in insertion order", func(t *testing.T) {
		items, total, err := uc.ListCandidates(ctx, domain.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Equal(t, []string{"1", "2", "3", "4"}, candidateIDs(items))
	})

	t.Run("Status all is the same as no filter", func(t *testing.T) {
		all, totalAll, err := uc.ListCandidates(ctx, domain.ListParams{Status: domain.StatusAll})
		require.NoError(t, err)
		none, totalNone, err := uc.ListCandidates(ctx, domain.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, totalNone, totalAll)
		assert.Equal(t, candidateIDs(none), candidateIDs(all))
	})

	t.Run("Status filter", func(t *testing.T) {
		items, total, err := uc.ListCandidates(ctx, domain.ListParams{Status: "hired"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, []string{"3"}, candidateIDs(items))
	})

	t.Run("Search is case-insensitive for Cyrillic", func(t *testing.T) {
		items, total, err := uc.ListCandidates(ctx, domain.ListParams{Search: "петров"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Анна Петрова", items[0].Name)
	})

	t.Run("Search matches the second field", func(t *testing.T) {
		items, _, err := uc.ListCandidates(ctx, domain.ListParams{Search: "DEVELOPER"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, candidateIDs(items))
	})

	t.Run("Pages concatenate to the filtered list", func(t *testing.T) {
		full, _, err := uc.ListCandidates(ctx, domain.ListParams{Limit: 100})
		require.NoError(t, err)

		var joined []domain.Candidate
		for page := 1; page <= 3; page++ {
			items, total, err := uc.ListCandidates(ctx, domain.ListParams{Page: page, Limit: 3})
			require.NoError(t, err)
			assert.Equal(t, 4, total)
			assert.LessOrEqual(t, len(items), 3)
			joined = append(joined, items...)
		}
		assert.Equal(t, candidateIDs(full), candidateIDs(joined))
	})

	t.Run("Out of range page is empty, not an error", func(t *testing.T) {
		items, total, err := uc.ListCandidates(ctx, domain.ListParams{Page: 99, Limit: 10})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.Equal(t, 4, total)
	})

	t.Run("Huge page numbers do not overflow the offset", func(t *testing.T) {
		for _, params := range []domain.ListParams{
			{Page: math.MaxInt, Limit: 10},
			{Page: math.MaxInt/100 + 1, Limit: 100},
			{Page: math.MaxInt, Limit: 1},
		} {
			items, total, err := uc.ListCandidates(ctx, params)
			require.NoError(t, err, params)
			assert.NotNil(t, items)
			assert.Empty(t, items)
			assert.Equal(t, 4, total)
		}
	})

	t.Run("Sort by score descending puts missing scores last", func(t *testing.T) {
		items, _, err := uc.ListCandidates(ctx, domain.ListParams{SortBy: "score", SortOrder: "desc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "1", "4", "2"}, candidateIDs(items))
	})

	t.Run("Unknown sort field is rejected", func(t *testing.T) {
		_, _, err := uc.ListCandidates(ctx, domain.ListParams{SortBy: "password"})
		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "sort_by")
	})

	t.Run("Unknown sort order is rejected", func(t *testing.T) {
		_, _, err := uc.ListCandidates(ctx, domain.ListParams{SortBy: "name", SortOrder: "sideways"})
		assertAppError(t, err, http.StatusBadRequest)
	})
}

func TestNormalizeListParams(t *testing.T) {
	p := usecase.NormalizeListParams(domain.ListParams{Page: -3, Limit: 5000, SortOrder: " DESC "})
	assert.Equal(t, domain.DefaultPage, p.Page)
	assert.Equal(t, domain.MaxLimit, p.Limit)
	assert.Equal(t, domain.SortDesc, p.SortOrder)

	p = usecase.NormalizeListParams(domain.ListParams{})
	assert.Equal(t, domain.DefaultPage, p.Page)
	assert.Equal(t, domain.DefaultLimit, p.Limit)
}

func TestCreateCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies defaults and becomes visible in the list", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, new(MockResumeStorage), validation.New())

		created, err := uc.CreateCandidate(ctx, &domain.CreateCandidateInput{
			Name:       "  Пётр Смирнов ",
			Email:      "petr@example.com",
			Position:   "Data Engineer",
			Experience: 2,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Пётр Смирнов", created.Name)
		assert.Equal(t, domain.CandidateStatusNew, created.Status)
		assert.NotNil(t, created.Skills)
		assert.Nil(t, created.Phone)
		assert.Nil(t, created.ResumeURL)
		assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

		items, total, err := uc.ListCandidates(ctx, domain.ListParams{Status: "new"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Contains(t, candidateIDs(items), created.ID)

		got, err := uc.GetCandidate(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, got.Email)
	})

	t.Run("Identifiers are unique", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, new(MockResumeStorage), validation.New())
		input := func() *domain.CreateCandidateInput {
			return &domain.CreateCandidateInput{Name: "A", Email: "a@example.com", Position: "QA"}
		}
		a, err := uc.CreateCandidate(ctx, input())
		require.NoError(t, err)
		b, err := uc.CreateCandidate(ctx, input())
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Counts the applicant on the matching active vacancy", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, new(MockResumeStorage), validation.New())

		_, err := uc.CreateCandidate(ctx, &domain.CreateCandidateInput{Name: "B", Email: "b@example.com", Position: "backend developer"})
		require.NoError(t, err)
		v, err := fx.vacancies.GetByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, 9, v.ApplicantsCount)

		// closed vacancies are not counted
		_, err = uc.CreateCandidate(ctx, &domain.CreateCandidateInput{Name: "C", Email: "c@example.com", Position: "UI/UX Designer"})
		require.NoError(t, err)
		v, err = fx.vacancies.GetByID(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, 25, v.ApplicantsCount)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, new(MockResumeStorage), validation.New())

		_, err := uc.CreateCandidate(ctx, &domain.CreateCandidateInput{Name: "", Email: "not-an-email", Position: "QA"})
		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "name: is required")
		assert.Contains(t, appErr.Message, "email: must be a valid email address")

		_, total, err := uc.ListCandidates(ctx, domain.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
	})

	t.Run("Stores a valid resume", func(t *testing.T) {
		fx := newFixture(t)
		storage := new(MockResumeStorage)
		uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, storage, validation.New())
		data := []byte("%PDF-1.4\n%test resume\n")
		storage.On("Save", mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > len("resumes/") && key[:len("resumes/")] == "resumes/"
		}), "application/pdf", data).Return(nil).Once()

		created, err := uc.CreateCandidate(ctx, &domain.CreateCandidateInput{
			Name: "D", Email: "d@example.com", Position: "QA",
			Resume: &domain.ResumeUpload{Filename: "cv.PDF", Data: data},
		})
		require.NoError(t, err)
		require.NotNil(t, created.ResumeURL)
		assert.Equal(t, "/api/resumes/"+created.ID+".pdf", *created.ResumeURL)
		storage.AssertExpectations(t)
	})

	t.Run("Rejects a resume with a spoofed extension", func(t *testing.T) {
		fx := newFixture(t)
		storage := new(MockResumeStorage)
		uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, storage, validation.New())

		_, err := uc.CreateCandidate(ctx, &domain.CreateCandidateInput{
			Name: "E", Email: "e@example.com", Position: "QA",
			Resume: &domain.ResumeUpload{Filename: "cv.pdf", Data: []byte("MZ\x90\x00 not a pdf")},
		})
		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "Invalid resume file")
		storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage failure does not create the candidate", func(t *testing.T) {
		fx := newFixture(t)
		storage := new(MockResumeStorage)
		uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, storage, validation.New())
		storage.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket gone"))

		_, err := uc.CreateCandidate(ctx, &domain.CreateCandidateInput{
			Name: "F", Email: "f@example.com", Position: "QA",
			Resume: &domain.ResumeUpload{Filename: "cv.txt", Data: []byte("plain text resume")},
		})
		assertAppError(t, err, http.StatusBadGateway)

		_, total, err := uc.ListCandidates(ctx, domain.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
	})
}

func TestGetCandidateNotFound(t *testing.T) {
	fx := newFixture(t)
	uc := usecase.NewCandidateUsecase(fx.candidates, fx.vacancies, new(MockResumeStorage), validation.New())

	_, err := uc.GetCandidate(context.Background(), "999")
	appErr := assertAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Candidate not found", appErr.Message)
}

func TestInterviewUsecase(t *testing.T) {
	fx := newFixture(t)
	uc := usecase.NewInterviewUsecase(fx.interviews)
	ctx := context.Background()

	t.Run("Detail carries transcript and metrics", func(t *testing.T) {
		detail, err := uc.GetInterview(ctx, "1")
		require.NoError(t, err)
		assert.True(t, detail.HasAnalysis())
		assert.Len(t, detail.Transcript, 6)
		assert.NotEmpty(t, detail.Metrics)
	})

	t.Run("Plain interview without analysis", func(t *testing.T) {
		detail, err := uc.GetInterview(ctx, "4")
		require.NoError(t, err)
		assert.False(t, detail.HasAnalysis())
		assert.Equal(t, "Иван Сидоров", detail.CandidateName)
	})

	t.Run("Unknown interview", func(t *testing.T) {
		_, err := uc.GetInterview(ctx, "999")
		appErr := assertAppError(t, err, http.StatusNotFound)
		assert.Equal(t, "Interview not found", appErr.Message)
	})

	t.Run("List filters by status", func(t *testing.T) {
		items, total, err := uc.ListInterviews(ctx, domain.ListParams{Status: "scheduled"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "4", items[0].ID)
	})
}

func TestVacancyUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Create applies defaults", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewVacancyUsecase(fx.vacancies, validation.New())

		created, err := uc.CreateVacancy(ctx, &domain.CreateVacancyInput{
			Title:      "Go Developer",
			Department: "Разработка",
			Location:   "Казань",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.DefaultCurrency, created.Currency)
		assert.Equal(t, domain.VacancyStatusActive, created.Status)
		assert.Equal(t, 0, created.ApplicantsCount)
		assert.NotNil(t, created.Requirements)
		assert.NotNil(t, created.Benefits)

		items, total, err := uc.ListVacancies(ctx, domain.ListParams{Search: "go dev"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, created.ID, items[0].ID)
	})

	t.Run("Rejects an inverted salary band", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewVacancyUsecase(fx.vacancies, validation.New())
		lo, hi := 200000, 100000

		_, err := uc.CreateVacancy(ctx, &domain.CreateVacancyInput{
			Title: "X", Department: "Y", Location: "Z", SalaryMin: &lo, SalaryMax: &hi,
		})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Rejects an unknown status", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewVacancyUsecase(fx.vacancies, validation.New())

		_, err := uc.CreateVacancy(ctx, &domain.CreateVacancyInput{
			Title: "X", Department: "Y", Location: "Z", Status: "archived",
		})
		appErr := assertAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "status: must be one of: active, closed, draft")
	})

	t.Run("Sort by applicants", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewVacancyUsecase(fx.vacancies, validation.New())

		items, _, err := uc.ListVacancies(ctx, domain.ListParams{SortBy: "applicants_count"})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []string{"2", "1", "3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	})
}

func TestReportUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Get existing and missing reports", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewReportUsecase(fx.reports, new(MockReportRenderer))

		report, err := uc.GetReport(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "1", report.CandidateID)

		_, err = uc.GetReport(ctx, "2")
		appErr := assertAppError(t, err, http.StatusNotFound)
		assert.Equal(t, "Report not found", appErr.Message)
	})

	t.Run("PDF renders with and without a report", func(t *testing.T) {
		fx := newFixture(t)
		renderer := new(MockReportRenderer)
		uc := usecase.NewReportUsecase(fx.reports, renderer)

		renderer.On("RenderPDF", mock.Anything, "1", mock.MatchedBy(func(r *domain.Report) bool { return r != nil })).
			Return([]byte("%PDF-report"), nil).Once()
		renderer.On("RenderPDF", mock.Anything, "42", (*domain.Report)(nil)).
			Return([]byte("%PDF-placeholder"), nil).Once()

		doc, err := uc.RenderReportPDF(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-report"), doc)

		doc, err = uc.RenderReportPDF(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-placeholder"), doc)
		renderer.AssertExpectations(t)
	})
}

func TestNotificationUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Acknowledges without SMTP", func(t *testing.T) {
		fx := newFixture(t)
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(false)
		uc := usecase.NewNotificationUsecase(fx.candidates, mailer, validation.New())

		receipt, err := uc.SendNotification(ctx, &domain.NotificationRequest{CandidateID: "1", Subject: "Приглашение", Body: "Ждём вас"})
		require.NoError(t, err)
		assert.True(t, receipt.Sent)
		assert.NotEmpty(t, receipt.NotificationID)
		mailer.AssertNotCalled(t, "SendNotification", mock.Anything)
	})

	t.Run("Delivers to the candidate address", func(t *testing.T) {
		fx := newFixture(t)
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendNotification", mock.MatchedBy(func(d email.NotificationEmailData) bool {
			return d.CandidateEmail == "ivan.sidorov@email.com" && d.Subject == "Оффер"
		})).Return(nil).Once()
		uc := usecase.NewNotificationUsecase(fx.candidates, mailer, validation.New())

		receipt, err := uc.SendNotification(ctx, &domain.NotificationRequest{CandidateID: "2", Subject: " Оффер ", Body: "Поздравляем"})
		require.NoError(t, err)
		assert.True(t, receipt.Sent)
		mailer.AssertExpectations(t)
	})

	t.Run("Delivery failure", func(t *testing.T) {
		fx := newFixture(t)
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendNotification", mock.Anything).Return(errors.New("smtp down"))
		uc := usecase.NewNotificationUsecase(fx.candidates, mailer, validation.New())

		_, err := uc.SendNotification(ctx, &domain.NotificationRequest{CandidateID: "2", Subject: "S", Body: "B"})
		assertAppError(t, err, http.StatusBadGateway)
	})

	t.Run("Unknown candidate", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewNotificationUsecase(fx.candidates, new(MockMailer), validation.New())

		_, err := uc.SendNotification(ctx, &domain.NotificationRequest{CandidateID: "999", Subject: "S", Body: "B"})
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("Missing subject", func(t *testing.T) {
		fx := newFixture(t)
		uc := usecase.NewNotificationUsecase(fx.candidates, new(MockMailer), validation.New())

		_, err := uc.SendNotification(ctx, &domain.NotificationRequest{CandidateID: "1", Body: "B"})
		assertAppError(t, err, http.StatusBadRequest)
	})
}

type fakeSessions int

func (f fakeSessions) Buckets() int { return int(f) }

func TestHealthUsecase(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	status := usecase.NewHealthUsecase(fx.store, fakeSessions(2), nil).Check(ctx)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, 4, status.Records["candidates"])
	assert.Equal(t, 2, status.LiveInterviews)
	assert.Equal(t, "disabled", status.Dependencies["redis"])

	failing := func(context.Context) error { return errors.New("refused") }
	status = usecase.NewHealthUsecase(fx.store, nil, failing).Check(ctx)
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unavailable", status.Dependencies["redis"])
}
