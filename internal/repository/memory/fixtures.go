package memory

import (
	"time"

	"go-interview-backend/internal/domain"
)

// Fixtures is the seed dataset of the demo. Times are relative to the
// moment the fixtures were built.
type Fixtures struct {
	Candidates []domain.Candidate
	Interviews []domain.Interview
	Vacancies  []domain.Vacancy
	Reports    []domain.Report
	// Details holds analysed transcripts keyed by interview id
	Details map[string]domain.InterviewDetail
	// DefaultScript is replayed for interviews without their own transcript
	DefaultScript domain.InterviewScript
}

func ptr[T any](v T) *T {
	return &v
}

const day = 24 * time.Hour

// DemoTranscript is the scripted interview replayed by the live simulation
func DemoTranscript() []domain.TranscriptEntry {
	return []domain.TranscriptEntry{
		{ID: "1", Speaker: domain.SpeakerInterviewer, Text: "Добро пожаловать на интервью! Расскажите о себе и своем опыте.", Timestamp: 0, Confidence: 0.95},
		{ID: "2", Speaker: domain.SpeakerCandidate, Text: "Привет! Меня зовут Анна, я frontend разработчик с 3-летним опытом работы с React и TypeScript.", Timestamp: 5, Confidence: 0.92},
		{ID: "3", Speaker: domain.SpeakerInterviewer, Text: "Отлично! Какие технологии вы используете в работе?", Timestamp: 15, Confidence: 0.98},
		{ID: "4", Speaker: domain.SpeakerCandidate, Text: "В основном React, TypeScript, CSS модули. Также работаю с Node.js для бэкенда и имею опыт с Redux для управления состоянием.", Timestamp: 20, Confidence: 0.89},
		{ID: "5", Speaker: domain.SpeakerInterviewer, Text: "Расскажите о самом сложном проекте, над которым вы работали.", Timestamp: 35, Confidence: 0.96},
		{ID: "6", Speaker: domain.SpeakerCandidate, Text: "Это был проект для банка, где нужно было создать сложную форму с множественными валидациями и интеграцией с внешними API. Использовал React Hook Form и Zod для валидации.", Timestamp: 40, Confidence: 0.87},
	}
}

// DemoMetrics is the metrics bundle sent at the end of the simulation
func DemoMetrics() domain.MetricsBundle {
	return domain.MetricsBundle{
		"pauses_sec":          12,
		"avg_confidence":      0.91,
		"speaking_rate":       150,
		"sentiment_score":     0.8,
		"keywords_used":       []string{"React", "TypeScript", "JavaScript", "CSS", "Node.js", "Redux"},
		"technical_score":     85,
		"communication_score": 90,
		"overall_score":       87,
	}
}

// DefaultFixtures builds the demo dataset anchored at now.
func DefaultFixtures(now time.Time) Fixtures {
	interviews := []domain.Interview{
		{
			ID:            "1",
			CandidateID:   "1",
			CandidateName: "Анна Петрова",
			Position:      "Frontend Developer",
			Status:        domain.InterviewStatusCompleted,
			ScheduledAt:   now.Add(-5*day - 2*time.Hour),
			CompletedAt:   ptr(now.Add(-5 * day)),
			Duration:      ptr(5400),
			Score:         ptr(85),
			Notes:         ptr("Отличные технические навыки, хорошая коммуникация"),
		},
		{
			ID:            "2",
			CandidateID:   "3",
			CandidateName: "Мария Козлова",
			Position:      "UI/UX Designer",
			Status:        domain.InterviewStatusCompleted,
			ScheduledAt:   now.Add(-10*day - time.Hour),
			CompletedAt:   ptr(now.Add(-10 * day)),
			Duration:      ptr(3600),
			Score:         ptr(92),
			Notes:         ptr("Превосходное портфолио, креативный подход"),
		},
		{
			ID:            "3",
			CandidateID:   "4",
			CandidateName: "Алексей Волков",
			Position:      "DevOps Engineer",
			Status:        domain.InterviewStatusCompleted,
			ScheduledAt:   now.Add(-7*day - 3*time.Hour),
			CompletedAt:   ptr(now.Add(-7 * day)),
			Duration:      ptr(4500),
			Score:         ptr(65),
			Notes:         ptr("Ограниченный опыт с облачными технологиями"),
		},
		{
			ID:            "4",
			CandidateID:   "2",
			CandidateName: "Иван Сидоров",
			Position:      "Backend Developer",
			Status:        domain.InterviewStatusScheduled,
			ScheduledAt:   now.Add(2*day + 2*time.Hour),
		},
	}

	return Fixtures{
		Candidates: []domain.Candidate{
			{
				ID:              "1",
				Name:            "Анна Петрова",
				Email:           "anna.petrova@email.com",
				Phone:           ptr("+7 (999) 123-45-67"),
				Position:        "Frontend Developer",
				Experience:      3,
				Skills:          []string{"React", "TypeScript", "CSS", "JavaScript", "Node.js"},
				ResumeURL:       ptr("/api/resumes/anna_petrova.pdf"),
				Status:          domain.CandidateStatusInterviewed,
				CreatedAt:       now.Add(-5 * day),
				InterviewID:     ptr("1"),
				Score:           ptr(85),
				MatchPercentage: ptr(78),
			},
			{
				ID:              "2",
				Name:            "Иван Сидоров",
				Email:           "ivan.sidorov@email.com",
				Phone:           ptr("+7 (999) 234-56-78"),
				Position:        "Backend Developer",
				Experience:      5,
				Skills:          []string{"Python", "Django", "PostgreSQL", "Redis", "Docker"},
				ResumeURL:       ptr("/api/resumes/ivan_sidorov.pdf"),
				Status:          domain.CandidateStatusNew,
				CreatedAt:       now.Add(-3 * day),
				MatchPercentage: ptr(92),
			},
			{
				ID:              "3",
				Name:            "Мария Козлова",
				Email:           "maria.kozlov@email.com",
				Position:        "UI/UX Designer",
				Experience:      4,
				Skills:          []string{"Figma", "Sketch", "Adobe XD", "Prototyping", "User Research"},
				Status:          domain.CandidateStatusHired,
				CreatedAt:       now.Add(-10 * day),
				InterviewID:     ptr("2"),
				Score:           ptr(92),
				MatchPercentage: ptr(88),
			},
			{
				ID:              "4",
				Name:            "Алексей Волков",
				Email:           "alexey.volkov@email.com",
				Phone:           ptr("+7 (999) 345-67-89"),
				Position:        "DevOps Engineer",
				Experience:      6,
				Skills:          []string{"AWS", "Docker", "Kubernetes", "Terraform", "CI/CD"},
				Status:          domain.CandidateStatusRejected,
				CreatedAt:       now.Add(-7 * day),
				InterviewID:     ptr("3"),
				Score:           ptr(65),
				MatchPercentage: ptr(45),
			},
		},
		Interviews: interviews,
		Vacancies: []domain.Vacancy{
			{
				ID:               "1",
				Title:            "Frontend Developer",
				Department:       "Разработка",
				Location:         "Москва",
				SalaryMin:        ptr(120000),
				SalaryMax:        ptr(180000),
				Currency:         "RUB",
				Requirements:     []string{"React", "TypeScript", "3+ лет опыта", "Опыт с Redux"},
				Responsibilities: []string{"Разработка UI компонентов", "Оптимизация производительности", "Code review"},
				Benefits:         []string{"Медицинская страховка", "Гибкий график", "Удаленная работа"},
				Status:           domain.VacancyStatusActive,
				CreatedAt:        now.Add(-15 * day),
				ApplicantsCount:  15,
			},
			{
				ID:               "2",
				Title:            "Backend Developer",
				Department:       "Разработка",
				Location:         "Санкт-Петербург",
				SalaryMin:        ptr(100000),
				SalaryMax:        ptr(160000),
				Currency:         "RUB",
				Requirements:     []string{"Python", "Django", "PostgreSQL", "Опыт с API"},
				Responsibilities: []string{"API разработка", "Работа с базой данных", "Микросервисы"},
				Benefits:         []string{"Удаленная работа", "Обучение", "Конференции"},
				Status:           domain.VacancyStatusActive,
				CreatedAt:        now.Add(-12 * day),
				ApplicantsCount:  8,
			},
			{
				ID:               "3",
				Title:            "UI/UX Designer",
				Department:       "Дизайн",
				Location:         "Москва",
				SalaryMin:        ptr(80000),
				SalaryMax:        ptr(120000),
				Currency:         "RUB",
				Requirements:     []string{"Figma", "Sketch", "Опыт с мобильными приложениями"},
				Responsibilities: []string{"Создание макетов", "Прототипирование", "Исследования пользователей"},
				Benefits:         []string{"Творческая свобода", "Современные инструменты", "Команда дизайнеров"},
				Status:           domain.VacancyStatusClosed,
				CreatedAt:        now.Add(-20 * day),
				ApplicantsCount:  25,
			},
		},
		Reports: []domain.Report{
			{
				ID:          "1",
				CandidateID: "1",
				InterviewID: "1",
				GeneratedAt: now.Add(-5 * day),
				Summary:     "Кандидат показал отличные технические навыки в области React и TypeScript. Демонстрирует хорошие коммуникативные способности и понимание современных подходов к разработке. Рекомендуется к найму на позицию Frontend Developer.",
				Recommendations: []string{
					"Рекомендуется к найму на позицию Frontend Developer",
					"Подходит для работы в команде",
					"Может стать техническим лидером в будущем",
				},
				Strengths: []string{
					"Отличное знание React и TypeScript",
					"Хорошие коммуникативные навыки",
					"Понимание современных подходов к разработке",
					"Опыт работы с командой",
				},
				Weaknesses: []string{
					"Ограниченный опыт с тестированием",
					"Нужно больше практики с DevOps инструментами",
				},
				FinalScore: 85,
				Decision:   domain.DecisionHire,
			},
			{
				ID:          "2",
				CandidateID: "3",
				InterviewID: "2",
				GeneratedAt: now.Add(-10 * day),
				Summary:     "Кандидат продемонстрировал превосходные дизайнерские навыки и креативный подход. Портфолио впечатляет разнообразием проектов. Отлично подходит для позиции UI/UX Designer.",
				Recommendations: []string{
					"Рекомендуется к найму на позицию UI/UX Designer",
					"Может возглавить дизайн-команду",
					"Отличный культурный фит",
				},
				Strengths: []string{
					"Превосходное портфолио",
					"Креативный подход",
					"Опыт с различными платформами",
					"Хорошие навыки презентации",
				},
				Weaknesses: []string{
					"Ограниченный опыт с анимацией",
					"Нужно больше практики с пользовательскими исследованиями",
				},
				FinalScore: 92,
				Decision:   domain.DecisionHire,
			},
		},
		Details: map[string]domain.InterviewDetail{
			"1": {
				Interview:  interviews[0],
				Transcript: DemoTranscript(),
				Metrics:    DemoMetrics(),
			},
		},
		DefaultScript: domain.InterviewScript{
			Transcript: DemoTranscript(),
			Metrics:    DemoMetrics(),
		},
	}
}
