package memory

import (
	"fmt"
	"slices"
	"sync"

	"go-interview-backend/internal/domain"
)

// Store is the process-lifetime fixture store. Records can only be
// appended or have their counters incremented; reads return copies.
type Store struct {
	mu            sync.RWMutex
	candidates    []domain.Candidate
	interviews    []domain.Interview
	vacancies     []domain.Vacancy
	reports       []domain.Report
	details       map[string]domain.InterviewDetail
	defaultScript domain.InterviewScript
}

// NewStore copies the fixtures into a store after checking references.
func NewStore(fx Fixtures) (*Store, error) {
	s := &Store{
		details:       make(map[string]domain.InterviewDetail, len(fx.Details)),
		defaultScript: cloneScript(fx.DefaultScript),
	}
	for _, c := range fx.Candidates {
		s.candidates = append(s.candidates, cloneCandidate(c))
	}
	for _, i := range fx.Interviews {
		s.interviews = append(s.interviews, cloneInterview(i))
	}
	for _, v := range fx.Vacancies {
		s.vacancies = append(s.vacancies, cloneVacancy(v))
	}
	for _, r := range fx.Reports {
		s.reports = append(s.reports, cloneReport(r))
	}
	for id, d := range fx.Details {
		s.details[id] = cloneDetail(d)
	}

	if err := s.checkReferences(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) checkReferences() error {
	interviews := make(map[string]bool, len(s.interviews))
	for _, i := range s.interviews {
		if interviews[i.ID] {
			return fmt.Errorf("fixtures: duplicate interview id %q", i.ID)
		}
		interviews[i.ID] = true
	}
	candidates := make(map[string]bool, len(s.candidates))
	for _, c := range s.candidates {
		if candidates[c.ID] {
			return fmt.Errorf("fixtures: duplicate candidate id %q", c.ID)
		}
		candidates[c.ID] = true
		if c.InterviewID != nil && !interviews[*c.InterviewID] {
			return fmt.Errorf("fixtures: candidate %q references unknown interview %q", c.ID, *c.InterviewID)
		}
	}
	for _, i := range s.interviews {
		if !candidates[i.CandidateID] {
			return fmt.Errorf("fixtures: interview %q references unknown candidate %q", i.ID, i.CandidateID)
		}
	}
	for _, r := range s.reports {
		if !candidates[r.CandidateID] || !interviews[r.InterviewID] {
			return fmt.Errorf("fixtures: report %q has dangling references", r.ID)
		}
	}
	for id := range s.details {
		if !interviews[id] {
			return fmt.Errorf("fixtures: detail for unknown interview %q", id)
		}
	}
	return nil
}

// Counts returns the number of records per collection.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"candidates": len(s.candidates),
		"interviews": len(s.interviews),
		"vacancies":  len(s.vacancies),
		"reports":    len(s.reports),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCandidate(c domain.Candidate) domain.Candidate {
	c.Phone = clonePtr(c.Phone)
	c.ResumeURL = clonePtr(c.ResumeURL)
	c.InterviewID = clonePtr(c.InterviewID)
	c.Score = clonePtr(c.Score)
	c.MatchPercentage = clonePtr(c.MatchPercentage)
	c.Skills = slices.Clone(c.Skills)
	return c
}

func cloneInterview(i domain.Interview) domain.Interview {
	i.CompletedAt = clonePtr(i.CompletedAt)
	i.Duration = clonePtr(i.Duration)
	i.Score = clonePtr(i.Score)
	i.Notes = clonePtr(i.Notes)
	return i
}

func cloneVacancy(v domain.Vacancy) domain.Vacancy {
	v.SalaryMin = clonePtr(v.SalaryMin)
	v.SalaryMax = clonePtr(v.SalaryMax)
	v.Requirements = slices.Clone(v.Requirements)
	v.Responsibilities = slices.Clone(v.Responsibilities)
	v.Benefits = slices.Clone(v.Benefits)
	return v
}

func cloneReport(r domain.Report) domain.Report {
	r.Recommendations = slices.Clone(r.Recommendations)
	r.Strengths = slices.Clone(r.Strengths)
	r.Weaknesses = slices.Clone(r.Weaknesses)
	return r
}

func cloneMetrics(m domain.MetricsBundle) domain.MetricsBundle {
	if m == nil {
		return nil
	}
	out := make(domain.MetricsBundle, len(m))
	for k, v := range m {
		if list, ok := v.([]string); ok {
			v = slices.Clone(list)
		}
		out[k] = v
	}
	return out
}

func cloneDetail(d domain.InterviewDetail) domain.InterviewDetail {
	d.Interview = cloneInterview(d.Interview)
	d.Transcript = slices.Clone(d.Transcript)
	d.Metrics = cloneMetrics(d.Metrics)
	return d
}

func cloneScript(s domain.InterviewScript) domain.InterviewScript {
	s.Transcript = slices.Clone(s.Transcript)
	s.Metrics = cloneMetrics(s.Metrics)
	return s
}
