package usecase

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
)

// listSpec describes how a collection is filtered, searched and sorted.
type listSpec[T any] struct {
	status func(T) string
	// search returns the two text fields matched by ?search=
	search func(T) (string, string)
	// sortKeys maps a sort_by value to a comparator
	sortKeys map[string]func(a, b T) int
}

// NormalizeListParams applies defaults and bounds to page and limit.
func NormalizeListParams(p domain.ListParams) domain.ListParams {
	if p.Page < 1 {
		p.Page = domain.DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = domain.DefaultLimit
	}
	if p.Limit > domain.MaxLimit {
		p.Limit = domain.MaxLimit
	}
	p.Status = strings.TrimSpace(p.Status)
	p.Search = strings.TrimSpace(p.Search)
	p.SortBy = strings.TrimSpace(p.SortBy)
	p.SortOrder = strings.ToLower(strings.TrimSpace(p.SortOrder))
	return p
}

// Filter returns the filtered and sorted collection before paging.
func Filter[T any](items []T, p domain.ListParams, spec listSpec[T]) ([]T, error) {
	out := make([]T, 0, len(items))
	term := strings.ToLower(p.Search)
	for _, item := range items {
		if p.Status != "" && p.Status != domain.StatusAll && spec.status(item) != p.Status {
			continue
		}
		if term != "" {
			a, b := spec.search(item)
			if !strings.Contains(strings.ToLower(a), term) && !strings.Contains(strings.ToLower(b), term) {
				continue
			}
		}
		out = append(out, item)
	}

	if p.SortOrder != "" && p.SortOrder != domain.SortAsc && p.SortOrder != domain.SortDesc {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid sort_order %q: use asc or desc", p.SortOrder))
	}
	if p.SortBy == "" {
		return out, nil
	}
	less, ok := spec.sortKeys[p.SortBy]
	if !ok {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid sort_by %q: allowed values are %s", p.SortBy, strings.Join(sortFields(spec), ", ")))
	}
	if p.SortOrder == domain.SortDesc {
		slices.SortStableFunc(out, func(a, b T) int { return less(b, a) })
	} else {
		slices.SortStableFunc(out, less)
	}
	return out, nil
}

// Paginate filters items and returns the requested page window together
// with the size of the filtered collection. Pages past the end are empty.
func Paginate[T any](items []T, p domain.ListParams, spec listSpec[T]) ([]T, int, error) {
	p = NormalizeListParams(p)

	filtered, err := Filter(items, p, spec)
	if err != nil {
		return nil, 0, err
	}

	total := len(filtered)
	// compare page counts first so (page-1)*limit cannot overflow
	if p.Page-1 >= (total+p.Limit-1)/p.Limit {
		return []T{}, total, nil
	}
	offset := (p.Page - 1) * p.Limit
	end := min(offset+p.Limit, total)
	return filtered[offset:end], total, nil
}

func sortFields[T any](spec listSpec[T]) []string {
	keys := make([]string, 0, len(spec.sortKeys))
	for k := range spec.sortKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func byString[T any](field func(T) string) func(a, b T) int {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

func byTime[T any](field func(T) time.Time) func(a, b T) int {
	return func(a, b T) int { return field(a).Compare(field(b)) }
}

// byOptionalInt sorts missing values first.
func byOptionalInt[T any](field func(T) *int) func(a, b T) int {
	return func(a, b T) int {
		x, y := field(a), field(b)
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return 1
		}
		return cmp.Compare(*x, *y)
	}
}

func byInt[T any](field func(T) int) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(field(a), field(b)) }
}

var candidateList = listSpec[domain.Candidate]{
	status: func(c domain.Candidate) string { return string(c.Status) },
	search: func(c domain.Candidate) (string, string) { return c.Name, c.Position },
	sortKeys: map[string]func(a, b domain.Candidate) int{
		"name":             byString(func(c domain.Candidate) string { return c.Name }),
		"position":         byString(func(c domain.Candidate) string { return c.Position }),
		"experience":       byInt(func(c domain.Candidate) int { return c.Experience }),
		"created_at":       byTime(func(c domain.Candidate) time.Time { return c.CreatedAt }),
		"score":            byOptionalInt(func(c domain.Candidate) *int { return c.Score }),
		"match_percentage": byOptionalInt(func(c domain.Candidate) *int { return c.MatchPercentage }),
	},
}

var interviewList = listSpec[domain.Interview]{
	status: func(i domain.Interview) string { return string(i.Status) },
	search: func(i domain.Interview) (string, string) { return i.CandidateName, i.Position },
	sortKeys: map[string]func(a, b domain.Interview) int{
		"candidate_name": byString(func(i domain.Interview) string { return i.CandidateName }),
		"position":       byString(func(i domain.Interview) string { return i.Position }),
		"scheduled_at":   byTime(func(i domain.Interview) time.Time { return i.ScheduledAt }),
		"score":          byOptionalInt(func(i domain.Interview) *int { return i.Score }),
		"duration":       byOptionalInt(func(i domain.Interview) *int { return i.Duration }),
	},
}

var vacancyList = listSpec[domain.Vacancy]{
	status: func(v domain.Vacancy) string { return string(v.Status) },
	search: func(v domain.Vacancy) (string, string) { return v.Title, v.Department },
	sortKeys: map[string]func(a, b domain.Vacancy) int{
		"title":            byString(func(v domain.Vacancy) string { return v.Title }),
		"department":       byString(func(v domain.Vacancy) string { return v.Department }),
		"created_at":       byTime(func(v domain.Vacancy) time.Time { return v.CreatedAt }),
		"applicants_count": byInt(func(v domain.Vacancy) int { return v.ApplicantsCount }),
		"salary_min":       byOptionalInt(func(v domain.Vacancy) *int { return v.SalaryMin }),
		"salary_max":       byOptionalInt(func(v domain.Vacancy) *int { return v.SalaryMax }),
	},
}
