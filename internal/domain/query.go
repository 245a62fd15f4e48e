package domain

import "errors"

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// StatusAll disables the status filter
const StatusAll = "all"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams are the list query parameters shared by all collections
type ListParams struct {
	Page      int
	Limit     int
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}
