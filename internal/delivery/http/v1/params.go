package v1

import (
	"strconv"

	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// listParams reads the shared list query. Malformed page or limit values
// fall back to the defaults.
func listParams(c *gin.Context) domain.ListParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = domain.DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = domain.DefaultLimit
	}
	return domain.ListParams{
		Page:      page,
		Limit:     limit,
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
