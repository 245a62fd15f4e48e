package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(r *gin.RouterGroup, vacancyUC domain.VacancyUsecase, writeLimit gin.HandlerFunc) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := r.Group("/vacancies")
	{
		vacancies.GET("", handler.List)
		vacancies.POST("", writeLimit, handler.Create)
	}
}

// ListVacancies godoc
// @Summary      List vacancies
// @Tags         vacancies
// @Produce      json
// @Param        page        query     int     false  "Page number"  default(1)
// @Param        limit       query     int     false  "Page size"    default(10)
// @Param        status      query     string  false  "active, closed, draft or all"
// @Param        search      query     string  false  "Substring of title or department"
// @Param        sort_by     query     string  false  "title, department, created_at, applicants_count, salary_min, salary_max"
// @Param        sort_order  query     string  false  "asc or desc"
// @Success      200         {object}  response.Response{data=[]domain.Vacancy}
// @Failure      400         {object}  response.Response
// @Router       /vacancies [get]
func (h *VacancyHandler) List(c *gin.Context) {
	items, total, err := h.vacancyUC.ListVacancies(c, listParams(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, items, total)
}

// CreateVacancy godoc
// @Summary      Create vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        vacancy  body      domain.CreateVacancyInput  true  "Vacancy JSON"
// @Success      201      {object}  response.Response{data=domain.Vacancy}
// @Failure      400      {object}  response.Response
// @Router       /vacancies [post]
func (h *VacancyHandler) Create(c *gin.Context) {
	var input domain.CreateVacancyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	vacancy, err := h.vacancyUC.CreateVacancy(c, &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy created", vacancy)
}
