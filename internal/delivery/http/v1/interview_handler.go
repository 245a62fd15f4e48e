package v1

import (
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.GET("", handler.List)
		interviews.GET("/:id", handler.Get)
	}
}

// ListInterviews godoc
// @Summary      List interviews
// @Tags         interviews
// @Produce      json
// @Param        page        query     int     false  "Page number"  default(1)
// @Param        limit       query     int     false  "Page size"    default(10)
// @Param        status      query     string  false  "scheduled, in_progress, completed, cancelled or all"
// @Param        search      query     string  false  "Substring of candidate_name or position"
// @Param        sort_by     query     string  false  "candidate_name, position, scheduled_at, score, duration"
// @Param        sort_order  query     string  false  "asc or desc"
// @Success      200         {object}  response.Response{data=[]domain.Interview}
// @Failure      400         {object}  response.Response
// @Router       /interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	items, total, err := h.interviewUC.ListInterviews(c, listParams(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, items, total)
}

// GetInterview godoc
// @Summary      Get interview
// @Description  Returns the analysed interview with transcript and metrics when available, otherwise the plain record.
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  response.Response{data=domain.InterviewDetail}
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	detail, err := h.interviewUC.GetInterview(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", detail)
}
