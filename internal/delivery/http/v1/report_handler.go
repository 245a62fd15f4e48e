package v1

import (
	"fmt"
	"mime"
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUC domain.ReportUsecase
}

func NewReportHandler(r *gin.RouterGroup, reportUC domain.ReportUsecase) {
	handler := &ReportHandler{reportUC: reportUC}

	reports := r.Group("/reports")
	{
		reports.GET("/:candidateId", handler.Get)
		reports.GET("/:candidateId/pdf", handler.DownloadPDF)
	}
}

// GetReport godoc
// @Summary      Get candidate report
// @Tags         reports
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate ID"
// @Success      200          {object}  response.Response{data=domain.Report}
// @Failure      404          {object}  response.Response
// @Router       /reports/{candidateId} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.reportUC.GetReport(c, c.Param("candidateId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", report)
}

// DownloadReportPDF godoc
// @Summary      Download report as PDF
// @Description  Always returns a document; candidates without a report get a placeholder.
// @Tags         reports
// @Produce      application/pdf
// @Param        candidateId  path  string  true  "Candidate ID"
// @Success      200          {file}  binary
// @Router       /reports/{candidateId}/pdf [get]
func (h *ReportHandler) DownloadPDF(c *gin.Context) {
	candidateID := c.Param("candidateId")
	doc, err := h.reportUC.RenderReportPDF(c, candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": fmt.Sprintf("report_%s.pdf", candidateID),
	}))
	c.Data(http.StatusOK, "application/pdf", doc)
}
