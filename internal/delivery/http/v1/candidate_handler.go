package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC    domain.CandidateUsecase
	maxResumeBytes int64
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, maxResumeBytes int64, writeLimit gin.HandlerFunc) {
	handler := &CandidateHandler{
		candidateUC:    candidateUC,
		maxResumeBytes: maxResumeBytes,
	}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.POST("", writeLimit, handler.Create)
	}
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  Filter, search, sort and paginate candidates. The filtered total is returned in X-Total-Count.
// @Tags         candidates
// @Produce      json
// @Param        page        query     int     false  "Page number"  default(1)
// @Param        limit       query     int     false  "Page size"    default(10)
// @Param        status      query     string  false  "new, interviewed, hired, rejected or all"
// @Param        search      query     string  false  "Substring of name or position"
// @Param        sort_by     query     string  false  "name, position, experience, created_at, score, match_percentage"
// @Param        sort_order  query     string  false  "asc or desc"
// @Success      200         {object}  response.Response{data=[]domain.Candidate}
// @Failure      400         {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	items, total, err := h.candidateUC.ListCandidates(c, listParams(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, items, total)
}

// GetCandidate godoc
// @Summary      Get candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", candidate)
}

// CreateCandidate godoc
// @Summary      Create candidate
// @Description  Accepts multipart/form-data (skills as a JSON array string, optional resume file) or a JSON body.
// @Tags         candidates
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        name        formData  string  true   "Full name"
// @Param        email       formData  string  true   "Email"
// @Param        phone       formData  string  false  "Phone"
// @Param        position    formData  string  true   "Position"
// @Param        experience  formData  int     true   "Years of experience"
// @Param        skills      formData  string  true   "JSON array of skills"
// @Param        resume      formData  file    false  "Resume (pdf, doc, docx, rtf, txt)"
// @Success      201         {object}  response.Response{data=domain.Candidate}
// @Failure      400         {object}  response.Response
// @Failure      413         {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CreateCandidateInput

	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
			return
		}
	} else if err := h.bindForm(c, &input); err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c, &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// bindForm reads the multipart form, including the optional resume.
func (h *CandidateHandler) bindForm(c *gin.Context, input *domain.CreateCandidateInput) error {
	// form fields plus the resume, with headroom for multipart framing
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxResumeBytes+1<<20)

	if err := c.Request.ParseMultipartForm(h.maxResumeBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.New(http.StatusRequestEntityTooLarge, fmt.Sprintf("Request too large: resume must be at most %d MB", h.maxResumeBytes>>20), err)
		}
		return apperror.BadRequest("Invalid form data")
	}

	input.Name = c.PostForm("name")
	input.Email = c.PostForm("email")
	input.Phone = c.PostForm("phone")
	input.Position = c.PostForm("position")

	raw, ok := c.GetPostForm("experience")
	if !ok || strings.TrimSpace(raw) == "" {
		return apperror.BadRequest("experience: is required")
	}
	experience, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return apperror.BadRequest("experience: must be an integer")
	}
	input.Experience = experience

	raw, ok = c.GetPostForm("skills")
	if !ok || strings.TrimSpace(raw) == "" {
		return apperror.BadRequest("skills: is required")
	}
	if err := json.Unmarshal([]byte(raw), &input.Skills); err != nil {
		return apperror.BadRequest("skills: must be a JSON array of strings")
	}

	fileHeader, err := c.FormFile("resume")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	if err != nil {
		return apperror.BadRequest("Invalid resume upload")
	}
	resume, err := h.readResume(fileHeader)
	if err != nil {
		return err
	}
	input.Resume = resume
	return nil
}

func (h *CandidateHandler) readResume(fileHeader *multipart.FileHeader) (*domain.ResumeUpload, error) {
	if fileHeader.Size > h.maxResumeBytes {
		return nil, apperror.New(http.StatusRequestEntityTooLarge, fmt.Sprintf("Resume must be at most %d MB", h.maxResumeBytes>>20), nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperror.BadRequest("Failed to read resume")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxResumeBytes+1))
	if err != nil {
		return nil, apperror.BadRequest("Failed to read resume")
	}
	if int64(len(data)) > h.maxResumeBytes {
		return nil, apperror.New(http.StatusRequestEntityTooLarge, fmt.Sprintf("Resume must be at most %d MB", h.maxResumeBytes>>20), nil)
	}
	return &domain.ResumeUpload{Filename: fileHeader.Filename, Data: data}, nil
}
