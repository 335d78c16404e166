package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/middleware"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/repository"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/usecase"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/util"
)

type CandidateHandler struct {
	uc             *usecase.ScreeningUsecase
	maxUploadBytes int64
}

func NewCandidateHandler(uc *usecase.ScreeningUsecase, maxUploadBytes int64) *CandidateHandler {
	return &CandidateHandler{uc: uc, maxUploadBytes: maxUploadBytes}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/upload-resume", middleware.RateLimiter(10, 1*time.Minute), h.UploadResume)
	app.Get("/api/candidates", h.ListCandidates)
}

func (h *CandidateHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume_pdf")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if file.Size > h.maxUploadBytes {
		return util.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("resume_pdf file size is too large (max %dMB)", h.maxUploadBytes/(1024*1024)))
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
	defer src.Close()

	document, err := io.ReadAll(src)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	summary, err := h.uc.Submit(c.UserContext(), usecase.SubmitInput{
		Document:  document,
		Filename:  file.Filename,
		JobTitle:  c.FormValue("job_title"),
		CompanyID: c.FormValue("company_id"),
		Name:      c.FormValue("candidate_name"),
		Email:     c.FormValue("candidate_email"),
	})
	if err != nil {
		code, message := util.HTTPError(err)
		return util.ErrorResponse(c, code, message)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"candidate": summary,
	})
}

func (h *CandidateHandler) ListCandidates(c *fiber.Ctx) error {
	candidates, err := h.uc.List(repository.CandidateFilter{
		CompanyID: c.Query("company_id"),
		Status:    c.Query("status"),
		JobTitle:  c.Query("job_title"),
	})
	if err != nil {
		code, message := util.HTTPError(err)
		return util.ErrorResponse(c, code, message)
	}

	return c.JSON(fiber.Map{
		"candidates": candidates,
	})
}
