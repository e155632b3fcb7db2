package handler

import (
	"errors"
	"io"

	"skillnuron/internal/delivery/http/middleware"
	"skillnuron/internal/domain/resume"
	"skillnuron/internal/extract"
	"skillnuron/internal/pkg/response"
	"skillnuron/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/resume")
	grp.Post("/analyze", h.Analyze)
}

func (h *ResumeHandler) Analyze(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing resume file", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read resume file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read resume file", nil, err)
	}

	analysis, err := h.uc.AnalyzeResume(c.Context(), fh.Filename, data)
	if err != nil {
		return mapResumeError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, analysis)
}

// Each failure class gets its own user-visible message so a caller can tell
// a bad upload from a corrupt file from an empty resume.
func mapResumeError(err error) error {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid format. Use PDF or DOCX.", nil, err)
	case errors.Is(err, extract.ErrExtraction):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Could not parse file content.", nil, err)
	case errors.Is(err, resume.ErrTextTooShort):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume content is too short or unreadable.", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
