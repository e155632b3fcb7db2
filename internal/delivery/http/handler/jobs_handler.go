package handler

import (
	"errors"
	"strconv"

	"skillnuron/internal/delivery/http/dto"
	"skillnuron/internal/delivery/http/middleware"
	"skillnuron/internal/pkg/response"
	"skillnuron/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// JobsHandler serves the administrative CRUD surface of the job store.
type JobsHandler struct {
	uc usecase.JobUsecase
}

type jobRequest struct {
	Title          string `json:"title" validate:"required"`
	Company        string `json:"company" validate:"required"`
	Location       string `json:"location"`
	Type           string `json:"type"`
	SalaryRange    string `json:"salary_range"`
	Description    string `json:"description"`
	RequiredSkills string `json:"required_skills"`
	PostedDate     string `json:"posted_date"`
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Post("/", h.Create)
	grp.Get("/:id<int>", h.Get)
	grp.Put("/:id<int>", h.Update)
	grp.Delete("/:id<int>", h.Delete)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	in, err := bindJobRequest(c)
	if err != nil {
		return err
	}

	created, err := h.uc.CreateJob(c.Context(), in)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job created successfully", dto.JobFromDomain(created))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	j, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobFromDomain(j))
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	in, err := bindJobRequest(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.UpdateJob(c.Context(), id, in)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job updated successfully", dto.JobFromDomain(updated))
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJob(c.Context(), id); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}

func bindJobRequest(c fiber.Ctx) (usecase.JobInput, error) {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.JobInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return usecase.JobInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	return usecase.JobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Type:           req.Type,
		SalaryRange:    req.SalaryRange,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		PostedDate:     req.PostedDate,
	}, nil
}

func parseIDParam(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	return id, nil
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
