package handler

import (
	"skillnuron/internal/delivery/http/dto"
	"skillnuron/internal/delivery/http/middleware"
	"skillnuron/internal/pkg/response"
	"skillnuron/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// JobMatchHandler serves the scored listing and recommendations endpoints.
type JobMatchHandler struct {
	uc usecase.JobMatchUsecase
}

func NewJobMatchHandler(uc usecase.JobMatchUsecase) *JobMatchHandler {
	return &JobMatchHandler{uc: uc}
}

func (h *JobMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/recommendations", h.Recommendations)
}

// List returns every stored job scored against the caller, ranked but
// unfiltered.
func (h *JobMatchHandler) List(c fiber.Ctx) error {
	return h.matchJobs(c, 0)
}

// Recommendations keeps only jobs at or above the recommendation cutoff.
func (h *JobMatchHandler) Recommendations(c fiber.Ctx) error {
	return h.matchJobs(c, usecase.RecommendationMinScore)
}

func (h *JobMatchHandler) matchJobs(c fiber.Ctx, minScore int) error {
	email, ok := middleware.EmailFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	results, err := h.uc.MatchJobs(c.Context(), email, minScore)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobsFromMatchResults(results))
}
