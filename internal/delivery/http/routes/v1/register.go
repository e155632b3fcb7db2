package v1

import (
	"log"

	"skillnuron/internal/config"
	"skillnuron/internal/database"
	"skillnuron/internal/delivery/http/handler"
	"skillnuron/internal/delivery/http/middleware"
	"skillnuron/internal/pkg/jwt"
	"skillnuron/internal/repository"
	"skillnuron/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.JobsCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(userRepo, skillRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, cache, logger)
	matchUC := usecase.NewJobMatchUsecase(userRepo, skillRepo, jobRepo, cache, logger)
	resumeUC := usecase.NewResumeUsecase(logger)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	jobsHandler := handler.NewJobsHandler(jobUC)
	matchHandler := handler.NewJobMatchHandler(matchUC)
	resumeHandler := handler.NewResumeHandler(resumeUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// Resume analysis and job CRUD are open like the original public API;
	// skills and scored listings require the caller's identity.
	resumeHandler.RegisterRoutes(r)
	jobsHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	skillHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected)
}
