package routes

import (
	"log"

	"skillnuron/internal/config"
	"skillnuron/internal/database"
	v1 "skillnuron/internal/delivery/http/routes/v1"
	"skillnuron/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.JobsCache, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, logger)
}
