package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"skillnuron/internal/delivery/http/middleware"
	"skillnuron/internal/domain/skill"
	"skillnuron/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type stubSkillUsecase struct {
	created skill.Skill
	err     error
}

func (s *stubSkillUsecase) ListSkills(_ context.Context, _ string) ([]skill.Skill, error) {
	return nil, s.err
}

func (s *stubSkillUsecase) AddSkill(_ context.Context, _ string, _ usecase.AddSkillInput) (skill.Skill, error) {
	if s.err != nil {
		return skill.Skill{}, s.err
	}
	return s.created, nil
}

func (s *stubSkillUsecase) RemoveSkill(_ context.Context, _ string, _ string) error {
	return s.err
}

func newSkillTestApp(uc usecase.SkillUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxEmailKey, "jane@example.com")
		return c.Next()
	})
	NewSkillHandler(uc).RegisterRoutes(app)
	return app
}

func TestSkillHandler_Create_ValidationMessages(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing name", `{"level": 50}`, "Bad request"},
		{"level above range", `{"name": "Go", "level": 101}`, "Skill level must be between 0 and 100"},
		{"level below range", `{"name": "Go", "level": -1}`, "Skill level must be between 0 and 100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newSkillTestApp(&stubSkillUsecase{})

			req, _ := http.NewRequest(http.MethodPost, "/skills/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if env := decodeEnvelope(t, resp); env.Message != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, env.Message)
			}
		})
	}
}

func TestSkillHandler_Create_Success(t *testing.T) {
	app := newSkillTestApp(&stubSkillUsecase{
		created: skill.Skill{ID: 1, UserID: 1, Name: "Go", Level: 80, Category: "language"},
	})

	req, _ := http.NewRequest(http.MethodPost, "/skills/", strings.NewReader(`{"name": "Go", "level": 80, "category": "language"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
