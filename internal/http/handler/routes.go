package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"casewrite/internal/render"
	"casewrite/internal/repository"
)

// Deps are the collaborators the routes need. DB and Intakes are nil when the ledger is disabled.
type Deps struct {
	DB       *sql.DB
	Session  CaseSession
	Intakes  repository.IntakeRepository
	Renderer *render.Renderer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	// HTML intake form
	app.Get("/", IndexPage(d.Renderer, d.Session))
	app.Post("/analyze", AnalyzeForm(d.Renderer, d.Session))

	api := app.Group("/api/v1")
	api.Post("/cases/analyze", AnalyzeJSON(d.Session))
	api.Get("/cases/current", CurrentOutcome(d.Session))
	api.Get("/intakes", ListIntakes(d.Intakes))
}
