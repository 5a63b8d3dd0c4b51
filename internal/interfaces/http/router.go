package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reportes-ventas/internal/application/auth"
	domreport "github.com/jhoicas/reportes-ventas/internal/domain/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ReportUC  ReportWizard
	JWTSecret string
	Health    func() error // nil = siempre OK
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Group("/auth").Post("/login", authHandler.Login)
	}

	requireAuth := AuthMiddleware(deps.JWTSecret)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Asistente de reporte (protegido)
	reports := api.Group("/reports/sale-deliveries", requireAuth)
	reports.Post("/", reportHandler.Create)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Put("/:id", reportHandler.Update)
	reports.Post("/:id/generate", reportHandler.Generate)
	reports.Get("/:id/pdf", reportHandler.PDF)

	// Descarga del binario adjunto (protegido)
	app.Get(domreport.ContentRoot+"/:model/:id/:field/:filename", requireAuth, reportHandler.Content)
}
