package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plannerx/plannerx-api/internal/application/auth"
	"github.com/plannerx/plannerx-api/internal/application/importer"
	"github.com/plannerx/plannerx-api/internal/application/usecase"
	"github.com/plannerx/plannerx-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	UserUC       *usecase.UserUseCase
	DimensionUC  *usecase.DimensionUseCase
	SheetUC      *usecase.SheetUseCase
	CalendarIm   *importer.CalendarImporter
	DimensionsIm *importer.DimensionImporter
	UserRepo     repository.UserRepository
	JWTSecret    string
}

// Router registra las rutas de la API. Solo /auth/login y /health son públicas;
// todo lo demás pasa por el middleware de identidad.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.Get)
	companies.Patch("/:id", companyHandler.Update)
	companies.Post("/:id/calendar-sheet", companyHandler.AttachCalendarSheet)

	userHandler := NewUserHandler(deps.UserUC)
	companies.Get("/:id/users", userHandler.List)
	companies.Post("/:id/users", userHandler.Create)

	dimensionHandler := NewDimensionHandler(deps.DimensionUC)
	companies.Get("/:id/dimensions", dimensionHandler.List)
	companies.Post("/:id/dimensions", dimensionHandler.Create)
	companies.Patch("/:id/dimensions/:dimensionId", dimensionHandler.Update)
	companies.Get("/:id/dimensions/:dimensionId/values", dimensionHandler.ListValues)
	companies.Post("/:id/dimensions/:dimensionId/values", dimensionHandler.CreateValue)
	companies.Patch("/:id/dimensions/:dimensionId/values/:valueId", dimensionHandler.UpdateValue)

	sheetHandler := NewSheetHandler(deps.SheetUC)
	companies.Get("/:id/sheets", sheetHandler.List)
	companies.Post("/:id/sheets", sheetHandler.Create)
	companies.Patch("/:id/sheets/:sheetId", sheetHandler.Update)

	importHandler := NewImportHandler(deps.CalendarIm, deps.DimensionsIm)
	companies.Post("/:id/calendar/import", importHandler.ImportCalendar)
	companies.Post("/:id/dimensions/import", importHandler.ImportDimensions)
}
