package integrity

import (
	"locale-manager/core/logger"
	"locale-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.CoverageReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/files", h.HandleFilesCheck)
	group.Get("/coverage", h.HandleCoverageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Files, Coverage, Database).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.RunAll(c.UserContext()))
}

// HandleStructureCheck checks and optionally fixes the locale folder.
// @Summary Check Structure
// @Description Checks if the locale folder exists in the storage bucket. Optionally creates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create the missing folder"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	exists, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !exists {
		l.Warn("Locale folder is missing", zap.String("prefix", h.service.locales.Prefix))

		if fix {
			if err := h.service.FixStructure(c.UserContext()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
				})
			}
			return c.JSON(fiber.Map{"status": "fixed"})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"exists": exists,
	})
}

// HandleFilesCheck checks and optionally creates the locale files.
// @Summary Check Locale Files
// @Description Verifies that every configured language has a locale file. Optionally creates empty files for the missing ones (never for the base language).
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create empty files for missing languages"
// @Success 200 {object} map[string]interface{} "Files Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/files [get]
func (h *Handler) HandleFilesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckLocaleFiles(c.UserContext())
	if err != nil {
		l.Error("Locale files check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing locale files detected", zap.Strings("missing", missing))

		if fix {
			created, err := h.service.FixLocaleFiles(c.UserContext(), missing)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to create locale files",
					"details": err.Error(),
					"created": created,
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  created,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleCoverageCheck reports translation coverage.
// @Summary Check Coverage
// @Description Reconciles every configured language against the base language and reports missing, changed and extra keys.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CoverageReport "Coverage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/coverage [get]
func (h *Handler) HandleCoverageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckCoverage(c.UserContext())
	if err != nil {
		l.Error("Coverage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleDatabaseCheck checks the preferences schema.
// @Summary Check Database Schema
// @Description Checks that the preferences table has every expected column.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Database schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
