package editor

import (
	"errors"
	"net/url"

	"locale-manager/core/logger"
	"locale-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the editor.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the editor routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/editor")
	group.Get("/languages", h.HandleLanguages)
	group.Post("/load", h.HandleLoad)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/session", h.HandleSession)
	group.Get("/report", h.HandleReport)
	group.Get("/rows", h.HandleRows)
	group.Get("/rows/:key", h.HandleRow)
	group.Put("/rows/:key", h.HandleEdit)
	group.Put("/filter", h.HandleFilter)
	group.Put("/focus", h.HandleFocus)
	group.Delete("/focus", h.HandleBlur)
	group.Get("/export", h.HandleDownload)
	group.Post("/export/:target", h.HandleExport)
}

// LoadRequest selects the language to edit.
type LoadRequest struct {
	Language string `json:"language"`
}

// EditRequest sets the target value of a row.
type EditRequest struct {
	Value string `json:"value"`
}

// FocusRequest selects the row being edited.
type FocusRequest struct {
	Key string `json:"key"`
}

// SessionResponse is the snapshot summary returned by the session endpoints.
type SessionResponse struct {
	Status    reconcile.Status `json:"status"`
	Base      string           `json:"base"`
	Stats     reconcile.Stats  `json:"stats"`
	Summary   string           `json:"summary"`
	Filter    reconcile.Filter `json:"filter"`
	ActiveKey string           `json:"active_key"`
	Visible   int              `json:"visible"`
	ExtraKeys []string         `json:"extra_keys"`
}

// EditResponse returns the edited row with the refreshed stats.
type EditResponse struct {
	Row   reconcile.RowView `json:"row"`
	Stats reconcile.Stats   `json:"stats"`
}

func (h *Handler) session() SessionResponse {
	s := h.service.Session()
	stats := s.Stats()
	return SessionResponse{
		Status:    s.Status(),
		Base:      s.BaseLanguage(),
		Stats:     stats,
		Summary:   stats.String(),
		Filter:    s.Filter(),
		ActiveKey: s.ActiveKey(),
		Visible:   s.VisibleCount(),
		ExtraKeys: s.ExtraKeys(),
	}
}

// fail maps editor errors to HTTP status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, reconcile.ErrUnknownKey):
		status = fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrNotReady), errors.Is(err, reconcile.ErrLoadSuperseded):
		status = fiber.StatusConflict
	case errors.Is(err, reconcile.ErrInvalidLanguage), errors.Is(err, ErrUnknownTarget):
		status = fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrLoad):
		status = fiber.StatusBadGateway
	}

	if status >= fiber.StatusInternalServerError {
		l.Error("Editor request failed", zap.Error(err))
	} else {
		l.Warn("Editor request rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// HandleLanguages lists the configured languages.
// @Summary List Languages
// @Description Lists the configured languages, marking the base language, the active one and those with a locale file in the source.
// @Tags editor
// @Produce json
// @Success 200 {array} LanguageInfo
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /editor/languages [get]
func (h *Handler) HandleLanguages(c *fiber.Ctx) error {
	langs, err := h.service.Languages(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(langs)
}

// HandleLoad loads a language.
// @Summary Load Language
// @Description Fetches the base and target locales and rebuilds the rows. Filters and the active row are reset.
// @Tags editor
// @Accept json
// @Produce json
// @Param request body LoadRequest true "Language to load"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid Language"
// @Failure 409 {object} map[string]string "Superseded By A Newer Load"
// @Failure 502 {object} map[string]string "Locale Source Failure"
// @Router /editor/load [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	var req LoadRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}
	if req.Language == "" {
		req.Language = utils.CopyString(c.Query("language"))
	}

	if err := h.service.Load(c.UserContext(), req.Language); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.session())
}

// HandleRefresh reloads the current language.
// @Summary Refresh Language
// @Description Reloads the language being edited from the source, discarding unsaved edits.
// @Tags editor
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Failure 502 {object} map[string]string "Locale Source Failure"
// @Router /editor/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	lang := h.service.Session().Language()
	if lang == "" {
		return h.fail(c, reconcile.ErrNotReady)
	}
	if err := h.service.Load(c.UserContext(), lang); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.session())
}

// HandleSession returns the session state.
// @Summary Session
// @Description Returns the status line, stats, filter and extra keys of the session.
// @Tags editor
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /editor/session [get]
func (h *Handler) HandleSession(c *fiber.Ctx) error {
	return c.JSON(h.session())
}

// HandleReport returns the reconciliation report.
// @Summary Report
// @Description Lists the missing, untranslated and extra keys of the loaded language.
// @Tags editor
// @Produce json
// @Success 200 {object} Report
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Router /editor/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	report, err := h.service.Report()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleRows lists the rows.
// @Summary List Rows
// @Description Lists the rows in base order. With visible=true only rows passing the current filter are returned.
// @Tags editor
// @Produce json
// @Param visible query boolean false "Only visible rows"
// @Success 200 {array} reconcile.RowView
// @Router /editor/rows [get]
func (h *Handler) HandleRows(c *fiber.Ctx) error {
	if c.QueryBool("visible") {
		return c.JSON(h.service.Session().VisibleRows())
	}
	return c.JSON(h.service.Session().Rows())
}

// HandleRow returns a single row.
// @Summary Get Row
// @Tags editor
// @Produce json
// @Param key path string true "Translation key"
// @Success 200 {object} reconcile.RowView
// @Failure 404 {object} map[string]string "Unknown Key"
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Router /editor/rows/{key} [get]
func (h *Handler) HandleRow(c *fiber.Ctx) error {
	key, err := url.PathUnescape(utils.CopyString(c.Params("key")))
	if err != nil {
		return badRequest(c, "invalid key")
	}
	row, err := h.service.Session().Row(key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(row)
}

// HandleEdit sets the target value of a row.
// @Summary Edit Row
// @Description Sets the target value of a row and returns the row with the refreshed stats.
// @Tags editor
// @Accept json
// @Produce json
// @Param key path string true "Translation key"
// @Param request body EditRequest true "New value"
// @Success 200 {object} EditResponse
// @Failure 404 {object} map[string]string "Unknown Key"
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Router /editor/rows/{key} [put]
func (h *Handler) HandleEdit(c *fiber.Ctx) error {
	key, err := url.PathUnescape(utils.CopyString(c.Params("key")))
	if err != nil {
		return badRequest(c, "invalid key")
	}
	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	s := h.service.Session()
	if err := s.Edit(key, req.Value); err != nil {
		return h.fail(c, err)
	}
	row, err := s.Row(key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(EditResponse{Row: row, Stats: s.Stats()})
}

// HandleFilter updates the filter.
// @Summary Update Filter
// @Description Updates the given filter fields; omitted fields keep their value.
// @Tags editor
// @Accept json
// @Produce json
// @Param request body reconcile.FilterUpdate true "Filter fields"
// @Success 200 {object} SessionResponse
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Router /editor/filter [put]
func (h *Handler) HandleFilter(c *fiber.Ctx) error {
	var req reconcile.FilterUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.Session().SetFilter(req); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.session())
}

// HandleFocus marks the row being edited.
// @Summary Focus Row
// @Description Marks a row as being edited. It stays visible while its value no longer passes the missing-only or same-only filters.
// @Tags editor
// @Accept json
// @Produce json
// @Param request body FocusRequest true "Row key"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string "Unknown Key"
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Router /editor/focus [put]
func (h *Handler) HandleFocus(c *fiber.Ctx) error {
	var req FocusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.Session().Focus(req.Key); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.session())
}

// HandleBlur clears the row being edited.
// @Summary Blur Row
// @Tags editor
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /editor/focus [delete]
func (h *Handler) HandleBlur(c *fiber.Ctx) error {
	h.service.Session().Blur()
	return c.JSON(h.session())
}

// HandleDownload serves the exported locale as a file.
// @Summary Download Export
// @Description Returns the target locale with the edited values as qplay_<lang>.json.
// @Tags editor
// @Produce json
// @Success 200 {file} file
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Router /editor/export [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	name, data, err := h.service.Document()
	if err != nil {
		return h.fail(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("Serving export", zap.String("file", name))
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

// HandleExport delivers the export to a configured target.
// @Summary Export
// @Description Delivers the target locale with the edited values to an export target (storage or file).
// @Tags editor
// @Produce json
// @Param target path string true "Export target"
// @Success 200 {object} map[string]string "Location"
// @Failure 400 {object} map[string]string "Unknown Target"
// @Failure 409 {object} map[string]string "No Language Loaded"
// @Failure 500 {object} map[string]string "Export Failed"
// @Router /editor/export/{target} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	location, err := h.service.Export(c.UserContext(), utils.CopyString(c.Params("target")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"status":   "exported",
		"location": location,
	})
}
