package menu

import (
	"errors"
	"net/url"

	"menu-manager/core/logger"
	"menu-manager/core/menu"
	"menu-manager/core/reconcile"
	"menu-manager/core/selector"
	"menu-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the menu.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type nameRequest struct {
	Name string `json:"name"`
}

// RegisterRoutes registers the menu routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/menu")
	group.Get("/", h.HandleGetMenu)
	group.Post("/", h.HandleAddDish)
	group.Get("/sample", h.HandleSample)
	group.Get("/status", h.HandleStatus)
	group.Get("/export", h.HandleExport)
	group.Post("/reload", h.HandleReload)
	group.Post("/sync", h.HandleSync)
	group.Post("/reset", h.HandleReset)
	group.Put("/:name", h.HandleRenameDish)
	group.Delete("/:name", h.HandleDeleteDish)
}

// HandleGetMenu returns the active menu.
// @Summary Get Menu
// @Description Get the active dishes together with the sync status.
// @Tags menu
// @Produce json
// @Success 200 {object} View "Active Menu"
// @Router /menu [get]
func (h *Handler) HandleGetMenu(c *fiber.Ctx) error {
	return c.JSON(h.service.Get(c.Context()))
}

// HandleAddDish adds a dish.
// @Summary Add Dish
// @Tags menu
// @Accept json
// @Produce json
// @Param body body nameRequest true "Dish"
// @Success 201 {object} View "Updated Menu"
// @Failure 400 {object} map[string]string "Empty Name"
// @Failure 409 {object} map[string]string "Dish Exists"
// @Router /menu [post]
func (h *Handler) HandleAddDish(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	view, err := h.service.Add(c.Context(), req.Name)
	if err != nil {
		return h.fail(c, l, "Add dish failed", err)
	}

	l.Info("Dish added", zap.String("name", req.Name))
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleRenameDish renames a dish.
// @Summary Rename Dish
// @Tags menu
// @Accept json
// @Produce json
// @Param name path string true "Current Name"
// @Param body body nameRequest true "New Name"
// @Success 200 {object} View "Updated Menu"
// @Failure 400 {object} map[string]string "Empty Name"
// @Failure 404 {object} map[string]string "Dish Not Found"
// @Failure 409 {object} map[string]string "Dish Exists"
// @Router /menu/{name} [put]
func (h *Handler) HandleRenameDish(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	oldName, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid dish name",
		})
	}

	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	view, err := h.service.Rename(c.Context(), oldName, req.Name)
	if err != nil {
		return h.fail(c, l, "Rename dish failed", err)
	}

	l.Info("Dish renamed", zap.String("from", oldName), zap.String("to", req.Name))
	return c.JSON(view)
}

// HandleDeleteDish deletes a dish. Deleting an absent dish is not an error.
// @Summary Delete Dish
// @Tags menu
// @Produce json
// @Param name path string true "Dish Name"
// @Success 200 {object} View "Updated Menu"
// @Router /menu/{name} [delete]
func (h *Handler) HandleDeleteDish(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid dish name",
		})
	}

	view, err := h.service.Delete(c.Context(), name)
	if err != nil {
		return h.fail(c, l, "Delete dish failed", err)
	}

	l.Info("Dish deleted", zap.String("name", name))
	return c.JSON(view)
}

// HandleSample returns a random selection of dishes.
// @Summary Sample Dishes
// @Description Draw distinct random dishes. The count is clamped to the menu size.
// @Tags menu
// @Produce json
// @Param count query int false "Number of dishes"
// @Success 200 {object} selector.Result "Selection"
// @Failure 422 {object} map[string]string "Empty Menu"
// @Router /menu/sample [get]
func (h *Handler) HandleSample(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count := utils.ToInt(c.Query("count", "1"))
	result, err := h.service.Sample(c.Context(), count)
	if err != nil {
		return h.fail(c, l, "Sample failed", err)
	}

	return c.JSON(result)
}

// HandleStatus returns the sync status.
// @Summary Sync Status
// @Tags menu
// @Produce json
// @Success 200 {object} reconcile.Status "Status"
// @Router /menu/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status(c.Context()))
}

// HandleReload drops the cached baseline and resolves the menu again.
// @Summary Reload Menu
// @Tags menu
// @Produce json
// @Success 200 {object} View "Active Menu"
// @Router /menu/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	h.service.InvalidateBaseline()
	res := h.service.Load(c.Context())
	if res.BaselineErr != nil {
		l.Warn("Baseline unavailable, serving degraded menu", zap.Error(res.BaselineErr))
	}

	return c.JSON(h.service.Get(c.Context()))
}

// HandleSync promotes staged changes and exports the baseline document.
// @Summary Sync Menu
// @Tags menu
// @Produce json
// @Success 200 {object} reconcile.SyncResult "Exported Document"
// @Failure 409 {object} map[string]string "Nothing To Sync"
// @Failure 500 {object} map[string]string "Export Failed"
// @Router /menu/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Sync(c.Context())
	if err != nil {
		return h.fail(c, l, "Sync failed", err)
	}

	l.Info("Menu synced", zap.String("location", result.Location), zap.Int("dishes", len(result.Document.Menu)))
	return c.JSON(result)
}

// HandleReset discards staged changes.
// @Summary Reset Menu
// @Tags menu
// @Produce json
// @Success 200 {object} View "Baseline Menu"
// @Failure 409 {object} map[string]string "Nothing To Reset"
// @Router /menu/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	view, err := h.service.Reset(c.Context())
	if err != nil {
		return h.fail(c, l, "Reset failed", err)
	}

	l.Info("Staged changes discarded")
	return c.JSON(view)
}

// HandleExport returns the baseline document for the active menu.
// @Summary Export Menu
// @Tags menu
// @Produce json
// @Param download query bool false "Serve as attachment"
// @Success 200 {object} baseline.Document "Document"
// @Router /menu/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.Export(c.Context()).Encode()
	if err != nil {
		l.Error("Export encoding failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if utils.ToBool(c.Query("download")) {
		c.Attachment(exportFilename)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

const exportFilename = "menu-data.json"

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, menu.ErrEmptyName):
		return fiber.StatusBadRequest
	case errors.Is(err, menu.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, menu.ErrAlreadyExists),
		errors.Is(err, reconcile.ErrNothingToSync),
		errors.Is(err, reconcile.ErrLocalOnly):
		return fiber.StatusConflict
	case errors.Is(err, selector.ErrEmptySelection):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
