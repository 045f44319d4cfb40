package events

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/praxis/praxis/internal/platform/auth"
	"github.com/praxis/praxis/pkg/pagination"
)

type Handler struct {
	changes ChangeEventRepository
	history InsightHistoryRepository
}

func NewHandler(changes ChangeEventRepository, history InsightHistoryRepository) *Handler {
	return &Handler{changes: changes, history: history}
}

// The event log is read-only over HTTP; writes happen internally.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RoleOwner, auth.RoleStaff))
	g.GET("/events", h.ListEvents)

	owner := api.Group("", auth.RequireRole(auth.RoleOwner))
	owner.GET("/insights/history", h.ListHistory)
}

func (h *Handler) ListEvents(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.changes.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListHistory(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.history.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
