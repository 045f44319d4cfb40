package insight

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/praxis/praxis/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the analysis endpoint. Authorization beyond
// authentication happens inside the service, which owns the full
// error taxonomy.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/insights/analyze", h.Analyze)
}

type analyzeBody struct {
	PracticeID string `json:"practiceId"`
}

func (h *Handler) Analyze(c echo.Context) error {
	var body analyzeBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	req := AnalyzeRequest{
		PracticeID:   body.PracticeID,
		UserID:       auth.UserIDFromContext(ctx),
		UserPractice: auth.PracticeIDFromContext(ctx),
		Role:         auth.RoleFromContext(ctx),
	}

	report, err := h.svc.Analyze(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		case errors.Is(err, ErrPracticeRequired):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrForbidden), errors.Is(err, ErrFeatureDisabled):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, ErrTemporarilyUnavailable):
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, report)
}
