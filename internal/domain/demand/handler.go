package demand

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinio/clinio/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	grp := api.Group("/analytics", auth.RequireRole("admin", "physician"))
	grp.GET("/demand", h.PredictDemand)
}

// PredictDemand handles GET /analytics/demand?horizon=&practitioner_id=.
// Admins may scope to any practitioner or omit the scope to see the whole
// clinic; physicians are always pinned to their own events.
func (h *Handler) PredictDemand(c echo.Context) error {
	horizon := 7
	if v := c.QueryParam("horizon"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid horizon")
		}
		horizon = parsed
	}

	var practitionerID *uuid.UUID
	if v := c.QueryParam("practitioner_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid practitioner_id")
		}
		practitionerID = &id
	}

	ctx := c.Request().Context()
	if !hasRole(auth.RolesFromContext(ctx), "admin") {
		if uid, err := uuid.Parse(auth.UserIDFromContext(ctx)); err == nil {
			practitionerID = &uid
		}
	}

	pred, err := h.svc.Predict(ctx, practitionerID, horizon)
	if err != nil {
		if errors.Is(err, ErrInvalidHorizon) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pred)
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
