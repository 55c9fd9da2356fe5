package surgery

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinio/clinio/internal/platform/auth"
	"github.com/clinio/clinio/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	read.GET("/surgeries", h.ListSurgeries)
	read.GET("/surgeries/:id", h.GetSurgery)
	read.GET("/patients/:id/surgeries", h.ListByPatient)
	read.GET("/practitioners/:id/surgeries", h.ListBySurgeon)

	write := api.Group("", auth.RequireRole("admin", "physician"))
	write.POST("/surgeries", h.CreateSurgery)
	write.PUT("/surgeries/:id", h.UpdateSurgery)
	write.PATCH("/surgeries/:id/status", h.UpdateStatus)
	write.DELETE("/surgeries/:id", h.DeleteSurgery)
}

func (h *Handler) CreateSurgery(c echo.Context) error {
	var sg Surgery
	if err := c.Bind(&sg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.CreateSurgery(c.Request().Context(), &sg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sg)
}

func (h *Handler) GetSurgery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid surgery id")
	}
	sg, err := h.svc.GetSurgery(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "surgery not found")
	}
	return c.JSON(http.StatusOK, sg)
}

func (h *Handler) UpdateSurgery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid surgery id")
	}
	var sg Surgery
	if err := c.Bind(&sg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sg.ID = id
	if err := h.svc.UpdateSurgery(c.Request().Context(), &sg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, sg)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid surgery id")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sg, err := h.svc.UpdateStatus(c.Request().Context(), id, body.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, sg)
}

func (h *Handler) DeleteSurgery(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid surgery id")
	}
	if err := h.svc.DeleteSurgery(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete surgery")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListSurgeries(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListSurgeries(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list surgeries")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list surgeries")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p))
}

func (h *Handler) ListBySurgeon(c echo.Context) error {
	surgeonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid practitioner id")
	}
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListBySurgeon(c.Request().Context(), surgeonID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list surgeries")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p))
}
