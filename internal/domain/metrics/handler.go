package metrics

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/metrics/doctor/:doctor_id", h.DoctorMetrics)
}

func (h *Handler) DoctorMetrics(c echo.Context) error {
	doctorID := c.Param("doctor_id")
	if doctorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "doctor_id is required")
	}
	summary, err := h.svc.DoctorSummary(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}
