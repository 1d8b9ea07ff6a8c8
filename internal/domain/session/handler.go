package session

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hdclinic/hdclinic/pkg/pagination"
	"github.com/hdclinic/hdclinic/pkg/validation"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id/sessions", h.ListSessions)
	api.POST("/patients/:id/sessions", h.RecordSession)
}

func (h *Handler) ListSessions(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Session{}
	}
	resp := echo.Map{"sessions": items}
	if pg.HasNext(len(items)) {
		resp["next_offset"] = pg.NextOffset()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) RecordSession(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	var s Session
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.PatientID = patientID
	if err := h.svc.RecordSession(c.Request().Context(), &s); err != nil {
		if validation.IsError(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"session": s})
}

func parsePatientID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
