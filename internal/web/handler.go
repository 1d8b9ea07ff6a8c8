package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hdclinic/hdclinic/internal/domain/labs"
	"github.com/hdclinic/hdclinic/internal/domain/medication"
	"github.com/hdclinic/hdclinic/internal/domain/patient"
	"github.com/hdclinic/hdclinic/internal/domain/session"
)

// Handler serves the server-rendered roster and patient detail pages.
type Handler struct {
	patients *patient.Service
	sessions *session.Service
	meds     *medication.Service
	labs     *labs.Service
	logger   zerolog.Logger
}

func NewHandler(patients *patient.Service, sessions *session.Service, meds *medication.Service, lb *labs.Service, logger zerolog.Logger) *Handler {
	return &Handler{patients: patients, sessions: sessions, meds: meds, labs: lb, logger: logger}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Roster)
	e.GET("/patients/:id", h.Detail)
}

// Roster renders the full patient list in family-name order.
func (h *Handler) Roster(c echo.Context) error {
	return h.renderRoster(c, "")
}

// Detail renders one patient with the selected tab. Any load failure
// falls back to the roster with an error banner.
func (h *Handler) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return h.renderRoster(c, "invalid patient id")
	}

	detail, err := h.loadDetail(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return h.renderRoster(c, "patient not found")
		}
		h.logger.Error().Err(err).Int64("patient_id", id).Msg("detail load failed")
		return h.renderRoster(c, "could not load patient record")
	}

	st := &ViewState{
		View:     "detail",
		Selected: detail,
		Tab:      NormalizeTab(c.QueryParam("tab")),
	}
	return h.render(c, st)
}

func (h *Handler) loadDetail(ctx context.Context, id int64) (*PatientDetail, error) {
	p, err := h.patients.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &PatientDetail{Patient: p}

	d.Protocol, err = h.patients.GetProtocol(ctx, id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if d.Sessions, err = h.sessions.ListByPatient(ctx, id, 0, 0); err != nil {
		return nil, err
	}
	if d.Medications, err = h.meds.ListByPatient(ctx, id, 0, 0); err != nil {
		return nil, err
	}
	if d.Labs, err = h.labs.ListByPatient(ctx, id, 0, 0); err != nil {
		return nil, err
	}
	return d, nil
}

func (h *Handler) renderRoster(c echo.Context, banner string) error {
	st := &ViewState{View: "list", Err: banner}

	patients, err := h.patients.ListPatients(c.Request().Context(), 0, 0)
	if err != nil {
		h.logger.Error().Err(err).Msg("roster load failed")
		if st.Err == "" {
			st.Err = "could not load patient roster"
		}
	} else {
		st.Patients = patients
	}
	return h.render(c, st)
}

func (h *Handler) render(c echo.Context, st *ViewState) error {
	var buf bytes.Buffer
	if err := Render(&buf, st); err != nil {
		h.logger.Error().Err(err).Msg("template render failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.HTML(http.StatusOK, buf.String())
}
