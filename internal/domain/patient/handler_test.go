package patient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// failingStore returns a driver-style error from every method.
type failingStore struct{}

var errStore = errors.New("insert patient: dial tcp 10.0.0.5:5432: connect: connection refused")

func (failingStore) CreateWithProtocol(context.Context, *Patient, *Protocol) error {
	return errStore
}
func (failingStore) GetByID(context.Context, int64) (*Patient, error)  { return nil, errStore }
func (failingStore) List(context.Context, int, int) ([]*Patient, error) { return nil, errStore }
func (failingStore) Delete(context.Context, int64) error               { return errStore }
func (failingStore) GetByPatient(context.Context, int64) (*Protocol, error) {
	return nil, errStore
}
func (failingStore) Update(context.Context, *Protocol) error { return errStore }

func newTestHandler() (*Handler, *echo.Echo) {
	svc := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func TestHandler_CreatePatient(t *testing.T) {
	h, e := newTestHandler()

	body := `{"name":"Maria","familyname":"Silva","birthdate":"1958-03-14"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Patient Patient `json:"patient"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Patient.ID <= 0 {
		t.Errorf("expected positive integer id, got %d", resp.Patient.ID)
	}
	if resp.Patient.FamilyName != "Silva" {
		t.Errorf("expected 'Silva', got %s", resp.Patient.FamilyName)
	}
}

func TestHandler_CreatePatient_MissingField(t *testing.T) {
	h, e := newTestHandler()

	body := `{"name":"Maria","familyname":"Silva"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	if err == nil {
		t.Fatal("expected error for missing birthdate")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CreatePatient_SeedsProtocol(t *testing.T) {
	h, e := newTestHandler()

	body := `{"name":"Maria","familyname":"Silva","birthdate":"1958-03-14"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.CreatePatient(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var created struct {
		Patient Patient `json:"patient"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.GetProtocol(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Protocol Protocol `json:"protocol"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Protocol.Dialyzer != DefaultDialyzer ||
		resp.Protocol.Access != DefaultAccess ||
		resp.Protocol.DialysateFlow != DefaultDialysateFlow ||
		resp.Protocol.BloodFlow != DefaultBloodFlow ||
		resp.Protocol.Duration != DefaultDuration {
		t.Errorf("expected default protocol, got %+v", resp.Protocol)
	}
}

func TestHandler_ListPatients_EmptyRoster(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPatients(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"patients":[]}` {
		t.Errorf("expected empty patients array, got %s", body)
	}
}

func TestHandler_GetPatient_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.GetPatient(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_GetPatient_InvalidID(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	err := h.GetPatient(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_DeletePatient(t *testing.T) {
	h, e := newTestHandler()

	p := &Patient{Name: "Maria", FamilyName: "Silva", Birthdate: "1958-03-14"}
	h.svc.CreatePatient(context.Background(), p)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeletePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_DeletePatient_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := h.DeletePatient(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_UpdateProtocol(t *testing.T) {
	h, e := newTestHandler()

	p := &Patient{Name: "Maria", FamilyName: "Silva", Birthdate: "1958-03-14"}
	h.svc.CreatePatient(context.Background(), p)

	body := `{"dialyzer":"FX80","access":"Graft","dialysateFlow":"600 ml/min","bloodFlow":"350 ml/min","duration":"3.5 hours"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdateProtocol(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	proto, err := h.svc.GetProtocol(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proto.Access != "Graft" {
		t.Errorf("expected 'Graft', got %s", proto.Access)
	}
}

func TestHandler_UpdateProtocol_UnknownPatient(t *testing.T) {
	h, e := newTestHandler()

	body := `{"dialyzer":"FX80","access":"Graft","dialysateFlow":"600 ml/min","bloodFlow":"350 ml/min","duration":"3.5 hours"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.UpdateProtocol(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_CreatePatient_StoreFailureIs500(t *testing.T) {
	h := NewHandler(NewService(failingStore{}, failingStore{}))
	e := echo.New()

	body := `{"name":"Maria","familyname":"Silva","birthdate":"1958-03-14"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusInternalServerError {
		t.Errorf("store failure must be 500, got %d", he.Code)
	}
}

func TestHandler_UpdateProtocol_StoreFailureIs500(t *testing.T) {
	h := NewHandler(NewService(failingStore{}, failingStore{}))
	e := echo.New()

	body := `{"dialyzer":"FX80","access":"Graft","dialysateFlow":"600 ml/min","bloodFlow":"350 ml/min","duration":"3.5 hours"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateProtocol(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusInternalServerError {
		t.Errorf("store failure must be 500, got %d", he.Code)
	}
}

func TestHandler_UpdateProtocol_MissingField(t *testing.T) {
	h, e := newTestHandler()

	p := &Patient{Name: "Maria", FamilyName: "Silva", Birthdate: "1958-03-14"}
	h.svc.CreatePatient(context.Background(), p)

	body := `{"dialyzer":"FX80"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateProtocol(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
