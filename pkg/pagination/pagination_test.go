package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(target string) Params {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor("/")
	if !p.Unbounded() {
		t.Error("expected default params to be unbounded")
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := paramsFor("/?limit=25&offset=50")
	if p.Limit != 25 || p.Offset != 50 {
		t.Errorf("expected limit=25 offset=50, got %+v", p)
	}
	if p.Unbounded() {
		t.Error("expected bounded params")
	}
}

func TestFromContext_ClampsToMaxLimit(t *testing.T) {
	p := paramsFor("/?limit=10000")
	if p.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeValues(t *testing.T) {
	p := paramsFor("/?limit=-5&offset=-10")
	if p.Limit != 0 || p.Offset != 0 {
		t.Errorf("expected negative values zeroed, got %+v", p)
	}
}

func TestHasNext(t *testing.T) {
	p := Params{Limit: 10, Offset: 0}
	if !p.HasNext(10) {
		t.Error("expected a next page after a full page")
	}
	if p.HasNext(7) {
		t.Error("expected no next page after a short page")
	}

	unbounded := Params{}
	if unbounded.HasNext(1000) {
		t.Error("unbounded params never have a next page")
	}
}

func TestNextOffset(t *testing.T) {
	p := Params{Limit: 10, Offset: 20}
	if p.NextOffset() != 30 {
		t.Errorf("expected 30, got %d", p.NextOffset())
	}
}
