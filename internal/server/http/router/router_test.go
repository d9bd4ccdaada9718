package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/quickfuel/fuelquote/internal/server/http/handlers"
	testhelpers "github.com/quickfuel/fuelquote/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.FuelQuoteFacadeStub{}
	engine := Setup(facade, logger)

	form := url.Values{"username": {"smith"}, "password": {"secret"}, "passwordConfirm": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303 for register, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	req = httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for history, got %d", resp.Code)
	}
}

func TestSetupRedirectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.FuelQuoteFacadeStub{}, logger)

	for _, target := range []string{"/", "/profile", "/fuel_quote_form", "/history", "/get_profile_data"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusSeeOther {
			t.Fatalf("expected 303 for anonymous %s, got %d", target, resp.Code)
		}
		if loc := resp.Header().Get("Location"); loc != "/login" {
			t.Fatalf("expected redirect to /login for %s, got %q", target, loc)
		}
	}
}

var _ handlers.FuelQuoteFacade = (*testhelpers.FuelQuoteFacadeStub)(nil)
