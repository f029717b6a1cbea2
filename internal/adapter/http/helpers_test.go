package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"fieldsight-backend/internal/adapter/middleware"
	"fieldsight-backend/internal/auth"
)

const testUserID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	return e
}

// newAuthedApp builds an echo app with the token middleware installed and
// hands back a valid bearer token for testUserID. Routes are registered
// by each test.
func newAuthedApp(t *testing.T) (*echo.Echo, string) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	e := newEchoWithValidator()
	e.Use(middleware.Authenticate(tokens))

	token, err := tokens.Issue(testUserID, "agent@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return e, token
}

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
}
