package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response package's JSON shape.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Warning *struct {
		Code string `json:"code"`
	} `json:"warning"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testRequest struct {
	method  string
	path    string
	body    string
	params  map[string]string
	query   string
	profile *entity.UserProfile
}

func newTestContext(t *testing.T, r testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	target := r.path
	if r.query != "" {
		target += "?" + r.query
	}
	req := httptest.NewRequest(r.method, target, body)
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for name, value := range r.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if r.profile != nil {
		middleware.SetProfile(c, r.profile)
	}

	return c, rec
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

//nolint:gochecknoglobals
var (
	customer = &entity.UserProfile{ID: "user-1", Role: entity.RoleCustomer, Status: entity.UserStatusActive}
	admin    = &entity.UserProfile{ID: "admin-1", Role: entity.RoleAdmin, Status: entity.UserStatusActive}
)
