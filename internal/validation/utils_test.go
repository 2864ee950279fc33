package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/health-tracker/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID       int     `param:"id" json:"-"`
	Name     string  `json:"name" validate:"required,max=10"`
	Email    string  `json:"email" validate:"required,email"`
	Duration float64 `json:"duration" validate:"min=0"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "started", Message: "must be in the past"}}
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/items/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(http.MethodPut, `{"id": 99, "name": "Ana", "email": "ana@example.com", "duration": 1.5}`)

	var p samplePayload
	require.NoError(t, BindAndValidate(c, &p))

	assert.Equal(t, 7, p.ID, "path id wins over body id")
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, 1.5, p.Duration)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{"name": "a name that is too long", "email": "nope", "duration": -1}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "must not exceed 10 characters"},
		{Field: "email", Error: "must be a valid email address"},
		{Field: "duration", Error: "must be at least 0"},
	}, httpErr.Errors)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, `{"name": `)

	httpErr := requireHTTPError(t, BindAndValidate(c, &samplePayload{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &customPayload{}))

	assert.Equal(t, []errs.FieldError{{Field: "started", Error: "must be in the past"}}, httpErr.Errors)
}
