package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshReturnsNewPayload(t *testing.T) {
	template := &model.IDPayload{ID: 7}

	got := fresh(template)

	require.NotNil(t, got)
	assert.NotSame(t, template, got)
	assert.Zero(t, got.ID)
}

func TestListResponseHandler(t *testing.T) {
	tests := []struct {
		name   string
		result interface{}
		status int
		body   string
	}{
		{"nil slice", []model.User(nil), http.StatusNotFound, `[]`},
		{"empty slice", []model.User{}, http.StatusNotFound, `[]`},
		{"items", []model.User{{ID: 1, Name: "Ana", Email: "ana@example.com"}}, http.StatusOK,
			`[{"id":1,"name":"Ana","email":"ana@example.com"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, ListResponseHandler{}.Handle(c, tt.result))
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
