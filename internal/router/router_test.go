package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/health-tracker/internal/config"
	"github.com/deppfellow/health-tracker/internal/errs"
	"github.com/deppfellow/health-tracker/internal/handler"
	"github.com/deppfellow/health-tracker/internal/logger"
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository/memstore"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/deppfellow/health-tracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t      *testing.T
	router *echo.Echo
}

func newTestAPI(t *testing.T, mutate ...func(cfg *config.Config)) *testAPI {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server:  config.ServerConfig{Port: "0"},
	}
	for _, m := range mutate {
		m(cfg)
	}

	log := zerolog.Nop()
	s := &server.Server{
		Config:        cfg,
		Logger:        &log,
		LoggerService: &logger.LoggerService{},
	}

	repos := memstore.NewRepositories()
	return &testAPI{t: t, router: NewRouter(s, handler.NewHandlers(s, repos, service.NewService(s)))}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var payload string
	switch b := body.(type) {
	case nil:
	case string:
		payload = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		payload = string(raw)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (a *testAPI) createUser(name, email string) model.User {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/users", map[string]any{"name": name, "email": email})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.User](a.t, rec)
}

func TestUserLifecycle(t *testing.T) {
	api := newTestAPI(t)

	created := api.createUser("Test User 1", "testuser1@test.com")
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Test User 1", created.Name)

	rec := api.do(http.MethodGet, "/api/users/email/testuser1@test.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[model.User](t, rec))

	rec = api.do(http.MethodGet, "/api/users/email/testuser1%40test.com", nil)
	require.Equal(t, http.StatusOK, rec.Code, "percent-encoded email")
	assert.Equal(t, created, decode[model.User](t, rec))

	rec = api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = api.do(http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)

	rec = api.do(http.MethodGet, "/api/users/email/testuser1@test.com", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserByEmailEscaping(t *testing.T) {
	api := newTestAPI(t)
	plus := api.createUser("A B", "a+b@test.com")

	for _, path := range []string{"/api/users/email/a+b@test.com", "/api/users/email/a%2Bb%40test.com"} {
		rec := api.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, plus, decode[model.User](t, rec), path)
	}

	// A path that is not valid percent-encoding never reaches the store.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/api/users/email/bad%zz"
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email", decode[errs.HTTPError](t, rec).Errors[0].Field)
}

func TestListAllEmptyIsNotFoundWithEmptyArray(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/api/users", "/api/activities", "/api/bodyMeasurements", "/api/calories", "/api/workouts"} {
		rec := api.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}

	api.createUser("Ana", "ana@example.com")

	rec := api.do(http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.User](t, rec), 1)
}

func TestCreateChildForMissingUser(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/activities", map[string]any{
		"description": "Hiking",
		"duration":    22.0,
		"calories":    230,
		"started":     "2024-03-01T09:30:00+01:00",
		"userId":      -1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)

	rec = api.do(http.MethodGet, "/api/activities", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestActivityRoundTrip(t *testing.T) {
	api := newTestAPI(t)
	user := api.createUser("Ana", "ana@example.com")

	body := map[string]any{
		"id":          999,
		"description": "Hiking",
		"duration":    22.5,
		"calories":    230,
		"started":     "2024-03-01T09:30:00.123456789+01:00",
		"userId":      user.ID,
	}

	rec := api.do(http.MethodPost, "/api/activities", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, float64(999), created["id"], "client ids are ignored")
	assert.Equal(t, "2024-03-01T08:30:00.123456Z", created["started"], "stored as UTC at microsecond precision")

	rec = api.do(http.MethodGet, fmt.Sprintf("/api/activities/%v", created["id"]), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	delete(fetched, "id")
	delete(body, "id")
	body["userId"] = float64(user.ID)
	body["calories"] = float64(230)
	body["started"] = "2024-03-01T08:30:00.123456Z"
	assert.Equal(t, body, fetched)
}

func TestListByParent(t *testing.T) {
	api := newTestAPI(t)
	user := api.createUser("Ana", "ana@example.com")
	path := fmt.Sprintf("/api/users/%d/workouts", user.ID)

	rec := api.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "WORKOUT_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)

	for i := 0; i < 2; i++ {
		rec = api.do(http.MethodPost, "/api/workouts", map[string]any{
			"description": "Push ups", "duration": 5.0, "numbers": 20 + i, "userId": user.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = api.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Workout](t, rec), 2)

	rec = api.do(http.MethodGet, "/api/users/12345/workouts", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)
}

func TestUserDeleteCascades(t *testing.T) {
	api := newTestAPI(t)
	user := api.createUser("Ana", "ana@example.com")

	children := map[string]map[string]any{
		"activities":       {"description": "Run", "duration": 30.0, "calories": 300, "started": "2024-03-01T09:30:00Z", "userId": user.ID},
		"bodyMeasurements": {"weight": 80.0, "height": 180.0, "waist": 85.0, "chest": 100.0, "userId": user.ID},
		"calories":         {"breakfast": 300.0, "lunch": 600.0, "dinner": 700.0, "snack": 150.0, "userId": user.ID},
		"workouts":         {"description": "Squats", "duration": 5.0, "numbers": 20, "userId": user.ID},
	}

	created := map[string]float64{}
	for resource, body := range children {
		rec := api.do(http.MethodPost, "/api/"+resource, body)
		require.Equal(t, http.StatusCreated, rec.Code, resource)
		created[resource] = decode[map[string]any](t, rec)["id"].(float64)
	}

	rec := api.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	for resource, id := range created {
		rec := api.do(http.MethodGet, fmt.Sprintf("/api/%s/%d", resource, int(id)), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, resource)
	}
}

func TestUpdate(t *testing.T) {
	api := newTestAPI(t)
	user := api.createUser("Ana", "ana@example.com")

	rec := api.do(http.MethodPost, "/api/calories", map[string]any{
		"breakfast": 300.0, "lunch": 600.0, "dinner": 700.0, "snack": 150.0, "userId": user.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	calorie := decode[model.Calorie](t, rec)

	t.Run("missing id is a no-op", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/calories/9999", map[string]any{
			"breakfast": 1.0, "lunch": 1.0, "dinner": 1.0, "snack": 1.0, "userId": user.ID,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = api.do(http.MethodGet, "/api/calories", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []model.Calorie{calorie}, decode[[]model.Calorie](t, rec))
	})

	t.Run("full replace keyed by path id", func(t *testing.T) {
		rec := api.do(http.MethodPatch, fmt.Sprintf("/api/calories/%d", calorie.ID), map[string]any{
			"id": 9999, "breakfast": 250.0, "lunch": 500.0, "dinner": 650.0, "snack": 0.0, "userId": user.ID,
		})
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		assert.Empty(t, rec.Body.String())

		rec = api.do(http.MethodGet, fmt.Sprintf("/api/calories/%d", calorie.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.Calorie{
			ID: calorie.ID, Breakfast: 250, Lunch: 500, Dinner: 650, Snack: 0, UserID: user.ID,
		}, decode[model.Calorie](t, rec))
	})

	t.Run("user", func(t *testing.T) {
		rec := api.do(http.MethodPatch, fmt.Sprintf("/api/users/%d", user.ID), map[string]any{
			"name": "Ana Maria", "email": "ana.maria@example.com",
		})
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = api.do(http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil)
		assert.Equal(t, "Ana Maria", decode[model.User](t, rec).Name)
	})
}

func TestDeleteIsIdempotent(t *testing.T) {
	api := newTestAPI(t)
	user := api.createUser("Ana", "ana@example.com")

	rec := api.do(http.MethodPost, "/api/bodyMeasurements", map[string]any{
		"weight": 80.0, "height": 180.0, "waist": 85.0, "chest": 100.0, "userId": user.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[model.BodyMeasurement](t, rec).ID

	path := fmt.Sprintf("/api/bodyMeasurements/%d", id)
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path, nil).Code)
	for i := 0; i < 3; i++ {
		rec := api.do(http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "BODY_MEASUREMENT_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)
	}
}

func TestDeleteByParent(t *testing.T) {
	api := newTestAPI(t)
	user := api.createUser("Ana", "ana@example.com")
	path := fmt.Sprintf("/api/users/%d/activities", user.ID)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path, nil).Code)

	rec := api.do(http.MethodPost, "/api/activities", map[string]any{
		"description": "Run", "duration": 30.0, "calories": 300, "started": "2024-03-01T09:30:00Z", "userId": user.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, nil).Code)
}

func TestBadRequests(t *testing.T) {
	api := newTestAPI(t)

	t.Run("validation", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/users", map[string]any{"name": "Ana", "email": "not-an-email"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode[errs.HTTPError](t, rec)
		assert.Equal(t, "BAD_REQUEST", body.Code)
		assert.Equal(t, []errs.FieldError{{Field: "email", Error: "must be a valid email address"}}, body.Errors)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/users", `{"name": "Ana",`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/workouts/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative measurement", func(t *testing.T) {
		user := api.createUser("Bo", "bo@example.com")
		rec := api.do(http.MethodPost, "/api/workouts", map[string]any{
			"description": "Squats", "duration": -5.0, "numbers": 20, "userId": user.ID,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "duration", decode[errs.HTTPError](t, rec).Errors[0].Field)
	})
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/nothing-here", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errs.HTTPError](t, rec).Message)
}

func TestStatus(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.Config) {
		cfg.Server.RateLimit = config.RateLimitConfig{Rate: 0.001, Burst: 1}
	})

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/users", nil).Code)

	rec := api.do(http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode[errs.HTTPError](t, rec).Code)

	// The health endpoint is never limited.
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/status", nil).Code)
}
