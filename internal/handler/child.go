package handler

import (
	"github.com/deppfellow/health-tracker/internal/errs"
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/labstack/echo/v4"
)

// ChildHandler implements the endpoints shared by every record type a
// user owns. The concrete handlers add Create and Update, which need
// their own payloads.
type ChildHandler[T any] struct {
	Handler
	resource string
	users    repository.UserStore
	store    repository.ChildStore[T]
}

func newChildHandler[T any](s *server.Server, resource string, users repository.UserStore, store repository.ChildStore[T]) *ChildHandler[T] {
	return &ChildHandler[T]{
		Handler:  NewHandler(s),
		resource: resource,
		users:    users,
		store:    store,
	}
}

// GetAll lists every record; see HandleList for the empty case.
func (h *ChildHandler[T]) GetAll(c echo.Context, _ *model.ListPayload) ([]T, error) {
	return h.store.GetAll(c.Request().Context())
}

func (h *ChildHandler[T]) GetByID(c echo.Context, req *model.IDPayload) (*T, error) {
	item, err := h.store.FindByID(c.Request().Context(), req.ID)
	return found(item, err, h.resource)
}

// GetByUserID lists a user's records. An unknown user and a user with
// no records are both 404s.
func (h *ChildHandler[T]) GetByUserID(c echo.Context, req *model.UserIDPayload) ([]T, error) {
	ctx := c.Request().Context()

	if err := requireUser(ctx, h.users, req.UserID); err != nil {
		return nil, err
	}

	items, err := h.store.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewResourceNotFoundError(h.resource)
	}

	return items, nil
}

func (h *ChildHandler[T]) DeleteByID(c echo.Context, req *model.IDPayload) error {
	count, err := h.store.DeleteByID(c.Request().Context(), req.ID)
	return affected(count, err, h.resource)
}

func (h *ChildHandler[T]) DeleteByUserID(c echo.Context, req *model.UserIDPayload) error {
	count, err := h.store.DeleteByUserID(c.Request().Context(), req.UserID)
	return affected(count, err, h.resource)
}

// create checks the owner exists, inserts build(0) and returns build(id).
func (h *ChildHandler[T]) create(c echo.Context, userID int, build func(id int) T) (*T, error) {
	ctx := c.Request().Context()

	if err := requireUser(ctx, h.users, userID); err != nil {
		return nil, err
	}

	id, err := h.store.Save(ctx, build(0))
	if err != nil {
		return nil, err
	}

	item := build(id)
	return &item, nil
}

func (h *ChildHandler[T]) update(c echo.Context, id int, item T) error {
	count, err := h.store.UpdateByID(c.Request().Context(), id, item)
	return affected(count, err, h.resource)
}
