package handler

import (
	"net/url"

	"github.com/deppfellow/health-tracker/internal/errs"
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/deppfellow/health-tracker/internal/service"
	"github.com/labstack/echo/v4"
)

const userResource = "user"

type UserHandler struct {
	Handler
	users        repository.UserStore
	notification *service.NotificationService
}

func NewUserHandler(s *server.Server, repos *repository.Repositories, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler:      NewHandler(s),
		users:        repos.Users,
		notification: services.Notification,
	}
}

func (h *UserHandler) GetAll(c echo.Context, _ *model.ListPayload) ([]model.User, error) {
	return h.users.GetAll(c.Request().Context())
}

func (h *UserHandler) GetByID(c echo.Context, req *model.IDPayload) (*model.User, error) {
	user, err := h.users.FindByID(c.Request().Context(), req.ID)
	return found(user, err, userResource)
}

// GetByEmail looks a user up by the email path segment. echo leaves path
// params escaped, so "a%40b.com" is decoded here.
func (h *UserHandler) GetByEmail(c echo.Context, req *model.UserEmailPayload) (*model.User, error) {
	email, err := url.PathUnescape(req.Email)
	if err != nil {
		return nil, errs.NewBadRequestError("Invalid email in path", true, nil,
			[]errs.FieldError{{Field: "email", Error: "must be a valid percent-encoded value"}}, nil)
	}

	user, err := h.users.FindByEmail(c.Request().Context(), email)
	return found(user, err, userResource)
}

// Create stores the user and queues the welcome email.
func (h *UserHandler) Create(c echo.Context, req *model.CreateUserPayload) (*model.User, error) {
	ctx := c.Request().Context()

	id, err := h.users.Save(ctx, req.User(0))
	if err != nil {
		return nil, err
	}

	user := req.User(id)
	h.notification.WelcomeUser(ctx, user)

	return &user, nil
}

func (h *UserHandler) Update(c echo.Context, req *model.UpdateUserPayload) error {
	count, err := h.users.UpdateByID(c.Request().Context(), req.ID, req.User(req.ID))
	return affected(count, err, userResource)
}

// Delete removes the user; the store cascades to all of its records.
func (h *UserHandler) Delete(c echo.Context, req *model.IDPayload) error {
	count, err := h.users.DeleteByID(c.Request().Context(), req.ID)
	return affected(count, err, userResource)
}
