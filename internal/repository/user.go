package repository

import (
	"context"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/jackc/pgx/v5"
)

const usersTable = "users"

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	stmt := `
		SELECT id, name, email
		FROM users
		ORDER BY id`

	return queryAll[model.User](ctx, r.server.DB.Pool, usersTable, stmt)
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	stmt := `
		SELECT id, name, email
		FROM users
		WHERE id = @id`

	return queryOne[model.User](ctx, r.server.DB.Pool, usersTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	stmt := `
		SELECT id, name, email
		FROM users
		WHERE email = @email
		ORDER BY id
		LIMIT 1`

	return queryOne[model.User](ctx, r.server.DB.Pool, usersTable, stmt, pgx.NamedArgs{"email": email})
}

func (r *UserRepository) Save(ctx context.Context, user model.User) (int, error) {
	stmt := `
		INSERT INTO users (name, email)
		VALUES (@name, @email)
		RETURNING id`

	return insertReturningID(ctx, r.server.DB.Pool, usersTable, stmt, pgx.NamedArgs{
		"name":  user.Name,
		"email": user.Email,
	})
}

func (r *UserRepository) UpdateByID(ctx context.Context, id int, user model.User) (int64, error) {
	stmt := `
		UPDATE users
		SET name = @name, email = @email
		WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, usersTable, stmt, pgx.NamedArgs{
		"id":    id,
		"name":  user.Name,
		"email": user.Email,
	})
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	stmt := `DELETE FROM users WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, usersTable, stmt, pgx.NamedArgs{"id": id})
}
