package repository

import (
	"context"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/jackc/pgx/v5"
)

const activitiesTable = "activities"

type ActivityRepository struct {
	server *server.Server
}

func NewActivityRepository(s *server.Server) *ActivityRepository {
	return &ActivityRepository{server: s}
}

func (r *ActivityRepository) GetAll(ctx context.Context) ([]model.Activity, error) {
	stmt := `
		SELECT id, description, duration, calories, started, user_id
		FROM activities
		ORDER BY id`

	return queryAll[model.Activity](ctx, r.server.DB.Pool, activitiesTable, stmt)
}

func (r *ActivityRepository) FindByID(ctx context.Context, id int) (*model.Activity, error) {
	stmt := `
		SELECT id, description, duration, calories, started, user_id
		FROM activities
		WHERE id = @id`

	return queryOne[model.Activity](ctx, r.server.DB.Pool, activitiesTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *ActivityRepository) FindByUserID(ctx context.Context, userID int) ([]model.Activity, error) {
	stmt := `
		SELECT id, description, duration, calories, started, user_id
		FROM activities
		WHERE user_id = @user_id
		ORDER BY id`

	return queryAll[model.Activity](ctx, r.server.DB.Pool, activitiesTable, stmt, pgx.NamedArgs{"user_id": userID})
}

func (r *ActivityRepository) Save(ctx context.Context, a model.Activity) (int, error) {
	stmt := `
		INSERT INTO activities (description, duration, calories, started, user_id)
		VALUES (@description, @duration, @calories, @started, @user_id)
		RETURNING id`

	return insertReturningID(ctx, r.server.DB.Pool, activitiesTable, stmt, pgx.NamedArgs{
		"description": a.Description,
		"duration":    a.Duration,
		"calories":    a.Calories,
		"started":     a.Started,
		"user_id":     a.UserID,
	})
}

func (r *ActivityRepository) UpdateByID(ctx context.Context, id int, a model.Activity) (int64, error) {
	stmt := `
		UPDATE activities
		SET description = @description,
			duration = @duration,
			calories = @calories,
			started = @started,
			user_id = @user_id
		WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, activitiesTable, stmt, pgx.NamedArgs{
		"id":          id,
		"description": a.Description,
		"duration":    a.Duration,
		"calories":    a.Calories,
		"started":     a.Started,
		"user_id":     a.UserID,
	})
}

func (r *ActivityRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	stmt := `DELETE FROM activities WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, activitiesTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *ActivityRepository) DeleteByUserID(ctx context.Context, userID int) (int64, error) {
	stmt := `DELETE FROM activities WHERE user_id = @user_id`

	return execAffected(ctx, r.server.DB.Pool, activitiesTable, stmt, pgx.NamedArgs{"user_id": userID})
}
