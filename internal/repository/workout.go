package repository

import (
	"context"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/jackc/pgx/v5"
)

const workoutsTable = "workouts"

type WorkoutRepository struct {
	server *server.Server
}

func NewWorkoutRepository(s *server.Server) *WorkoutRepository {
	return &WorkoutRepository{server: s}
}

func (r *WorkoutRepository) GetAll(ctx context.Context) ([]model.Workout, error) {
	stmt := `
		SELECT id, description, duration, numbers, user_id
		FROM workouts
		ORDER BY id`

	return queryAll[model.Workout](ctx, r.server.DB.Pool, workoutsTable, stmt)
}

func (r *WorkoutRepository) FindByID(ctx context.Context, id int) (*model.Workout, error) {
	stmt := `
		SELECT id, description, duration, numbers, user_id
		FROM workouts
		WHERE id = @id`

	return queryOne[model.Workout](ctx, r.server.DB.Pool, workoutsTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *WorkoutRepository) FindByUserID(ctx context.Context, userID int) ([]model.Workout, error) {
	stmt := `
		SELECT id, description, duration, numbers, user_id
		FROM workouts
		WHERE user_id = @user_id
		ORDER BY id`

	return queryAll[model.Workout](ctx, r.server.DB.Pool, workoutsTable, stmt, pgx.NamedArgs{"user_id": userID})
}

func (r *WorkoutRepository) Save(ctx context.Context, w model.Workout) (int, error) {
	stmt := `
		INSERT INTO workouts (description, duration, numbers, user_id)
		VALUES (@description, @duration, @numbers, @user_id)
		RETURNING id`

	return insertReturningID(ctx, r.server.DB.Pool, workoutsTable, stmt, pgx.NamedArgs{
		"description": w.Description,
		"duration":    w.Duration,
		"numbers":     w.Numbers,
		"user_id":     w.UserID,
	})
}

func (r *WorkoutRepository) UpdateByID(ctx context.Context, id int, w model.Workout) (int64, error) {
	stmt := `
		UPDATE workouts
		SET description = @description,
			duration = @duration,
			numbers = @numbers,
			user_id = @user_id
		WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, workoutsTable, stmt, pgx.NamedArgs{
		"id":          id,
		"description": w.Description,
		"duration":    w.Duration,
		"numbers":     w.Numbers,
		"user_id":     w.UserID,
	})
}

func (r *WorkoutRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	stmt := `DELETE FROM workouts WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, workoutsTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *WorkoutRepository) DeleteByUserID(ctx context.Context, userID int) (int64, error) {
	stmt := `DELETE FROM workouts WHERE user_id = @user_id`

	return execAffected(ctx, r.server.DB.Pool, workoutsTable, stmt, pgx.NamedArgs{"user_id": userID})
}
