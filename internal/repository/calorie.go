package repository

import (
	"context"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/jackc/pgx/v5"
)

const caloriesTable = "calories"

type CalorieRepository struct {
	server *server.Server
}

func NewCalorieRepository(s *server.Server) *CalorieRepository {
	return &CalorieRepository{server: s}
}

func (r *CalorieRepository) GetAll(ctx context.Context) ([]model.Calorie, error) {
	stmt := `
		SELECT id, breakfast, lunch, dinner, snack, user_id
		FROM calories
		ORDER BY id`

	return queryAll[model.Calorie](ctx, r.server.DB.Pool, caloriesTable, stmt)
}

func (r *CalorieRepository) FindByID(ctx context.Context, id int) (*model.Calorie, error) {
	stmt := `
		SELECT id, breakfast, lunch, dinner, snack, user_id
		FROM calories
		WHERE id = @id`

	return queryOne[model.Calorie](ctx, r.server.DB.Pool, caloriesTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *CalorieRepository) FindByUserID(ctx context.Context, userID int) ([]model.Calorie, error) {
	stmt := `
		SELECT id, breakfast, lunch, dinner, snack, user_id
		FROM calories
		WHERE user_id = @user_id
		ORDER BY id`

	return queryAll[model.Calorie](ctx, r.server.DB.Pool, caloriesTable, stmt, pgx.NamedArgs{"user_id": userID})
}

func (r *CalorieRepository) Save(ctx context.Context, c model.Calorie) (int, error) {
	stmt := `
		INSERT INTO calories (breakfast, lunch, dinner, snack, user_id)
		VALUES (@breakfast, @lunch, @dinner, @snack, @user_id)
		RETURNING id`

	return insertReturningID(ctx, r.server.DB.Pool, caloriesTable, stmt, pgx.NamedArgs{
		"breakfast": c.Breakfast,
		"lunch":     c.Lunch,
		"dinner":    c.Dinner,
		"snack":     c.Snack,
		"user_id":   c.UserID,
	})
}

func (r *CalorieRepository) UpdateByID(ctx context.Context, id int, c model.Calorie) (int64, error) {
	stmt := `
		UPDATE calories
		SET breakfast = @breakfast,
			lunch = @lunch,
			dinner = @dinner,
			snack = @snack,
			user_id = @user_id
		WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, caloriesTable, stmt, pgx.NamedArgs{
		"id":        id,
		"breakfast": c.Breakfast,
		"lunch":     c.Lunch,
		"dinner":    c.Dinner,
		"snack":     c.Snack,
		"user_id":   c.UserID,
	})
}

func (r *CalorieRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	stmt := `DELETE FROM calories WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, caloriesTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *CalorieRepository) DeleteByUserID(ctx context.Context, userID int) (int64, error) {
	stmt := `DELETE FROM calories WHERE user_id = @user_id`

	return execAffected(ctx, r.server.DB.Pool, caloriesTable, stmt, pgx.NamedArgs{"user_id": userID})
}
