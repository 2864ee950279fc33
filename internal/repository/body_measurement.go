package repository

import (
	"context"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/jackc/pgx/v5"
)

const bodyMeasurementsTable = "bodymeasurements"

type BodyMeasurementRepository struct {
	server *server.Server
}

func NewBodyMeasurementRepository(s *server.Server) *BodyMeasurementRepository {
	return &BodyMeasurementRepository{server: s}
}

func (r *BodyMeasurementRepository) GetAll(ctx context.Context) ([]model.BodyMeasurement, error) {
	stmt := `
		SELECT id, weight, height, waist, chest, user_id
		FROM bodymeasurements
		ORDER BY id`

	return queryAll[model.BodyMeasurement](ctx, r.server.DB.Pool, bodyMeasurementsTable, stmt)
}

func (r *BodyMeasurementRepository) FindByID(ctx context.Context, id int) (*model.BodyMeasurement, error) {
	stmt := `
		SELECT id, weight, height, waist, chest, user_id
		FROM bodymeasurements
		WHERE id = @id`

	return queryOne[model.BodyMeasurement](ctx, r.server.DB.Pool, bodyMeasurementsTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *BodyMeasurementRepository) FindByUserID(ctx context.Context, userID int) ([]model.BodyMeasurement, error) {
	stmt := `
		SELECT id, weight, height, waist, chest, user_id
		FROM bodymeasurements
		WHERE user_id = @user_id
		ORDER BY id`

	return queryAll[model.BodyMeasurement](ctx, r.server.DB.Pool, bodyMeasurementsTable, stmt, pgx.NamedArgs{"user_id": userID})
}

func (r *BodyMeasurementRepository) Save(ctx context.Context, b model.BodyMeasurement) (int, error) {
	stmt := `
		INSERT INTO bodymeasurements (weight, height, waist, chest, user_id)
		VALUES (@weight, @height, @waist, @chest, @user_id)
		RETURNING id`

	return insertReturningID(ctx, r.server.DB.Pool, bodyMeasurementsTable, stmt, pgx.NamedArgs{
		"weight":  b.Weight,
		"height":  b.Height,
		"waist":   b.Waist,
		"chest":   b.Chest,
		"user_id": b.UserID,
	})
}

func (r *BodyMeasurementRepository) UpdateByID(ctx context.Context, id int, b model.BodyMeasurement) (int64, error) {
	stmt := `
		UPDATE bodymeasurements
		SET weight = @weight,
			height = @height,
			waist = @waist,
			chest = @chest,
			user_id = @user_id
		WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, bodyMeasurementsTable, stmt, pgx.NamedArgs{
		"id":      id,
		"weight":  b.Weight,
		"height":  b.Height,
		"waist":   b.Waist,
		"chest":   b.Chest,
		"user_id": b.UserID,
	})
}

func (r *BodyMeasurementRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	stmt := `DELETE FROM bodymeasurements WHERE id = @id`

	return execAffected(ctx, r.server.DB.Pool, bodyMeasurementsTable, stmt, pgx.NamedArgs{"id": id})
}

func (r *BodyMeasurementRepository) DeleteByUserID(ctx context.Context, userID int) (int64, error) {
	stmt := `DELETE FROM bodymeasurements WHERE user_id = @user_id`

	return execAffected(ctx, r.server.DB.Pool, bodyMeasurementsTable, stmt, pgx.NamedArgs{"user_id": userID})
}
