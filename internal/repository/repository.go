// Package repository owns all SQL access.
//
// Every exported method issues exactly one statement, so each call is
// its own transaction. Lookups return nil (not an error) when nothing
// matches, and updates/deletes report the affected row count so callers
// can tell "not found" apart from failure.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore persists users.
type UserStore interface {
	GetAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	// FindByEmail returns the lowest-id user with the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Save(ctx context.Context, user model.User) (int, error)
	UpdateByID(ctx context.Context, id int, user model.User) (int64, error)
	// DeleteByID removes the user and, through ON DELETE CASCADE, all of its records.
	DeleteByID(ctx context.Context, id int) (int64, error)
}

// ChildStore persists a record type owned by a user.
type ChildStore[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int) (*T, error)
	FindByUserID(ctx context.Context, userID int) ([]T, error)
	Save(ctx context.Context, item T) (int, error)
	UpdateByID(ctx context.Context, id int, item T) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
	DeleteByUserID(ctx context.Context, userID int) (int64, error)
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, table, sql string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:%s: %w", table, err)
	}

	return items, nil
}

func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, table, sql string, args ...any) (*T, error) {
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to collect row from table:%s: %w", table, err)
	}

	return item, nil
}

func insertReturningID(ctx context.Context, pool *pgxpool.Pool, table, sql string, args pgx.NamedArgs) (int, error) {
	var id int
	if err := pool.QueryRow(ctx, sql, args).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}

func execAffected(ctx context.Context, pool *pgxpool.Pool, table, sql string, args pgx.NamedArgs) (int64, error) {
	tag, err := pool.Exec(ctx, sql, args)
	if err != nil {
		return 0, fmt.Errorf("failed to modify %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}
