// Package memstore is an in-memory implementation of the repository
// interfaces. It keeps the PostgreSQL semantics the handlers rely on:
// ids are assigned in increasing order, lists are ordered by id, a
// child insert for an unknown user fails with a foreign key violation,
// and deleting a user cascades to its records.
package memstore

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// NewRepositories returns an empty in-memory repository set.
func NewRepositories() *repository.Repositories {
	users := &Users{rows: map[int]model.User{}}

	activities := newChildren("activities", users.exists, func(a model.Activity, id int) model.Activity {
		a.ID = id
		return a
	})
	bodyMeasurements := newChildren("bodymeasurements", users.exists, func(b model.BodyMeasurement, id int) model.BodyMeasurement {
		b.ID = id
		return b
	})
	calories := newChildren("calories", users.exists, func(c model.Calorie, id int) model.Calorie {
		c.ID = id
		return c
	})
	workouts := newChildren("workouts", users.exists, func(w model.Workout, id int) model.Workout {
		w.ID = id
		return w
	})

	users.cascades = []func(userID int){
		activities.deleteOwned,
		bodyMeasurements.deleteOwned,
		calories.deleteOwned,
		workouts.deleteOwned,
	}

	return &repository.Repositories{
		Users:            users,
		Activities:       activities,
		BodyMeasurements: bodyMeasurements,
		Calories:         calories,
		Workouts:         workouts,
	}
}

type Users struct {
	mu       sync.RWMutex
	rows     map[int]model.User
	lastID   int
	cascades []func(userID int)
}

var _ repository.UserStore = (*Users)(nil)

func (u *Users) exists(id int) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	_, ok := u.rows[id]
	return ok
}

func (u *Users) GetAll(context.Context) ([]model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return sortedValues(u.rows, func(model.User) bool { return true }), nil
}

func (u *Users) FindByID(_ context.Context, id int) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if user, ok := u.rows[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	matches := sortedValues(u.rows, func(user model.User) bool { return user.Email == email })
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (u *Users) Save(_ context.Context, user model.User) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.lastID++
	user.ID = u.lastID
	u.rows[user.ID] = user
	return user.ID, nil
}

func (u *Users) UpdateByID(_ context.Context, id int, user model.User) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.rows[id]; !ok {
		return 0, nil
	}
	user.ID = id
	u.rows[id] = user
	return 1, nil
}

func (u *Users) DeleteByID(_ context.Context, id int) (int64, error) {
	u.mu.Lock()
	if _, ok := u.rows[id]; !ok {
		u.mu.Unlock()
		return 0, nil
	}
	delete(u.rows, id)
	u.mu.Unlock()

	for _, cascade := range u.cascades {
		cascade(id)
	}
	return 1, nil
}

type owned interface {
	OwnerID() int
}

// Children stores one user-owned record type.
type Children[T owned] struct {
	mu         sync.RWMutex
	table      string
	rows       map[int]T
	lastID     int
	userExists func(id int) bool
	withID     func(item T, id int) T
}

func newChildren[T owned](table string, userExists func(int) bool, withID func(T, int) T) *Children[T] {
	return &Children[T]{
		table:      table,
		rows:       map[int]T{},
		userExists: userExists,
		withID:     withID,
	}
}

func (c *Children[T]) GetAll(context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return sortedValues(c.rows, func(T) bool { return true }), nil
}

func (c *Children[T]) FindByID(_ context.Context, id int) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if item, ok := c.rows[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (c *Children[T]) FindByUserID(_ context.Context, userID int) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return sortedValues(c.rows, func(item T) bool { return item.OwnerID() == userID }), nil
}

func (c *Children[T]) Save(_ context.Context, item T) (int, error) {
	if !c.userExists(item.OwnerID()) {
		return 0, c.foreignKeyViolation(item.OwnerID())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	c.rows[c.lastID] = c.withID(item, c.lastID)
	return c.lastID, nil
}

func (c *Children[T]) UpdateByID(_ context.Context, id int, item T) (int64, error) {
	if !c.userExists(item.OwnerID()) {
		c.mu.RLock()
		_, ok := c.rows[id]
		c.mu.RUnlock()
		if !ok {
			return 0, nil
		}
		return 0, c.foreignKeyViolation(item.OwnerID())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.rows[id]; !ok {
		return 0, nil
	}
	c.rows[id] = c.withID(item, id)
	return 1, nil
}

func (c *Children[T]) DeleteByID(_ context.Context, id int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.rows[id]; !ok {
		return 0, nil
	}
	delete(c.rows, id)
	return 1, nil
}

func (c *Children[T]) DeleteByUserID(_ context.Context, userID int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deleteWhere(userID), nil
}

func (c *Children[T]) deleteOwned(userID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deleteWhere(userID)
}

func (c *Children[T]) deleteWhere(userID int) int64 {
	var affected int64
	for id, item := range c.rows {
		if item.OwnerID() == userID {
			delete(c.rows, id)
			affected++
		}
	}
	return affected
}

// foreignKeyViolation mirrors the error PostgreSQL raises for an unknown user_id.
func (c *Children[T]) foreignKeyViolation(userID int) error {
	return fmt.Errorf("failed to insert into %s: %w", c.table, &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint %q", c.table, c.table+"_user_id_fkey"),
		Detail:         fmt.Sprintf("Key (user_id)=(%d) is not present in table \"users\".", userID),
		TableName:      c.table,
		ConstraintName: c.table + "_user_id_fkey",
	})
}

func sortedValues[T any](rows map[int]T, keep func(T) bool) []T {
	out := []T{}
	for _, id := range slices.Sorted(maps.Keys(rows)) {
		if keep(rows[id]) {
			out = append(out, rows[id])
		}
	}
	return out
}
