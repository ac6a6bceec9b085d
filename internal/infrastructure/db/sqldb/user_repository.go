package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/space-market/pos-server/internal/core/domain"
)

const userColumns = "id, name, email, balance, active, audit, redirect, avatar, created_at, updated_at"

// UserRepository implements ports.UserRepository on the users table.
type UserRepository struct {
	db  *sqlx.DB
	now func() time.Time

	listSQL   string
	findSQL   string
	insertSQL  string
	profileSQL string
	updateSQL  string
	deleteSQL  string
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{
		db:      db,
		now:     storeNow,
		listSQL: "SELECT " + userColumns + " FROM users ORDER BY id",
		findSQL: db.Rebind("SELECT " + userColumns + " FROM users WHERE id = ?"),
		insertSQL: db.Rebind(`INSERT INTO users
			(name, email, balance, active, audit, redirect, avatar, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
		profileSQL: db.Rebind(`UPDATE users SET
			name = ?, email = ?, active = ?, audit = ?, redirect = ?, avatar = ?, updated_at = ?
			WHERE id = ? RETURNING ` + userColumns),
		updateSQL: db.Rebind(`UPDATE users SET
			name = ?, email = ?, active = ?, audit = ?, redirect = ?, avatar = ?, updated_at = ?, balance = ?
			WHERE id = ? RETURNING ` + userColumns),
		deleteSQL: db.Rebind("DELETE FROM users WHERE id = ?"),
	}
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	users := []*domain.User{}
	if err := r.db.SelectContext(ctx, &users, r.listSQL); err != nil {
		return nil, mapError(err, "list users")
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.GetContext(ctx, &u, r.findSQL, id); err != nil {
		return nil, mapError(err, fmt.Sprintf("user %d", id))
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	now := r.now()
	err := r.db.QueryRowxContext(ctx, r.insertSQL,
		u.Name, u.Email, u.Balance, u.Active, u.Audit, u.Redirect, u.Avatar, now, now,
	).Scan(&u.ID)
	if err != nil {
		return mapError(err, fmt.Sprintf("user %q", u.Name))
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

// Update saves the profile columns of u and reloads it from the row. The
// balance column is written only when setBalance is true, so a patch that
// leaves the balance alone cannot undo a concurrent balance operation.
func (r *UserRepository) Update(ctx context.Context, u *domain.User, setBalance bool) error {
	query := r.profileSQL
	args := []any{u.Name, u.Email, u.Active, u.Audit, u.Redirect, u.Avatar, r.now()}
	if setBalance {
		query = r.updateSQL
		args = append(args, u.Balance)
	}
	args = append(args, u.ID)

	var saved domain.User
	if err := r.db.GetContext(ctx, &saved, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mapError(err, fmt.Sprintf("user %d", u.ID))
		}
		return mapError(err, fmt.Sprintf("user %q", u.Name))
	}
	*u = saved
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.deleteSQL, id)
	if err != nil {
		return mapError(err, fmt.Sprintf("user %d", id))
	}
	return requireRow(res, fmt.Sprintf("user %d", id))
}

// storeNow is the store clock. Postgres keeps microseconds, so returned records
// match what a later read sees on either backend.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// requireRow turns a write that touched nothing into ErrNotFound.
func requireRow(res sql.Result, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &Error{Sentinel: domain.ErrNotFound, Message: msg}
	}
	return nil
}
