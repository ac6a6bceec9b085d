package domain

import "time"

// User is an account holding a balance in currency minor units. The balance
// may be negative; no floor or ceiling is enforced.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Balance   int64     `json:"balance" db:"balance"`
	Active    bool      `json:"active" db:"active"`
	Audit     bool      `json:"audit" db:"audit"`
	Redirect  bool      `json:"redirect" db:"redirect"`
	Avatar    *int64    `json:"avatar,omitempty" db:"avatar"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserPatch is a sparse update for a User.
type UserPatch struct {
	Name     Field[string]
	Email    Field[string]
	Balance  Field[int64]
	Active   Field[bool]
	Audit    Field[bool]
	Redirect Field[bool]
	Avatar   Field[int64]
}

func (up UserPatch) Apply(u *User) {
	up.Name.apply(&u.Name)
	up.Email.applyOptional(&u.Email)
	up.Balance.apply(&u.Balance)
	up.Active.apply(&u.Active)
	up.Audit.apply(&u.Audit)
	up.Redirect.apply(&u.Redirect)
	up.Avatar.applyOptional(&u.Avatar)
}

// SetsBalance reports whether Apply overwrites the balance. A null balance
// is ignored like any other null on a required field.
func (up UserPatch) SetsBalance() bool {
	_, ok := up.Balance.Value()
	return ok
}

// UserStats aggregates over the full user set.
type UserStats struct {
	UserCount   int64 `json:"user_count"`
	ActiveCount int64 `json:"active_count"`
	BalanceSum  int64 `json:"balance_sum"`
}

// ComputeStats folds users into a UserStats.
func ComputeStats(users []*User) UserStats {
	var s UserStats
	for _, u := range users {
		s.UserCount++
		if u.Active {
			s.ActiveCount++
		}
		s.BalanceSum += u.Balance
	}
	return s
}
