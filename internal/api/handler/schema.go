package handler

import (
	"time"

	"github.com/space-market/pos-server/internal/core/domain"
)

// StatusResponse is the envelope for errors and bodiless successes.
type StatusResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"user 7: not found"`
}

// --- Products ---

type createProductRequest struct {
	Name     string `json:"name"     validate:"required"`
	Caffeine *int64 `json:"caffeine"`
	Alcohol  *int64 `json:"alcohol"`
	Energy   *int64 `json:"energy"`
	Sugar    *int64 `json:"sugar"`
	Price    *int64 `json:"price"`
	Active   *bool  `json:"active"`
	Image    *int64 `json:"image"`
}

// editProductRequest distinguishes an omitted key from an explicit null.
type editProductRequest struct {
	Name     domain.Field[string] `json:"name"     swaggertype:"string"`
	Caffeine domain.Field[int64]  `json:"caffeine" swaggertype:"integer"`
	Alcohol  domain.Field[int64]  `json:"alcohol"  swaggertype:"integer"`
	Energy   domain.Field[int64]  `json:"energy"   swaggertype:"integer"`
	Sugar    domain.Field[int64]  `json:"sugar"    swaggertype:"integer"`
	Price    domain.Field[int64]  `json:"price"    swaggertype:"integer"`
	Active   domain.Field[bool]   `json:"active"   swaggertype:"boolean"`
	Image    domain.Field[int64]  `json:"image"    swaggertype:"integer"`
}

type productResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Caffeine  *int64    `json:"caffeine"`
	Alcohol   *int64    `json:"alcohol"`
	Energy    *int64    `json:"energy"`
	Sugar     *int64    `json:"sugar"`
	Price     int64     `json:"price"`
	Active    bool      `json:"active"`
	Image     *int64    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Users ---

type createUserRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Email    *string `json:"email"`
	Balance  *int64  `json:"balance"`
	Active   *bool   `json:"active"`
	Audit    *bool   `json:"audit"`
	Redirect *bool   `json:"redirect"`
	Avatar   *int64  `json:"avatar"`
}

type editUserRequest struct {
	Name     domain.Field[string] `json:"name"     swaggertype:"string"`
	Email    domain.Field[string] `json:"email"    swaggertype:"string"`
	Balance  domain.Field[int64]  `json:"balance"  swaggertype:"integer"`
	Active   domain.Field[bool]   `json:"active"   swaggertype:"boolean"`
	Audit    domain.Field[bool]   `json:"audit"    swaggertype:"boolean"`
	Redirect domain.Field[bool]   `json:"redirect" swaggertype:"boolean"`
	Avatar   domain.Field[int64]  `json:"avatar"   swaggertype:"integer"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Balance   int64     `json:"balance"`
	Active    bool      `json:"active"`
	Audit     bool      `json:"audit"`
	Redirect  bool      `json:"redirect"`
	Avatar    *int64    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type usersStatsResponse struct {
	UserCount   int64 `json:"user_count"`
	ActiveCount int64 `json:"active_count"`
	BalanceSum  int64 `json:"balance_sum"`
}

// --- Balance ---

type fundsTransferRequest struct {
	Amount   *int64 `json:"amount"   validate:"required"`
	Receiver *int64 `json:"receiver" validate:"required"`
}

type transferResponse struct {
	Sender   userResponse `json:"sender"`
	Receiver userResponse `json:"receiver"`
}
