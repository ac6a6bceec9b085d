package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
)

func TestUserHandler_Create_Conflict(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrConflict
		},
	}
	h := NewUserHandler(stub)

	c, _ := newContext(e, http.MethodPost, "/api/v3/users", `{"name":"alice"}`, echo.MIMEApplicationJSON, nil)
	if err := h.Create(c); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserHandler_Create_PassesOverrides(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Balance == nil || *in.Balance != 500 || in.Audit == nil || !*in.Audit {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: 2, Name: in.Name, Balance: 500, Audit: true, CreatedAt: fixedTime, UpdatedAt: fixedTime}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(e, http.MethodPost, "/api/v3/users", `{"name":"bob","balance":500,"audit":true}`, echo.MIMEApplicationJSON, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Edit_NullEmail(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
			if !patch.Email.IsNull() {
				t.Fatalf("email must be an explicit null")
			}
			if patch.Balance.Present() || patch.Name.Present() {
				t.Fatalf("omitted fields must be absent")
			}
			return &domain.User{ID: id, Name: "alice", CreatedAt: fixedTime, UpdatedAt: fixedTime}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(e, http.MethodPatch, "/api/v3/users/1", `{"email":null}`, echo.MIMEApplicationJSON, map[string]string{"id": "1"})
	if err := h.Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if v, ok := resp["email"]; !ok || v != nil {
		t.Fatalf("expected email: null, got %+v", resp)
	}
}

func TestUserHandler_Stats(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		statsFn: func(ctx context.Context) (domain.UserStats, error) {
			return domain.UserStats{UserCount: 3, ActiveCount: 2, BalanceSum: 1250}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(e, http.MethodGet, "/api/v3/users/stats", "", "", nil)
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_count"] != 3 || resp["active_count"] != 2 || resp["balance_sum"] != 1250 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id int64) error { return domain.ErrNotFound },
	}
	h := NewUserHandler(stub)

	c, rec := newContext(e, http.MethodDelete, "/api/v3/users/9", "", "", map[string]string{"id": "9"})
	if err := h.Delete(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler must not write on error, got %q", rec.Body.String())
	}
}
