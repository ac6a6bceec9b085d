package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds a context for method/target with an optional body and
// the given path parameters.
func newContext(e *echo.Echo, method, target, body, contentType string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range params {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
	return c, rec
}

type stubProductService struct {
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	getFn    func(ctx context.Context, id int64) (*domain.Product, error)
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubProductService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
	statsFn  func(ctx context.Context) (domain.UserStats, error)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) Stats(ctx context.Context) (domain.UserStats, error) {
	return s.statsFn(ctx)
}

type stubBalanceService struct {
	depositFn  func(ctx context.Context, userID, amount int64, meta ports.OperationMeta) (*domain.User, error)
	spendFn    func(ctx context.Context, userID, amount int64, meta ports.OperationMeta) (*domain.User, error)
	purchaseFn func(ctx context.Context, userID, productID int64, meta ports.OperationMeta) (*domain.User, error)
	transferFn func(ctx context.Context, in ports.TransferInput) (*ports.TransferResult, error)
	historyFn  func(ctx context.Context, userID int64, limit int) ([]domain.BalanceEvent, error)
}

func (s *stubBalanceService) Deposit(ctx context.Context, userID, amount int64, meta ports.OperationMeta) (*domain.User, error) {
	return s.depositFn(ctx, userID, amount, meta)
}

func (s *stubBalanceService) Spend(ctx context.Context, userID, amount int64, meta ports.OperationMeta) (*domain.User, error) {
	return s.spendFn(ctx, userID, amount, meta)
}

func (s *stubBalanceService) Purchase(ctx context.Context, userID, productID int64, meta ports.OperationMeta) (*domain.User, error) {
	return s.purchaseFn(ctx, userID, productID, meta)
}

func (s *stubBalanceService) Transfer(ctx context.Context, in ports.TransferInput) (*ports.TransferResult, error) {
	return s.transferFn(ctx, in)
}

func (s *stubBalanceService) History(ctx context.Context, userID int64, limit int) ([]domain.BalanceEvent, error) {
	return s.historyFn(ctx, userID, limit)
}
