package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/domain"
)

func TestTimeout_SetsDeadline(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := Timeout(time.Second)(func(c echo.Context) error {
		if _, ok := c.Request().Context().Deadline(); !ok {
			t.Fatal("expected a deadline on the request context")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimeout_WrapsErrorAfterDeadline(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

	storeErr := errors.New("sql: transaction has already been committed or rolled back")
	handler := Timeout(10 * time.Millisecond)(func(c echo.Context) error {
		<-c.Request().Context().Done()
		return storeErr
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if !errors.Is(err, storeErr) {
		t.Fatal("handler error must stay in the chain")
	}
}

func TestTimeout_PassesThroughOtherErrors(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := Timeout(time.Second)(func(c echo.Context) error {
		return domain.ErrNotFound
	})
	if err := handler(c); !errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimeout_Disabled(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := Timeout(0)(func(c echo.Context) error {
		if _, ok := c.Request().Context().Deadline(); ok {
			t.Fatal("unexpected deadline")
		}
		return context.Canceled
	})
	if err := handler(c); !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: %v", err)
	}
}
