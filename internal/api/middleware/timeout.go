package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/domain"
)

// Timeout bounds the request context. Store calls honour it, so an open
// transaction is rolled back when the deadline passes and the failure is
// reported as domain.ErrTimeout.
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if d <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, domain.ErrTimeout) {
				return fmt.Errorf("%w: %w", domain.ErrTimeout, err)
			}
			return err
		}
	}
}
