package handler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
)

// HeaderIdempotencyKey lets a client retry a balance operation safely.
const HeaderIdempotencyKey = "Idempotency-Key"

// maxScalarBody bounds plain-integer request bodies.
const maxScalarBody = 64

func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrBadRequest, raw)
	}
	return id, nil
}

// bodyInt reads a request body holding a single integer, e.g. "150".
// A JSON number is accepted since it has the same text.
func bodyInt(c echo.Context, what string) (int64, error) {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxScalarBody+1))
	if err != nil {
		return 0, fmt.Errorf("%w: read body: %v", domain.ErrBadRequest, err)
	}
	if len(raw) > maxScalarBody {
		return 0, fmt.Errorf("%w: %s body too large", domain.ErrBadRequest, what)
	}

	s := strings.TrimSpace(string(raw))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrBadRequest, what, s)
	}
	return n, nil
}

func operationMeta(c echo.Context) ports.OperationMeta {
	return ports.OperationMeta{
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
		RequestID:      c.Response().Header().Get(echo.HeaderXRequestID),
	}
}

// bindAndValidate binds the JSON body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
