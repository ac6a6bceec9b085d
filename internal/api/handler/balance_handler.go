package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
)

// BalanceHandler exposes the balance engine and the per-user journal.
type BalanceHandler struct {
	svc ports.BalanceService
}

func NewBalanceHandler(svc ports.BalanceService) *BalanceHandler {
	return &BalanceHandler{svc: svc}
}

// Operation godoc
//
//	@Summary		Deposit or spend
//	@Description	The body is a bare integer amount in minor units.
//	@Tags			balance
//	@Accept			plain
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id				path		int		true	"User ID"
//	@Param			operation		path		string	true	"deposit or spend"	Enums(deposit, spend)
//	@Param			Idempotency-Key	header		string	false	"Retry key"
//	@Param			amount			body		int		true	"Amount"
//	@Success		200				{object}	userResponse
//	@Failure		400				{object}	StatusResponse
//	@Failure		404				{object}	StatusResponse
//	@Failure		409				{object}	StatusResponse
//	@Router			/users/{id}/{operation} [post]
func (h *BalanceHandler) Operation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	op, ok := domain.ParseBalanceOperation(c.Param("operation"))
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", domain.ErrBadRequest, c.Param("operation"))
	}
	amount, err := bodyInt(c, "amount")
	if err != nil {
		return err
	}

	ctx, meta := c.Request().Context(), operationMeta(c)
	var u *domain.User
	switch op {
	case domain.OpDeposit:
		u, err = h.svc.Deposit(ctx, id, amount, meta)
	default:
		u, err = h.svc.Spend(ctx, id, amount, meta)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Buy godoc
//
//	@Summary		Buy a product
//	@Description	The body is a bare product id. The product price is debited.
//	@Tags			balance
//	@Accept			plain
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id				path		int		true	"User ID"
//	@Param			Idempotency-Key	header		string	false	"Retry key"
//	@Param			product			body		int		true	"Product ID"
//	@Success		200				{object}	userResponse
//	@Failure		400				{object}	StatusResponse
//	@Failure		404				{object}	StatusResponse
//	@Router			/users/{id}/buy [post]
func (h *BalanceHandler) Buy(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	productID, err := bodyInt(c, "product id")
	if err != nil {
		return err
	}
	u, err := h.svc.Purchase(c.Request().Context(), id, productID, operationMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Transfer godoc
//
//	@Summary	Transfer funds to another user
//	@Tags		balance
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id				path		int						true	"Sender user ID"
//	@Param		Idempotency-Key	header		string					false	"Retry key"
//	@Param		body			body		fundsTransferRequest	true	"Amount and receiver"
//	@Success	200				{object}	transferResponse
//	@Failure	400				{object}	StatusResponse
//	@Failure	404				{object}	StatusResponse
//	@Router		/users/{id}/transfer [post]
func (h *BalanceHandler) Transfer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req fundsTransferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.Transfer(c.Request().Context(), ports.TransferInput{
		SenderID:   id,
		ReceiverID: *req.Receiver,
		Amount:     *req.Amount,
		Meta:       operationMeta(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transferResponse{
		Sender:   toUserResponse(res.Sender),
		Receiver: toUserResponse(res.Receiver),
	})
}

// Events godoc
//
//	@Summary	Balance journal of a user, newest first
//	@Tags		balance
//	@Produce	json
//	@Param		id		path		int	true	"User ID"
//	@Param		limit	query		int	false	"Maximum entries (default 50, max 200)"
//	@Success	200		{array}		domain.BalanceEvent
//	@Failure	400		{object}	StatusResponse
//	@Failure	404		{object}	StatusResponse
//	@Router		/users/{id}/events [get]
func (h *BalanceHandler) Events(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return fmt.Errorf("%w: invalid limit %q", domain.ErrBadRequest, raw)
		}
	}

	events, err := h.svc.History(c.Request().Context(), id, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
