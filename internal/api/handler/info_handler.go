package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/space-market/pos-server/internal/core/domain"
)

// InfoHandler serves static server metadata.
type InfoHandler struct {
	info domain.ServerInfo
}

func NewInfoHandler(info domain.ServerInfo) *InfoHandler {
	return &InfoHandler{info: info}
}

// Get godoc
//
//	@Summary	Server metadata
//	@Tags		info
//	@Produce	json
//	@Success	200	{object}	domain.ServerInfo
//	@Router		/info [get]
func (h *InfoHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.info)
}
