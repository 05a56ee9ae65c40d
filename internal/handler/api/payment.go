package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "stay-client/internal/handler/dto/request"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/httperr"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/usecase/commands"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// Confirm settles a simulated payment intent. Card data never leaves this
// process; only the intent and invoice ids are sent upstream.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	confirmation, err := h.cmds.Pay(c.Request.Context(), middleware.GetSession(c), req.ToInput())
	if err != nil {
		abortMapped(c, err, commandErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentConfirmation(confirmation))
}
