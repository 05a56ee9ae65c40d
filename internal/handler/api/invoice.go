package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/middleware"
	"stay-client/internal/usecase/commands"
	"stay-client/internal/usecase/queries"
)

type InvoiceHandler struct {
	q        queries.InvoiceQueries
	payments commands.PaymentCommands
}

func NewInvoiceHandler(q queries.InvoiceQueries, payments commands.PaymentCommands) *InvoiceHandler {
	return &InvoiceHandler{q: q, payments: payments}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	items, err := h.q.ListMine(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		abortMapped(c, err, queryErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoices(items))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.q.Get(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortMapped(c, err, queryErrors, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}

func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	doc, err := h.q.DownloadPDF(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortMapped(c, err, queryErrors, nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

func (h *InvoiceHandler) CreatePaymentIntent(c *gin.Context) {
	intent, err := h.payments.CreateIntent(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		abortMapped(c, err, commandErrors, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentIntent(intent))
}
