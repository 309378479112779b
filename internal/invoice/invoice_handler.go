package invoice

import (
	"net/http"
	"strconv"

	invoiceerrors "biztime/internal/invoice/errors"
	"biztime/internal/shared/apperror"
	"biztime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("invoice.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list invoices failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"invoices": invoices})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	inv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("create invoice failed", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"invoice": inv})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	inv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c)
}

// invoiceID parses the :id path parameter. A non-numeric id can never
// match a row, so it reads as not found rather than a syntax error.
func (h *Handler) invoiceID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, invoiceerrors.NotFound(raw))
		return 0, false
	}
	return id, true
}
