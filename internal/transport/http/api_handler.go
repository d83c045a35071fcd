package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/internal/usecase"
	"github.com/Gunvolt24/orderlines/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// APIHandler — HTTP-слой сервиса строк заказов.
type APIHandler struct {
	service ports.OrderLineReadService
	log     ports.Logger
	timeout time.Duration
}

// NewAPIHandler — timeout <= 0 отключает ограничение на запрос.
func NewAPIHandler(service ports.OrderLineReadService, log ports.Logger, timeout time.Duration) *APIHandler {
	return &APIHandler{service: service, log: log, timeout: timeout}
}

// listOrderLines — GET /api/orderlines?type_id=&page=&pageSize=.
// Ответ: JSON-массив без метаданных пагинации.
func (h *APIHandler) listOrderLines(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	lines, err := h.service.ListOrderLines(ctx, q)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, lines)
	case errors.Is(err, usecase.ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "ListOrderLines timeout type_id=%d page=%d", q.TypeID, q.Page)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "timeout"})
	default:
		h.log.Errorf(ctx, "ListOrderLines failed type_id=%d page=%d err=%v", q.TypeID, q.Page, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseQuery(c *gin.Context) (domain.Query, error) {
	typeID, err := httpx.QueryInt(c, "type_id", int(domain.DefaultPackageType))
	if err != nil {
		return domain.Query{}, err
	}
	page, err := httpx.QueryInt(c, "page", 1)
	if err != nil {
		return domain.Query{}, err
	}
	size, err := httpx.QueryInt(c, "pageSize", domain.DefaultPageSize)
	if err != nil {
		return domain.Query{}, err
	}
	return domain.Query{TypeID: typeID, Page: page, PageSize: size}, nil
}
