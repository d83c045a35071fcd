package rest

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// BrowserService — сессии обозревателя (реализует usecase.BrowserService).
type BrowserService interface {
	View(ctx context.Context, sessionID string) (browser.View, error)
	Filter(ctx context.Context, sessionID, text string) (browser.View, error)
	SelectPackage(ctx context.Context, sessionID string, p domain.PackageType) (browser.View, error)
	ChangePage(ctx context.Context, sessionID string, target int) (browser.View, error)
	Reload(ctx context.Context, sessionID string) (browser.View, error)
}

// BrowserHandler — страница обозревателя и её формы.
type BrowserHandler struct {
	service      BrowserService
	log          ports.Logger
	secureCookie bool
}

type BrowserHandlerOption func(*BrowserHandler)

// WithSecureCookie — cookie сессии только по HTTPS.
func WithSecureCookie(secure bool) BrowserHandlerOption {
	return func(h *BrowserHandler) { h.secureCookie = secure }
}

func NewBrowserHandler(service BrowserService, log ports.Logger, opts ...BrowserHandlerOption) *BrowserHandler {
	h := &BrowserHandler{service: service, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BrowserHandler) index(c *gin.Context) {
	v, err := h.service.View(c.Request.Context(), sessionID(c))
	if err != nil {
		h.fail(c, "View", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", newPageData(v))
}

// view — то же состояние в JSON (для скриптов и тестов).
func (h *BrowserHandler) view(c *gin.Context) {
	v, err := h.service.View(c.Request.Context(), sessionID(c))
	if err != nil {
		h.fail(c, "View", err)
		return
	}
	c.JSON(http.StatusOK, newViewDTO(v))
}

func (h *BrowserHandler) filter(c *gin.Context) {
	_, err := h.service.Filter(c.Request.Context(), sessionID(c), c.PostForm("quantity"))
	h.afterPost(c, "Filter", err)
}

func (h *BrowserHandler) selectPackage(c *gin.Context) {
	p, err := domain.ParsePackageType(c.PostForm("type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err = h.service.SelectPackage(c.Request.Context(), sessionID(c), p)
	h.afterPost(c, "SelectPackage", err)
}

func (h *BrowserHandler) changePage(c *gin.Context) {
	target, err := httpx.FormInt(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, err = h.service.ChangePage(c.Request.Context(), sessionID(c), target)
	h.afterPost(c, "ChangePage", err)
}

func (h *BrowserHandler) reload(c *gin.Context) {
	_, err := h.service.Reload(c.Request.Context(), sessionID(c))
	h.afterPost(c, "Reload", err)
}

// afterPost — Post/Redirect/Get: после формы возвращаемся на страницу.
func (h *BrowserHandler) afterPost(c *gin.Context, op string, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *BrowserHandler) fail(c *gin.Context, op string, err error) {
	h.log.Errorf(c.Request.Context(), "%s failed session=%s err=%v", op, sessionID(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
