// Package orderapi: HTTP-клиент сервиса строк заказов (GET /api/orderlines).
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/pkg/ctxmeta"
	"github.com/Gunvolt24/orderlines/pkg/telemetry"
)

const (
	orderLinesPath = "/api/orderlines"
	maxBodyBytes   = 8 << 20
	errBodyPreview = 256
)

// Client — реализация ports.OrderLineSource поверх net/http.
type Client struct {
	base *url.URL
	http *http.Client
}

// Option — настройка клиента.
type Option func(*Client)

// WithHTTPClient — свой *http.Client (тесты, прокси). Таймаут берётся из него.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient — клиент с базовым адресом вида https://host[:port]. Запросы
// идут через otelhttp-транспорт; timeout ограничивает каждый запрос целиком.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		base: u,
		http: &http.Client{Timeout: timeout, Transport: telemetry.Transport(nil)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL — адрес запроса для q (type_id, page, pageSize).
func (c *Client) URL(q domain.Query) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + orderLinesPath
	v := url.Values{}
	v.Set("type_id", strconv.Itoa(q.TypeID))
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	u.RawQuery = v.Encode()
	return u.String()
}

// FetchOrderLines — одна страница строк. Любой сбой — *FetchError.
func (c *Client) FetchOrderLines(ctx context.Context, q domain.Query) ([]domain.OrderLine, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(q), http.NoBody)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Err:        errors.New(preview(body)),
		}
	}

	return decodeLines(body)
}

// decodeLines — тело обязано быть JSON-массивом; null и объекты — KindShape.
func decodeLines(body []byte) ([]domain.OrderLine, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, &FetchError{Kind: KindDecode, Err: errors.New("response is not valid JSON")}
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &FetchError{Kind: KindShape, Err: fmt.Errorf("expected JSON array, got %s", preview(trimmed))}
	}

	var lines []domain.OrderLine
	if err := json.Unmarshal(trimmed, &lines); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &FetchError{Kind: KindShape, Err: err}
		}
		return nil, &FetchError{Kind: KindDecode, Err: err}
	}
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	return lines, nil
}

func preview(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > errBodyPreview {
		s = s[:errBodyPreview] + "..."
	}
	if s == "" {
		return "empty body"
	}
	return s
}
