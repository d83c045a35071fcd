package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Gunvolt24/orderlines/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func ctxWithForm(form url.Values) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawQuery string
		want     int
		wantErr  bool
	}{
		{"missing_uses_default", "", 25, false},
		{"empty_uses_default", "pageSize=", 25, false},
		{"provided", "pageSize=10", 10, false},
		{"negative_passes_through", "pageSize=-3", -3, false},
		{"non_int", "pageSize=foo", 0, true},
		{"float", "pageSize=2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := httpx.QueryInt(ctxWithQuery(tt.rawQuery), "pageSize", 25)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v, wantErr=%v (query=%q)", err, tt.wantErr, tt.rawQuery)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("got %d, want %d (query=%q)", got, tt.want, tt.rawQuery)
			}
		})
	}
}

func TestFormInt(t *testing.T) {
	t.Parallel()

	got, err := httpx.FormInt(ctxWithForm(url.Values{"page": {" 4 "}}), "page", 1)
	if err != nil || got != 4 {
		t.Fatalf("got %d err=%v, want 4", got, err)
	}

	if _, err := httpx.FormInt(ctxWithForm(url.Values{"page": {"next"}}), "page", 1); err == nil {
		t.Fatalf("expected error for non-numeric page")
	}

	got, err = httpx.FormInt(ctxWithForm(url.Values{}), "page", 1)
	if err != nil || got != 1 {
		t.Fatalf("missing field: got %d err=%v, want default 1", got, err)
	}
}
