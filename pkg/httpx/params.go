package httpx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// QueryInt — целое из query-параметра key; пустой/отсутствующий даёт def.
// Нечисловое значение: ошибка, вызывающий отвечает 400.
func QueryInt(c *gin.Context, key string, def int) (int, error) {
	return parseInt(key, c.Query(key), def)
}

// FormInt — то же для полей формы (POST /page).
func FormInt(c *gin.Context, key string, def int) (int, error) {
	return parseInt(key, c.PostForm(key), def)
}

func parseInt(key, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}
