package browser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Gunvolt24/orderlines/internal/domain"
)

// FilterByQuantity — подмножество lines с Quantity, равным разобранному тексту.
// Пустой (после trim) текст: без фильтра; нечисловой текст не совпадает ни с чем.
func FilterByQuantity(lines []domain.OrderLine, text string) []domain.OrderLine {
	if strings.TrimSpace(text) == "" {
		return lines
	}
	q, ok := ParseQuantity(text)
	if !ok {
		return []domain.OrderLine{}
	}
	filtered := make([]domain.OrderLine, 0, len(lines))
	for i := range lines {
		if lines[i].Quantity == q {
			filtered = append(filtered, lines[i])
		}
	}
	return filtered
}

// ParseQuantity — разбор ведущего целого: пробелы в начале, необязательный знак,
// затем десятичные цифры до первого постороннего символа ("12abc" → 12, "3.9" → 3).
// ok=false, если цифр нет или число не помещается в int.
func ParseQuantity(text string) (int, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, false
	}

	v, err := strconv.Atoi(sign + s[:n])
	if err != nil {
		return 0, false
	}
	return v, true
}
