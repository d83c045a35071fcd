package validate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Gunvolt24/orderlines/internal/ports"
)

// Result — статистика валидации.
type Result struct {
	Valid   int
	Invalid int
}

func (r Result) String() string { return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid) }

// ValidateJSONLStream читает JSONL из reader'а, валидирует каждую строку,
// валидные пишет в writer каноническим JSON. Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderLineValidator, ir io.Reader, ow io.Writer) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue
		}

		line, err := ValidateOrderLineFromJSON(ctx, validator, lineBytes)
		if err != nil {
			// невалидная строка не прерывает поток
			res.Invalid++
			continue
		}
		if err := writeCanonical(ow, line); err != nil {
			return res, err
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
