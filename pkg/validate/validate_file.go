package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/orderlines/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// DetectFormat — формат по расширению для auto; неизвестное расширение — JSON.
func DetectFormat(filePath string, format InputFormat) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile валидирует файл как JSON или JSONL и пишет валидные строки в ow.
func ValidateFile(ctx context.Context, validator ports.OrderLineValidator, filePath string, format InputFormat, ow io.Writer) (Result, error) {
	format = DetectFormat(filePath, format)
	if format != FormatJSON && format != FormatJSONL {
		return Result{}, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return Result{}, fmt.Errorf("read file: %w", err)
	}
	return ValidateJSONDocument(ctx, validator, raw, ow)
}
