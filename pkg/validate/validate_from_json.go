package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
)

// ErrInvalidJSON — сообщение не разбирается строго в строку(и) заказа.
var ErrInvalidJSON = errors.New("invalid json")

// DecodeOrderLine — строгий разбор одного объекта: неизвестные поля и
// данные после объекта запрещены.
func DecodeOrderLine(raw []byte) (domain.OrderLine, error) {
	var line domain.OrderLine
	if err := decodeStrict(raw, &line); err != nil {
		return domain.OrderLine{}, err
	}
	return line, nil
}

// DecodeBatch — объект или массив объектов (формат сообщения Kafka и JSON-файла).
func DecodeBatch(raw []byte) ([]domain.OrderLine, error) {
	elems, err := splitBatch(raw)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.OrderLine, 0, len(elems))
	for i, el := range elems {
		line, err := DecodeOrderLine(el)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ValidateOrderLineFromJSON — строгий разбор и доменная проверка одной строки.
func ValidateOrderLineFromJSON(ctx context.Context, validator ports.OrderLineValidator, raw []byte) (*domain.OrderLine, error) {
	line, err := DecodeOrderLine(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

// ValidateJSONDocument — JSON-документ (объект или массив): каждый элемент
// проверяется отдельно, валидные пишутся в ow канонической строкой.
// Ошибка возвращается только если документ не разобран целиком или не удалась запись.
func ValidateJSONDocument(ctx context.Context, validator ports.OrderLineValidator, raw []byte, ow io.Writer) (Result, error) {
	var res Result

	elems, err := splitBatch(raw)
	if err != nil {
		return Result{Invalid: 1}, err
	}
	for _, el := range elems {
		line, err := ValidateOrderLineFromJSON(ctx, validator, el)
		if err != nil {
			res.Invalid++
			continue
		}
		if err := writeCanonical(ow, line); err != nil {
			return res, err
		}
		res.Valid++
	}
	return res, nil
}

// splitBatch — элементы массива как raw-сообщения; одиночный объект — один элемент.
func splitBatch(raw []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}
	if trimmed[0] != '[' {
		return []json.RawMessage{trimmed}, nil
	}

	var elems []json.RawMessage
	if err := decodeStrict(trimmed, &elems); err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrInvalidJSON)
	}
	return elems, nil
}

func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	// гарантируем отсутствие данных после значения
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return nil
}

func writeCanonical(ow io.Writer, line *domain.OrderLine) error {
	marshal, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := ow.Write(append(marshal, '\n')); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	return nil
}
