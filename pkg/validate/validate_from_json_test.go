package validate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestValidateOrderLineFromJSON_OK(t *testing.T) {
	line, err := ValidateOrderLineFromJSON(context.Background(), NewOrderLineValidator(), []byte(lineJSON(7, 3, 10, "mug")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.OrderLineID != 7 || line.PackageTypeID != 3 || line.Quantity != 10 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if line.UnitPrice.String() != "32" {
		t.Fatalf("unexpected price: %s", line.UnitPrice)
	}
}

func TestValidateOrderLineFromJSON_UnknownField(t *testing.T) {
	raw := `{"Unknown":"x",` + lineJSON(1, 1, 1, "x")[1:]
	_, err := ValidateOrderLineFromJSON(context.Background(), NewOrderLineValidator(), []byte(raw))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got: %v", err)
	}
}

func TestValidateOrderLineFromJSON_TrailingData(t *testing.T) {
	raw := lineJSON(1, 1, 1, "x") + "{}"
	_, err := ValidateOrderLineFromJSON(context.Background(), NewOrderLineValidator(), []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateOrderLineFromJSON_DomainError(t *testing.T) {
	_, err := ValidateOrderLineFromJSON(context.Background(), NewOrderLineValidator(), []byte(lineJSON(1, 99, 1, "x")))
	if !errors.Is(err, ErrInvalidOrderLine) {
		t.Fatalf("expected ErrInvalidOrderLine, got %v", err)
	}
}

func TestDecodeBatch(t *testing.T) {
	t.Run("single_object", func(t *testing.T) {
		lines, err := DecodeBatch([]byte(lineJSON(1, 1, 1, "a")))
		if err != nil || len(lines) != 1 {
			t.Fatalf("got %d lines err=%v", len(lines), err)
		}
	})

	t.Run("array", func(t *testing.T) {
		raw := "[" + lineJSON(1, 1, 1, "a") + "," + lineJSON(2, 2, 2, "b") + "]"
		lines, err := DecodeBatch([]byte(raw))
		if err != nil || len(lines) != 2 || lines[1].OrderLineID != 2 {
			t.Fatalf("got %+v err=%v", lines, err)
		}
	})

	t.Run("empty_array", func(t *testing.T) {
		if _, err := DecodeBatch([]byte(" [] ")); !errors.Is(err, ErrInvalidJSON) {
			t.Fatalf("expected ErrInvalidJSON, got %v", err)
		}
	})

	t.Run("unknown_field_in_element", func(t *testing.T) {
		raw := `[` + lineJSON(1, 1, 1, "a") + `,{"Foo":1}]`
		_, err := DecodeBatch([]byte(raw))
		if !errors.Is(err, ErrInvalidJSON) || !strings.Contains(err.Error(), "element 1") {
			t.Fatalf("expected element 1 ErrInvalidJSON, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := DecodeBatch([]byte("{")); !errors.Is(err, ErrInvalidJSON) {
			t.Fatalf("expected ErrInvalidJSON, got %v", err)
		}
	})
}

func TestValidateJSONDocument_ArrayMixed(t *testing.T) {
	raw := "[" + lineJSON(1, 1, 1, "a") + "," + lineJSON(2, 0, 1, "bad package") + "," + lineJSON(3, 14, 0, "c") + "]"

	var out bytes.Buffer
	res, err := ValidateJSONDocument(context.Background(), NewOrderLineValidator(), []byte(raw), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.String() != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", res)
	}
	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Fatalf("expected 2 output lines, got %d", got)
	}
}
