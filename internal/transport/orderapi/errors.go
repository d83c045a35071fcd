package orderapi

import (
	"errors"
	"fmt"
)

// Kind — класс сбоя загрузки.
type Kind string

const (
	KindTransport Kind = "transport" // сеть, таймаут, отмена
	KindStatus    Kind = "status"    // ответ не 2xx
	KindDecode    Kind = "decode"    // тело не разобралось как JSON
	KindShape     Kind = "shape"     // JSON, но не массив строк
)

// FetchError — единственный класс ошибок клиента.
type FetchError struct {
	Kind       Kind
	StatusCode int // только для KindStatus
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("order lines fetch failed: %s %d: %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("order lines fetch failed: %s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf — Kind ошибки в цепочке или "" если это не FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
