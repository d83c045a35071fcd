package ports

import "context"

// SessionStore — хранилище сессий веб-обозревателя.
// Требования к реализации: потокобезопасность; вытеснение по ёмкости и TTL.
type SessionStore[S any] interface {
	// Get — сессия по id; (нулевое значение, false) при промахе/истечении.
	Get(ctx context.Context, id string) (S, bool)

	// Put — сохранить/обновить сессию.
	Put(ctx context.Context, id string, s S) error
}
