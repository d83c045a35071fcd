package domain

// DefaultPageSize — размер страницы, фиксированный в интерфейсе.
const DefaultPageSize = 25

// Query — параметры одного запроса к сервису строк заказов.
type Query struct {
	TypeID   int // type_id, 1..14
	Page     int // page, >= 1
	PageSize int // pageSize
}
