// Package browser: состояние и переходы обозревателя строк заказов.
//
// Browser не ходит в сеть сам: операции, требующие загрузки, возвращают Request,
// фронтенд (веб-сессия или TUI) выполняет его через Fetch и возвращает Result
// в Complete. Каждый запрос помечается возрастающим номером; ответы на
// устаревшие запросы отбрасываются.
package browser

import (
	"errors"

	"github.com/Gunvolt24/orderlines/internal/domain"
)

// ErrStaleResult — результат относится не к последнему выданному запросу.
var ErrStaleResult = errors.New("stale fetch result")

// Request — запрос на загрузку, выданный состоянием.
type Request struct {
	Seq   uint64
	Query domain.Query
}

// Result — итог выполнения Request.
type Result struct {
	Seq   uint64
	Lines []domain.OrderLine
	Err   error
}

// Browser — контейнер состояния. Не потокобезопасен: владелец сериализует вызовы.
type Browser struct {
	all     []domain.OrderLine
	visible []domain.OrderLine

	quantityFilter string
	page           int
	pageSize       int
	packageType    domain.PackageType

	loading bool
	seq     uint64
	lastErr error
}

// Option — настройка начального состояния.
type Option func(*Browser)

// WithPageSize задаёт размер страницы (по умолчанию 25).
func WithPageSize(n int) Option {
	return func(b *Browser) {
		if n > 0 {
			b.pageSize = n
		}
	}
}

// WithPackageType задаёт начальный тип упаковки (по умолчанию 1).
func WithPackageType(p domain.PackageType) Option {
	return func(b *Browser) { b.packageType = p }
}

// WithPage задаёт начальную страницу (по умолчанию 1).
func WithPage(page int) Option {
	return func(b *Browser) {
		if page >= 1 {
			b.page = page
		}
	}
}

// New возвращает состояние до монтирования: страница 1, тип 1, идёт загрузка.
func New(opts ...Option) *Browser {
	b := &Browser{
		page:        1,
		pageSize:    domain.DefaultPageSize,
		packageType: domain.DefaultPackageType,
		loading:     true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mount выдаёт первичную загрузку.
func (b *Browser) Mount() Request { return b.issue() }

// Reload повторяет загрузку с текущими параметрами.
func (b *Browser) Reload() Request { return b.issue() }

// ApplyQuantityFilter фильтрует строки по количеству локально, без загрузки.
func (b *Browser) ApplyQuantityFilter(text string) {
	b.quantityFilter = text
	b.visible = FilterByQuantity(b.all, text)
}

// SelectPackageType меняет тип упаковки. Номер страницы и текст фильтра не сбрасываются.
// Загрузка выдаётся только если значение действительно изменилось.
func (b *Browser) SelectPackageType(p domain.PackageType) (Request, bool) {
	if p == b.packageType {
		return Request{}, false
	}
	b.packageType = p
	return b.issue(), true
}

// ChangePage ставит номер страницы без ограничения диапазона;
// недопустимые переходы блокируются кнопками (см. View).
func (b *Browser) ChangePage(target int) (Request, bool) {
	if target == b.page {
		return Request{}, false
	}
	b.page = target
	return b.issue(), true
}

// Complete применяет результат последнего запроса.
// Успех заменяет all и visible отсортированной партией целиком; текст фильтра
// сохраняется, но заново не применяется. Ошибка оставляет прежние строки.
func (b *Browser) Complete(res Result) error {
	if res.Seq != b.seq {
		return ErrStaleResult
	}
	b.loading = false
	if res.Err != nil {
		b.lastErr = res.Err
		return nil
	}
	sorted := domain.SortByID(res.Lines)
	b.all = sorted
	b.visible = sorted
	b.lastErr = nil
	return nil
}

// Query — параметры запроса для текущего состояния.
func (b *Browser) Query() domain.Query {
	return domain.Query{
		TypeID:   b.packageType.QueryTypeID(),
		Page:     b.page,
		PageSize: b.pageSize,
	}
}

// Seq возвращает номер последнего выданного запроса.
func (b *Browser) Seq() uint64 { return b.seq }

func (b *Browser) issue() Request {
	b.seq++
	b.loading = true
	return Request{Seq: b.seq, Query: b.Query()}
}
