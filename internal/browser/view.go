package browser

import "github.com/Gunvolt24/orderlines/internal/domain"

// View — производное представление для отрисовки; пересчитывается на каждый вызов.
type View struct {
	Lines []domain.OrderLine // строки текущей страницы

	AllCount     int
	VisibleCount int

	QuantityFilter string
	PackageType    domain.PackageType
	Page           int
	PageSize       int
	StartIndex     int
	EndIndex       int

	Loading      bool
	PrevDisabled bool
	NextDisabled bool
	LastError    error
}

// View — снимок состояния для фронтенда.
func (b *Browser) View() View {
	start, end := PageWindow(b.page, b.pageSize)
	return View{
		Lines:          CurrentPage(b.visible, b.page, b.pageSize),
		AllCount:       len(b.all),
		VisibleCount:   len(b.visible),
		QuantityFilter: b.quantityFilter,
		PackageType:    b.packageType,
		Page:           b.page,
		PageSize:       b.pageSize,
		StartIndex:     start,
		EndIndex:       end,
		Loading:        b.loading,
		PrevDisabled:   PrevDisabled(b.page),
		NextDisabled:   NextDisabled(b.page, b.pageSize, len(b.visible)),
		LastError:      b.lastErr,
	}
}

// AllLines / VisibleLines: текущие последовательности (только для чтения).
func (b *Browser) AllLines() []domain.OrderLine     { return b.all }
func (b *Browser) VisibleLines() []domain.OrderLine { return b.visible }
