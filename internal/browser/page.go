package browser

import "github.com/Gunvolt24/orderlines/internal/domain"

// PageWindow — границы окна страницы: start=(page-1)*size, end=page*size.
func PageWindow(page, size int) (start, end int) {
	return (page - 1) * size, page * size
}

// CurrentPage — срез lines[start:end] с обрезкой по границам; не паникует.
func CurrentPage(lines []domain.OrderLine, page, size int) []domain.OrderLine {
	start, end := PageWindow(page, size)
	start = clamp(start, 0, len(lines))
	end = clamp(end, start, len(lines))
	return lines[start:end]
}

// PrevDisabled — «Previous» недоступна на первой странице.
func PrevDisabled(page int) bool { return page == 1 }

// NextDisabled — «Next» недоступна, когда конец окна достиг числа видимых строк.
func NextDisabled(page, size, visible int) bool {
	_, end := PageWindow(page, size)
	return end >= visible
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
