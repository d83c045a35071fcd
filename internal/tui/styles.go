package tui

import (
	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c"))
	activeStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#111827"))
)

// bandStyle — фон строки по типу упаковки; неизвестный тип без подсветки.
func bandStyle(packageTypeID int) lipgloss.Style {
	band, ok := domain.BandFor(packageTypeID)
	if !ok {
		return lipgloss.NewStyle()
	}
	return cellStyle.Background(lipgloss.Color(band.Hex))
}

func headerStyle(selected domain.PackageType) lipgloss.Style {
	return cellStyle.Bold(true).Background(lipgloss.Color(domain.HeaderBand(selected).Hex))
}
