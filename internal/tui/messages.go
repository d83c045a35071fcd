package tui

import (
	"context"

	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

// fetchedMsg — итог загрузки с номером запроса; устаревшие отбрасывает browser.Apply.
type fetchedMsg struct {
	res browser.Result
}

// fetchCmd — загрузка вне цикла Update.
func fetchCmd(ctx context.Context, src ports.OrderLineSource, log ports.Logger, req browser.Request) tea.Cmd {
	return func() tea.Msg {
		return fetchedMsg{res: browser.Fetch(ctx, src, log, req)}
	}
}
