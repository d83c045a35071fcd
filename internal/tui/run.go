package tui

import (
	"context"

	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

// Run — полноэкранный обозреватель до выхода пользователя или отмены ctx.
func Run(ctx context.Context, src ports.OrderLineSource, log ports.Logger, opts ...browser.Option) error {
	p := tea.NewProgram(New(ctx, src, log, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
