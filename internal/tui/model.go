package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusTable focusArea = iota
	focusFilter
)

// Model — терминальный обозреватель строк заказов поверх browser.Browser.
type Model struct {
	ctx context.Context
	src ports.OrderLineSource
	log ports.Logger

	b       *browser.Browser
	mount   browser.Request
	input   textinput.Model
	spinner spinner.Model
	focus   focusArea

	spinning bool
	quitting bool
}

// New — модель с первым запросом; сама загрузка стартует в Init.
func New(ctx context.Context, src ports.OrderLineSource, log ports.Logger, opts ...browser.Option) Model {
	in := textinput.New()
	in.Prompt = "Quantity: "
	in.Placeholder = "any"
	in.CharLimit = 9

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	b := browser.New(opts...)
	return Model{
		ctx:     ctx,
		src:     src,
		log:     log,
		b:       b,
		mount:   b.Mount(),
		input:   in,
		spinner: sp,
		// Init запускает тики спиннера вместе с первой загрузкой
		spinning: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.mount))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		browser.Apply(m.ctx, m.b, m.log, msg.res)
		return m, nil

	case spinner.TickMsg:
		if !m.b.View().Loading {
			m.spinning = false
			return m, nil
		}
		m.spinning = true
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.toggleFocus(), nil
	}

	if m.focus == focusFilter {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			return m.toggleFocus(), nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.b.ApplyQuantityFilter(m.input.Value())
		return m, cmd
	}

	v := m.b.View()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		if v.PrevDisabled {
			return m, nil
		}
		req, fetch := m.b.ChangePage(v.Page - 1)
		return m.issue(req, fetch)
	case "right", "l":
		if v.NextDisabled {
			return m, nil
		}
		req, fetch := m.b.ChangePage(v.Page + 1)
		return m.issue(req, fetch)
	case "]":
		req, fetch := m.b.SelectPackageType(v.PackageType.Next())
		return m.issue(req, fetch)
	case "[":
		req, fetch := m.b.SelectPackageType(v.PackageType.Prev())
		return m.issue(req, fetch)
	case "r":
		return m.issue(m.b.Reload(), true)
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// цифра из таблицы сразу уходит в поле фильтра
		m = m.toggleFocus()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.b.ApplyQuantityFilter(m.input.Value())
		return m, cmd
	}
	return m, nil
}

func (m Model) toggleFocus() Model {
	if m.focus == focusFilter {
		m.focus = focusTable
		m.input.Blur()
		return m
	}
	m.focus = focusFilter
	m.input.Focus()
	return m
}

// issue — загрузка, если переход её требует; спиннер запускается один раз.
func (m Model) issue(req browser.Request, fetch bool) (tea.Model, tea.Cmd) {
	if !fetch {
		return m, nil
	}
	if m.spinning {
		return m, m.fetch(req)
	}
	m.spinning = true
	return m, tea.Batch(m.spinner.Tick, m.fetch(req))
}

func (m Model) fetch(req browser.Request) tea.Cmd {
	return fetchCmd(m.ctx, m.src, m.log, req)
}

// Browser — состояние обозревателя (для cmd и тестов).
func (m Model) Browser() *browser.Browser { return m.b }

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.b.View()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Order Lines"))
	sb.WriteString("  ")
	sb.WriteString(packageBar(v.PackageType))
	sb.WriteString("\n\n")

	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if v.Loading {
		sb.WriteString(m.spinner.View() + " loading order lines…\n\n")
	} else {
		sb.WriteString(renderTable(v))
	}

	sb.WriteString(pager(v))
	sb.WriteByte('\n')
	if v.LastError != nil {
		sb.WriteString(errorStyle.Render("Failed to load order lines: " + v.LastError.Error()))
		sb.WriteByte('\n')
	}
	sb.WriteString(mutedStyle.Render("←/h prev · →/l next · [ ] package · 0-9 quantity · tab focus · r reload · q quit"))
	sb.WriteByte('\n')
	return sb.String()
}

// renderTable — строки текущей страницы с полосами по типу упаковки.
func renderTable(v browser.View) string {
	var sb strings.Builder
	sb.WriteString(headerStyle(v.PackageType).Render(
		fmt.Sprintf("%-10s %-8s %-8s %-36s %-4s %8s %10s",
			"Line", "Order", "Stock", "Description", "Pkg", "Qty", "Price")))
	sb.WriteByte('\n')
	if len(v.Lines) == 0 {
		sb.WriteString(mutedStyle.Render("No order lines"))
		sb.WriteByte('\n')
	}
	for _, l := range v.Lines {
		sb.WriteString(bandStyle(l.PackageTypeID).Render(
			fmt.Sprintf("%-10d %-8d %-8d %-36s %-4d %8d %10s",
				l.OrderLineID, l.OrderID, l.StockItemID, truncate(l.Description, 36),
				l.PackageTypeID, l.Quantity, l.UnitPrice.StringFixed(2))))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func packageBar(selected domain.PackageType) string {
	return "◀ " + activeStyle.Render(selected.Label()) + " ▶"
}

func pager(v browser.View) string {
	prev, next := "< Prev", "Next >"
	if v.PrevDisabled {
		prev = mutedStyle.Render(prev)
	}
	if v.NextDisabled {
		next = mutedStyle.Render(next)
	}
	return fmt.Sprintf("%s  Page %d · %d of %d lines  %s", prev, v.Page, v.VisibleCount, v.AllCount, next)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
