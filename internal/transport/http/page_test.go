package rest

import (
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v browser.View) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, pageTemplate.ExecuteTemplate(&sb, "index.html", newPageData(v)))
	return sb.String()
}

func TestPage_LoadingSuppressesTable(t *testing.T) {
	html := render(t, browser.View{Loading: true, Page: 1, PackageType: 2})
	require.Contains(t, html, "Loading…")
	require.NotContains(t, html, "<table")
}

func TestPage_RowsBandsAndSelector(t *testing.T) {
	v := browser.View{
		Lines: []domain.OrderLine{
			{OrderLineID: 1, PackageTypeID: 3},
			{OrderLineID: 2, PackageTypeID: 99},
		},
		PackageType:  3,
		Page:         1,
		PrevDisabled: true,
		NextDisabled: true,
		LastError:    errors.New("status 502"),
	}
	html := render(t, v)

	require.Contains(t, html, `<thead class="bg-yellow-200">`)
	require.Contains(t, html, `<tr class="bg-yellow-200">`)
	require.Contains(t, html, `<tr class="">`) // неизвестный тип без подсветки
	require.Contains(t, html, `<option value="3" class="bg-yellow-200" selected>Package 3</option>`)
	require.Contains(t, html, `<option value="" class="">All Packages</option>`)
	require.Contains(t, html, "Failed to load order lines: status 502")
	require.Equal(t, 2, strings.Count(html, " disabled>"))
}

func TestPageData_PagerTargets(t *testing.T) {
	d := newPageData(browser.View{Page: 4})
	require.Equal(t, 3, d.PrevPage)
	require.Equal(t, 5, d.NextPage)
	require.Len(t, d.Options, 15)
}
