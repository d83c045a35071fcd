package domain_test

import (
	"testing"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestParsePackageType(t *testing.T) {
	t.Parallel()

	ok := map[string]domain.PackageType{
		"":     domain.AllPackages,
		"  ":   domain.AllPackages,
		"1":    1,
		" 14 ": 14,
		"7":    7,
	}
	for raw, want := range ok {
		got, err := domain.ParsePackageType(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"0", "15", "-1", "abc", "3.5"} {
		_, err := domain.ParsePackageType(raw)
		require.Error(t, err, raw)
	}
}

func TestPackageType_QueryTypeID(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, domain.AllPackages.QueryTypeID())
	require.Equal(t, 3, domain.PackageType(3).QueryTypeID())
	require.Equal(t, 14, domain.MaxPackageType.QueryTypeID())
}

func TestPackageType_LabelAndFormValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "All Packages", domain.AllPackages.Label())
	require.Equal(t, "", domain.AllPackages.FormValue())
	require.Equal(t, "Package 9", domain.PackageType(9).Label())
	require.Equal(t, "9", domain.PackageType(9).FormValue())
}

func TestSelectorOptions(t *testing.T) {
	t.Parallel()

	opts := domain.SelectorOptions()
	require.Len(t, opts, 15)
	require.Equal(t, domain.AllPackages, opts[0])
	for i := 1; i < len(opts); i++ {
		require.Equal(t, domain.PackageType(i), opts[i])
	}
}

func TestPackageType_NextPrevWrap(t *testing.T) {
	t.Parallel()

	// полный круг вперёд и назад возвращает в исходную точку
	p := domain.AllPackages
	for range 15 {
		p = p.Next()
	}
	require.Equal(t, domain.AllPackages, p)
	for range 15 {
		p = p.Prev()
	}
	require.Equal(t, domain.AllPackages, p)

	require.Equal(t, domain.AllPackages, domain.MaxPackageType.Next())
	require.Equal(t, domain.MaxPackageType, domain.AllPackages.Prev())
	require.Equal(t, domain.AllPackages, domain.MinPackageType.Prev())
}
