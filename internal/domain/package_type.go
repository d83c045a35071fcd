package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PackageType — тип упаковки 1..14 либо AllPackages.
type PackageType int

const (
	// AllPackages — пункт «All Packages» в селекторе (пустое значение формы).
	AllPackages PackageType = 0

	MinPackageType PackageType = 1
	MaxPackageType PackageType = 14

	// DefaultPackageType — тип, который уходит в type_id, если выбран AllPackages.
	DefaultPackageType PackageType = 1
)

// Valid сообщает, что тип лежит в 1..14.
func (p PackageType) Valid() bool { return p >= MinPackageType && p <= MaxPackageType }

// QueryTypeID — значение параметра type_id: выбранный тип или 1 для AllPackages.
func (p PackageType) QueryTypeID() int {
	if !p.Valid() {
		return int(DefaultPackageType)
	}
	return int(p)
}

// Label возвращает подпись пункта селектора.
func (p PackageType) Label() string {
	if p == AllPackages {
		return "All Packages"
	}
	return fmt.Sprintf("Package %d", int(p))
}

// FormValue — значение option в HTML-форме ("" для AllPackages).
func (p PackageType) FormValue() string {
	if p == AllPackages {
		return ""
	}
	return strconv.Itoa(int(p))
}

// ParsePackageType разбирает значение селектора: "" → AllPackages, "1".."14" → тип.
func ParsePackageType(raw string) (PackageType, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AllPackages, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return AllPackages, fmt.Errorf("package type %q: %w", raw, err)
	}
	p := PackageType(n)
	if !p.Valid() {
		return AllPackages, fmt.Errorf("package type %d out of range [%d, %d]", n, MinPackageType, MaxPackageType)
	}
	return p, nil
}

// SelectorOptions — 15 пунктов селектора: AllPackages и 1..14.
func SelectorOptions() []PackageType {
	opts := make([]PackageType, 0, int(MaxPackageType)+1)
	opts = append(opts, AllPackages)
	for p := MinPackageType; p <= MaxPackageType; p++ {
		opts = append(opts, p)
	}
	return opts
}

// Next/Prev — циклический обход селектора (AllPackages → 1 → ... → 14 → AllPackages).
func (p PackageType) Next() PackageType {
	if p >= MaxPackageType || p < AllPackages {
		return AllPackages
	}
	return p + 1
}

func (p PackageType) Prev() PackageType {
	if p <= AllPackages || p > MaxPackageType {
		return MaxPackageType
	}
	return p - 1
}
