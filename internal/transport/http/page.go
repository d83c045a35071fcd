package rest

import (
	"embed"
	"html/template"

	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

type rowData struct {
	domain.OrderLine
	Class string
}

type optionData struct {
	Value    string
	Label    string
	Class    string
	Selected bool
}

// pageData — всё, что нужно шаблону index.html.
type pageData struct {
	Rows        []rowData
	Options     []optionData
	HeaderClass string

	Quantity     string
	Page         int
	PrevPage     int
	NextPage     int
	PrevDisabled bool
	NextDisabled bool
	AllCount     int
	VisibleCount int
	Loading      bool
	Error        string
}

func newPageData(v browser.View) pageData {
	d := pageData{
		Rows:         make([]rowData, 0, len(v.Lines)),
		HeaderClass:  domain.HeaderBand(v.PackageType).Class,
		Quantity:     v.QuantityFilter,
		Page:         v.Page,
		PrevPage:     v.Page - 1,
		NextPage:     v.Page + 1,
		PrevDisabled: v.PrevDisabled,
		NextDisabled: v.NextDisabled,
		AllCount:     v.AllCount,
		VisibleCount: v.VisibleCount,
		Loading:      v.Loading,
	}
	if v.LastError != nil {
		d.Error = v.LastError.Error()
	}
	for _, l := range v.Lines {
		band, _ := domain.BandFor(l.PackageTypeID)
		d.Rows = append(d.Rows, rowData{OrderLine: l, Class: band.Class})
	}
	for _, p := range domain.SelectorOptions() {
		band, _ := domain.BandFor(int(p))
		d.Options = append(d.Options, optionData{
			Value:    p.FormValue(),
			Label:    p.Label(),
			Class:    band.Class,
			Selected: p == v.PackageType,
		})
	}
	return d
}

// lineDTO — строка в формате сервиса плюс класс полосы.
type lineDTO struct {
	domain.OrderLine
	Class string `json:"Class,omitempty"`
}

type viewDTO struct {
	Lines          []lineDTO `json:"lines"`
	AllCount       int       `json:"allCount"`
	VisibleCount   int       `json:"visibleCount"`
	QuantityFilter string    `json:"quantityFilter"`
	PackageType    int       `json:"packageType"`
	Page           int       `json:"page"`
	PageSize       int       `json:"pageSize"`
	Loading        bool      `json:"loading"`
	PrevDisabled   bool      `json:"prevDisabled"`
	NextDisabled   bool      `json:"nextDisabled"`
	HeaderClass    string    `json:"headerClass"`
	Error          string    `json:"error,omitempty"`
}

func newViewDTO(v browser.View) viewDTO {
	dto := viewDTO{
		Lines:          make([]lineDTO, 0, len(v.Lines)),
		AllCount:       v.AllCount,
		VisibleCount:   v.VisibleCount,
		QuantityFilter: v.QuantityFilter,
		PackageType:    int(v.PackageType),
		Page:           v.Page,
		PageSize:       v.PageSize,
		Loading:        v.Loading,
		PrevDisabled:   v.PrevDisabled,
		NextDisabled:   v.NextDisabled,
		HeaderClass:    domain.HeaderBand(v.PackageType).Class,
	}
	if v.LastError != nil {
		dto.Error = v.LastError.Error()
	}
	for _, l := range v.Lines {
		band, _ := domain.BandFor(l.PackageTypeID)
		dto.Lines = append(dto.Lines, lineDTO{OrderLine: l, Class: band.Class})
	}
	return dto
}
