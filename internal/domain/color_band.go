package domain

// ColorBand — цветовая полоса для подсветки строк одного типа упаковки.
// Class — класс Tailwind для веб-страницы, Hex — цвет для терминала.
type ColorBand struct {
	Class string
	Hex   string
}

var colorBands = map[int]ColorBand{
	1:  {Class: "bg-blue-200", Hex: "#bfdbfe"},
	2:  {Class: "bg-green-200", Hex: "#bbf7d0"},
	3:  {Class: "bg-yellow-200", Hex: "#fef08a"},
	4:  {Class: "bg-red-200", Hex: "#fecaca"},
	5:  {Class: "bg-purple-200", Hex: "#e9d5ff"},
	6:  {Class: "bg-indigo-200", Hex: "#c7d2fe"},
	7:  {Class: "bg-pink-200", Hex: "#fbcfe8"},
	8:  {Class: "bg-teal-200", Hex: "#99f6e4"},
	9:  {Class: "bg-orange-200", Hex: "#fed7aa"},
	10: {Class: "bg-blue-400", Hex: "#60a5fa"},
	11: {Class: "bg-green-400", Hex: "#4ade80"},
	12: {Class: "bg-yellow-400", Hex: "#facc15"},
	13: {Class: "bg-red-400", Hex: "#f87171"},
	14: {Class: "bg-purple-400", Hex: "#c084fc"},
}

// BandFor — полоса для PackageTypeID; ok=false для неизвестных id (без подсветки).
func BandFor(packageTypeID int) (ColorBand, bool) {
	b, ok := colorBands[packageTypeID]
	return b, ok
}

// HeaderBand — полоса заголовка таблицы: выбранный тип, иначе полоса типа 1.
func HeaderBand(selected PackageType) ColorBand {
	if b, ok := colorBands[int(selected)]; ok {
		return b
	}
	return colorBands[int(DefaultPackageType)]
}
