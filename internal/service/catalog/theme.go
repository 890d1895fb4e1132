package catalog

const defaultThemeColor = "#FFFFFF"

var elementColors = map[string]string{
	"炎":       "#FF5C5C",
	"水":       "#4CC2F1",
	"風":       "#74C2A8",
	"雷":       "#CF72FF",
	"草":       "#A5C83B",
	"氷":       "#9FD6E3",
	"岩":       "#E2B015",
	"物理":      "#AAAAAA",
	"Unknown": "#888888",
}

// ElementTheme returns the accent colour for an element label.
func ElementTheme(label string) string {
	if color, ok := elementColors[label]; ok {
		return color
	}
	return defaultThemeColor
}
