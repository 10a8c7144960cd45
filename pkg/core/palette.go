package core

// DefaultColor is the background applied when a note has none.
const DefaultColor = "#FCE9FF"

var palette = []string{
	DefaultColor,
	"#F6FAFF",
	"#EDFFEE",
	"#FEF9ED",
}

// Palette returns the selectable background colors in display order.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// IsPaletteColor reports whether c is one of the selectable colors.
func IsPaletteColor(c string) bool {
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}
