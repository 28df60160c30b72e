package viewmodel

// Palette is an ordered list of hex colors. Chart marks take colors by index,
// wrapping around when there are more marks than colors.
type Palette []string

// DefaultPalette is the dashboard's standard chart palette.
var DefaultPalette = Palette{
	"#2563eb", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#06b6d4", "#ec4899",
}

// ColorAt returns the color for mark i. An empty palette yields "".
func (p Palette) ColorAt(i int) string {
	if len(p) == 0 {
		return ""
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Colors returns n colors cycled from the palette.
func (p Palette) Colors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = p.ColorAt(i)
	}
	return out
}
