package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// rgbAnchors are the reference RGB values used to fold 24-bit colors down to
// the terminal palette.
var rgbAnchors = []struct {
	rgb   uint32
	color Color
}{
	{0xff0000, ColorRed},
	{0x00cc00, ColorGreen},
	{0xffff00, ColorYellow},
	{0x0066ff, ColorBlue},
	{0xff00ff, ColorMagenta},
	{0x00ffff, ColorCyan},
	{0xffffff, ColorWhite},
	{0xff8800, ColorOrange},
	{0x808080, ColorGray},
}

// NearestColor maps a 0xRRGGBB value to the closest terminal color.
func NearestColor(rgb uint32) Color {
	best := ColorDefault
	bestDist := -1
	for _, a := range rgbAnchors {
		d := rgbDistance(rgb, a.rgb)
		if bestDist < 0 || d < bestDist {
			best, bestDist = a.color, d
		}
	}
	return best
}

func rgbDistance(a, b uint32) int {
	dr := int(a>>16&0xff) - int(b>>16&0xff)
	dg := int(a>>8&0xff) - int(b>>8&0xff)
	db := int(a&0xff) - int(b&0xff)
	return dr*dr + dg*dg + db*db
}
