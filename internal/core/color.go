package core

// Color is a palette index for a screen cell. The platform layer maps it to
// a terminal color.
//
// The first eight values double as board cell ids: a locked cell holding id
// n is drawn with Color(n).
type Color uint8

// Block colors.
const (
	ColorDefault Color = iota
	ColorRed           // Z
	ColorGreen         // S
	ColorPurple        // T
	ColorYellow        // O
	ColorBlue          // J
	ColorOrange        // L
	ColorTeal          // I
	ColorGray          // garbage
	ColorWhite
	ColorDim
)

// Level theme colors, used for the playfield border.
const (
	ColorWood Color = iota + 32
	ColorWoodLight
	ColorWoodMid
	ColorDarkWood
	ColorNavy
	ColorDeepPurple
	ColorRedAlert
	ColorMaroon
	ColorDarkGrey
	ColorVoid
)

var themes = [...]Color{
	ColorWood, ColorWoodLight, ColorWoodMid, ColorDarkWood, ColorNavy,
	ColorDeepPurple, ColorRedAlert, ColorMaroon, ColorDarkGrey, ColorVoid,
}

// ThemeColor returns the border color for a level. Levels past the last
// theme keep the last one.
func ThemeColor(level int) Color {
	idx := Clamp(level-1, 0, len(themes)-1)
	return themes[idx]
}
