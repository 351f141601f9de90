package core

// Color is a foreground color for a screen cell, backed by an ANSI 256-color
// code.
type Color uint8

// Colors used by the board, overlays and menus.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
)

var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorGray:         "245",
}

// ANSI returns the 256-color code for c, or "" for the terminal default and
// unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Colors lists every defined color in declaration order.
func Colors() []Color {
	out := make([]Color, len(ansiCodes))
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
