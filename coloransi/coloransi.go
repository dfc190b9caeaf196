// Package coloransi wraps text in ANSI colour escapes for logger prefixes and plain terminal output.
package coloransi

import (
	"fmt"
	"os"
	"strings"
)

// ColorCode holds either an ANSI colour code in the low 8 bits or an RGB value in the upper 24 bits.
type ColorCode uint32

// ANSI color codes
const (
	Black   ColorCode = 30
	Red     ColorCode = 31
	Green   ColorCode = 32
	Yellow  ColorCode = 33
	Blue    ColorCode = 34
	Magenta ColorCode = 35
	Cyan    ColorCode = 36
	White   ColorCode = 37

	// For bright colors, add 60
	BrightBlack  ColorCode = Black + 60
	BrightRed    ColorCode = Red + 60
	BrightGreen  ColorCode = Green + 60
	BrightYellow ColorCode = Yellow + 60

	// Background colors start at 40
	BackgroundOffset ColorCode = 10

	// RGB color mask
	RGBMask ColorCode = 0xFFFFFF00
)

// RGB creates a ColorCode from RGB values
func RGB(r, g, b uint8) ColorCode {
	return ColorCode(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8)
}

var (
	ColorOrange = RGB(255, 140, 0)
	ColorPurple = RGB(128, 0, 128)
	ColorTeal   = RGB(0, 128, 128)
	ColorBlue   = RGB(49, 114, 204)
	ColorWhite  = RGB(255, 255, 255)
)

// Enabled controls whether escapes are emitted at all. It starts off when NO_COLOR is set.
var Enabled = os.Getenv("NO_COLOR") == ""

// IsRGB checks if the ColorCode represents an RGB color
func (c ColorCode) IsRGB() bool {
	return c&RGBMask != 0
}

func (c ColorCode) rgb() (uint32, uint32, uint32) {
	return uint32(c>>24) & 0xFF, uint32(c>>16) & 0xFF, uint32(c>>8) & 0xFF
}

// Color formats the given text with the specified foreground and background colors.
func Color(fg, bg ColorCode, v ...interface{}) string {
	return wrap(OneForeground(fg)+OneBackground(bg), v)
}

// Foreground formats the given text with the specified foreground color.
func Foreground(fg ColorCode, v ...interface{}) string {
	return wrap(OneForeground(fg), v)
}

// Bold formats the given text in bold.
func Bold(v ...interface{}) string {
	return wrap("\033[1m", v)
}

// OneForeground returns the ANSI escape sequence for the given color code.
func OneForeground(code ColorCode) string {
	if code.IsRGB() {
		r, g, b := code.rgb()
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	return fmt.Sprintf("\033[%dm", code)
}

// OneBackground returns the ANSI escape sequence for the given background color code.
func OneBackground(code ColorCode) string {
	if code.IsRGB() {
		r, g, b := code.rgb()
		return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
	}
	return fmt.Sprintf("\033[%dm", code+BackgroundOffset)
}

// Reset returns the ANSI escape sequence to reset the text color.
func Reset() string {
	return "\033[0m"
}

func wrap(prefix string, v []interface{}) string {
	args := make([]string, len(v))
	for i, arg := range v {
		args[i] = fmt.Sprint(arg)
	}
	text := strings.Join(args, " ")
	if !Enabled {
		return text
	}
	return prefix + text + Reset()
}
