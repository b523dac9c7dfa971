package theme

import (
	"fmt"

	"github.com/umputun/themeshell/app/enum"
)

// Icon names the glyph shown on the toggle control.
type Icon string

// icons rendered by the header toggle
const (
	IconSun  Icon = "sun"
	IconMoon Icon = "moon"
)

// Indicator is the icon and color pair the header shows for a mode.
type Indicator struct {
	Mode  enum.Mode
	Icon  Icon
	Label string
	Glyph string // plain-text form of the icon, used by the terminal preview
	Class string // color class applied to the icon
}

// IndicatorFor returns the indicator for the given mode.
func IndicatorFor(m enum.Mode) Indicator {
	switch m {
	case enum.ModeLight:
		return Indicator{Mode: m, Icon: IconSun, Label: "Light", Glyph: "☀", Class: "text-yellow-500"}
	case enum.ModeDark:
		return Indicator{Mode: m, Icon: IconMoon, Label: "Dark", Glyph: "☾", Class: "text-white"}
	default:
		panic(fmt.Sprintf("theme: unknown mode %q", m.String()))
	}
}
