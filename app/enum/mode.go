package enum

import (
	"fmt"
)

// Mode is the visual theme of the page. Only ModeLight and ModeDark are valid.
type Mode struct {
	name  string
	value int
}

func (e Mode) String() string { return e.name }

// Index returns the underlying integer value
func (e Mode) Index() int { return e.value }

// MarshalText implements encoding.TextMarshaler
func (e Mode) MarshalText() ([]byte, error) {
	return []byte(e.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Mode) UnmarshalText(text []byte) error {
	var err error
	*e, err = ParseMode(string(text))
	return err
}

// modeNameToValue maps names to enum values
var modeNameToValue = map[string]Mode{
	"light": ModeLight,
	"dark":  ModeDark,
}

// ParseMode converts string to mode enum value
func ParseMode(v string) (Mode, error) {
	if val, ok := modeNameToValue[v]; ok {
		return val, nil
	}
	return Mode{}, fmt.Errorf("invalid mode: %s", v)
}

// MustMode is like ParseMode but panics if string is invalid
func MustMode(v string) Mode {
	r, err := ParseMode(v)
	if err != nil {
		panic(err)
	}
	return r
}

// declared modes
var (
	ModeLight = Mode{name: "light", value: int(modeLight)}
	ModeDark  = Mode{name: "dark", value: int(modeDark)}
)

// ModeValues returns all possible enum values
func ModeValues() []Mode {
	return []Mode{ModeLight, ModeDark}
}

// ModeNames returns all possible enum names
func ModeNames() []string {
	return []string{"light", "dark"}
}
