package enum

// Toggle returns the opposite mode (light↔dark). The zero value toggles like light.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}
