// Package enum defines the enumerated types shared across the application.
package enum

type mode int

const (
	modeLight mode = iota
	modeDark
)
