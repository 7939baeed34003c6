// Package ui holds the contracts shared by the widget packages.
package ui

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}
