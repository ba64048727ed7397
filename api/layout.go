package api

// Layout is implemented by actors that size and position their content.
type Layout interface {
	Layout()
	Invalidate()
	InvalidateHierarchy()
	Validate()

	MinWidth() float32
	MinHeight() float32
	PrefWidth() float32
	PrefHeight() float32
}
