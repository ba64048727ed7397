package api

type Topic string

const (
	ShowError Topic = "event-show-error"

	GestureTap       Topic = "event-gesture-tap"
	GestureLongPress Topic = "event-gesture-long-press"
	GestureFling     Topic = "event-gesture-fling"
	GesturePan       Topic = "event-gesture-pan"
	GestureZoom      Topic = "event-gesture-zoom"
	GesturePinch     Topic = "event-gesture-pinch"
)
