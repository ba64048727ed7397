// Package pointer turns polled or reported pointer state into the down,
// drag and up transitions a stage expects.
package pointer

import "vincit.fi/scene-widgets/common/logger"

// Target receives pointer input in stage coordinates. *scene.Stage
// implements it.
type Target interface {
	TouchDown(stageX float32, stageY float32, pointer int, button int) bool
	TouchDragged(stageX float32, stageY float32, pointer int) bool
	TouchUp(stageX float32, stageY float32, pointer int, button int) bool
}

const NoButton = -1

// Tracker remembers whether one pointer is down and where it was last
// seen. Only the first pressed button counts until it is released.
type Tracker struct {
	target  Target
	pointer int

	button int
	lastX  float32
	lastY  float32
}

func NewTracker(target Target, pointer int) *Tracker {
	return &Tracker{
		target:  target,
		pointer: pointer,
		button:  NoButton,
	}
}

func (s *Tracker) IsPressed() bool {
	return s.button != NoButton
}

func (s *Tracker) Button() int {
	return s.button
}

// Update forwards the transition from the previous state to the given one
// and returns what the target returned. Unchanged state returns false.
func (s *Tracker) Update(stageX float32, stageY float32, button int, pressed bool) bool {
	switch {
	case !s.IsPressed() && pressed:
		s.button = button
		s.lastX, s.lastY = stageX, stageY
		logger.Trace.Printf("Pointer %d button %d down at %.0f, %.0f", s.pointer, button, stageX, stageY)
		return s.target.TouchDown(stageX, stageY, s.pointer, button)
	case s.IsPressed() && !pressed:
		button = s.button
		s.button = NoButton
		logger.Trace.Printf("Pointer %d button %d up at %.0f, %.0f", s.pointer, button, stageX, stageY)
		return s.target.TouchUp(stageX, stageY, s.pointer, button)
	case s.IsPressed() && (stageX != s.lastX || stageY != s.lastY):
		s.lastX, s.lastY = stageX, stageY
		return s.target.TouchDragged(stageX, stageY, s.pointer)
	}
	return false
}

// Release lifts a pressed pointer at its last position, e.g. when the
// window loses focus in the middle of a drag.
func (s *Tracker) Release() bool {
	if !s.IsPressed() {
		return false
	}
	return s.Update(s.lastX, s.lastY, NoButton, false)
}
