// Package terminal runs a stage in a terminal with tcell. Every cell is one
// stage unit and the bottom row is stage y 0.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"vincit.fi/scene-widgets/backend/pointer"
)

// MouseTranslator turns tcell mouse reports, which carry the current
// button state, into pointer down, drag and up transitions. The mouse is
// always pointer 0.
type MouseTranslator struct {
	tracker      *pointer.Tracker
	screenHeight int
}

func NewMouseTranslator(target pointer.Target, screenHeight int) *MouseTranslator {
	return &MouseTranslator{
		tracker:      pointer.NewTracker(target, 0),
		screenHeight: screenHeight,
	}
}

func (s *MouseTranslator) SetScreenHeight(screenHeight int) {
	s.screenHeight = screenHeight
}

func (s *MouseTranslator) IsPressed() bool {
	return s.tracker.IsPressed()
}

// Translate forwards the transition the event describes and returns what
// the target returned. Events that change nothing return false.
func (s *MouseTranslator) Translate(event *tcell.EventMouse) bool {
	x, y := event.Position()
	stageX, stageY := s.toStage(x, y)
	button, pressed := buttonOf(event.Buttons())
	return s.tracker.Update(stageX, stageY, button, pressed)
}

func (s *MouseTranslator) toStage(x int, y int) (float32, float32) {
	return float32(x), float32(s.screenHeight - 1 - y)
}

// buttonOf maps the pressed button to the left 0, right 1, middle 2
// numbering used by the stage. Wheel events are ignored.
func buttonOf(buttons tcell.ButtonMask) (int, bool) {
	switch {
	case buttons&tcell.Button1 != 0:
		return 0, true
	case buttons&tcell.Button2 != 0:
		return 1, true
	case buttons&tcell.Button3 != 0:
		return 2, true
	}
	return pointer.NoButton, false
}
