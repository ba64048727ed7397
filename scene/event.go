package scene

import (
	"fmt"
	"time"
)

type InputEventType int

const (
	TouchDown InputEventType = iota
	TouchUp
	TouchDragged
)

func (s InputEventType) String() string {
	switch s {
	case TouchDown:
		return "touchDown"
	case TouchUp:
		return "touchUp"
	case TouchDragged:
		return "touchDragged"
	}
	return "unknown"
}

// InputEvent is a pointer event on its way through the actors under the
// pointer. The same event value is handed to every listener it reaches.
type InputEvent struct {
	Type    InputEventType
	StageX  float32
	StageY  float32
	Pointer int
	Button  int
	Time    time.Time

	stage         *Stage
	target        Node
	listenerActor Node

	handled bool
	stopped bool
}

// Target is the actor the pointer hit.
func (s *InputEvent) Target() Node {
	return s.target
}

// ListenerActor is the actor whose listener is being notified. It differs
// from the target when the event bubbles up to a parent.
func (s *InputEvent) ListenerActor() Node {
	return s.listenerActor
}

func (s *InputEvent) Stage() *Stage {
	return s.stage
}

func (s *InputEvent) Handle() {
	s.handled = true
}

func (s *InputEvent) IsHandled() bool {
	return s.handled
}

// Stop keeps the event from reaching further listeners or parents.
func (s *InputEvent) Stop() {
	s.stopped = true
}

func (s *InputEvent) IsStopped() bool {
	return s.stopped
}

func (s *InputEvent) String() string {
	return fmt.Sprintf("InputEvent{%s, %.1f, %.1f, pointer %d}", s.Type, s.StageX, s.StageY, s.Pointer)
}

// InputListener receives pointer events for an actor. Coordinates are in
// the listener actor's local coordinate system. Returning true from
// TouchDown makes the listener receive the drags and the up of that
// pointer even when the pointer leaves the actor.
type InputListener interface {
	TouchDown(event *InputEvent, x, y float32, pointer, button int) bool
	TouchUp(event *InputEvent, x, y float32, pointer, button int)
	TouchDragged(event *InputEvent, x, y float32, pointer int)
}

// Updater is implemented by listeners that need to be polled every frame.
type Updater interface {
	Update()
}

// InputAdapter implements InputListener with no-op methods.
type InputAdapter struct{}

func (InputAdapter) TouchDown(event *InputEvent, x, y float32, pointer, button int) bool {
	return false
}

func (InputAdapter) TouchUp(event *InputEvent, x, y float32, pointer, button int) {}

func (InputAdapter) TouchDragged(event *InputEvent, x, y float32, pointer int) {}
