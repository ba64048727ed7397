package scene

import (
	"honnef.co/go/curve"
	"vincit.fi/scene-widgets/gesture"
)

// GestureHandler receives the gestures recognized on an actor together
// with the pointer event that completed them. Coordinates are local to
// the listener actor.
type GestureHandler interface {
	Tap(event *InputEvent, x, y float32, count int)
	// LongPress returning true stops the rest of the touch from producing
	// gestures.
	LongPress(event *InputEvent, x, y float32) bool
	Fling(event *InputEvent, velocityX, velocityY float32)
	Pan(event *InputEvent, x, y, deltaX, deltaY float32)
	Zoom(event *InputEvent, initialDistance, distance float32)
	Pinch(event *InputEvent, initialPointer1, initialPointer2, pointer1, pointer2 curve.Point)
}

// GestureAdapter implements GestureHandler with no-op methods.
type GestureAdapter struct{}

func (GestureAdapter) Tap(event *InputEvent, x, y float32, count int)            {}
func (GestureAdapter) LongPress(event *InputEvent, x, y float32) bool            { return false }
func (GestureAdapter) Fling(event *InputEvent, velocityX, velocityY float32)     {}
func (GestureAdapter) Pan(event *InputEvent, x, y, deltaX, deltaY float32)       {}
func (GestureAdapter) Zoom(event *InputEvent, initialDistance, distance float32) {}
func (GestureAdapter) Pinch(event *InputEvent, initialPointer1, initialPointer2, pointer1, pointer2 curve.Point) {
}

// GestureFuncs is a GestureHandler built from optional callbacks. Nil
// callbacks ignore the gesture.
type GestureFuncs struct {
	OnTap       func(event *InputEvent, x, y float32, count int)
	OnLongPress func(event *InputEvent, x, y float32) bool
	OnFling     func(event *InputEvent, velocityX, velocityY float32)
	OnPan       func(event *InputEvent, x, y, deltaX, deltaY float32)
	OnZoom      func(event *InputEvent, initialDistance, distance float32)
	OnPinch     func(event *InputEvent, initialPointer1, initialPointer2, pointer1, pointer2 curve.Point)
}

func (s *GestureFuncs) Tap(event *InputEvent, x, y float32, count int) {
	if s.OnTap != nil {
		s.OnTap(event, x, y, count)
	}
}

func (s *GestureFuncs) LongPress(event *InputEvent, x, y float32) bool {
	if s.OnLongPress != nil {
		return s.OnLongPress(event, x, y)
	}
	return false
}

func (s *GestureFuncs) Fling(event *InputEvent, velocityX, velocityY float32) {
	if s.OnFling != nil {
		s.OnFling(event, velocityX, velocityY)
	}
}

func (s *GestureFuncs) Pan(event *InputEvent, x, y, deltaX, deltaY float32) {
	if s.OnPan != nil {
		s.OnPan(event, x, y, deltaX, deltaY)
	}
}

func (s *GestureFuncs) Zoom(event *InputEvent, initialDistance, distance float32) {
	if s.OnZoom != nil {
		s.OnZoom(event, initialDistance, distance)
	}
}

func (s *GestureFuncs) Pinch(event *InputEvent, initialPointer1, initialPointer2, pointer1, pointer2 curve.Point) {
	if s.OnPinch != nil {
		s.OnPinch(event, initialPointer1, initialPointer2, pointer1, pointer2)
	}
}

// Recognizer turns raw pointer input into gestures reported to a
// gesture.Listener. *gesture.Detector is the default implementation.
type Recognizer interface {
	TouchDown(x, y float32, pointer, button int) bool
	TouchUp(x, y float32, pointer, button int) bool
	TouchDragged(x, y float32, pointer int) bool
	Update() bool
	Reset()
}

type RecognizerFactory func(listener gesture.Listener) Recognizer

// ActorGestureListener is an InputListener feeding a Recognizer and
// forwarding the recognized gestures to a GestureHandler.
type ActorGestureListener struct {
	handler    GestureHandler
	recognizer Recognizer

	// event is only set while a pointer callback is running.
	event *InputEvent
	// downEvent started the current touch sequence. Long presses found by
	// Update are reported with it.
	downEvent *InputEvent
}

func NewActorGestureListener(handler GestureHandler) *ActorGestureListener {
	return NewActorGestureListenerWithSettings(handler, gesture.DefaultSettings())
}

func NewActorGestureListenerWithSettings(handler GestureHandler, settings gesture.Settings) *ActorGestureListener {
	return NewActorGestureListenerWithRecognizer(handler, func(listener gesture.Listener) Recognizer {
		return gesture.NewDetectorWithSettings(listener, settings)
	})
}

func NewActorGestureListenerWithRecognizer(handler GestureHandler, factory RecognizerFactory) *ActorGestureListener {
	if handler == nil {
		handler = GestureAdapter{}
	}
	listener := &ActorGestureListener{handler: handler}
	listener.recognizer = factory(&gestureRelay{owner: listener})
	return listener
}

func (s *ActorGestureListener) Recognizer() Recognizer {
	return s.recognizer
}

func (s *ActorGestureListener) Handler() GestureHandler {
	return s.handler
}

// TouchDown always reports the event as handled so the listener keeps
// receiving the drags and the up of the pointer.
func (s *ActorGestureListener) TouchDown(event *InputEvent, x, y float32, pointer, button int) bool {
	if pointer == 0 {
		s.downEvent = event
	}
	s.withEvent(event, func() {
		s.recognizer.TouchDown(x, y, pointer, 0)
	})
	return true
}

func (s *ActorGestureListener) TouchUp(event *InputEvent, x, y float32, pointer, button int) {
	s.withEvent(event, func() {
		s.recognizer.TouchUp(x, y, pointer, 0)
	})
}

func (s *ActorGestureListener) TouchDragged(event *InputEvent, x, y float32, pointer int) {
	s.withEvent(event, func() {
		s.recognizer.TouchDragged(x, y, pointer)
	})
}

// Update lets the recognizer report time based gestures.
func (s *ActorGestureListener) Update() {
	if s.downEvent == nil {
		return
	}
	s.withEvent(s.downEvent, func() {
		s.recognizer.Update()
	})
}

func (s *ActorGestureListener) Cancel() {
	s.recognizer.Reset()
	s.downEvent = nil
}

func (s *ActorGestureListener) withEvent(event *InputEvent, fn func()) {
	s.event = event
	defer func() {
		s.event = nil
	}()
	fn()
}

type gestureRelay struct {
	owner *ActorGestureListener
}

func (s *gestureRelay) Tap(x, y float32, count int) bool {
	s.owner.handler.Tap(s.owner.event, x, y, count)
	return true
}

func (s *gestureRelay) LongPress(x, y float32) bool {
	return s.owner.handler.LongPress(s.owner.event, x, y)
}

func (s *gestureRelay) Fling(velocityX, velocityY float32) bool {
	s.owner.handler.Fling(s.owner.event, velocityX, velocityY)
	return true
}

func (s *gestureRelay) Pan(x, y, deltaX, deltaY float32) bool {
	s.owner.handler.Pan(s.owner.event, x, y, deltaX, deltaY)
	return true
}

func (s *gestureRelay) Zoom(initialDistance, distance float32) bool {
	s.owner.handler.Zoom(s.owner.event, initialDistance, distance)
	return true
}

func (s *gestureRelay) Pinch(initialPointer1, initialPointer2, pointer1, pointer2 curve.Point) bool {
	s.owner.handler.Pinch(s.owner.event, initialPointer1, initialPointer2, pointer1, pointer2)
	return true
}
