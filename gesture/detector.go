// Package gesture recognizes taps, long presses, flings, pans, zooms and
// pinches from raw pointer down, dragged and up input.
//
// A Detector is driven from a single goroutine, usually the frame loop.
// Long presses are time based, so Update has to be called every frame
// while a pointer is down for them to be reported on time.
package gesture

import (
	"time"

	"honnef.co/go/curve"
	"vincit.fi/scene-widgets/common/logger"
)

// Listener receives recognized gestures. The returned value reports whether
// the gesture was handled.
type Listener interface {
	Tap(x, y float32, count int) bool
	// LongPress returning true stops any further gesture from being reported
	// until all pointers are lifted and a new touch starts.
	LongPress(x, y float32) bool
	Fling(velocityX, velocityY float32) bool
	Pan(x, y, deltaX, deltaY float32) bool
	Zoom(initialDistance, distance float32) bool
	Pinch(initialPointer1, initialPointer2, pointer1, pointer2 curve.Point) bool
}

// Adapter implements Listener with no-op methods. Embed it to implement
// only some of the gestures.
type Adapter struct{}

func (Adapter) Tap(x, y float32, count int) bool            { return false }
func (Adapter) LongPress(x, y float32) bool                 { return false }
func (Adapter) Fling(velocityX, velocityY float32) bool     { return false }
func (Adapter) Pan(x, y, deltaX, deltaY float32) bool       { return false }
func (Adapter) Zoom(initialDistance, distance float32) bool { return false }
func (Adapter) Pinch(initialPointer1, initialPointer2, pointer1, pointer2 curve.Point) bool {
	return false
}

type Settings struct {
	// TapSquareSize is the side of the square a pointer may move in and
	// still count as a tap.
	TapSquareSize float32
	// TapCountInterval is the maximum time between taps that are counted
	// as consecutive.
	TapCountInterval  time.Duration
	LongPressDuration time.Duration
	// MaxFlingDelay is the maximum time between the last drag and the
	// pointer up for the movement to count as a fling.
	MaxFlingDelay time.Duration
	Clock         func() time.Time
}

func DefaultSettings() Settings {
	return Settings{
		TapSquareSize:     20,
		TapCountInterval:  400 * time.Millisecond,
		LongPressDuration: 1100 * time.Millisecond,
		MaxFlingDelay:     150 * time.Millisecond,
		Clock:             time.Now,
	}
}

const maxPointers = 2

type pointerState struct {
	down     bool
	position curve.Point
}

type Detector struct {
	listener Listener
	settings Settings

	pointers [maxPointers]pointerState

	inTapSquare      bool
	tapSquareCenterX float32
	tapSquareCenterY float32

	tapCount       int
	lastTapTime    time.Time
	lastTapX       float32
	lastTapY       float32
	lastTapButton  int
	lastTapPointer int

	longPressPending bool
	longPressAt      time.Time
	longPressFired   bool

	pinching        bool
	panning         bool
	initialPointer1 curve.Point
	initialPointer2 curve.Point

	tracker VelocityTracker
}

func NewDetector(listener Listener) *Detector {
	return NewDetectorWithSettings(listener, DefaultSettings())
}

func NewDetectorWithSettings(listener Listener, settings Settings) *Detector {
	if settings.Clock == nil {
		settings.Clock = time.Now
	}
	return &Detector{
		listener: listener,
		settings: settings,
	}
}

func (s *Detector) Settings() Settings {
	return s.settings
}

func (s *Detector) TouchDown(x float32, y float32, pointer int, button int) bool {
	if pointer < 0 || pointer >= maxPointers {
		return false
	}
	now := s.settings.Clock()
	s.pointers[pointer] = pointerState{down: true, position: point(x, y)}

	if pointer == 0 && !s.pointers[1].down {
		s.tracker.Start(x, y, now)
		s.inTapSquare = true
		s.pinching = false
		s.longPressFired = false
		s.tapSquareCenterX = x
		s.tapSquareCenterY = y
		if !s.longPressPending {
			s.longPressPending = true
			s.longPressAt = now.Add(s.settings.LongPressDuration)
		}
		return false
	}

	if pointer == 0 {
		s.tracker.Start(x, y, now)
	}
	s.startPinch()
	return false
}

func (s *Detector) startPinch() {
	logger.Trace.Print("Second pointer down, pinching")
	s.inTapSquare = false
	s.pinching = true
	s.initialPointer1 = s.pointers[0].position
	s.initialPointer2 = s.pointers[1].position
	s.longPressPending = false
}

func (s *Detector) TouchDragged(x float32, y float32, pointer int) bool {
	if pointer < 0 || pointer >= maxPointers {
		return false
	}
	s.Update()
	if s.longPressFired {
		return false
	}
	s.pointers[pointer].position = point(x, y)

	if s.pinching {
		pointer1, pointer2 := s.pointers[0].position, s.pointers[1].position
		handled := s.listener.Pinch(s.initialPointer1, s.initialPointer2, pointer1, pointer2)
		return s.listener.Zoom(distance(s.initialPointer1, s.initialPointer2), distance(pointer1, pointer2)) || handled
	}

	s.tracker.Update(x, y, s.settings.Clock())

	if s.inTapSquare && !s.isWithinTapSquare(x, y, s.tapSquareCenterX, s.tapSquareCenterY) {
		s.longPressPending = false
		s.inTapSquare = false
	}

	if !s.inTapSquare {
		s.panning = true
		return s.listener.Pan(x, y, s.tracker.DeltaX(), s.tracker.DeltaY())
	}
	return false
}

func (s *Detector) TouchUp(x float32, y float32, pointer int, button int) bool {
	if pointer < 0 || pointer >= maxPointers {
		return false
	}
	s.Update()
	s.pointers[pointer].down = false
	s.pointers[pointer].position = point(x, y)

	if s.inTapSquare && !s.isWithinTapSquare(x, y, s.tapSquareCenterX, s.tapSquareCenterY) {
		s.inTapSquare = false
	}
	s.panning = false
	s.longPressPending = false
	if s.longPressFired {
		return false
	}

	now := s.settings.Clock()
	if s.inTapSquare {
		if s.lastTapButton != button || s.lastTapPointer != pointer ||
			now.Sub(s.lastTapTime) > s.settings.TapCountInterval ||
			!s.isWithinTapSquare(x, y, s.lastTapX, s.lastTapY) {
			s.tapCount = 0
		}
		s.tapCount++
		s.lastTapTime = now
		s.lastTapX = x
		s.lastTapY = y
		s.lastTapButton = button
		s.lastTapPointer = pointer
		return s.listener.Tap(x, y, s.tapCount)
	}

	if s.pinching {
		// Back to panning with the remaining pointer.
		s.pinching = false
		s.panning = true
		remaining := s.pointers[1-pointer].position
		s.tracker.Start(float32(remaining.X), float32(remaining.Y), now)
		return false
	}

	if now.Sub(s.tracker.LastTime()) < s.settings.MaxFlingDelay {
		s.tracker.Update(x, y, now)
		return s.listener.Fling(s.tracker.VelocityX(), s.tracker.VelocityY())
	}
	return false
}

// Update reports a long press once it is due. It returns the value
// returned by the listener.
func (s *Detector) Update() bool {
	if !s.longPressPending || s.settings.Clock().Before(s.longPressAt) {
		return false
	}
	s.longPressPending = false
	position := s.pointers[0].position
	logger.Trace.Printf("Long press at %.1f, %.1f", position.X, position.Y)
	s.longPressFired = s.listener.LongPress(float32(position.X), float32(position.Y))
	return s.longPressFired
}

// Reset forgets the current touch sequence, e.g. when the input focus is
// lost in the middle of a gesture.
func (s *Detector) Reset() {
	s.pointers = [maxPointers]pointerState{}
	s.inTapSquare = false
	s.longPressPending = false
	s.longPressFired = false
	s.pinching = false
	s.panning = false
}

func (s *Detector) IsPanning() bool {
	return s.panning
}

func (s *Detector) IsPinching() bool {
	return s.pinching
}

func (s *Detector) IsLongPressed() bool {
	return s.longPressFired
}

func (s *Detector) isWithinTapSquare(x float32, y float32, centerX float32, centerY float32) bool {
	half := s.settings.TapSquareSize / 2
	return abs(x-centerX) < half && abs(y-centerY) < half
}

func point(x float32, y float32) curve.Point {
	return curve.Point{X: float64(x), Y: float64(y)}
}

func distance(a curve.Point, b curve.Point) float32 {
	return float32(a.Sub(b).Hypot())
}

func abs(value float32) float32 {
	if value < 0 {
		return -value
	}
	return value
}
