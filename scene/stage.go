package scene

import (
	"time"

	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/common/logger"
)

type touchFocus struct {
	listener      InputListener
	listenerActor Node
	target        Node
	pointer       int
	button        int
}

// Canceller is implemented by listeners that keep per touch state which
// must be dropped when their touch focus is cancelled.
type Canceller interface {
	Cancel()
}

// Stage owns the root group and turns pointer input in stage coordinates
// into InputEvents. All methods must be called from the same goroutine.
type Stage struct {
	root         *Group
	width        float32
	height       float32
	clock        func() time.Time
	touchFocuses []touchFocus
}

func NewStage(width float32, height float32) *Stage {
	root := NewGroup()
	root.SetName("root")
	return &Stage{
		root:   root,
		width:  width,
		height: height,
		clock:  time.Now,
	}
}

func (s *Stage) Root() *Group {
	return s.root
}

func (s *Stage) AddActor(node Node) {
	s.root.AddActor(node)
}

func (s *Stage) Width() float32 {
	return s.width
}

func (s *Stage) Height() float32 {
	return s.height
}

func (s *Stage) SetSize(width float32, height float32) {
	s.width = width
	s.height = height
}

// SetClock replaces the clock used to time stamp events.
func (s *Stage) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Hit returns the top most touchable node at the stage coordinates.
func (s *Stage) Hit(stageX float32, stageY float32) Node {
	x, y := s.root.ParentToLocal(stageX, stageY)
	return s.root.Hit(x, y)
}

func (s *Stage) newEvent(eventType InputEventType, stageX, stageY float32, pointer, button int) *InputEvent {
	return &InputEvent{
		Type:    eventType,
		StageX:  stageX,
		StageY:  stageY,
		Pointer: pointer,
		Button:  button,
		Time:    s.clock(),
		stage:   s,
	}
}

// TouchDown delivers a pointer down to the hit actor and its parents and
// reports whether a listener handled it.
func (s *Stage) TouchDown(stageX float32, stageY float32, pointer int, button int) bool {
	target := s.Hit(stageX, stageY)
	if target == nil {
		return false
	}
	event := s.newEvent(TouchDown, stageX, stageY, pointer, button)
	event.target = target
	logger.Trace.Printf("%s on %s", event, target.Base())

	for node := target; node != nil; node = node.Base().Parent() {
		event.listenerActor = node
		node.Base().Notify(event)
		if event.IsStopped() {
			break
		}
	}
	return event.IsHandled()
}

// TouchDragged delivers a drag to the listeners that handled the down of
// the pointer.
func (s *Stage) TouchDragged(stageX float32, stageY float32, pointer int) bool {
	delivered := false
	for _, focus := range s.focusesOf(pointer) {
		event := s.newEvent(TouchDragged, stageX, stageY, pointer, focus.button)
		event.target = focus.target
		event.listenerActor = focus.listenerActor
		x, y := focus.listenerActor.Base().StageToLocal(stageX, stageY)
		focus.listener.TouchDragged(event, x, y, pointer)
		delivered = true
	}
	return delivered
}

// TouchUp delivers the up to the listeners that handled the down of the
// pointer and releases their touch focus.
func (s *Stage) TouchUp(stageX float32, stageY float32, pointer int, button int) bool {
	focuses := s.focusesOf(pointer)
	s.removeFocusesOf(pointer)
	for _, focus := range focuses {
		event := s.newEvent(TouchUp, stageX, stageY, pointer, button)
		event.target = focus.target
		event.listenerActor = focus.listenerActor
		x, y := focus.listenerActor.Base().StageToLocal(stageX, stageY)
		focus.listener.TouchUp(event, x, y, pointer, button)
	}
	return len(focuses) > 0
}

// CancelTouchFocus drops every touch focus without delivering ups.
func (s *Stage) CancelTouchFocus() {
	focuses := s.touchFocuses
	s.touchFocuses = nil
	for _, focus := range focuses {
		if canceller, ok := focus.listener.(Canceller); ok {
			canceller.Cancel()
		}
	}
}

func (s *Stage) addTouchFocus(listener InputListener, listenerActor Node, target Node, pointer int, button int) {
	for _, focus := range s.touchFocuses {
		if focus.listener == listener && focus.listenerActor == listenerActor && focus.pointer == pointer {
			return
		}
	}
	s.touchFocuses = append(s.touchFocuses, touchFocus{
		listener:      listener,
		listenerActor: listenerActor,
		target:        target,
		pointer:       pointer,
		button:        button,
	})
}

func (s *Stage) focusesOf(pointer int) []touchFocus {
	var focuses []touchFocus
	for _, focus := range s.touchFocuses {
		if focus.pointer == pointer {
			focuses = append(focuses, focus)
		}
	}
	return focuses
}

func (s *Stage) removeFocusesOf(pointer int) {
	kept := s.touchFocuses[:0]
	for _, focus := range s.touchFocuses {
		if focus.pointer != pointer {
			kept = append(kept, focus)
		}
	}
	s.touchFocuses = kept
}

// Act polls the listeners that implement Updater, e.g. gesture listeners
// waiting for a long press.
func (s *Stage) Act() {
	act(s.root)
}

func act(node Node) {
	for _, listener := range node.Base().Listeners() {
		if updater, ok := listener.(Updater); ok {
			updater.Update()
		}
	}
	if group, ok := node.(interface{ Children() []Node }); ok {
		for _, child := range group.Children() {
			act(child)
		}
	}
}

func (s *Stage) Draw(batch api.Batch) {
	s.root.Draw(batch, 1)
}
