// Package scene is a small retained 2D scene graph. Actors are positioned
// in their parent's coordinate system with the origin at the bottom left
// and y pointing up. A Stage owns the root group, hit tests pointer input
// and dispatches it to actor listeners.
package scene

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
)

// Node is anything that can be placed in the scene graph. Types embedding
// Actor get Base for free and override Draw.
type Node interface {
	Base() *Actor
	Draw(batch api.Batch, parentAlpha float32)
}

type Actor struct {
	id   uuid.UUID
	name string

	x, y, width, height float32
	originX, originY    float32
	scaleX, scaleY      float32
	rotation            float32
	color               apitype.Color

	visible   bool
	touchable bool

	parent    Node
	listeners []InputListener
}

func NewActor() *Actor {
	actor := &Actor{}
	actor.init()
	return actor
}

func (s *Actor) init() {
	s.id = uuid.New()
	s.scaleX = 1
	s.scaleY = 1
	s.color = apitype.White
	s.visible = true
	s.touchable = true
}

// InitActor prepares an Actor embedded by value in another node type.
func InitActor(actor *Actor) {
	actor.init()
}

func (s *Actor) Base() *Actor {
	return s
}

func (s *Actor) Draw(batch api.Batch, parentAlpha float32) {
}

func (s *Actor) Id() uuid.UUID {
	return s.id
}

func (s *Actor) Name() string {
	return s.name
}

func (s *Actor) SetName(name string) {
	s.name = name
}

func (s *Actor) X() float32 {
	return s.x
}

func (s *Actor) Y() float32 {
	return s.y
}

func (s *Actor) SetPosition(x float32, y float32) {
	s.x = x
	s.y = y
}

func (s *Actor) Width() float32 {
	return s.width
}

func (s *Actor) Height() float32 {
	return s.height
}

// SetSize only stores the size. Widgets shadow it to invalidate their
// layout.
func (s *Actor) SetSize(width float32, height float32) {
	s.width = width
	s.height = height
}

func (s *Actor) OriginX() float32 {
	return s.originX
}

func (s *Actor) OriginY() float32 {
	return s.originY
}

func (s *Actor) SetOrigin(originX float32, originY float32) {
	s.originX = originX
	s.originY = originY
}

func (s *Actor) ScaleX() float32 {
	return s.scaleX
}

func (s *Actor) ScaleY() float32 {
	return s.scaleY
}

func (s *Actor) SetScale(scaleX float32, scaleY float32) {
	s.scaleX = scaleX
	s.scaleY = scaleY
}

// Rotation is in degrees, counter clockwise.
func (s *Actor) Rotation() float32 {
	return s.rotation
}

func (s *Actor) SetRotation(degrees float32) {
	s.rotation = degrees
}

func (s *Actor) Color() apitype.Color {
	return s.color
}

func (s *Actor) SetColor(color apitype.Color) {
	s.color = color
}

func (s *Actor) IsVisible() bool {
	return s.visible
}

func (s *Actor) SetVisible(visible bool) {
	s.visible = visible
}

func (s *Actor) IsTouchable() bool {
	return s.touchable
}

func (s *Actor) SetTouchable(touchable bool) {
	s.touchable = touchable
}

// Parent returns the node of the group this actor was added to.
func (s *Actor) Parent() Node {
	return s.parent
}

func (s *Actor) AddListener(listener InputListener) {
	for _, l := range s.listeners {
		if l == listener {
			return
		}
	}
	s.listeners = append(s.listeners, listener)
}

func (s *Actor) RemoveListener(listener InputListener) bool {
	for i, l := range s.listeners {
		if l == listener {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Actor) Listeners() []InputListener {
	return s.listeners
}

// Contains reports whether the point in local coordinates is inside the
// actor's bounds.
func (s *Actor) Contains(x float32, y float32) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// ParentToLocal converts a point in the parent's coordinate system to this
// actor's, honoring scale and rotation around the origin.
func (s *Actor) ParentToLocal(x float32, y float32) (float32, float32) {
	if s.rotation == 0 {
		if s.scaleX == 1 && s.scaleY == 1 {
			return x - s.x, y - s.y
		}
		return (x-s.x-s.originX)/s.scaleX + s.originX, (y-s.y-s.originY)/s.scaleY + s.originY
	}

	radians := float64(s.rotation) * math.Pi / 180
	cos := float32(math.Cos(radians))
	sin := float32(math.Sin(radians))
	toX := x - s.x - s.originX
	toY := y - s.y - s.originY
	return (toX*cos+toY*sin)/s.scaleX + s.originX, (toX*-sin+toY*cos)/s.scaleY + s.originY
}

// StageToLocal converts stage coordinates to this actor's coordinates by
// walking up the parents.
func (s *Actor) StageToLocal(x float32, y float32) (float32, float32) {
	if s.parent != nil {
		x, y = s.parent.Base().StageToLocal(x, y)
	}
	return s.ParentToLocal(x, y)
}

// Notify delivers event to the actor's listeners and reports whether any
// of them handled it.
func (s *Actor) Notify(event *InputEvent) bool {
	if len(s.listeners) == 0 {
		return false
	}
	x, y := s.StageToLocal(event.StageX, event.StageY)
	// Listeners may remove themselves while being notified.
	listeners := append([]InputListener(nil), s.listeners...)
	for _, listener := range listeners {
		switch event.Type {
		case TouchDown:
			if listener.TouchDown(event, x, y, event.Pointer, event.Button) {
				event.Handle()
				if event.stage != nil {
					event.stage.addTouchFocus(listener, event.listenerActor, event.target, event.Pointer, event.Button)
				}
			}
		case TouchUp:
			listener.TouchUp(event, x, y, event.Pointer, event.Button)
		case TouchDragged:
			listener.TouchDragged(event, x, y, event.Pointer)
		}
		if event.IsStopped() {
			break
		}
	}
	return event.IsHandled()
}

func (s *Actor) String() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("Actor{%s}", s.id)
}
