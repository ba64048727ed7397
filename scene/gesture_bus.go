package scene

import (
	"github.com/google/uuid"
	"honnef.co/go/curve"
	"vincit.fi/scene-widgets/api"
)

// BusGestureHandler publishes recognized gestures as commands so that
// code without access to the actor can react to them. Long presses are
// published but never stop the touch sequence.
type BusGestureHandler struct {
	sender api.Sender
}

func NewBusGestureHandler(sender api.Sender) *BusGestureHandler {
	return &BusGestureHandler{sender: sender}
}

func (s *BusGestureHandler) Tap(event *InputEvent, x, y float32, count int) {
	s.sender.SendCommandToTopic(api.GestureTap, &api.TapCommand{
		GestureCommand: gestureCommandOf(event),
		X:              x,
		Y:              y,
		Count:          count,
	})
}

func (s *BusGestureHandler) LongPress(event *InputEvent, x, y float32) bool {
	s.sender.SendCommandToTopic(api.GestureLongPress, &api.LongPressCommand{
		GestureCommand: gestureCommandOf(event),
		X:              x,
		Y:              y,
	})
	return false
}

func (s *BusGestureHandler) Fling(event *InputEvent, velocityX, velocityY float32) {
	s.sender.SendCommandToTopic(api.GestureFling, &api.FlingCommand{
		GestureCommand: gestureCommandOf(event),
		VelocityX:      velocityX,
		VelocityY:      velocityY,
	})
}

func (s *BusGestureHandler) Pan(event *InputEvent, x, y, deltaX, deltaY float32) {
	s.sender.SendCommandToTopic(api.GesturePan, &api.PanCommand{
		GestureCommand: gestureCommandOf(event),
		X:              x,
		Y:              y,
		DeltaX:         deltaX,
		DeltaY:         deltaY,
	})
}

func (s *BusGestureHandler) Zoom(event *InputEvent, initialDistance, distance float32) {
	s.sender.SendCommandToTopic(api.GestureZoom, &api.ZoomCommand{
		GestureCommand:  gestureCommandOf(event),
		InitialDistance: initialDistance,
		Distance:        distance,
	})
}

func (s *BusGestureHandler) Pinch(event *InputEvent, initialPointer1, initialPointer2, pointer1, pointer2 curve.Point) {
	s.sender.SendCommandToTopic(api.GesturePinch, &api.PinchCommand{
		GestureCommand:  gestureCommandOf(event),
		InitialPointer1: initialPointer1,
		InitialPointer2: initialPointer2,
		Pointer1:        pointer1,
		Pointer2:        pointer2,
	})
}

func gestureCommandOf(event *InputEvent) api.GestureCommand {
	if event == nil {
		return api.GestureCommand{ActorId: uuid.Nil}
	}
	command := api.GestureCommand{Pointer: event.Pointer}
	if actor := event.ListenerActor(); actor != nil {
		command.ActorId = actor.Base().Id()
	}
	return command
}
