package api

import (
	"github.com/google/uuid"
	"honnef.co/go/curve"
	"vincit.fi/scene-widgets/api/apitype"
)

type ErrorCommand struct {
	apitype.NotThrottled
	Message string
}

// GestureCommand carries a recognized gesture and the actor it was
// recognized on.
type GestureCommand struct {
	apitype.NotThrottled
	ActorId uuid.UUID
	Pointer int
}

type TapCommand struct {
	GestureCommand
	X, Y  float32
	Count int
}

type LongPressCommand struct {
	GestureCommand
	X, Y float32
}

type FlingCommand struct {
	GestureCommand
	VelocityX, VelocityY float32
}

type PanCommand struct {
	apitype.Throttled
	GestureCommand
	X, Y, DeltaX, DeltaY float32
}

type ZoomCommand struct {
	apitype.Throttled
	GestureCommand
	InitialDistance, Distance float32
}

type PinchCommand struct {
	apitype.Throttled
	GestureCommand
	InitialPointer1, InitialPointer2 curve.Point
	Pointer1, Pointer2               curve.Point
}
