// Package viewer puts a single image widget on a stage and lets gestures
// move and zoom it. Recognized gestures are also published on the event
// bus and logged on the frame loop.
package viewer

import (
	"image"

	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/common/event"
	"vincit.fi/scene-widgets/common/imagereader"
	"vincit.fi/scene-widgets/common/logger"
	"vincit.fi/scene-widgets/common/util"
	"vincit.fi/scene-widgets/scene"
	"vincit.fi/scene-widgets/scene/ui"
)

const busQueueSize = 100

// Viewer listens to gestures on a group that fills the stage, so that
// moving the image does not move the coordinates gestures are reported in.
type Viewer struct {
	stage  *scene.Stage
	frame  *scene.Group
	image  *ui.Image
	broker *event.Broker
}

// New loads the image named in params and builds a viewer for it.
func New(params *util.Params) (*Viewer, error) {
	texture, err := imagereader.LoadImage(params.Image())
	if err != nil {
		return nil, err
	}
	return NewForTexture(texture, params)
}

func NewForTexture(texture image.Image, params *util.Params) (*Viewer, error) {
	scaling, err := apitype.ParseScaling(params.Scaling())
	if err != nil {
		return nil, err
	}
	align, err := apitype.ParseAlign(params.Align())
	if err != nil {
		return nil, err
	}

	region := apitype.NewTextureRegion(texture)
	var widget *ui.Image
	if left, right, top, bottom, ok := params.NinePatch(); ok {
		patch, err := apitype.NewNinePatch(region, left, right, top, bottom)
		if err != nil {
			return nil, err
		}
		widget = ui.NewNinePatchImageWithScaling(patch, scaling, align)
	} else {
		widget = ui.NewImageWithScaling(region, scaling, align)
	}
	widget.SetName("image")

	viewer := &Viewer{
		stage:  scene.NewStage(float32(params.Width()), float32(params.Height())),
		frame:  scene.NewGroup(),
		image:  widget,
		broker: event.InitBus(busQueueSize),
	}
	viewer.frame.SetName("frame")
	viewer.frame.AddActor(widget)
	viewer.stage.AddActor(viewer.frame)
	viewer.frame.AddListener(scene.NewActorGestureListener(&moveHandler{
		BusGestureHandler: scene.NewBusGestureHandler(viewer.broker),
		image:             widget,
	}))
	viewer.fitToStage()
	viewer.logGestures()

	logger.Info.Printf("Showing %s with %s scaling and %s align", region, scaling, align)
	return viewer, nil
}

func (s *Viewer) Stage() *scene.Stage {
	return s.stage
}

func (s *Viewer) Image() *ui.Image {
	return s.image
}

func (s *Viewer) Broker() *event.Broker {
	return s.broker
}

// Frame keeps the image the size of the stage and runs the gesture log.
// Call it on the frame loop.
func (s *Viewer) Frame() {
	s.fitToStage()
	s.broker.Drain()
}

func (s *Viewer) fitToStage() {
	width, height := s.stage.Width(), s.stage.Height()
	s.frame.SetSize(width, height)
	if s.image.Width() != width || s.image.Height() != height {
		s.image.SetSize(width, height)
		s.image.SetOrigin(width/2, height/2)
	}
}

func (s *Viewer) logGestures() {
	s.broker.ConnectToLoop(api.GestureTap, func(command *api.TapCommand) {
		logger.Info.Printf("Tap %d at %.0f, %.0f on %s", command.Count, command.X, command.Y, command.ActorId)
	})
	s.broker.ConnectToLoop(api.GestureLongPress, func(command *api.LongPressCommand) {
		logger.Info.Printf("Long press at %.0f, %.0f", command.X, command.Y)
	})
	s.broker.ConnectToLoop(api.GestureFling, func(command *api.FlingCommand) {
		logger.Info.Printf("Fling %.1f, %.1f", command.VelocityX, command.VelocityY)
	})
	s.broker.ConnectToLoop(api.GesturePan, func(command *api.PanCommand) {
		logger.Debug.Printf("Pan %.0f, %.0f by %.0f, %.0f", command.X, command.Y, command.DeltaX, command.DeltaY)
	})
	s.broker.ConnectToLoop(api.GestureZoom, func(command *api.ZoomCommand) {
		logger.Debug.Printf("Zoom from %.0f to %.0f", command.InitialDistance, command.Distance)
	})
}

// moveHandler publishes every gesture and also pans, zooms and resets
// the image.
type moveHandler struct {
	*scene.BusGestureHandler
	image *ui.Image

	zoomStart   float32
	zoomInitial float32
}

func (s *moveHandler) Tap(event *scene.InputEvent, x, y float32, count int) {
	s.BusGestureHandler.Tap(event, x, y, count)
	if count == 2 {
		s.image.SetPosition(0, 0)
		s.image.SetScale(1, 1)
	}
}

func (s *moveHandler) Pan(event *scene.InputEvent, x, y, deltaX, deltaY float32) {
	s.BusGestureHandler.Pan(event, x, y, deltaX, deltaY)
	s.image.SetPosition(s.image.X()+deltaX, s.image.Y()+deltaY)
}

func (s *moveHandler) Zoom(event *scene.InputEvent, initialDistance, distance float32) {
	s.BusGestureHandler.Zoom(event, initialDistance, distance)
	if initialDistance <= 0 {
		return
	}
	if initialDistance != s.zoomInitial {
		s.zoomStart = s.image.ScaleX()
		s.zoomInitial = initialDistance
	}
	scale := s.zoomStart * distance / initialDistance
	s.image.SetScale(scale, scale)
}
