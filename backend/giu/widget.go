package giu

import (
	"image"
	"image/color"

	g "github.com/AllenDang/giu"
	"vincit.fi/scene-widgets/backend/pointer"
	"vincit.fi/scene-widgets/scene"
)

var mouseButtons = []g.MouseButton{g.MouseButtonLeft, g.MouseButtonRight, g.MouseButtonMiddle}

// StageWidget fills the available region with a stage. The stage is
// resized to the region, fed the mouse as pointer 0, acted and drawn every
// time the widget is built.
type StageWidget struct {
	stage      *scene.Stage
	batch      *Batch
	tracker    *pointer.Tracker
	background color.RGBA
}

func NewStageWidget(stage *scene.Stage, textures *TextureCache) *StageWidget {
	return &StageWidget{
		stage:      stage,
		batch:      NewBatch(textures),
		tracker:    pointer.NewTracker(stage, 0),
		background: color.RGBA{R: 20, G: 20, B: 20, A: 255},
	}
}

func (s *StageWidget) SetBackground(background color.RGBA) *StageWidget {
	s.background = background
	return s
}

func (s *StageWidget) Build() {
	width, height := g.GetAvailableRegion()
	origin := g.GetCursorScreenPos()
	area := image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(int(width), int(height))),
	}

	if s.stage.Width() != width || s.stage.Height() != height {
		s.stage.SetSize(width, height)
	}
	s.pollMouse(origin, height, area)
	s.stage.Act()

	g.GetCanvas().AddRectFilled(area.Min, area.Max, s.background, 0, 0)
	s.batch.Begin(origin, height)
	s.stage.Draw(s.batch)

	g.Dummy(width, height).Build()
}

// pollMouse only starts a press inside the stage area, a press that is
// already down is followed outside of it.
func (s *StageWidget) pollMouse(origin image.Point, height float32, area image.Rectangle) {
	mousePos := g.GetMousePos()
	button, pressed := pressedButton()
	if !s.tracker.IsPressed() && !mousePos.In(area) {
		return
	}
	if s.tracker.IsPressed() {
		pressed = g.IsMouseDown(mouseButtons[s.tracker.Button()])
	}
	stageX, stageY := ToStage(origin, height, mousePos)
	s.tracker.Update(stageX, stageY, button, pressed)
}

func pressedButton() (int, bool) {
	for i, button := range mouseButtons {
		if g.IsMouseDown(button) {
			return i, true
		}
	}
	return pointer.NoButton, false
}
