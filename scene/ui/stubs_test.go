package ui

import (
	"image"

	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/scene"
)

type drawCall struct {
	region      *apitype.TextureRegion
	x, y        float32
	width       float32
	height      float32
	transformed bool
	originX     float32
	originY     float32
	scaleX      float32
	scaleY      float32
	rotation    float32
	color       apitype.Color
}

type RecordingBatch struct {
	color apitype.Color
	calls []drawCall
}

func (s *RecordingBatch) SetColor(color apitype.Color) {
	s.color = color
}

func (s *RecordingBatch) Color() apitype.Color {
	return s.color
}

func (s *RecordingBatch) Draw(region *apitype.TextureRegion, x, y, width, height float32) {
	s.calls = append(s.calls, drawCall{
		region: region, x: x, y: y, width: width, height: height,
		scaleX: 1, scaleY: 1, color: s.color,
	})
}

func (s *RecordingBatch) DrawTransformed(region *apitype.TextureRegion, x, y, originX, originY, width, height, scaleX, scaleY, rotation float32) {
	s.calls = append(s.calls, drawCall{
		region: region, x: x, y: y, width: width, height: height, transformed: true,
		originX: originX, originY: originY, scaleX: scaleX, scaleY: scaleY, rotation: rotation,
		color: s.color,
	})
}

// StubContainer stands in for a layout container and counts how often its
// children invalidate it.
type StubContainer struct {
	scene.Group
	invalidations int
}

func NewStubContainer() *StubContainer {
	container := &StubContainer{}
	scene.InitGroup(&container.Group, container)
	return container
}

func (s *StubContainer) Layout()              {}
func (s *StubContainer) Invalidate()          {}
func (s *StubContainer) InvalidateHierarchy() { s.invalidations++ }
func (s *StubContainer) Validate()            {}
func (s *StubContainer) MinWidth() float32    { return 0 }
func (s *StubContainer) MinHeight() float32   { return 0 }
func (s *StubContainer) PrefWidth() float32   { return 0 }
func (s *StubContainer) PrefHeight() float32  { return 0 }

func newRegion(width int, height int) *apitype.TextureRegion {
	return apitype.NewTextureRegion(image.NewNRGBA(image.Rect(0, 0, width, height)))
}
