package giu

import (
	"image"
	"math"

	g "github.com/AllenDang/giu"
	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/backend/software"
)

// Batch adds stage draws to the current giu canvas. Begin must be called
// each frame before the stage is drawn.
type Batch struct {
	canvas   *g.Canvas
	origin   image.Point
	height   float32
	color    apitype.Color
	textures *TextureCache
}

var _ api.Batch = (*Batch)(nil)

func NewBatch(textures *TextureCache) *Batch {
	return &Batch{
		color:    apitype.White,
		textures: textures,
	}
}

// Begin targets the canvas of the widget being built. Origin is the top
// left screen position of the drawing area and height its height.
func (s *Batch) Begin(origin image.Point, height float32) {
	s.canvas = g.GetCanvas()
	s.origin = origin
	s.height = height
}

func (s *Batch) SetColor(color apitype.Color) {
	s.color = color
}

func (s *Batch) Color() apitype.Color {
	return s.color
}

func (s *Batch) Draw(region *apitype.TextureRegion, x, y, width, height float32) {
	if width == 0 || height == 0 {
		return
	}
	key, ok := keyOf(region, width < 0, height < 0, s.color, 0)
	if !ok {
		return
	}
	if texture := s.textures.Get(key); texture != nil {
		s.addImage(texture, min(x, x+width), min(y, y+height), max(x, x+width), max(y, y+height))
	}
}

func (s *Batch) DrawTransformed(region *apitype.TextureRegion, x, y, originX, originY, width, height, scaleX, scaleY, rotation float32) {
	if width*scaleX == 0 || height*scaleY == 0 {
		return
	}
	key, ok := keyOf(region, width*scaleX < 0, height*scaleY < 0, s.color, rotation)
	if !ok {
		return
	}
	if texture := s.textures.Get(key); texture != nil {
		minX, minY, maxX, maxY := software.TransformedBounds(x, y, originX, originY, width, height, scaleX, scaleY, rotation)
		s.addImage(texture, float32(minX), float32(minY), float32(maxX), float32(maxY))
	}
}

func (s *Batch) addImage(texture *g.Texture, minX, minY, maxX, maxY float32) {
	if s.canvas == nil {
		return
	}
	start := ToScreen(s.origin, s.height, minX, maxY)
	end := ToScreen(s.origin, s.height, maxX, minY)
	s.canvas.AddImage(texture, start, end)
}

// ToScreen converts a y-up stage position into a y-down screen position.
func ToScreen(origin image.Point, height float32, stageX float32, stageY float32) image.Point {
	return image.Pt(
		origin.X+int(math.Round(float64(stageX))),
		origin.Y+int(math.Round(float64(height-stageY))),
	)
}

// ToStage is the inverse of ToScreen.
func ToStage(origin image.Point, height float32, screen image.Point) (float32, float32) {
	return float32(screen.X - origin.X), height - float32(screen.Y-origin.Y)
}
