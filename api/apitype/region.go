package apitype

import (
	"fmt"
	"image"
)

// TextureRegion is a rectangular area of a larger texture. A negative
// width or height means the region is flipped on that axis.
type TextureRegion struct {
	texture image.Image
	x       int
	y       int
	width   int
	height  int
}

// RegionDrawer draws regions stretched to a rectangle. Batches implement it.
type RegionDrawer interface {
	Draw(region *TextureRegion, x, y, width, height float32)
}

func NewTextureRegion(texture image.Image) *TextureRegion {
	bounds := texture.Bounds()
	return &TextureRegion{
		texture: texture,
		x:       bounds.Min.X,
		y:       bounds.Min.Y,
		width:   bounds.Dx(),
		height:  bounds.Dy(),
	}
}

func NewTextureRegionRect(texture image.Image, x int, y int, width int, height int) *TextureRegion {
	return &TextureRegion{
		texture: texture,
		x:       x,
		y:       y,
		width:   width,
		height:  height,
	}
}

func (s *TextureRegion) Texture() image.Image {
	return s.texture
}

func (s *TextureRegion) RegionX() int {
	return s.x
}

func (s *TextureRegion) RegionY() int {
	return s.y
}

func (s *TextureRegion) RegionWidth() int {
	return s.width
}

func (s *TextureRegion) RegionHeight() int {
	return s.height
}

func (s *TextureRegion) IsFlipX() bool {
	return s.width < 0
}

func (s *TextureRegion) IsFlipY() bool {
	return s.height < 0
}

func (s *TextureRegion) Flip(x bool, y bool) {
	if x {
		s.width = -s.width
	}
	if y {
		s.height = -s.height
	}
}

// Bounds returns the pixel rectangle covered in the texture regardless of
// flipping.
func (s *TextureRegion) Bounds() image.Rectangle {
	return image.Rect(s.x, s.y, s.x+abs(s.width), s.y+abs(s.height))
}

// Split returns an unflipped sub region relative to this region's top left
// texture pixel.
func (s *TextureRegion) Split(x int, y int, width int, height int) *TextureRegion {
	return NewTextureRegionRect(s.texture, s.x+x, s.y+y, width, height)
}

func (s *TextureRegion) String() string {
	if s == nil {
		return "TextureRegion<nil>"
	}
	return fmt.Sprintf("TextureRegion{%d, %d, %d, %d}", s.x, s.y, s.width, s.height)
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
