// Package software draws scenes into an in-memory image. The scene's y-up
// coordinates are flipped so that stage y 0 is the bottom row of the
// canvas.
package software

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"honnef.co/go/curve"
	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/common/logger"
)

type DrawStats struct {
	Draws   int
	Skipped int
	Pixels  int
}

type Batch struct {
	canvas    *image.NRGBA
	color     apitype.Color
	resampler Resampler
	cache     *ScaledCache
	stats     DrawStats
}

var _ api.Batch = (*Batch)(nil)

func NewBatch(width int, height int, background color.Color, resampler Resampler) *Batch {
	if resampler == nil {
		resampler = Linear
	}
	return &Batch{
		canvas:    imaging.New(width, height, background),
		color:     apitype.White,
		resampler: resampler,
		cache:     NewScaledCache(resampler),
	}
}

func (s *Batch) SetColor(color apitype.Color) {
	s.color = color
}

func (s *Batch) Color() apitype.Color {
	return s.color
}

func (s *Batch) Image() *image.NRGBA {
	return s.canvas
}

func (s *Batch) Stats() DrawStats {
	return s.stats
}

func (s *Batch) Resampler() Resampler {
	return s.resampler
}

func (s *Batch) Cache() *ScaledCache {
	return s.cache
}

// Clear fills the canvas with background and resets the statistics.
// Scaled pixels not drawn since the previous Clear are dropped.
func (s *Batch) Clear(background color.Color) {
	bounds := s.canvas.Bounds()
	s.canvas = imaging.New(bounds.Dx(), bounds.Dy(), background)
	s.stats = DrawStats{}
	s.cache.EndFrame()
}

// Save writes the canvas in the format given by the extension of path.
func (s *Batch) Save(path string) error {
	logger.Debug.Printf("Saving %dx%d image to '%s'", s.canvas.Rect.Dx(), s.canvas.Rect.Dy(), path)
	return imaging.Save(s.canvas, path)
}

func (s *Batch) Draw(region *apitype.TextureRegion, x, y, width, height float32) {
	pixels, flipX, flipY := s.pixelsOf(region, width, height)
	if pixels == nil {
		return
	}
	if flipX {
		pixels = imaging.FlipH(pixels)
	}
	if flipY {
		pixels = imaging.FlipV(pixels)
	}

	left := min(x, x+width)
	top := max(y, y+height)
	s.overlay(pixels, left, top)
}

// DrawTransformed scales the region around the origin, then rotates it
// counter clockwise by rotation degrees. The origin is relative to x, y.
func (s *Batch) DrawTransformed(region *apitype.TextureRegion, x, y, originX, originY, width, height, scaleX, scaleY, rotation float32) {
	scaledWidth := width * scaleX
	scaledHeight := height * scaleY
	pixels, flipX, flipY := s.pixelsOf(region, scaledWidth, scaledHeight)
	if pixels == nil {
		return
	}
	if flipX {
		pixels = imaging.FlipH(pixels)
	}
	if flipY {
		pixels = imaging.FlipV(pixels)
	}
	if rotation != 0 {
		pixels = imaging.Rotate(pixels, float64(rotation), color.Transparent)
	}

	minX, minY, maxX, maxY := TransformedBounds(x, y, originX, originY, width, height, scaleX, scaleY, rotation)
	logger.Trace.Printf("Transformed draw covers %.1f, %.1f - %.1f, %.1f", minX, minY, maxX, maxY)
	s.overlay(pixels, float32(minX), float32(maxY))
}

// pixelsOf crops, resizes and tints the region for a draw of the given
// size. Negative sizes and flipped regions are reported as flips.
func (s *Batch) pixelsOf(region *apitype.TextureRegion, width, height float32) (*image.NRGBA, bool, bool) {
	pixelWidth := int(math.Round(math.Abs(float64(width))))
	pixelHeight := int(math.Round(math.Abs(float64(height))))
	if region == nil || region.Texture() == nil || pixelWidth == 0 || pixelHeight == 0 || s.color.A <= 0 {
		s.stats.Skipped++
		return nil, false, false
	}
	bounds := region.Bounds()
	if bounds.Empty() {
		s.stats.Skipped++
		return nil, false, false
	}

	pixels := s.cache.GetScaled(region.Texture(), bounds, apitype.SizeOf(pixelWidth, pixelHeight))
	if !s.color.IsWhite() {
		pixels = Tint(pixels, s.color)
	}

	s.stats.Draws++
	s.stats.Pixels += pixelWidth * pixelHeight
	return pixels, region.IsFlipX() != (width < 0), region.IsFlipY() != (height < 0)
}

// overlay blends pixels with their top left corner at the y-up point
// left, top.
func (s *Batch) overlay(pixels *image.NRGBA, left float32, top float32) {
	canvasHeight := s.canvas.Rect.Dy()
	position := image.Pt(int(math.Round(float64(left))), canvasHeight-int(math.Round(float64(top))))
	s.canvas = imaging.Overlay(s.canvas, pixels, position, 1)
}

// Tint multiplies every channel of pixels with the matching channel of
// with.
func Tint(pixels *image.NRGBA, with apitype.Color) *image.NRGBA {
	return imaging.AdjustFunc(pixels, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: multiply(c.R, with.R),
			G: multiply(c.G, with.G),
			B: multiply(c.B, with.B),
			A: multiply(c.A, with.A),
		}
	})
}

func multiply(channel uint8, factor float32) uint8 {
	value := float32(channel)*factor + 0.5
	if value <= 0 {
		return 0
	}
	if value >= 255 {
		return 255
	}
	return uint8(value)
}

// TransformedBounds returns the y-up bounding box, as min x, min y, max x
// and max y, of a region drawn with DrawTransformed.
func TransformedBounds(x, y, originX, originY, width, height, scaleX, scaleY, rotation float32) (float64, float64, float64, float64) {
	radians := float64(rotation) * math.Pi / 180
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	pivot := curve.Vec(float64(x+originX), float64(y+originY))

	corners := [4]curve.Vec2{
		curve.Vec(float64(-originX), float64(-originY)),
		curve.Vec(float64(width-originX), float64(-originY)),
		curve.Vec(float64(width-originX), float64(height-originY)),
		curve.Vec(float64(-originX), float64(height-originY)),
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range corners {
		scaled := curve.Vec(corner.X*float64(scaleX), corner.Y*float64(scaleY))
		rotated := curve.Vec(scaled.X*cos-scaled.Y*sin, scaled.X*sin+scaled.Y*cos)
		world := rotated.Add(pivot)
		minX = math.Min(minX, world.X)
		minY = math.Min(minY, world.Y)
		maxX = math.Max(maxX, world.X)
		maxY = math.Max(maxY, world.Y)
	}
	return minX, minY, maxX, maxY
}
