package ui

import (
	"fmt"

	"vincit.fi/scene-widgets/api"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/common/logger"
)

// Image displays a TextureRegion or a NinePatch scaled and aligned within
// the widget's bounds. The preferred size is the natural size of the
// region or patch. Scale, rotation and origin are only honored when
// drawing a region.
type Image struct {
	Widget

	region  *apitype.TextureRegion
	patch   *apitype.NinePatch
	scaling apitype.Scaling
	align   apitype.Align

	imageX      float32
	imageY      float32
	imageWidth  float32
	imageHeight float32
}

// NewImage creates a stretched, centered image. region may be nil.
func NewImage(region *apitype.TextureRegion) *Image {
	return NewImageWithScaling(region, apitype.Stretch, apitype.AlignCenter)
}

// NewImageWithScaling creates an image showing region, which may be nil.
// A nil scaling falls back to stretch.
func NewImageWithScaling(region *apitype.TextureRegion, scaling apitype.Scaling, align apitype.Align) *Image {
	image := newImage(scaling, align)
	image.SetRegion(region)
	image.SetSize(image.PrefWidth(), image.PrefHeight())
	return image
}

// NewNinePatchImage creates a stretched, centered image. patch may be nil.
func NewNinePatchImage(patch *apitype.NinePatch) *Image {
	return NewNinePatchImageWithScaling(patch, apitype.Stretch, apitype.AlignCenter)
}

func NewNinePatchImageWithScaling(patch *apitype.NinePatch, scaling apitype.Scaling, align apitype.Align) *Image {
	image := newImage(scaling, align)
	image.SetPatch(patch)
	image.SetSize(image.PrefWidth(), image.PrefHeight())
	return image
}

func newImage(scaling apitype.Scaling, align apitype.Align) *Image {
	if scaling == nil {
		scaling = apitype.Stretch
	}
	image := &Image{
		scaling: scaling,
		align:   align,
	}
	image.initWidget(image)
	return image
}

// Layout sizes the drawn image with the scaling and positions it inside
// the bounds with the alignment. Positions are truncated to whole pixels.
func (s *Image) Layout() {
	var regionWidth, regionHeight float32
	if s.patch != nil {
		regionWidth = s.patch.TotalWidth()
		regionHeight = s.patch.TotalHeight()
	} else if s.region != nil {
		regionWidth = float32(abs(s.region.RegionWidth()))
		regionHeight = float32(abs(s.region.RegionHeight()))
	} else {
		return
	}

	width := s.Width()
	height := s.Height()

	s.imageWidth, s.imageHeight = s.scaling.Apply(regionWidth, regionHeight, width, height)

	if s.align.IsLeft() {
		s.imageX = 0
	} else if s.align.IsRight() {
		s.imageX = float32(int(width - s.imageWidth))
	} else {
		s.imageX = float32(int(width/2 - s.imageWidth/2))
	}

	if s.align.IsTop() {
		s.imageY = float32(int(height - s.imageHeight))
	} else if s.align.IsBottom() {
		s.imageY = 0
	} else {
		s.imageY = float32(int(height/2 - s.imageHeight/2))
	}
	logger.Trace.Printf("Image %s laid out at %.0f, %.0f size %.1fx%.1f",
		s.Name(), s.imageX, s.imageY, s.imageWidth, s.imageHeight)
}

func (s *Image) Draw(batch api.Batch, parentAlpha float32) {
	s.Validate()

	color := s.Color()
	batch.SetColor(color.WithAlpha(color.A * parentAlpha))

	x := s.X()
	y := s.Y()
	scaleX := s.ScaleX()
	scaleY := s.ScaleY()

	if s.patch != nil {
		s.patch.Draw(batch, x+s.imageX, y+s.imageY, s.imageWidth*scaleX, s.imageHeight*scaleY)
	} else if s.region != nil {
		rotation := s.Rotation()
		if scaleX == 1 && scaleY == 1 && rotation == 0 {
			batch.Draw(s.region, x+s.imageX, y+s.imageY, s.imageWidth, s.imageHeight)
		} else {
			batch.DrawTransformed(s.region, x+s.imageX, y+s.imageY, s.OriginX()-s.imageX, s.OriginY()-s.imageY,
				s.imageWidth, s.imageHeight, scaleX, scaleY, rotation)
		}
	}
}

// SetRegion shows region instead of the current region or patch. region
// may be nil. Ancestors are asked to lay out again only when the
// preferred size changes.
func (s *Image) SetRegion(region *apitype.TextureRegion) {
	if region != nil {
		if s.region == region {
			return
		}
		if s.PrefWidth() != float32(abs(region.RegionWidth())) || s.PrefHeight() != float32(abs(region.RegionHeight())) {
			s.InvalidateHierarchy()
		}
	} else if s.PrefWidth() != 0 || s.PrefHeight() != 0 {
		s.InvalidateHierarchy()
	}
	s.region = region
	s.patch = nil
}

func (s *Image) Region() *apitype.TextureRegion {
	return s.region
}

// SetPatch shows patch instead of the current region or patch. patch may
// be nil.
func (s *Image) SetPatch(patch *apitype.NinePatch) {
	if patch != nil {
		if s.patch == patch {
			return
		}
		if s.PrefWidth() != patch.TotalWidth() || s.PrefHeight() != patch.TotalHeight() {
			s.InvalidateHierarchy()
		}
	} else if s.PrefWidth() != 0 || s.PrefHeight() != 0 {
		s.InvalidateHierarchy()
	}
	s.patch = patch
	s.region = nil
}

func (s *Image) Patch() *apitype.NinePatch {
	return s.patch
}

// SetScaling fails with apitype.ErrNilScaling when scaling is nil.
func (s *Image) SetScaling(scaling apitype.Scaling) error {
	if scaling == nil {
		return fmt.Errorf("image %s: %w", s.Name(), apitype.ErrNilScaling)
	}
	s.scaling = scaling
	return nil
}

func (s *Image) Scaling() apitype.Scaling {
	return s.scaling
}

// SetAlign stores align as is. Contradicting flags are resolved in favor
// of left and top.
func (s *Image) SetAlign(align apitype.Align) {
	s.align = align
}

func (s *Image) Align() apitype.Align {
	return s.align
}

func (s *Image) MinWidth() float32 {
	return 0
}

func (s *Image) MinHeight() float32 {
	return 0
}

func (s *Image) PrefWidth() float32 {
	if s.region != nil {
		return float32(abs(s.region.RegionWidth()))
	}
	if s.patch != nil {
		return s.patch.TotalWidth()
	}
	return 0
}

func (s *Image) PrefHeight() float32 {
	if s.region != nil {
		return float32(abs(s.region.RegionHeight()))
	}
	if s.patch != nil {
		return s.patch.TotalHeight()
	}
	return 0
}

func (s *Image) ImageX() float32 {
	return s.imageX
}

func (s *Image) ImageY() float32 {
	return s.imageY
}

func (s *Image) ImageWidth() float32 {
	return s.imageWidth
}

func (s *Image) ImageHeight() float32 {
	return s.imageHeight
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
