package apitype

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type drawnPatch struct {
	region              *TextureRegion
	x, y, width, height float32
}

type recordingDrawer struct {
	draws []drawnPatch
}

func (s *recordingDrawer) Draw(region *TextureRegion, x, y, width, height float32) {
	s.draws = append(s.draws, drawnPatch{region: region, x: x, y: y, width: width, height: height})
}

func TestTextureRegion(t *testing.T) {
	a := assert.New(t)

	texture := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	region := NewTextureRegion(texture)
	a.Equal(texture, region.Texture())
	a.Equal(64, region.RegionWidth())
	a.Equal(32, region.RegionHeight())

	region.Flip(true, false)
	a.True(region.IsFlipX())
	a.False(region.IsFlipY())
	a.Equal(-64, region.RegionWidth())
	a.Equal(image.Rect(0, 0, 64, 32), region.Bounds())

	sub := region.Split(8, 4, 16, 8)
	a.False(sub.IsFlipX())
	a.Equal(image.Rect(8, 4, 24, 12), sub.Bounds())
	a.Equal("TextureRegion{8, 4, 16, 8}", sub.String())

	var missing *TextureRegion
	a.Equal("TextureRegion<nil>", missing.String())
}

func TestNewNinePatch(t *testing.T) {
	a := assert.New(t)

	region := NewTextureRegionRect(image.NewNRGBA(image.Rect(0, 0, 40, 40)), 5, 5, 30, 20)
	patch, err := NewNinePatch(region, 4, 6, 3, 7)

	a.Nil(err)
	a.Equal(float32(30), patch.TotalWidth())
	a.Equal(float32(20), patch.TotalHeight())
	a.Equal(float32(4), patch.LeftWidth())
	a.Equal(float32(6), patch.RightWidth())
	a.Equal(float32(3), patch.TopHeight())
	a.Equal(float32(7), patch.BottomHeight())
	a.Equal(image.Rect(5, 5, 9, 8), patch.patches[0].Bounds())
	a.Equal(image.Rect(9, 8, 29, 18), patch.patches[4].Bounds())
	a.Equal(image.Rect(29, 18, 35, 25), patch.patches[8].Bounds())
}

func TestNewNinePatch_Invalid(t *testing.T) {
	region := NewTextureRegion(image.NewNRGBA(image.Rect(0, 0, 10, 10)))
	tests := []struct {
		name                     string
		region                   *TextureRegion
		left, right, top, bottom int
	}{
		{name: "Nil region", region: nil},
		{name: "Negative split", region: region, left: -1},
		{name: "Too wide", region: region, left: 6, right: 5},
		{name: "Too tall", region: region, top: 5, bottom: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			patch, err := NewNinePatch(tt.region, tt.left, tt.right, tt.top, tt.bottom)
			a.Nil(patch)
			a.NotNil(err)
		})
	}
}

func TestNinePatch_Draw(t *testing.T) {
	a := assert.New(t)

	region := NewTextureRegion(image.NewNRGBA(image.Rect(0, 0, 30, 30)))
	patch, _ := NewNinePatch(region, 10, 10, 10, 10)
	drawer := &recordingDrawer{}

	patch.Draw(drawer, 100, 200, 50, 40)

	a.Len(drawer.draws, 9)
	// Rows are drawn from the top, y grows upwards.
	a.Equal(drawnPatch{region: patch.patches[0], x: 100, y: 230, width: 10, height: 10}, drawer.draws[0])
	a.Equal(drawnPatch{region: patch.patches[4], x: 110, y: 210, width: 30, height: 20}, drawer.draws[4])
	a.Equal(drawnPatch{region: patch.patches[8], x: 140, y: 200, width: 10, height: 10}, drawer.draws[8])
}

func TestNinePatch_Draw_SmallerThanCorners(t *testing.T) {
	a := assert.New(t)

	region := NewTextureRegion(image.NewNRGBA(image.Rect(0, 0, 30, 30)))
	patch, _ := NewNinePatch(region, 10, 10, 10, 10)
	drawer := &recordingDrawer{}

	patch.Draw(drawer, 0, 0, 15, 15)

	// The center row and column collapse.
	a.Len(drawer.draws, 4)
}

func TestNinePatch_Draw_NoEdges(t *testing.T) {
	a := assert.New(t)

	region := NewTextureRegion(image.NewNRGBA(image.Rect(0, 0, 30, 30)))
	patch, _ := NewNinePatch(region, 0, 0, 0, 0)
	drawer := &recordingDrawer{}

	patch.Draw(drawer, 0, 0, 60, 60)

	a.Equal([]drawnPatch{{region: patch.patches[4], width: 60, height: 60}}, drawer.draws)
}

func TestColor(t *testing.T) {
	a := assert.New(t)

	c := ColorOf(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	a.Equal(Color{R: 1, G: 0, B: 0.2, A: 1}, c)
	a.Equal(color.NRGBA{R: 255, G: 0, B: 51, A: 128}, c.WithAlpha(0.5).NRGBA())
	a.Equal(Color{R: 0.5, G: 0, B: 0.1, A: 0.5}, c.Mul(Color{R: 0.5, G: 1, B: 0.5, A: 0.5}))
	a.True(White.IsWhite())
	a.False(c.IsWhite())
	a.Equal(color.NRGBA{}, Color{R: -1, A: -0.5}.NRGBA())
}
