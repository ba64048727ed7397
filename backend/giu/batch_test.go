package giu

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"vincit.fi/scene-widgets/api/apitype"
)

func TestToScreen(t *testing.T) {
	tests := []struct {
		name   string
		stageX float32
		stageY float32
		want   image.Point
	}{
		{name: "Bottom left", stageX: 0, stageY: 0, want: image.Pt(10, 120)},
		{name: "Top left", stageX: 0, stageY: 100, want: image.Pt(10, 20)},
		{name: "Rounded", stageX: 4.6, stageY: 49.6, want: image.Pt(15, 70)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			origin := image.Pt(10, 20)

			screen := ToScreen(origin, 100, tt.stageX, tt.stageY)
			a.Equal(tt.want, screen)

			x, y := ToStage(origin, 100, screen)
			a.InDelta(tt.stageX, x, 0.5)
			a.InDelta(tt.stageY, y, 0.5)
		})
	}
}

func TestKeyOf(t *testing.T) {
	a := assert.New(t)

	region := apitype.NewTextureRegion(imaging.New(4, 2, color.White))

	_, ok := keyOf(nil, false, false, apitype.White, 0)
	a.False(ok)
	_, ok = keyOf(region, false, false, apitype.Clear, 0)
	a.False(ok)

	key, ok := keyOf(region, true, false, apitype.White, 90)
	a.True(ok)
	a.True(key.flipX)
	a.False(key.flipY)

	region.Flip(true, true)
	key, _ = keyOf(region, true, false, apitype.White, 0)
	a.False(key.flipX)
	a.True(key.flipY)

	first, _ := keyOf(region, false, false, apitype.White, 0)
	second, _ := keyOf(region, false, false, apitype.White, 0)
	a.Equal(first, second)
}

func TestPrepare(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	texture := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	texture.SetNRGBA(0, 0, red)
	texture.SetNRGBA(1, 0, blue)
	region := apitype.NewTextureRegion(texture)

	t.Run("Flipped", func(t *testing.T) {
		a := assert.New(t)
		key, _ := keyOf(region, true, false, apitype.White, 0)

		pixels := prepare(key, DefaultMaxTextureSize)

		a.Equal(blue, pixels.NRGBAAt(0, 0))
		a.Equal(red, pixels.NRGBAAt(1, 0))
	})
	t.Run("Rotated", func(t *testing.T) {
		a := assert.New(t)
		key, _ := keyOf(region, false, false, apitype.White, 90)

		pixels := prepare(key, DefaultMaxTextureSize)

		a.Equal(image.Rect(0, 0, 1, 2), pixels.Bounds())
		a.Equal(blue, pixels.NRGBAAt(0, 0))
		a.Equal(red, pixels.NRGBAAt(0, 1))
	})
	t.Run("Tinted", func(t *testing.T) {
		a := assert.New(t)
		key, _ := keyOf(region.Split(1, 0, 1, 1), false, false, apitype.White.WithAlpha(0.5), 0)

		pixels := prepare(key, DefaultMaxTextureSize)

		a.Equal(color.NRGBA{B: 255, A: 128}, pixels.NRGBAAt(0, 0))
	})
	t.Run("Shrunk to max size", func(t *testing.T) {
		a := assert.New(t)
		key, _ := keyOf(apitype.NewTextureRegion(imaging.New(40, 20, red)), false, false, apitype.White, 0)

		pixels := prepare(key, 10)

		a.Equal(image.Rect(0, 0, 10, 5), pixels.Bounds())
	})
}

func TestTextureCache_Clear(t *testing.T) {
	a := assert.New(t)

	cache := NewTextureCache(0)
	a.Equal(DefaultMaxTextureSize, cache.maxSize)

	cache.entries[textureKey{}] = &textureEntry{}
	a.Equal(1, cache.Len())
	cache.Clear()
	a.Equal(0, cache.Len())
}
