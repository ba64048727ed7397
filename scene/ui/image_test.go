package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/scene-widgets/api/apitype"
)

func TestNewImage(t *testing.T) {
	a := assert.New(t)

	t.Run("Region", func(t *testing.T) {
		image := NewImage(newRegion(40, 30))
		a.Equal(apitype.Stretch, image.Scaling())
		a.Equal(apitype.AlignCenter, image.Align())
		a.Equal(float32(40), image.Width())
		a.Equal(float32(30), image.Height())
		a.True(image.NeedsLayout())
	})
	t.Run("Nil region", func(t *testing.T) {
		image := NewImage(nil)
		a.Nil(image.Region())
		a.Equal(float32(0), image.Width())
		a.Equal(float32(0), image.Height())
	})
	t.Run("Nil scaling", func(t *testing.T) {
		image := NewImageWithScaling(nil, nil, apitype.AlignTop)
		a.Equal(apitype.Stretch, image.Scaling())
		a.Equal(apitype.AlignTop, image.Align())
	})
	t.Run("Nine patch", func(t *testing.T) {
		patch, err := apitype.NewNinePatch(newRegion(30, 20), 5, 5, 4, 4)
		a.Nil(err)
		image := NewNinePatchImageWithScaling(patch, apitype.Fit, apitype.AlignLeft)
		a.Equal(patch, image.Patch())
		a.Equal(apitype.Fit, image.Scaling())
		a.Equal(float32(30), image.Width())
		a.Equal(float32(20), image.Height())
	})
}

func TestImage_PrefSize(t *testing.T) {
	a := assert.New(t)

	image := NewImage(nil)
	a.Equal(float32(0), image.PrefWidth())
	a.Equal(float32(0), image.PrefHeight())

	flipped := newRegion(40, 30)
	flipped.Flip(true, true)
	image.SetRegion(flipped)
	a.Equal(float32(40), image.PrefWidth())
	a.Equal(float32(30), image.PrefHeight())

	patch, _ := apitype.NewNinePatch(newRegion(16, 12), 2, 3, 4, 5)
	image.SetPatch(patch)
	a.Nil(image.Region())
	a.Equal(float32(16), image.PrefWidth())
	a.Equal(float32(12), image.PrefHeight())

	a.Equal(float32(0), image.MinWidth())
	a.Equal(float32(0), image.MinHeight())
}

func TestImage_Layout_Align(t *testing.T) {
	tests := []struct {
		name  string
		align apitype.Align
		x, y  float32
	}{
		{name: "center", align: apitype.AlignCenter, x: 40, y: 20},
		{name: "top-left", align: apitype.AlignTopLeft, x: 0, y: 41},
		{name: "top-right", align: apitype.AlignTopRight, x: 81, y: 41},
		{name: "bottom-left", align: apitype.AlignBottomLeft, x: 0, y: 0},
		{name: "bottom-right", align: apitype.AlignBottomRight, x: 81, y: 0},
		{name: "top", align: apitype.AlignTop, x: 40, y: 41},
		{name: "bottom", align: apitype.AlignBottom, x: 40, y: 0},
		{name: "left", align: apitype.AlignLeft, x: 0, y: 20},
		{name: "right", align: apitype.AlignRight, x: 81, y: 20},
		{name: "left and right", align: apitype.AlignLeft | apitype.AlignRight, x: 0, y: 20},
		{name: "top and bottom", align: apitype.AlignTop | apitype.AlignBottom, x: 40, y: 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			image := NewImageWithScaling(newRegion(20, 10), apitype.None, tt.align)
			image.SetSize(101, 51)
			image.Validate()

			a.Equal(tt.x, image.ImageX())
			a.Equal(tt.y, image.ImageY())
			a.Equal(float32(20), image.ImageWidth())
			a.Equal(float32(10), image.ImageHeight())
		})
	}
}

func TestImage_Layout_Scaling(t *testing.T) {
	tests := []struct {
		name          string
		scaling       apitype.Scaling
		x, y          float32
		width, height float32
	}{
		{name: "stretch", scaling: apitype.Stretch, x: 0, y: 0, width: 100, height: 100},
		{name: "fit", scaling: apitype.Fit, x: 0, y: 25, width: 100, height: 50},
		{name: "fill", scaling: apitype.Fill, x: -50, y: 0, width: 200, height: 100},
		{name: "none", scaling: apitype.None, x: 40, y: 45, width: 20, height: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			image := NewImageWithScaling(newRegion(20, 10), tt.scaling, apitype.AlignCenter)
			image.SetSize(100, 100)
			image.Validate()

			a.Equal(tt.x, image.ImageX())
			a.Equal(tt.y, image.ImageY())
			a.Equal(tt.width, image.ImageWidth())
			a.Equal(tt.height, image.ImageHeight())
		})
	}
}

func TestImage_Layout_Truncates(t *testing.T) {
	a := assert.New(t)

	image := NewImageWithScaling(newRegion(3, 3), apitype.None, apitype.AlignTopRight)
	image.SetSize(10.5, 10.5)
	image.Validate()

	a.Equal(float32(7), image.ImageX())
	a.Equal(float32(7), image.ImageY())

	image.SetAlign(apitype.AlignCenter)
	image.Invalidate()
	image.Validate()

	a.Equal(float32(3), image.ImageX())
	a.Equal(float32(3), image.ImageY())
}

func TestImage_Layout_NoSource(t *testing.T) {
	a := assert.New(t)

	image := NewImage(nil)
	image.SetSize(100, 100)
	image.Validate()

	a.False(image.NeedsLayout())
	a.Equal(float32(0), image.ImageX())
	a.Equal(float32(0), image.ImageY())
	a.Equal(float32(0), image.ImageWidth())
	a.Equal(float32(0), image.ImageHeight())
}

func TestImage_SetRegion_Invalidation(t *testing.T) {
	region := newRegion(20, 10)

	tests := []struct {
		name          string
		set           func(image *Image)
		invalidations int
	}{
		{name: "Same region", set: func(image *Image) { image.SetRegion(region) }, invalidations: 0},
		{name: "Same size", set: func(image *Image) { image.SetRegion(newRegion(20, 10)) }, invalidations: 0},
		{name: "Same size flipped", set: func(image *Image) {
			flipped := newRegion(20, 10)
			flipped.Flip(true, false)
			image.SetRegion(flipped)
		}, invalidations: 0},
		{name: "Different width", set: func(image *Image) { image.SetRegion(newRegion(21, 10)) }, invalidations: 1},
		{name: "Different height", set: func(image *Image) { image.SetRegion(newRegion(20, 11)) }, invalidations: 1},
		{name: "Nil", set: func(image *Image) { image.SetRegion(nil) }, invalidations: 1},
		{name: "Same size patch", set: func(image *Image) {
			patch, _ := apitype.NewNinePatch(newRegion(20, 10), 1, 1, 1, 1)
			image.SetPatch(patch)
		}, invalidations: 0},
		{name: "Different size patch", set: func(image *Image) {
			patch, _ := apitype.NewNinePatch(newRegion(30, 10), 1, 1, 1, 1)
			image.SetPatch(patch)
		}, invalidations: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			container := NewStubContainer()
			image := NewImage(region)
			container.AddActor(image)
			container.invalidations = 0

			tt.set(image)

			a.Equal(tt.invalidations, container.invalidations)
		})
	}
}

func TestImage_SetRegion_ClearsPatch(t *testing.T) {
	a := assert.New(t)

	patch, _ := apitype.NewNinePatch(newRegion(20, 10), 1, 1, 1, 1)
	image := NewNinePatchImage(patch)
	region := newRegion(5, 5)

	image.SetRegion(region)
	a.Nil(image.Patch())
	a.Equal(region, image.Region())

	image.SetPatch(patch)
	a.Nil(image.Region())
	a.Equal(patch, image.Patch())
}

func TestImage_SetPatch_NilWithoutSource(t *testing.T) {
	a := assert.New(t)

	container := NewStubContainer()
	image := NewImage(nil)
	container.AddActor(image)
	container.invalidations = 0

	image.SetPatch(nil)
	image.SetRegion(nil)

	a.Equal(0, container.invalidations)
}

func TestImage_SetScaling(t *testing.T) {
	a := assert.New(t)

	image := NewImageWithScaling(newRegion(20, 10), apitype.Fit, apitype.AlignCenter)

	err := image.SetScaling(nil)
	a.True(errors.Is(err, apitype.ErrNilScaling))
	a.Equal(apitype.Fit, image.Scaling())

	a.Nil(image.SetScaling(apitype.Fill))
	a.Equal(apitype.Fill, image.Scaling())
}

func TestImage_SetAlign(t *testing.T) {
	a := assert.New(t)

	image := NewImage(nil)
	image.SetAlign(apitype.AlignLeft | apitype.AlignRight | apitype.AlignBottom)

	a.Equal(apitype.AlignLeft|apitype.AlignRight|apitype.AlignBottom, image.Align())
}

func TestImage_Draw(t *testing.T) {
	t.Run("Region", func(t *testing.T) {
		a := assert.New(t)
		region := newRegion(20, 10)
		image := NewImageWithScaling(region, apitype.None, apitype.AlignCenter)
		image.SetBounds(5, 6, 40, 20)
		image.SetColor(apitype.Color{R: 1, G: 0.5, B: 1, A: 0.5})
		batch := &RecordingBatch{}

		image.Draw(batch, 0.5)

		a.False(image.NeedsLayout())
		a.Equal([]drawCall{{
			region: region, x: 15, y: 11, width: 20, height: 10, scaleX: 1, scaleY: 1,
			color: apitype.Color{R: 1, G: 0.5, B: 1, A: 0.25},
		}}, batch.calls)
	})
	t.Run("Transformed region", func(t *testing.T) {
		a := assert.New(t)
		region := newRegion(20, 10)
		image := NewImageWithScaling(region, apitype.None, apitype.AlignCenter)
		image.SetBounds(5, 6, 40, 20)
		image.SetOrigin(20, 10)
		image.SetScale(2, 3)
		image.SetRotation(90)
		batch := &RecordingBatch{}

		image.Draw(batch, 1)

		a.Equal([]drawCall{{
			region: region, x: 15, y: 11, width: 20, height: 10, transformed: true,
			originX: 10, originY: 5, scaleX: 2, scaleY: 3, rotation: 90,
			color: apitype.White,
		}}, batch.calls)
	})
	t.Run("Nine patch", func(t *testing.T) {
		a := assert.New(t)
		patch, _ := apitype.NewNinePatch(newRegion(30, 30), 10, 10, 10, 10)
		image := NewNinePatchImage(patch)
		image.SetBounds(0, 0, 60, 40)
		image.SetScale(2, 1)
		image.SetRotation(45)
		batch := &RecordingBatch{}

		image.Draw(batch, 1)

		a.Len(batch.calls, 9)
		for _, call := range batch.calls {
			a.False(call.transformed)
		}
		// Bottom right corner of a 120x40 patch.
		last := batch.calls[8]
		a.Equal(float32(110), last.x)
		a.Equal(float32(0), last.y)
		a.Equal(float32(10), last.width)
		a.Equal(float32(10), last.height)
	})
	t.Run("No source", func(t *testing.T) {
		a := assert.New(t)
		image := NewImage(nil)
		batch := &RecordingBatch{}

		image.Draw(batch, 1)

		a.Empty(batch.calls)
		a.Equal(apitype.White, batch.Color())
	})
}

func TestWidget_Pack(t *testing.T) {
	a := assert.New(t)

	image := NewImageWithScaling(newRegion(20, 10), apitype.Fit, apitype.AlignCenter)
	image.SetSize(200, 200)
	image.Validate()
	image.SetRegion(newRegion(30, 15))

	image.Pack()

	a.Equal(float32(30), image.Width())
	a.Equal(float32(15), image.Height())
	a.Equal(float32(30), image.ImageWidth())
	a.Equal(float32(15), image.ImageHeight())
	a.Equal(float32(0), image.ImageX())
	a.False(image.NeedsLayout())
}
