// Package giu draws a stage on a giu window canvas. Regions are turned into
// textures in the background and cached for as long as they are drawn the
// same way.
package giu

import (
	"image"
	"image/color"
	"sync"

	g "github.com/AllenDang/giu"
	"github.com/disintegration/imaging"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/backend/software"
	"vincit.fi/scene-widgets/common/imagereader"
	"vincit.fi/scene-widgets/common/logger"
)

const DefaultMaxTextureSize = 2048

type textureKey struct {
	texture  image.Image
	bounds   image.Rectangle
	flipX    bool
	flipY    bool
	color    apitype.Color
	rotation float32
}

type textureEntry struct {
	texture *g.Texture
}

type TextureCache struct {
	maxSize int
	entries map[textureKey]*textureEntry
	mux     sync.Mutex
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = DefaultMaxTextureSize
	}
	return &TextureCache{
		maxSize: maxSize,
		entries: map[textureKey]*textureEntry{},
	}
}

// keyOf returns false for regions that would not draw anything.
func keyOf(region *apitype.TextureRegion, flipX bool, flipY bool, tint apitype.Color, rotation float32) (textureKey, bool) {
	if region == nil || region.Texture() == nil || region.Bounds().Empty() || tint.A <= 0 {
		return textureKey{}, false
	}
	return textureKey{
		texture:  region.Texture(),
		bounds:   region.Bounds(),
		flipX:    region.IsFlipX() != flipX,
		flipY:    region.IsFlipY() != flipY,
		color:    tint,
		rotation: rotation,
	}, true
}

// Get returns the texture for key or nil while it is still being created.
func (s *TextureCache) Get(key textureKey) *g.Texture {
	s.mux.Lock()
	defer s.mux.Unlock()

	if entry, ok := s.entries[key]; ok {
		return entry.texture
	}

	entry := &textureEntry{}
	s.entries[key] = entry
	go func() {
		rgba := imagereader.ConvertNrgbaToRgba(prepare(key, s.maxSize))
		texture, err := g.NewTextureFromRgba(rgba)
		if err != nil {
			logger.Error.Print("Could not create texture: ", err)
			return
		}
		s.mux.Lock()
		entry.texture = texture
		s.mux.Unlock()
		g.Update()
	}()
	return nil
}

func (s *TextureCache) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.entries)
}

// Clear drops every cached texture, e.g. after the drawn regions change.
func (s *TextureCache) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.entries = map[textureKey]*textureEntry{}
}

// prepare crops, flips, tints and rotates the region the key describes.
// Regions larger than maxSize are shrunk to fit, the GPU stretches them
// back when drawn.
func prepare(key textureKey, maxSize int) *image.NRGBA {
	pixels := imaging.Crop(key.texture, key.bounds)
	width, height := pixels.Rect.Dx(), pixels.Rect.Dy()
	if width > maxSize || height > maxSize {
		width, height = apitype.ScaleToFit(width, height, maxSize, maxSize)
		logger.Debug.Printf("Shrinking texture from %s to %dx%d", key.bounds.Size(), width, height)
		pixels = imaging.Resize(pixels, width, height, imaging.Linear)
	}
	if key.flipX {
		pixels = imaging.FlipH(pixels)
	}
	if key.flipY {
		pixels = imaging.FlipV(pixels)
	}
	if !key.color.IsWhite() {
		pixels = software.Tint(pixels, key.color)
	}
	if key.rotation != 0 {
		pixels = imaging.Rotate(pixels, float64(key.rotation), color.Transparent)
	}
	return pixels
}
