package software

import (
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"vincit.fi/scene-widgets/api/apitype"
	"vincit.fi/scene-widgets/common/logger"
)

type scaledKey struct {
	texture image.Image
	bounds  image.Rectangle
	size    apitype.Size
}

type scaledEntry struct {
	pixels *image.NRGBA
	used   bool
}

// ScaledCache keeps cropped and resampled region pixels between frames.
// Entries not used during a frame are dropped when the frame ends.
type ScaledCache struct {
	resampler Resampler
	entries   map[scaledKey]*scaledEntry
	mux       sync.Mutex
}

func NewScaledCache(resampler Resampler) *ScaledCache {
	return &ScaledCache{
		resampler: resampler,
		entries:   map[scaledKey]*scaledEntry{},
	}
}

// GetScaled returns the pixels of bounds in texture resampled to size.
// The result is shared and must not be modified.
func (s *ScaledCache) GetScaled(texture image.Image, bounds image.Rectangle, size apitype.Size) *image.NRGBA {
	s.mux.Lock()
	defer s.mux.Unlock()

	key := scaledKey{texture: texture, bounds: bounds, size: size}
	if entry, ok := s.entries[key]; ok {
		entry.used = true
		return entry.pixels
	}

	pixels := s.resampler.Resample(imaging.Crop(texture, bounds), size.Width(), size.Height())
	s.entries[key] = &scaledEntry{pixels: pixels, used: true}
	return pixels
}

// EndFrame drops the entries that were not used since the previous call.
func (s *ScaledCache) EndFrame() {
	s.mux.Lock()
	defer s.mux.Unlock()

	for key, entry := range s.entries {
		if !entry.used {
			delete(s.entries, key)
			continue
		}
		entry.used = false
	}
}

func (s *ScaledCache) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.entries = map[scaledKey]*scaledEntry{}
}

func (s *ScaledCache) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.entries)
}

func (s *ScaledCache) GetByteSize() uint64 {
	s.mux.Lock()
	defer s.mux.Unlock()

	var size uint64
	for _, entry := range s.entries {
		size += uint64(len(entry.pixels.Pix))
	}
	return size
}

func (s *ScaledCache) GetSizeInMB() float64 {
	size := float64(s.GetByteSize()) / 1024 / 1024
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Scaled cache has %d entries, %.2f MB", s.Len(), size)
	}
	return size
}
