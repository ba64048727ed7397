package software

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Resampler scales texture pixels to the size they are drawn at.
type Resampler interface {
	Resample(img image.Image, width int, height int) *image.NRGBA
	String() string
}

type ImagingResampler struct {
	name   string
	filter imaging.ResampleFilter
}

func NewImagingResampler(name string, filter imaging.ResampleFilter) *ImagingResampler {
	return &ImagingResampler{name: name, filter: filter}
}

func (s *ImagingResampler) Resample(img image.Image, width int, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, s.filter)
}

func (s *ImagingResampler) String() string {
	return s.name
}

type NfntResampler struct {
	name          string
	interpolation resize.InterpolationFunction
}

func NewNfntResampler(name string, interpolation resize.InterpolationFunction) *NfntResampler {
	return &NfntResampler{name: name, interpolation: interpolation}
}

func (s *NfntResampler) Resample(img image.Image, width int, height int) *image.NRGBA {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return imaging.Clone(img)
	}
	return imaging.Clone(resize.Resize(uint(width), uint(height), img, s.interpolation))
}

func (s *NfntResampler) String() string {
	return s.name
}

var (
	Linear   Resampler = NewImagingResampler("linear", imaging.Linear)
	Lanczos  Resampler = NewImagingResampler("lanczos", imaging.Lanczos)
	Nearest  Resampler = NewImagingResampler("nearest", imaging.NearestNeighbor)
	Bicubic  Resampler = NewNfntResampler("bicubic", resize.Bicubic)
	Mitchell Resampler = NewNfntResampler("mitchell", resize.MitchellNetravali)
)

var resamplers = []Resampler{Linear, Lanczos, Nearest, Bicubic, Mitchell}

func ParseResampler(value string) (Resampler, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for _, resampler := range resamplers {
		if resampler.String() == name {
			return resampler, nil
		}
	}
	return nil, fmt.Errorf("unknown resampler '%s'", value)
}
