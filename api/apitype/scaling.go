package apitype

import (
	"fmt"
	"strings"
)

// Scaling maps the natural size of a source and a target box to the size
// the source is drawn at.
type Scaling interface {
	Apply(sourceWidth, sourceHeight, targetWidth, targetHeight float32) (float32, float32)
	String() string
}

type scalingFunc struct {
	name  string
	apply func(sourceWidth, sourceHeight, targetWidth, targetHeight float32) (float32, float32)
}

func (s *scalingFunc) Apply(sourceWidth, sourceHeight, targetWidth, targetHeight float32) (float32, float32) {
	return s.apply(sourceWidth, sourceHeight, targetWidth, targetHeight)
}

func (s *scalingFunc) String() string {
	return s.name
}

var (
	// Fit keeps the aspect ratio and scales the source to fit the target.
	// The result may be smaller than the target on one axis.
	Fit Scaling = &scalingFunc{name: "fit", apply: func(sw, sh, tw, th float32) (float32, float32) {
		scale := th / sh
		if th/tw > sh/sw {
			scale = tw / sw
		}
		return sw * scale, sh * scale
	}}
	// Fill keeps the aspect ratio and scales the source to cover the target.
	// The result may be larger than the target on one axis.
	Fill Scaling = &scalingFunc{name: "fill", apply: func(sw, sh, tw, th float32) (float32, float32) {
		scale := th / sh
		if th/tw < sh/sw {
			scale = tw / sw
		}
		return sw * scale, sh * scale
	}}
	FillX Scaling = &scalingFunc{name: "fillx", apply: func(sw, sh, tw, th float32) (float32, float32) {
		scale := tw / sw
		return sw * scale, sh * scale
	}}
	FillY Scaling = &scalingFunc{name: "filly", apply: func(sw, sh, tw, th float32) (float32, float32) {
		scale := th / sh
		return sw * scale, sh * scale
	}}
	// Stretch ignores the aspect ratio and uses the target size.
	Stretch Scaling = &scalingFunc{name: "stretch", apply: func(sw, sh, tw, th float32) (float32, float32) {
		return tw, th
	}}
	StretchX Scaling = &scalingFunc{name: "stretchx", apply: func(sw, sh, tw, th float32) (float32, float32) {
		return tw, sh
	}}
	StretchY Scaling = &scalingFunc{name: "stretchy", apply: func(sw, sh, tw, th float32) (float32, float32) {
		return sw, th
	}}
	// None keeps the natural size.
	None Scaling = &scalingFunc{name: "none", apply: func(sw, sh, tw, th float32) (float32, float32) {
		return sw, sh
	}}
)

var scalings = []Scaling{Fit, Fill, FillX, FillY, Stretch, StretchX, StretchY, None}

func ParseScaling(value string) (Scaling, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for _, scaling := range scalings {
		if scaling.String() == name {
			return scaling, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownScaling, value)
}
