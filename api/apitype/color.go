package apitype

import (
	"fmt"
	"image/color"
)

// Color is a tint with channels in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Clear = Color{}
)

func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

func (s Color) WithAlpha(alpha float32) Color {
	s.A = alpha
	return s
}

func (s Color) Mul(other Color) Color {
	return Color{
		R: s.R * other.R,
		G: s.G * other.G,
		B: s.B * other.B,
		A: s.A * other.A,
	}
}

func (s Color) IsWhite() bool {
	return s == White
}

func (s Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: toByte(s.R),
		G: toByte(s.G),
		B: toByte(s.B),
		A: toByte(s.A),
	}
}

func (s Color) String() string {
	return fmt.Sprintf("Color{%.3f, %.3f, %.3f, %.3f}", s.R, s.G, s.B, s.A)
}

func toByte(value float32) uint8 {
	if value <= 0 {
		return 0
	}
	if value >= 1 {
		return 255
	}
	return uint8(value*255 + 0.5)
}
