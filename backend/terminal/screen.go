package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// Present paints every pixel of img as the background of one cell. Mostly
// transparent pixels leave the cell in the default style.
func Present(screen tcell.Screen, img *image.NRGBA) {
	width, height := screen.Size()
	bounds := img.Bounds()
	for y := 0; y < height && y < bounds.Dy(); y++ {
		for x := 0; x < width && x < bounds.Dx(); x++ {
			pixel := img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			style := tcell.StyleDefault
			if pixel.A >= 128 {
				style = style.Background(tcell.NewRGBColor(int32(pixel.R), int32(pixel.G), int32(pixel.B)))
			}
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
