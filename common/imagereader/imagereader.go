// Package imagereader loads textures from disk and converts them to the
// pixel formats the backends upload.
package imagereader

import (
	"image"
	"time"

	"github.com/disintegration/imaging"
	"vincit.fi/scene-widgets/common/logger"
)

// LoadImage decodes the image at path, applying its EXIF orientation.
func LoadImage(path string) (*image.NRGBA, error) {
	start := time.Now()
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	nrgba := imaging.Clone(img)
	logger.Debug.Printf("Loaded '%s' %dx%d in %s", path, nrgba.Rect.Dx(), nrgba.Rect.Dy(), time.Since(start))
	return nrgba, nil
}

// ConvertNrgbaToRgba premultiplies the alpha of every pixel.
func ConvertNrgbaToRgba(i image.Image) *image.RGBA {
	start := time.Now()
	n, ok := i.(*image.NRGBA)
	if !ok {
		n = imaging.Clone(i)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, n.Rect.Dx(), n.Rect.Dy()))
	for y := 0; y < n.Rect.Dy(); y++ {
		for x := 0; x < n.Rect.Dx(); x++ {
			nrgbaPixOffset := n.PixOffset(n.Rect.Min.X+x, n.Rect.Min.Y+y)
			nrgbaStride := n.Pix[nrgbaPixOffset : nrgbaPixOffset+4 : nrgbaPixOffset+4]

			rgbaPixOffset := rgba.PixOffset(x, y)
			rgbaStride := rgba.Pix[rgbaPixOffset : rgbaPixOffset+4 : rgbaPixOffset+4]

			alpha := uint32(nrgbaStride[3])
			rgbaStride[0] = uint8(uint32(nrgbaStride[0]) * alpha / 255)
			rgbaStride[1] = uint8(uint32(nrgbaStride[1]) * alpha / 255)
			rgbaStride[2] = uint8(uint32(nrgbaStride[2]) * alpha / 255)
			rgbaStride[3] = nrgbaStride[3]
		}
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting from NRGBA to RGBA: %s", time.Since(start))
	}
	return rgba
}
