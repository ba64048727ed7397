package api

import "vincit.fi/scene-widgets/api/apitype"

// Batch is the drawing facility widgets render through. Coordinates are
// in scene space with the origin at the bottom left and y pointing up.
type Batch interface {
	apitype.RegionDrawer

	SetColor(color apitype.Color)
	Color() apitype.Color

	// DrawTransformed draws region scaled around and rotated (degrees,
	// counter clockwise) about the origin, which is relative to x, y.
	DrawTransformed(region *apitype.TextureRegion, x, y, originX, originY, width, height, scaleX, scaleY, rotation float32)
}
