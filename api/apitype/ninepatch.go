package apitype

import "fmt"

// NinePatch splits a region into a 3x3 grid. Corners keep their size, the
// edges stretch along one axis and the center stretches along both.
type NinePatch struct {
	patches [9]*TextureRegion

	leftWidth    float32
	rightWidth   float32
	middleWidth  float32
	topHeight    float32
	bottomHeight float32
	middleHeight float32
}

// NewNinePatch cuts region using the given distances from each edge.
func NewNinePatch(region *TextureRegion, left int, right int, top int, bottom int) (*NinePatch, error) {
	if region == nil {
		return nil, fmt.Errorf("nine patch needs a region")
	}
	bounds := region.Bounds()
	middleWidth := bounds.Dx() - left - right
	middleHeight := bounds.Dy() - top - bottom
	if left < 0 || right < 0 || top < 0 || bottom < 0 || middleWidth < 0 || middleHeight < 0 {
		return nil, fmt.Errorf("invalid nine patch splits %d, %d, %d, %d for %s", left, right, top, bottom, region)
	}

	patch := &NinePatch{
		leftWidth:    float32(left),
		rightWidth:   float32(right),
		middleWidth:  float32(middleWidth),
		topHeight:    float32(top),
		bottomHeight: float32(bottom),
		middleHeight: float32(middleHeight),
	}

	columns := [3][2]int{{0, left}, {left, middleWidth}, {left + middleWidth, right}}
	rows := [3][2]int{{0, top}, {top, middleHeight}, {top + middleHeight, bottom}}
	for row, r := range rows {
		for column, c := range columns {
			if c[1] == 0 || r[1] == 0 {
				continue
			}
			patch.patches[row*3+column] = region.Split(c[0], r[0], c[1], r[1])
		}
	}
	return patch, nil
}

func (s *NinePatch) TotalWidth() float32 {
	return s.leftWidth + s.middleWidth + s.rightWidth
}

func (s *NinePatch) TotalHeight() float32 {
	return s.topHeight + s.middleHeight + s.bottomHeight
}

func (s *NinePatch) LeftWidth() float32 {
	return s.leftWidth
}

func (s *NinePatch) RightWidth() float32 {
	return s.rightWidth
}

func (s *NinePatch) TopHeight() float32 {
	return s.topHeight
}

func (s *NinePatch) BottomHeight() float32 {
	return s.bottomHeight
}

// Draw stretches the patch to the rectangle whose bottom left corner is at
// x, y. When the rectangle is smaller than the fixed edges the middle
// row and column collapse to nothing.
func (s *NinePatch) Draw(drawer RegionDrawer, x float32, y float32, width float32, height float32) {
	centerColumnX := x + s.leftWidth
	rightColumnX := x + width - s.rightWidth
	middleRowY := y + s.bottomHeight
	topRowY := y + height - s.topHeight
	centerWidth := max(rightColumnX-centerColumnX, 0)
	middleHeight := max(topRowY-middleRowY, 0)

	columnX := [3]float32{x, centerColumnX, rightColumnX}
	columnWidth := [3]float32{s.leftWidth, centerWidth, s.rightWidth}
	rowY := [3]float32{topRowY, middleRowY, y}
	rowHeight := [3]float32{s.topHeight, middleHeight, s.bottomHeight}

	for i, region := range s.patches {
		if region == nil {
			continue
		}
		row, column := i/3, i%3
		if columnWidth[column] == 0 || rowHeight[row] == 0 {
			continue
		}
		drawer.Draw(region, columnX[column], rowY[row], columnWidth[column], rowHeight[row])
	}
}

func (s *NinePatch) String() string {
	return fmt.Sprintf("NinePatch{%.0fx%.0f}", s.TotalWidth(), s.TotalHeight())
}
