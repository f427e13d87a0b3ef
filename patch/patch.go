package patch

// Layout is the geometry of a nine-patch: source slice positions and where
// they land on the target. It holds no image, so it can be laid out anywhere.
type Layout struct {
	Scale               float64
	Positions           [4][2]int
	X, Y, Width, Height int
	ScaleCenterWidth    float64
	ScaleCenterHeight   float64
	TargetPositions     [4][2]float64
}

// New slices a width x height source into corner pixel corners around a
// stretchable center.
func New(width, height, corner int) Layout {
	return Layout{
		Scale:     1,
		Positions: [4][2]int{{0, 0}, {corner, corner}, {width - corner, height - corner}, {width, height}},
	}
}

// MinSize is the smallest target that still fits both corners on each axis.
func (l *Layout) MinSize() (int, int) {
	w := l.Scale * float64(l.Positions[1][0]+l.Positions[3][0]-l.Positions[2][0])
	h := l.Scale * float64(l.Positions[1][1]+l.Positions[3][1]-l.Positions[2][1])
	return int(w), int(h)
}

func (l *Layout) SetPosition(x, y int) {
	l.X = x
	l.Y = y
	l.SetSize(l.Width, l.Height)
}

func (l *Layout) SetSize(width, height int) {
	width, height = l.clamp(width, height)
	l.Width = width
	l.Height = height
	l.TargetPositions[0][0] = float64(l.X)
	l.TargetPositions[0][1] = float64(l.Y)

	l.TargetPositions[1][0] = float64(l.X) + l.Scale*float64(l.Positions[1][0])
	l.TargetPositions[1][1] = float64(l.Y) + l.Scale*float64(l.Positions[1][1])

	l.TargetPositions[2][0] = float64(l.X+l.Width) - l.Scale*float64(l.Positions[3][0]-l.Positions[2][0])
	l.TargetPositions[2][1] = float64(l.Y+l.Height) - l.Scale*float64(l.Positions[3][1]-l.Positions[2][1])

	innerWidth := l.TargetPositions[2][0] - l.TargetPositions[1][0]
	innerHigh := l.TargetPositions[2][1] - l.TargetPositions[1][1]

	l.ScaleCenterWidth = innerWidth / float64(l.Positions[2][0]-l.Positions[1][0])
	l.ScaleCenterHeight = innerHigh / float64(l.Positions[2][1]-l.Positions[1][1])
}

// SetBounds centers a width x height patch on cx, cy. The size is clamped to
// MinSize before centering, so a clamped patch stays centered too.
func (l *Layout) SetBounds(cx, cy float64, width, height int) {
	width, height = l.clamp(width, height)
	l.Width, l.Height = width, height
	l.SetPosition(int(cx)-width/2, int(cy)-height/2)
}

func (l *Layout) clamp(width, height int) (int, int) {
	minWidth, minHeight := l.MinSize()
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	return width, height
}
