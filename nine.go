package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
	"github.com/zucenko/pexeso/patch"
)

// Nine draws a nine-patch: fixed corners, stretched edges and center.
type Nine struct {
	patch.Layout
	images  *ebiten.Image
	alpha   float64
	R, G, B float64
}

// NewNine slices img into corners of corner pixels around a stretchable center.
func NewNine(img *ebiten.Image, corner int) *Nine {
	w, h := img.Size()
	return &Nine{
		Layout: patch.New(w, h, corner),
		images: img,
		alpha:  1,
		R:      1, G: 1, B: 1,
	}
}

func (n *Nine) Tint(c GameColor, alpha float64) {
	n.R, n.G, n.B = c.r, c.g, c.b
	n.alpha = alpha
}

func (n *Nine) drawPatch(col, row int, scaleX, scaleY float64, screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(n.TargetPositions[col][0], n.TargetPositions[row][1])
	op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
	src := image.Rect(n.Positions[col][0], n.Positions[row][1], n.Positions[col+1][0], n.Positions[row+1][1])
	screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scales := [3][2]float64{
		{n.Scale, n.Scale},
		{n.ScaleCenterWidth, n.ScaleCenterHeight},
		{n.Scale, n.Scale},
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			n.drawPatch(col, row, scales[col][0], scales[row][1], screen)
		}
	}
}
