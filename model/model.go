package model

import "fmt"

type Face int

const (
	Red Face = iota
	Green
	Cyan
	Yellow
	Orange
	Purple
	Lime
	Magenta
)

// Faces lists every face a deal can use, in palette order.
var Faces = []Face{Red, Green, Cyan, Yellow, Orange, Purple, Lime, Magenta}

func (f Face) String() string {
	switch f {
	case Red:
		return "red"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Purple:
		return "purple"
	case Lime:
		return "lime"
	case Magenta:
		return "magenta"
	default:
		return fmt.Sprintf("n/a:%d", int(f))
	}
}

// Card is one grid cell. Face never changes after the deal.
type Card struct {
	Index         int
	Col, Row      int
	X, Y          float64
	Width, Height float64
	Face          Face
	FaceUp        bool
	Matched       bool
}

type Board struct {
	Cols, Rows int
	CardSize   float64
	Padding    float64
	Cards      []*Card
}

// CardView is the read-only projection handed to renderers.
type CardView struct {
	Index         int
	X, Y          float64
	Width, Height float64
	FaceUp        bool
	Matched       bool
	Face          Face
}
