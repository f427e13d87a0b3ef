package main

import "github.com/zucenko/pexeso/model"

// Sprite is the drawn state of one card. It lags the model while a flip
// animation runs: shown switches at the midpoint, when scaleX reaches 0.
type Sprite struct {
	Index  int
	shown  bool
	scaleX float64
}

func NewSprites(cards []model.CardView) []*Sprite {
	sprites := make([]*Sprite, 0, len(cards))
	for _, c := range cards {
		sprites = append(sprites, &Sprite{Index: c.Index, shown: c.FaceUp || c.Matched, scaleX: 1})
	}
	return sprites
}
