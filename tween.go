package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/pexeso/anim"
)

// animateFlip turns the sprite edge-on, swaps the shown side and turns it back.
func (g *Game) animateFlip(s *Sprite, faceUp bool) {
	shrink := &anim.Action{OnChange: func(v float32) { s.scaleX = float64(v) }}
	shrink.AddOnFinish(func() { s.shown = faceUp })
	grow := shrink.Next(gween.New(0, 1, flipTime/2, ease.OutQuad))
	grow.OnChange = func(v float32) { s.scaleX = float64(v) }
	g.Tweens.Start(gween.New(float32(s.scaleX), 0, flipTime/2, ease.InQuad), shrink)
}

func (g *Game) fadeInBanner() {
	g.Tweens.Start(gween.New(0, 1, bannerTime, ease.OutCubic), &anim.Action{
		OnChange: func(v float32) { g.bannerAlpha = float64(v) },
	})
}
