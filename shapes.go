package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// roundedRect is a white square of 2*radius+2 pixels with rounded corners,
// meant to be sliced by NewNine(img, radius).
func roundedRect(radius int) (*ebiten.Image, error) {
	size := 2*radius + 2
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx := clamp(float64(x)+.5, r, float64(size)-r)
			cy := clamp(float64(y)+.5, r, float64(size)-r)
			dx, dy := float64(x)+.5-cx, float64(y)+.5-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterLinear)
}

// disc is a white filled circle on a transparent diameter x diameter square.
func disc(diameter int) (*ebiten.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, diameter, diameter))
	r := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx, dy := float64(x)+.5-r, float64(y)+.5-r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterLinear)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
