package main

import (
	"github.com/sirupsen/logrus"
	"github.com/zucenko/pexeso/model"
)

const (
	title      = "Pexeso"
	logLevel   = logrus.InfoLevel
	tick       = float32(1) / 60
	flipTime   = float32(0.2)
	bannerTime = float32(0.5)
	fontSize   = 50
	cornerSize = 10
	discRatio  = 0.6
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

var (
	COLOR_TABLE  = HexToF32(0x228b22)
	COLOR_BACK   = HexToF32(0x4169e1)
	COLOR_FRONT  = HexToF32(0xffffff)
	COLOR_BORDER = HexToF32(0x000000)
)

// FACE_COLORS maps the symbolic faces of the deck onto drawing colors.
var FACE_COLORS = map[model.Face]GameColor{
	model.Red:     HexToF32(0xff0000),
	model.Green:   HexToF32(0x008000),
	model.Cyan:    HexToF32(0x00ffff),
	model.Yellow:  HexToF32(0xffff00),
	model.Orange:  HexToF32(0xffa500),
	model.Purple:  HexToF32(0x800080),
	model.Lime:    HexToF32(0x00ff00),
	model.Magenta: HexToF32(0xff00ff),
}
