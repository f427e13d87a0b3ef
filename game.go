package main

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/zucenko/pexeso/anim"
	"github.com/zucenko/pexeso/model"
	"golang.org/x/image/font"

	log "github.com/sirupsen/logrus"
)

// PressSource reports where presses began during the current frame.
type PressSource interface {
	JustPressed() []image.Point
}

// MousePressSource is a PressSource implementation of the left mouse button.
type MousePressSource struct{}

func (m *MousePressSource) JustPressed() []image.Point {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	x, y := ebiten.CursorPosition()
	return []image.Point{{X: x, Y: y}}
}

// TouchPressSource is a PressSource implementation of touches.
type TouchPressSource struct{}

func (t *TouchPressSource) JustPressed() []image.Point {
	ids := inpututil.JustPressedTouchIDs()
	points := make([]image.Point, 0, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		points = append(points, image.Point{X: x, Y: y})
	}
	return points
}

type Game struct {
	Session *model.Session
	Sprites []*Sprite
	Tweens  anim.Tweens
	sources []PressSource

	Back, Front, Border *Nine
	Disc                *ebiten.Image
	Font                font.Face
	bannerAlpha         float64
}

func NewGame(cfg model.Config, rnd *rand.Rand) (*Game, error) {
	g := &Game{
		Tweens:  anim.New(),
		sources: []PressSource{&MousePressSource{}, &TouchPressSource{}},
	}

	corner, err := roundedRect(cornerSize)
	if err != nil {
		return nil, fmt.Errorf("card image: %w", err)
	}
	g.Border = NewNine(corner, cornerSize)
	g.Border.Tint(COLOR_BORDER, 1)
	g.Back = NewNine(corner, cornerSize)
	g.Back.Tint(COLOR_BACK, 1)
	g.Front = NewNine(corner, cornerSize)
	g.Front.Tint(COLOR_FRONT, 1)

	if g.Disc, err = disc(64); err != nil {
		return nil, fmt.Errorf("disc image: %w", err)
	}
	if g.Font, err = loadFont(fontSize); err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}

	// reverts fire from Tweens.Update, on the frame goroutine
	session, err := model.NewSession(cfg, rnd, g.Tweens)
	if err != nil {
		return nil, err
	}
	g.Session = session
	g.Sprites = NewSprites(session.Cards())
	session.Subscribe(g.onEvent)
	return g, nil
}

func (g *Game) onEvent(e model.Event) {
	switch e.Kind {
	case model.Flipped:
		g.animateFlip(g.Sprites[e.First.Index], e.First.FaceUp)
	case model.Reverted:
		g.animateFlip(g.Sprites[e.First.Index], e.First.FaceUp)
		g.animateFlip(g.Sprites[e.Second.Index], e.Second.FaceUp)
	case model.Won:
		g.fadeInBanner()
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.Tweens.Update(tick)

	for _, source := range g.sources {
		for _, p := range source.JustPressed() {
			if g.Session.Press(float64(p.X), float64(p.Y)) {
				log.WithFields(log.Fields{"x": p.X, "y": p.Y}).Debug("press accepted")
			}
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.draw(screen)
}

func (g *Game) draw(screen *ebiten.Image) error {
	e := screen.Fill(color.NRGBA{
		R: uint8(COLOR_TABLE.r * 255),
		G: uint8(COLOR_TABLE.g * 255),
		B: uint8(COLOR_TABLE.b * 255),
		A: 255,
	})
	if e != nil {
		log.Printf("%v", e)
	}

	for _, card := range g.Session.Cards() {
		g.drawCard(screen, card, g.Sprites[card.Index])
	}

	if g.Session.IsWon() {
		g.drawBanner(screen)
	}

	c := g.Session.Controller
	status := fmt.Sprintf("%s %d/%d", g.Session.State().Name(), c.PairsFound(), g.Session.Board.TotalPairs())
	ebitenutil.DebugPrintAt(screen, status, 4, 0)
	return nil
}

func (g *Game) drawCard(screen *ebiten.Image, card model.CardView, s *Sprite) {
	cx := card.X + card.Width/2
	cy := card.Y + card.Height/2
	width := int(card.Width * s.scaleX)
	height := int(card.Height)

	g.Border.SetBounds(cx, cy, width+4, height+4)
	g.Border.Draw(screen)

	side := g.Back
	if s.shown {
		side = g.Front
	}
	side.SetBounds(cx, cy, width, height)
	side.Draw(screen)

	if !s.shown {
		return
	}
	c := FACE_COLORS[card.Face]
	dw, _ := g.Disc.Size()
	scale := card.Width * discRatio / float64(dw)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(dw)/2, -float64(dw)/2)
	op.GeoM.Scale(scale*s.scaleX, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorM.Scale(c.r, c.g, c.b, 1)
	screen.DrawImage(g.Disc, op)
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	w, h := screen.Size()
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h),
		color.NRGBA{R: 255, G: 255, A: uint8(200 * g.bannerAlpha)})

	const msg = "YOU WIN!"
	m := g.Font.Metrics()
	x := (w - font.MeasureString(g.Font, msg).Ceil()) / 2
	y := (h + m.Ascent.Ceil() - m.Descent.Ceil()) / 2
	text.Draw(screen, msg, g.Font, x, y, color.NRGBA{A: uint8(255 * g.bannerAlpha)})
}

func main() {
	log.SetLevel(logLevel)
	cfg := model.DefaultConfig()
	g, err := NewGame(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(g.update, int(cfg.Width), int(cfg.Height), 1, title); err != nil {
		log.Fatal(err)
	}
}
