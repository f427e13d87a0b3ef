package model

import (
	"math/rand"

	"github.com/samber/lo"
)

// NewBoard deals cfg.Pairs() face pairs onto a Cols x Rows grid centered on
// the cfg.Width x cfg.Height surface. Cards are indexed row by row.
func NewBoard(cfg Config, rnd *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	faces := deal(cfg.Pairs(), rnd)

	startX := (cfg.Width - (float64(cfg.Cols)*cfg.CardSize + float64(cfg.Cols-1)*cfg.Padding)) / 2
	startY := (cfg.Height - (float64(cfg.Rows)*cfg.CardSize + float64(cfg.Rows-1)*cfg.Padding)) / 2

	cards := make([]*Card, 0, len(faces))
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			cards = append(cards, &Card{
				Index:  len(cards),
				Col:    c,
				Row:    r,
				X:      startX + float64(c)*(cfg.CardSize+cfg.Padding),
				Y:      startY + float64(r)*(cfg.CardSize+cfg.Padding),
				Width:  cfg.CardSize,
				Height: cfg.CardSize,
				Face:   faces[len(cards)],
			})
		}
	}
	return &Board{
		Cols:     cfg.Cols,
		Rows:     cfg.Rows,
		CardSize: cfg.CardSize,
		Padding:  cfg.Padding,
		Cards:    cards,
	}, nil
}

// deal returns every one of the first pairs faces twice, Fisher-Yates shuffled.
func deal(pairs int, rnd *rand.Rand) []Face {
	faces := Faces[:pairs]
	deck := lo.Flatten([][]Face{faces, faces})
	rnd.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Contains is strict on all four edges.
func (c *Card) Contains(x, y float64) bool {
	return x > c.X && x < c.X+c.Width &&
		y > c.Y && y < c.Y+c.Height
}

// Flip toggles the face. Matched cards stay face up.
func (c *Card) Flip() {
	if c.Matched {
		return
	}
	c.FaceUp = !c.FaceUp
}

func (c *Card) View() CardView {
	return CardView{
		Index:   c.Index,
		X:       c.X,
		Y:       c.Y,
		Width:   c.Width,
		Height:  c.Height,
		FaceUp:  c.FaceUp,
		Matched: c.Matched,
		Face:    c.Face,
	}
}

// CardAt returns the card under the point or nil.
func (b *Board) CardAt(x, y float64) *Card {
	card, found := lo.Find(b.Cards, func(c *Card) bool {
		return c.Contains(x, y)
	})
	if !found {
		return nil
	}
	return card
}

func (b *Board) Card(index int) *Card {
	if index < 0 || index >= len(b.Cards) {
		return nil
	}
	return b.Cards[index]
}

func (b *Board) MatchedCount() int {
	return lo.CountBy(b.Cards, func(c *Card) bool {
		return c.Matched
	})
}

func (b *Board) TotalPairs() int {
	return len(b.Cards) / 2
}

func (b *Board) IsWon() bool {
	return b.MatchedCount() == len(b.Cards)
}

func (b *Board) Views() []CardView {
	return lo.Map(b.Cards, func(c *Card, _ int) CardView {
		return c.View()
	})
}
