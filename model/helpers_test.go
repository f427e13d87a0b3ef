package model

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type scheduled struct {
	delay time.Duration
	f     func()
}

// manualScheduler queues actions until the test fires them.
type manualScheduler struct {
	queue []scheduled
}

func (m *manualScheduler) After(d time.Duration, f func()) {
	m.queue = append(m.queue, scheduled{delay: d, f: f})
}

func (m *manualScheduler) fire() {
	queue := m.queue
	m.queue = nil
	for _, s := range queue {
		s.f()
	}
}

func center(c *Card) (float64, float64) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

func press(c *Controller, card *Card) bool {
	x, y := center(card)
	return c.Press(x, y)
}

// newFixedBoard deals a default board and then lays faces out so that
// card i and card i+8 form a pair.
func newFixedBoard(t *testing.T) *Board {
	t.Helper()
	board, err := NewBoard(DefaultConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for i, card := range board.Cards {
		card.Face = Faces[i%len(Faces)]
	}
	return board
}

func newFixedController(t *testing.T) (*Board, *Controller, *manualScheduler) {
	t.Helper()
	board := newFixedBoard(t)
	scheduler := &manualScheduler{}
	return board, NewController(board, scheduler, DefaultConfig().RevertDelay), scheduler
}
