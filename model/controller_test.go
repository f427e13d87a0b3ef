package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMismatchRevertsAfterDelay(t *testing.T) {
	board, c, scheduler := newFixedController(t)
	first, second := board.Card(3), board.Card(7)
	require.NotEqual(t, first.Face, second.Face)

	assert.True(t, press(c, first))
	assert.Equal(t, OnePending, c.State())
	assert.True(t, press(c, second))

	assert.True(t, first.FaceUp)
	assert.True(t, second.FaceUp)
	assert.True(t, c.Locked())
	assert.Equal(t, Reverting, c.State())
	require.Len(t, scheduler.queue, 1)
	assert.Equal(t, DefaultConfig().RevertDelay, scheduler.queue[0].delay)

	scheduler.fire()

	assert.False(t, first.FaceUp)
	assert.False(t, second.FaceUp)
	assert.Empty(t, c.Pending())
	assert.False(t, c.Locked())
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 0, c.PairsFound())
	assert.Equal(t, 0, board.MatchedCount())
}

func TestMatchIsImmediate(t *testing.T) {
	board, c, scheduler := newFixedController(t)
	first, second := board.Card(3), board.Card(11)
	require.Equal(t, first.Face, second.Face)

	assert.True(t, press(c, first))
	assert.True(t, press(c, second))

	assert.True(t, first.Matched)
	assert.True(t, second.Matched)
	assert.True(t, first.FaceUp)
	assert.True(t, second.FaceUp)
	assert.Equal(t, 1, c.PairsFound())
	assert.Empty(t, c.Pending())
	assert.False(t, c.Locked())
	assert.Equal(t, Idle, c.State())
	assert.Empty(t, scheduler.queue)
}

func TestPressSameCardTwice(t *testing.T) {
	board, c, _ := newFixedController(t)
	card := board.Card(3)

	assert.True(t, press(c, card))
	assert.False(t, press(c, card))

	assert.True(t, card.FaceUp)
	assert.Equal(t, []*Card{card}, c.Pending())
	assert.Equal(t, OnePending, c.State())
}

func TestPressWhileLockedIsIgnored(t *testing.T) {
	board, c, scheduler := newFixedController(t)
	press(c, board.Card(3))
	press(c, board.Card(7))
	require.True(t, c.Locked())

	for _, card := range board.Cards {
		assert.False(t, press(c, card), "card %d", card.Index)
	}
	assert.False(t, board.Card(0).FaceUp)
	assert.False(t, board.Card(11).FaceUp)
	assert.Len(t, c.Pending(), 2)
	assert.Len(t, scheduler.queue, 1)

	scheduler.fire()
	assert.True(t, press(c, board.Card(0)))
}

func TestPressAfterWinIsIgnored(t *testing.T) {
	board, c, scheduler := newFixedController(t)
	for i := 0; i < 8; i++ {
		require.True(t, press(c, board.Card(i)))
		require.True(t, press(c, board.Card(i+8)))
	}
	assert.Equal(t, 8, c.PairsFound())
	assert.True(t, c.Won())
	assert.True(t, board.IsWon())
	assert.False(t, c.Accepting())

	for _, card := range board.Cards {
		assert.False(t, press(c, card))
	}
	assert.Equal(t, 8, c.PairsFound())
	assert.Empty(t, scheduler.queue)
}

func TestPressOutsideCards(t *testing.T) {
	_, c, _ := newFixedController(t)
	assert.False(t, c.Press(5, 5))
	assert.False(t, c.Press(108, 62))
	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.Pending())
}

func TestPressMatchedCardIsIgnored(t *testing.T) {
	board, c, _ := newFixedController(t)
	press(c, board.Card(0))
	press(c, board.Card(8))

	assert.False(t, press(c, board.Card(0)))
	assert.False(t, press(c, board.Card(8)))
	assert.Empty(t, c.Pending())
}

func TestEvents(t *testing.T) {
	board, c, scheduler := newFixedController(t)
	var kinds []EventKind
	var states []TurnState
	c.Subscribe(func(e Event) {
		kinds = append(kinds, e.Kind)
		states = append(states, c.State())
	})

	press(c, board.Card(0))
	press(c, board.Card(1))
	scheduler.fire()
	press(c, board.Card(0))
	press(c, board.Card(8))

	assert.Equal(t, []EventKind{Flipped, Flipped, Mismatched, Reverted, Flipped, Flipped, Matched}, kinds)
	assert.Equal(t, []TurnState{OnePending, Evaluating, Evaluating, Idle, OnePending, Evaluating, Idle}, states)
}

func TestWonEventFiresOnce(t *testing.T) {
	board, c, _ := newFixedController(t)
	won := 0
	c.Subscribe(func(e Event) {
		if e.Kind == Won {
			won++
			assert.Nil(t, e.First)
		}
	})
	for i := 0; i < 8; i++ {
		press(c, board.Card(i))
		press(c, board.Card(i+8))
	}
	assert.Equal(t, 1, won)
}

func TestRevertIgnoresStaleTask(t *testing.T) {
	board, c, scheduler := newFixedController(t)
	press(c, board.Card(3))
	press(c, board.Card(7))
	require.Len(t, scheduler.queue, 1)
	stale := scheduler.queue[0].f

	scheduler.fire()
	press(c, board.Card(4))
	stale()

	assert.True(t, board.Card(4).FaceUp)
	assert.Equal(t, OnePending, c.State())
}

func TestPendingNeverExceedsTwo(t *testing.T) {
	board, c, scheduler := newFixedController(t)
	rnd := rand.New(rand.NewSource(7))

	for step := 0; step < 5000 && !c.Won(); step++ {
		if rnd.Intn(4) == 0 {
			scheduler.fire()
		}
		wasAccepting := c.Accepting()
		x := rnd.Float64() * DefaultConfig().Width
		y := rnd.Float64() * DefaultConfig().Height
		accepted := c.Press(x, y)

		if accepted {
			assert.True(t, wasAccepting)
		}
		assert.LessOrEqual(t, len(c.Pending()), 2)
		assert.LessOrEqual(t, len(scheduler.queue), 1)
		if c.Locked() {
			assert.Len(t, c.Pending(), 2)
		}
		for _, card := range board.Cards {
			if card.Matched {
				assert.True(t, card.FaceUp)
			}
		}
	}
}

func TestTurnStateNames(t *testing.T) {
	assert.Equal(t, "IDLE", Idle.Name())
	assert.Equal(t, "ONE_PENDING", OnePending.Name())
	assert.Equal(t, "EVALUATING", Evaluating.Name())
	assert.Equal(t, "REVERTING", Reverting.Name())
	assert.Equal(t, "N/A(0)", TurnState(0).Name())
	assert.Equal(t, "revert", Reverted.Name())
}
