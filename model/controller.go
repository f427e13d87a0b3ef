package model

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type TurnState int

const (
	Idle TurnState = iota + 1
	OnePending
	Evaluating
	Reverting
)

func (s TurnState) Name() string {
	switch s {
	case Idle:
		return "IDLE"
	case OnePending:
		return "ONE_PENDING"
	case Evaluating:
		return "EVALUATING"
	case Reverting:
		return "REVERTING"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Scheduler runs f once after d, on the goroutine that delivers presses.
type Scheduler interface {
	After(d time.Duration, f func())
}

type EventKind int

const (
	Flipped EventKind = iota + 1
	Matched
	Mismatched
	Reverted
	Won
)

func (k EventKind) Name() string {
	switch k {
	case Flipped:
		return "flip"
	case Matched:
		return "match"
	case Mismatched:
		return "mismatch"
	case Reverted:
		return "revert"
	case Won:
		return "win"
	default:
		return fmt.Sprintf("n/a:%d", k)
	}
}

// Event reports a controller transition. Second is nil for Flipped,
// both cards are nil for Won.
type Event struct {
	Kind          EventKind
	First, Second *Card
}

type revert struct {
	first, second *Card
}

// Controller owns the turn: at most two pending cards, the input lock
// and the single outstanding revert.
type Controller struct {
	Log *log.Entry

	board       *Board
	scheduler   Scheduler
	delay       time.Duration
	pending     []*Card
	locked      bool
	pairsFound  int
	outstanding *revert
	subscribers []func(Event)
}

func NewController(board *Board, scheduler Scheduler, delay time.Duration) *Controller {
	return &Controller{
		Log:       log.NewEntry(log.StandardLogger()),
		board:     board,
		scheduler: scheduler,
		delay:     delay,
		pending:   make([]*Card, 0, 2),
	}
}

func (c *Controller) Subscribe(f func(Event)) {
	c.subscribers = append(c.subscribers, f)
}

func (c *Controller) State() TurnState {
	switch {
	case c.outstanding != nil:
		return Reverting
	case len(c.pending) == 2:
		return Evaluating
	case len(c.pending) == 1:
		return OnePending
	default:
		return Idle
	}
}

func (c *Controller) PairsFound() int {
	return c.pairsFound
}

func (c *Controller) Won() bool {
	return c.pairsFound == c.board.TotalPairs()
}

func (c *Controller) Locked() bool {
	return c.locked
}

// Pending returns a copy of the face-up cards awaiting evaluation.
func (c *Controller) Pending() []*Card {
	return append([]*Card(nil), c.pending...)
}

func (c *Controller) Accepting() bool {
	return !c.locked && !c.Won() && len(c.pending) < 2
}

// Press handles a pointer press at surface coordinates x, y and reports
// whether it flipped a card. Ineligible presses are ignored.
func (c *Controller) Press(x, y float64) bool {
	if c.locked || c.Won() {
		return false
	}
	card := c.board.CardAt(x, y)
	if card == nil || card.FaceUp || card.Matched {
		return false
	}
	if len(c.pending) >= 2 {
		c.Log.WithField("pending", len(c.pending)).Error("press with full pending pair refused")
		return false
	}

	card.Flip()
	c.pending = append(c.pending, card)
	c.Log.WithFields(log.Fields{"card": card.Index, "face": card.Face}).Debug("flip")
	c.emit(Event{Kind: Flipped, First: card})

	if len(c.pending) == 2 {
		c.evaluate()
	}
	return true
}

func (c *Controller) evaluate() {
	c.locked = true

	first, second := c.pending[0], c.pending[1]
	fields := log.Fields{"first": first.Index, "second": second.Index, "state": Evaluating.Name()}

	if first.Face == second.Face {
		first.Matched = true
		second.Matched = true
		c.pairsFound++
		c.pending = c.pending[:0]
		c.locked = false
		c.Log.WithFields(fields).WithField("pairs", c.pairsFound).Debug("match")
		c.emit(Event{Kind: Matched, First: first, Second: second})
		if c.Won() {
			c.Log.Info("win")
			c.emit(Event{Kind: Won})
		}
		return
	}

	c.Log.WithFields(fields).Debug("mismatch")
	c.emit(Event{Kind: Mismatched, First: first, Second: second})
	c.scheduleRevert(first, second)
}

func (c *Controller) scheduleRevert(first, second *Card) {
	if c.outstanding != nil {
		c.Log.Error("revert already outstanding")
		return
	}
	r := &revert{first: first, second: second}
	c.outstanding = r
	c.scheduler.After(c.delay, func() {
		c.runRevert(r)
	})
}

func (c *Controller) runRevert(r *revert) {
	if c.outstanding != r {
		return
	}
	for _, card := range []*Card{r.first, r.second} {
		if card.FaceUp && !card.Matched {
			card.Flip()
		}
	}
	c.pending = c.pending[:0]
	c.outstanding = nil
	c.locked = false
	c.Log.WithFields(log.Fields{"first": r.first.Index, "second": r.second.Index}).Debug("revert")
	c.emit(Event{Kind: Reverted, First: r.first, Second: r.second})
}

func (c *Controller) emit(e Event) {
	for _, f := range c.subscribers {
		f(e)
	}
}
