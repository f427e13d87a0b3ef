package model

import (
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Session is one game: the dealt board and the turn controller driving it.
// It is not safe for concurrent use; presses, frames and scheduled reverts
// must all arrive on one goroutine.
type Session struct {
	ID         uuid.UUID
	Config     Config
	Board      *Board
	Controller *Controller
}

func NewSession(cfg Config, rnd *rand.Rand, scheduler Scheduler) (*Session, error) {
	board, err := NewBoard(cfg, rnd)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	controller := NewController(board, scheduler, cfg.RevertDelay)
	controller.Log = log.WithField("session", id.String())
	controller.Log.WithFields(log.Fields{
		"cols": cfg.Cols,
		"rows": cfg.Rows,
	}).Info("session dealt")
	return &Session{
		ID:         id,
		Config:     cfg,
		Board:      board,
		Controller: controller,
	}, nil
}

func (s *Session) Press(x, y float64) bool {
	return s.Controller.Press(x, y)
}

func (s *Session) Cards() []CardView {
	return s.Board.Views()
}

func (s *Session) IsWon() bool {
	return s.Board.IsWon()
}

func (s *Session) State() TurnState {
	return s.Controller.State()
}

func (s *Session) Subscribe(f func(Event)) {
	s.Controller.Subscribe(f)
}
