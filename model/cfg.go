package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyGrid      = errors.New("grid has no cells")
	ErrOddCardCount   = errors.New("card count must be even")
	ErrNotEnoughFaces = errors.New("not enough faces for pairs")
	ErrCardSize       = errors.New("card size must be positive")
	ErrPadding        = errors.New("padding must not be negative")
	ErrRevertDelay    = errors.New("revert delay must not be negative")
)

type Config struct {
	Cols, Rows    int
	CardSize      float64
	Padding       float64
	Width, Height float64
	RevertDelay   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Cols:        4,
		Rows:        4,
		CardSize:    80,
		Padding:     12,
		Width:       400,
		Height:      400,
		RevertDelay: 1000 * time.Millisecond,
	}
}

func (c Config) Pairs() int {
	return c.Cols * c.Rows / 2
}

func (c Config) Validate() error {
	total := c.Cols * c.Rows
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Cols, c.Rows, ErrEmptyGrid)
	}
	if total%2 != 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Cols, c.Rows, ErrOddCardCount)
	}
	if c.Pairs() > len(Faces) {
		return fmt.Errorf("%d pairs, %d faces: %w", c.Pairs(), len(Faces), ErrNotEnoughFaces)
	}
	if c.CardSize <= 0 {
		return fmt.Errorf("card size %v: %w", c.CardSize, ErrCardSize)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding %v: %w", c.Padding, ErrPadding)
	}
	if c.RevertDelay < 0 {
		return fmt.Errorf("revert delay %v: %w", c.RevertDelay, ErrRevertDelay)
	}
	return nil
}
