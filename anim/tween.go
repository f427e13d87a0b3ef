package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Action struct {
	nexts    []func(ts Tweens)
	OnChange func(float32)
	onFinish []func()
}

func (a *Action) AddOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// Next starts t with the returned action once a finishes.
func (a *Action) Next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(ts Tweens), 0)
	}
	a.nexts = append(a.nexts,
		func(ts Tweens) {
			ts[t] = action
		})
	return action
}

// Tweens holds the running tweens. It is driven from the frame loop and is
// not safe for concurrent use.
type Tweens map[*gween.Tween]*Action

func New() Tweens {
	return make(Tweens)
}

func (ts Tweens) Start(t *gween.Tween, a *Action) {
	ts[t] = a
}

// Update advances every running tween by dt seconds and runs the callbacks
// of those that finished. Tweens started by those callbacks first move on
// the next Update.
func (ts Tweens) Update(dt float32) {
	done := make([]*Action, 0)
	for t, a := range ts {
		curr, finished := t.Update(dt)
		if a.OnChange != nil {
			a.OnChange(curr)
		}
		if finished {
			delete(ts, t)
			done = append(done, a)
		}
	}
	for _, a := range done {
		for _, onFinish := range a.onFinish {
			onFinish()
		}
		for _, next := range a.nexts {
			next(ts)
		}
	}
}

// After runs f once d has elapsed in Update time. Tweens satisfies
// model.Scheduler this way.
func (ts Tweens) After(d time.Duration, f func()) {
	a := &Action{}
	a.AddOnFinish(f)
	ts[gween.New(0, 1, float32(d.Seconds()), ease.Linear)] = a
}
