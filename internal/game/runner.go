package game

import (
	"sort"
	"time"
)

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseUpdate     Phase = iota // 0: simulation logic (movement, timers)
	PhasePostUpdate              // 1: collision detection, derived state
	PhaseCleanup                 // 2: end-of-tick housekeeping
)

// TickSystem is implemented by systems the Runner drives each tick.
type TickSystem interface {
	Phase() Phase
	Update(dt time.Duration)
}

// Runner executes registered systems in phase order each tick.
type Runner struct {
	systems []TickSystem
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]TickSystem, 0, 8),
	}
}

func (r *Runner) Register(s TickSystem) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(dt)
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
