// Package settings holds the user-adjustable generation settings and notifies
// subscribers whenever they change.
package settings

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/game/palette"
)

// Interactive size limits offered by control surfaces
const (
	MinUISize = 3
	MaxUISize = 8

	RoughnessStep = 0.05
)

// Settings is an immutable snapshot of the generation settings
type Settings struct {
	Size      int
	Roughness float64
	Palette   palette.Palette
	Generator string
}

// Side returns the grid side length for these settings
func (s Settings) Side() int {
	return heightfield.SideForSize(s.Size)
}

// Listener is called with the new settings after every change
type Listener func(s Settings)

type subscription struct {
	fn Listener
}

// Store owns the current settings and its subscribers
type Store struct {
	mu        sync.RWMutex
	current   Settings
	listeners mapset.Set[*subscription]
}

// NewStore creates a store holding initial
func NewStore(initial Settings) *Store {
	return &Store{
		current:   initial,
		listeners: mapset.New[*subscription](),
	}
}

// Current returns the current settings
func (st *Store) Current() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Subscribe registers fn and returns a function that removes it again.
func (st *Store) Subscribe(fn Listener) (unsubscribe func()) {
	sub := &subscription{fn: fn}

	st.mu.Lock()
	st.listeners.Put(sub)
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		st.listeners.Remove(sub)
		st.mu.Unlock()
	}
}

// Subscribers returns the number of registered listeners
func (st *Store) Subscribers() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.listeners.Size()
}

// Notify calls every listener with the current settings.
// Listeners run outside the lock and may update the store themselves.
func (st *Store) Notify() {
	st.mu.RLock()
	snapshot := st.current
	fns := make([]Listener, 0, st.listeners.Size())
	st.listeners.Each(func(sub *subscription) {
		fns = append(fns, sub.fn)
	})
	st.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func (st *Store) update(fn func(s *Settings)) {
	st.mu.Lock()
	fn(&st.current)
	st.mu.Unlock()
	st.Notify()
}

// UpdateSize sets the subdivision depth and notifies listeners
func (st *Store) UpdateSize(size int) {
	st.update(func(s *Settings) { s.Size = size })
}

// UpdateRoughness sets the roughness and notifies listeners
func (st *Store) UpdateRoughness(roughness float64) {
	st.update(func(s *Settings) { s.Roughness = roughness })
}

// UpdatePalette sets the colour mapping and notifies listeners
func (st *Store) UpdatePalette(p palette.Palette) {
	st.update(func(s *Settings) { s.Palette = p })
}

// UpdateGenerator sets the generator name and notifies listeners
func (st *Store) UpdateGenerator(name string) {
	st.update(func(s *Settings) { s.Generator = name })
}

// Replace swaps in a whole snapshot and notifies listeners once
func (st *Store) Replace(next Settings) {
	st.update(func(s *Settings) { *s = next })
}

// StepSize moves the size by delta, clamped to [MinUISize, MaxUISize]
func (st *Store) StepSize(delta int) {
	st.update(func(s *Settings) { s.Size = ClampSize(s.Size + delta) })
}

// StepRoughness moves the roughness by delta steps of RoughnessStep, clamped to [0,1]
func (st *Store) StepRoughness(delta int) {
	st.update(func(s *Settings) {
		s.Roughness = ClampRoughness(s.Roughness + float64(delta)*RoughnessStep)
	})
}

// CyclePalette switches to the next palette
func (st *Store) CyclePalette() {
	st.update(func(s *Settings) { s.Palette = palette.Next(s.Palette.Name) })
}

// ClampSize limits size to the interactive range
func ClampSize(size int) int {
	if size < MinUISize {
		return MinUISize
	}
	if size > MaxUISize {
		return MaxUISize
	}
	return size
}

// ClampRoughness limits roughness to [0,1], rounded to the step grid
func ClampRoughness(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	steps := r / RoughnessStep
	return float64(int(steps+0.5)) * RoughnessStep
}
