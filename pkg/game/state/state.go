package state

import (
	"sync"
	"time"

	"heightmap/pkg/engine/heightfield"
	"heightmap/pkg/engine/random"
	"heightmap/pkg/game/generator"
	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/settings"
)

const maxMessages = 5

// Session holds the current settings, the grid generated from them and a
// short message log. It regenerates whenever the settings store notifies.
type Session struct {
	mu sync.RWMutex

	store   *settings.Store
	initial settings.Settings
	src     random.Source

	grid       *heightfield.Grid
	generation int
	lastErr    error
	elapsed    time.Duration
	messages   []string

	unsubscribe func()
}

// NewSession subscribes to store and generates the first grid
func NewSession(store *settings.Store, src random.Source) *Session {
	s := &Session{
		store:    store,
		initial:  store.Current(),
		src:      src,
		messages: make([]string, 0),
	}
	s.unsubscribe = store.Subscribe(func(settings.Settings) {
		s.Regenerate()
	})
	s.Regenerate()
	return s
}

// Close stops listening for settings changes
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Store returns the settings store driving this session
func (s *Session) Store() *settings.Store {
	return s.store
}

// Reset restores the settings the session started with
func (s *Session) Reset() {
	s.store.Replace(s.initial)
}

// Settings returns the current settings
func (s *Session) Settings() settings.Settings {
	return s.store.Current()
}

// Regenerate builds a new grid from the current settings. On failure the
// previous grid is kept and the error is logged to the message pane.
func (s *Session) Regenerate() error {
	cur := s.store.Current()

	s.mu.Lock()
	defer s.mu.Unlock()

	gen, err := generator.New(cur.Generator, s.src)
	if err == nil {
		start := time.Now()
		var grid *heightfield.Grid
		grid, err = gen.Generate(cur.Size, cur.Roughness)
		if err == nil {
			s.grid = grid
			s.generation++
			s.elapsed = time.Since(start)
			s.lastErr = nil
			s.addMessageLocked(i18n.Tf("MSG_GENERATED", grid.Side(), grid.Side(), s.elapsed.Round(time.Microsecond)))
			return nil
		}
	}

	s.lastErr = err
	s.addMessageLocked(i18n.Tf("MSG_GENERATION_FAILED", err))
	return err
}

// Grid returns the most recent successfully generated grid, or nil
func (s *Session) Grid() *heightfield.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// Generation counts successful generations; renderers use it to invalidate caches
func (s *Session) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Err returns the error from the last generation attempt, if it failed
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Elapsed returns how long the last successful generation took
func (s *Session) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addMessageLocked(msg)
}

func (s *Session) addMessageLocked(msg string) {
	s.messages = append(s.messages, msg)

	// Keep only the last maxMessages
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

// Messages returns a copy of the message log, oldest first
func (s *Session) Messages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make([]string, 0)
}
