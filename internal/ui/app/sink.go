package app

import (
	"context"
	"sync"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	apperrors "syntaxlabs/internal/platform/errors"
)

// Sink is the navigation renderer of the TUI. Render only records the view
// model; the root model takes it after each navigation call and hands it to
// the view registered for the tab.
type Sink struct {
	mu     sync.Mutex
	views  map[string]bool
	latest *navdto.ViewModel
}

func NewSink() *Sink {
	return &Sink{views: map[string]bool{}}
}

// Register declares that a view exists for tab.
func (s *Sink) Register(tabs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tab := range tabs {
		s.views[tab] = true
	}
}

func (s *Sink) Render(_ context.Context, view navdto.ViewModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.views[view.Tab] {
		return apperrors.ErrMissingView
	}
	s.latest = &view
	return nil
}

// Take returns the latest view model once.
func (s *Sink) Take() (navdto.ViewModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return navdto.ViewModel{}, false
	}
	view := *s.latest
	s.latest = nil
	return view, true
}
