package command

import (
	"sync"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
)

// Session holds the profile currently on screen and the selected character.
type Session struct {
	mu       sync.RWMutex
	view     *domain.ProfileView
	selected int
}

func NewSession() *Session {
	return &Session{}
}

// Show replaces the loaded profile and resets the selection to the first character.
func (s *Session) Show(view *domain.ProfileView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	s.selected = 0
}

// Clear drops the loaded profile, as a new search does before fetching.
func (s *Session) Clear() {
	s.Show(nil)
}

func (s *Session) Select(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = index
}

func (s *Session) View() *domain.ProfileView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Session) Selected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}
