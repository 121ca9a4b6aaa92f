package service

import (
	"sync"

	"github.com/set-night/rsvpbot/internal/domain"
)

// SessionStore keeps one conversation Session per chat. Insertion is safe
// across chats; a single Session is only touched by the update currently
// handled for its chat.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*domain.Session)}
}

// GetOrCreate returns the chat's session, creating a fresh one on first use.
// The second result reports whether it was created.
func (s *SessionStore) GetOrCreate(chatID int64) (*domain.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return sess, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess, false
	}
	sess = domain.NewSession(chatID)
	s.sessions[chatID] = sess
	return sess, true
}

// Put replaces the chat's session.
func (s *SessionStore) Put(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ChatID] = sess
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
