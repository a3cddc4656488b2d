package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"roomrate/server/internal/models"
)

// Session holds the per-visitor form state plus the outcome of the most
// recent render cycle, so the map and chart surfaces can be served after
// the prediction that produced them.
type Session struct {
	ID   string
	Form models.FormState

	// Set by the last render cycle that had the importance toggle on
	LastImportances []models.FeatureImportance
}

// Store is an in-memory session registry. Nothing here survives a process
// restart; that is intentional.
type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	logger   *logrus.Logger
}

func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Get returns the session for the given ID, or nil if it does not exist.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// GetOrCreate returns the session for the given ID, creating a fresh one
// (with a new ID) when the ID is empty or unknown.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.RLock()
	if sess, ok := s.sessions[id]; ok {
		s.mu.RUnlock()
		return sess
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}

	sess := &Session{ID: uuid.NewString()}
	s.sessions[sess.ID] = sess
	s.logger.WithField("session_id", sess.ID).Debug("Created new session")
	return sess
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
