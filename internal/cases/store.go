// Package cases exposes the PQRS generation flow over HTTP: session
// management, customer lookup, reply generation, recent-case history
// and letter export. Generated cases live only in a bounded in-memory
// store scoped to the agent session; nothing is ever persisted.
package cases

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tlogic-co/pqrs-service/internal/pqrs"
)

// maxRecentPerSession bounds the per-session history ring.
const maxRecentPerSession = 20

// ErrUnknownSession is returned for session ids the store never issued.
var ErrUnknownSession = errors.New("unknown session")

// Store holds the ephemeral per-session case history.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]*pqrs.CaseReply // newest first
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string][]*pqrs.CaseReply)}
}

// CreateSession registers a new agent session and returns its id.
func (s *Store) CreateSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = nil
	s.mu.Unlock()
	return id
}

// SessionCount reports the number of live sessions.
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Add stores a generated case at the head of the session history,
// evicting the oldest entry once the ring is full.
func (s *Store) Add(sessionID string, reply *pqrs.CaseReply) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recent, ok := s.sessions[sessionID]
	if !ok {
		return ErrUnknownSession
	}
	recent = append([]*pqrs.CaseReply{reply}, recent...)
	if len(recent) > maxRecentPerSession {
		recent = recent[:maxRecentPerSession]
	}
	s.sessions[sessionID] = recent
	return nil
}

// Recent returns the session history, newest first.
func (s *Store) Recent(sessionID string) ([]*pqrs.CaseReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recent, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrUnknownSession
	}
	out := make([]*pqrs.CaseReply, len(recent))
	copy(out, recent)
	return out, nil
}

// Get looks up one case of a session by its case identifier.
func (s *Store) Get(sessionID, caseID string) (*pqrs.CaseReply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, reply := range s.sessions[sessionID] {
		if reply.CaseID == caseID {
			return reply, true
		}
	}
	return nil, false
}
