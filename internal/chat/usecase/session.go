package usecase

import (
	"sync"

	"sales-agentic-assistant/internal/model"
)

// session owns one conversation. Its mutex serializes all turns of the
// conversation so concurrent requests observe whole exchanges, never a
// half-appended turn.
type session struct {
	mu   sync.Mutex
	conv *model.Conversation
}

// sessionStore keeps every conversation in memory for the life of the
// process. Sessions are never evicted: a client resuming a
// conversation_id after any idle period finds its state intact, so the
// turn counter keeps increasing and (conversation_id, turn_index) stays
// unique in storage.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
	}
}

// acquire returns the session for the conversation, creating it if
// needed, with its lock held. The caller must call release.
func (s *sessionStore) acquire(conversationID string) *session {
	s.mu.Lock()
	sess, ok := s.sessions[conversationID]
	if !ok {
		sess = &session{conv: &model.Conversation{ID: conversationID}}
		s.sessions[conversationID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return sess
}

func (s *sessionStore) release(sess *session) {
	sess.mu.Unlock()
}
