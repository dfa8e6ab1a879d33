package internal

import "sync"

// Session holds the B1SESSION id issued by the SAP Service Layer. There is
// one per process, shared by reference with the SAP client. Expiry is never
// predicted here; a stale id is found out by a 401 on the next call.
type Session struct {
	mu sync.RWMutex
	id string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

func (s *Session) Set(id string) {
	s.mu.Lock()
	s.id = id
	s.mu.Unlock()
}

func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id != ""
}
