// Package session owns the authenticated identity of the running client.
//
// Store is the in-memory view read by the shell; Manager is the only writer
// and keeps the Store in step with the persisted credentials.
package session

import (
	"sync"

	"github.com/dmitrijs2005/goalkeeper/internal/client/models"
)

// Session is a snapshot of the current identity.
type Session struct {
	User *models.User
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil
}

// Store holds the current Session and notifies subscribers on every change.
// Subscribers run synchronously, before Set or Clear returns, and must not
// call back into the Store.
type Store struct {
	mu     sync.RWMutex
	cur    Session
	nextID int
	subs   map[int]func(Session)
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(Session))}
}

func (s *Store) Get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Store) Set(u *models.User) {
	var cp *models.User
	if u != nil {
		v := *u
		cp = &v
	}
	s.publish(Session{User: cp})
}

func (s *Store) Clear() {
	s.publish(Session{})
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(Session)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(next Session) {
	s.mu.Lock()
	s.cur = next
	fns := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
