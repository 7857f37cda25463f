package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LeoWherle/ranker/internal/core"
	"github.com/LeoWherle/ranker/internal/element"
)

var ErrNotFound = errors.New("session not found")

// Session is one ranking conversation: the elements being ranked and
// the ranker driving it. Discarding the session discards all state.
//
// The ranker itself is lock-free and expects one sequential caller;
// the session serializes access so overlapping HTTP requests cannot
// interleave a comparison and its answer.
type Session struct {
	ID        string
	Strategy  string
	Elements  []element.Element
	CreatedAt time.Time

	mu     sync.Mutex
	ranker core.Ranker
}

func (s *Session) NextComparison() *core.Comparison {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranker.NextComparison()
}

func (s *Session) RecordChoice(winnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranker.RecordChoice(winnerID)
}

func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranker.Complete()
}

func (s *Session) Result() ([]element.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranker.Result()
}

// Registry holds live sessions in memory. It is owned by the server,
// never a process-wide singleton, so independent sessions (and tests)
// do not share state.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session over the given elements using the named
// strategy ("merge" by default, "tournament" for the round-robin mode).
func (r *Registry) Create(elements []element.Element, strategy string) (*Session, error) {
	if strategy == "" {
		strategy = "merge"
	}

	var ranker core.Ranker
	var err error
	switch strategy {
	case "merge":
		ranker, err = core.NewEngine(elements)
	case "tournament":
		ranker, err = core.NewTournament(elements)
	default:
		return nil, errors.New("unknown strategy: " + strategy)
	}
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        uuid.New().String(),
		Strategy:  strategy,
		Elements:  elements,
		ranker:    ranker,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
