// Package session keeps one FormState per browser session, server side,
// with the interaction phase machine that gates the submit button. State is
// in memory only; nothing survives a restart, which is the product's
// promise ("nada é salvo").
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"priorizai-backend/internal/priorize"
)

// Phase is where the interaction stands. Submit is only legal from READY;
// SUBMITTING has no submit edge, which is what prevents double sends.
type Phase string

const (
	PhaseIdle       Phase = "IDLE"
	PhaseFilling    Phase = "FILLING"
	PhaseReady      Phase = "READY"
	PhaseSubmitting Phase = "SUBMITTING"
	PhaseDisplaying Phase = "DISPLAYING"
	PhaseError      Phase = "ERROR"
)

type Session struct {
	ID         string
	Form       priorize.FormState
	Phase      Phase
	LastResult *priorize.Result
	LastError  string
	UpdatedAt  time.Time
}

// afterEdit recomputes the gating signal: any edit leaves DISPLAYING/ERROR
// behind and lands on FILLING or READY depending on the validator.
func (s *Session) afterEdit() priorize.Verdict {
	v := priorize.Validate(s.Form)
	if v.Ready {
		s.Phase = PhaseReady
	} else {
		s.Phase = PhaseFilling
	}
	return v
}

const idleTTL = 2 * time.Hour

// Store is a mutex-guarded in-memory session map. Expired sessions are
// pruned lazily on access; there is no background janitor.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := &Session{
		ID:        uuid.NewString(),
		Form:      priorize.NewFormState(),
		Phase:     PhaseIdle,
		UpdatedAt: st.now(),
	}
	st.sessions[s.ID] = s
	return s
}

func (st *Store) get(id string) (*Session, bool) {
	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if st.now().Sub(s.UpdatedAt) > idleTTL {
		delete(st.sessions, id)
		return nil, false
	}
	return s, true
}

// WithSession runs fn under the store lock with the session touched.
// Returns false when the id is unknown or expired.
func (st *Store) WithSession(id string, fn func(*Session)) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.get(id)
	if !ok {
		return false
	}
	s.UpdatedAt = st.now()
	fn(s)
	return true
}

// Len reports live sessions, pruning expired ones first.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, s := range st.sessions {
		if st.now().Sub(s.UpdatedAt) > idleTTL {
			delete(st.sessions, id)
		}
	}
	return len(st.sessions)
}
