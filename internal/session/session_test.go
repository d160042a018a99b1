package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priorizai-backend/internal/priorize"
)

func TestCreateStartsIdle(t *testing.T) {
	st := NewStore()
	s := st.Create()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, priorize.MinTasks, s.Form.TaskCount)
	assert.Equal(t, 1, st.Len())
}

func TestWithSessionUnknownID(t *testing.T) {
	st := NewStore()
	ok := st.WithSession("nope", func(*Session) { t.Fatal("must not run") })
	assert.False(t, ok)
}

func TestSessionsAreIsolated(t *testing.T) {
	st := NewStore()
	a := st.Create()
	b := st.Create()
	require.NotEqual(t, a.ID, b.ID)

	st.WithSession(a.ID, func(s *Session) {
		s.Form.UserName = "Ana"
	})

	st.WithSession(b.ID, func(s *Session) {
		assert.Empty(t, s.Form.UserName)
	})
}

func TestIdleSessionExpires(t *testing.T) {
	st := NewStore()
	now := time.Now()
	st.now = func() time.Time { return now }

	s := st.Create()

	now = now.Add(idleTTL + time.Minute)
	ok := st.WithSession(s.ID, func(*Session) {})
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestTouchKeepsSessionAlive(t *testing.T) {
	st := NewStore()
	now := time.Now()
	st.now = func() time.Time { return now }

	s := st.Create()

	now = now.Add(idleTTL - time.Minute)
	require.True(t, st.WithSession(s.ID, func(*Session) {}))

	now = now.Add(idleTTL - time.Minute)
	assert.True(t, st.WithSession(s.ID, func(*Session) {}))
}

func TestAfterEditPhases(t *testing.T) {
	st := NewStore()
	s := st.Create()

	// partial form: editing moves to FILLING
	s.Form.UserName = "Ana"
	v := s.afterEdit()
	assert.False(t, v.Ready)
	assert.Equal(t, PhaseFilling, s.Phase)

	// complete form: validator flips the phase to READY
	fillReady(&s.Form)
	v = s.afterEdit()
	assert.True(t, v.Ready, v.Reason)
	assert.Equal(t, PhaseReady, s.Phase)

	// an edit that breaks readiness drops back to FILLING
	s.Form.Tasks[0].Description = ""
	v = s.afterEdit()
	assert.False(t, v.Ready)
	assert.Equal(t, PhaseFilling, s.Phase)
}

// fillReady completes the three initial slots for IMPACT_EFFORT.
func fillReady(f *priorize.FormState) {
	f.UserName = "Ana"
	f.Method = priorize.MethodImpactEffort
	f.Tasks[0] = priorize.Task{Title: "Responder e-mail", Description: "cliente espera hoje", Impact: 5, Effort: 1}
	f.Tasks[1] = priorize.Task{Title: "Reorganizar gaveta", Description: "pequena bagunça na mesa", Impact: 2, Effort: 3}
	f.Tasks[2] = priorize.Task{Title: "Estudar para prova", Description: "prova amanhã de manhã", Impact: 5, Effort: 4}
}
