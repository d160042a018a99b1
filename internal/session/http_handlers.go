package session

import (
	"encoding/json"
	"log"
	"net/http"

	"priorizai-backend/internal/priorize"
	"priorizai-backend/internal/webutil"
)

type Handler struct {
	Store       *Store
	Prioritizer *priorize.Prioritizer
}

func NewHandler(store *Store, p *priorize.Prioritizer) *Handler {
	return &Handler{Store: store, Prioritizer: p}
}

// snapshot is the session as the page polls it: form, phase, gating
// verdict and the last good result if there is one.
type snapshot struct {
	SessionID  string                 `json:"session_id"`
	Phase      Phase                  `json:"phase"`
	TaskCount  int                    `json:"task_count"`
	CanAddTask bool                   `json:"can_add_task"`
	Form       priorize.FormState     `json:"form"`
	Verdict    priorize.Verdict       `json:"verdict"`
	LastResult *priorize.Result       `json:"last_result,omitempty"`
	Display    *priorize.Presentation `json:"display,omitempty"`
	LastError  string                 `json:"last_error,omitempty"`
}

func makeSnapshot(s *Session) snapshot {
	snap := snapshot{
		SessionID:  s.ID,
		Phase:      s.Phase,
		TaskCount:  s.Form.TaskCount,
		CanAddTask: s.Form.TaskCount < priorize.MaxTasks,
		Form:       s.Form.Clone(),
		Verdict:    priorize.Validate(s.Form),
		LastResult: s.LastResult,
		LastError:  s.LastError,
	}
	if s.LastResult != nil {
		view := priorize.Present(s.LastResult)
		snap.Display = &view
	}
	return snap
}

// Create handles POST /session.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.Store.Create()
	log.Printf("session %s created", s.ID)
	webutil.WriteJSON(w, http.StatusCreated, makeSnapshot(s))
}

// Get handles GET /session/{id}. Reading never changes the phase.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	var snap snapshot
	ok := h.Store.WithSession(r.PathValue("id"), func(s *Session) {
		snap = makeSnapshot(s)
	})
	if !ok {
		webutil.WriteJSON(w, http.StatusNotFound, webutil.ErrorBody{Error: "Sessão não encontrada."})
		return
	}
	webutil.WriteJSON(w, http.StatusOK, snap)
}

// AddTask handles POST /session/{id}/tasks.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var snap snapshot
	var addErr error
	ok := h.Store.WithSession(r.PathValue("id"), func(s *Session) {
		addErr = s.Form.AddTask()
		if addErr == nil {
			s.afterEdit()
		}
		snap = makeSnapshot(s)
	})
	if !ok {
		webutil.WriteJSON(w, http.StatusNotFound, webutil.ErrorBody{Error: "Sessão não encontrada."})
		return
	}
	if addErr != nil {
		webutil.WriteJSON(w, http.StatusBadRequest, webutil.ErrorBody{Error: addErr.Error()})
		return
	}
	webutil.WriteJSON(w, http.StatusOK, snap)
}

// SetField handles POST /session/{id}/fields. Every accepted edit
// recomputes the verdict and moves the phase to FILLING or READY.
func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	var update priorize.FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		webutil.WriteJSON(w, http.StatusBadRequest, webutil.ErrorBody{Error: "JSON inválido."})
		return
	}

	var snap snapshot
	var setErr error
	ok := h.Store.WithSession(r.PathValue("id"), func(s *Session) {
		setErr = s.Form.SetField(update)
		if setErr == nil {
			s.afterEdit()
		}
		snap = makeSnapshot(s)
	})
	if !ok {
		webutil.WriteJSON(w, http.StatusNotFound, webutil.ErrorBody{Error: "Sessão não encontrada."})
		return
	}
	if setErr != nil {
		webutil.WriteJSON(w, http.StatusBadRequest, webutil.ErrorBody{Error: setErr.Error()})
		return
	}
	webutil.WriteJSON(w, http.StatusOK, snap)
}

// Submit handles POST /session/{id}/prioritize. Only READY sessions may
// submit; SUBMITTING rejects a second submit outright. The store lock is
// not held across the OpenAI call.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var form priorize.FormState
	var verdict priorize.Verdict
	started := false

	ok := h.Store.WithSession(id, func(s *Session) {
		verdict = priorize.Validate(s.Form)
		if s.Phase == PhaseSubmitting || !verdict.Ready {
			return
		}
		s.Phase = PhaseSubmitting
		form = s.Form.Clone()
		started = true
	})
	if !ok {
		webutil.WriteJSON(w, http.StatusNotFound, webutil.ErrorBody{Error: "Sessão não encontrada."})
		return
	}
	if !started {
		reason := verdict.Reason
		if reason == "" {
			reason = "Já existe uma priorização em andamento."
		}
		webutil.WriteJSON(w, http.StatusConflict, webutil.ErrorBody{Error: reason})
		return
	}

	result, err := h.Prioritizer.Run(r.Context(), form)

	h.Store.WithSession(id, func(s *Session) {
		if err != nil {
			s.Phase = PhaseError
			s.LastError = err.Error()
			return
		}
		s.Phase = PhaseDisplaying
		s.LastResult = result
		s.LastError = ""
	})

	if err != nil {
		log.Printf("session %s prioritize failed: %v", id, err)
		webutil.WriteError(w, err)
		return
	}

	view := priorize.Present(result)
	webutil.WriteJSON(w, http.StatusOK, snapshot{
		SessionID:  id,
		Phase:      PhaseDisplaying,
		TaskCount:  form.TaskCount,
		CanAddTask: form.TaskCount < priorize.MaxTasks,
		Form:       form,
		Verdict:    verdict,
		LastResult: result,
		Display:    &view,
	})
}
