package priorize

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"priorizai-backend/internal/safetext"
	"priorizai-backend/internal/webutil"
)

// Handler serves the stateless one-shot flow used by the static page: the
// whole form arrives in a single POST.
type Handler struct {
	Prioritizer *Prioritizer
}

func NewHandler(p *Prioritizer) *Handler {
	return &Handler{Prioritizer: p}
}

type taskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      int    `json:"impact"`
	Effort      int    `json:"effort"`
	Reach       int    `json:"reach"`
	Confidence  int    `json:"confidence"`
	Moscow      string `json:"moscow"`
	GutG        int    `json:"gut_g"`
	GutU        int    `json:"gut_u"`
	GutT        int    `json:"gut_t"`
}

type prioritizeRequest struct {
	UserName string      `json:"user_name"`
	Name     string      `json:"name"` // older page builds send "name"
	Method   string      `json:"method"`
	Tasks    []taskInput `json:"tasks"`
}

type prioritizeResponse struct {
	Result  *Result      `json:"result"`
	Display Presentation `json:"display"`
}

// Prioritize handles POST /prioritize.
func (h *Handler) Prioritize(w http.ResponseWriter, r *http.Request) {
	var req prioritizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		webutil.WriteJSON(w, http.StatusBadRequest, webutil.ErrorBody{Error: "JSON inválido."})
		return
	}

	form, err := formFromRequest(req)
	if err != nil {
		webutil.WriteError(w, err)
		return
	}

	if verdict := Validate(*form); !verdict.Ready {
		webutil.WriteJSON(w, http.StatusBadRequest, webutil.ErrorBody{Error: verdict.Reason})
		return
	}

	result, err := h.Prioritizer.Run(r.Context(), *form)
	if err != nil {
		log.Printf("prioritize failed: %v", err)
		webutil.WriteError(w, err)
		return
	}

	webutil.WriteJSON(w, http.StatusOK, prioritizeResponse{
		Result:  result,
		Display: Present(result),
	})
}

// formFromRequest sanitizes the one-shot body into a FormState. A row whose
// trimmed title is empty is a slot the user never touched and is skipped,
// whatever else it carries.
func formFromRequest(req prioritizeRequest) (*FormState, error) {
	rawName := req.UserName
	if safetext.Clean(rawName) == "" {
		rawName = req.Name
	}
	name, err := safetext.Require("Seu nome", rawName, safetext.Limits{Required: true, Min: 2, Max: 60})
	if err != nil {
		return nil, err
	}

	method, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	form := NewFormState()
	form.UserName = name
	form.Method = method

	tasks := req.Tasks
	if len(tasks) > MaxTasks {
		tasks = tasks[:MaxTasks]
	}
	if len(tasks) > form.TaskCount {
		form.TaskCount = len(tasks)
	}

	slot := 0
	for i, in := range tasks {
		if safetext.Clean(in.Title) == "" {
			continue
		}

		var t Task
		if t.Title, err = safetext.Require(taskField(i, "título"), in.Title,
			safetext.Limits{Required: true, Min: 3, Max: 80}); err != nil {
			return nil, err
		}
		if t.Description, err = safetext.Require(taskField(i, "descrição"), in.Description,
			safetext.Limits{Required: true, Min: 10, Max: 800}); err != nil {
			return nil, err
		}

		t.Impact = in.Impact
		t.Effort = in.Effort
		t.Reach = in.Reach
		t.Confidence = in.Confidence
		t.Moscow = safetext.Clean(in.Moscow)
		t.GutG = in.GutG
		t.GutU = in.GutU
		t.GutT = in.GutT

		form.Tasks[slot] = t
		slot++
	}

	return &form, nil
}

func taskField(index int, field string) string {
	return fmt.Sprintf("Tarefa %d - %s", index+1, field)
}
