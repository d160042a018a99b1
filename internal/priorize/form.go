package priorize

import (
	"errors"
	"fmt"

	"priorizai-backend/internal/safetext"
	"priorizai-backend/internal/scale"
)

// ErrCapacity is returned by AddTask once all 10 slots are visible.
var ErrCapacity = errors.New("limite de 10 tarefas atingido")

// NewFormState starts a form with the 3 initial task slots, like the page
// does on load.
func NewFormState() FormState {
	return FormState{
		Method:    MethodImpactEffort,
		Tasks:     make([]Task, MaxTasks),
		TaskCount: MinTasks,
	}
}

// AddTask reveals one more slot. Slots only grow; there is no removal.
func (f *FormState) AddTask() error {
	if f.TaskCount >= MaxTasks {
		return ErrCapacity
	}
	f.TaskCount++
	return nil
}

// FieldUpdate is one edit coming from the page: either a form-level field
// (user_name, method) or a task field addressed by slot index (0-based).
type FieldUpdate struct {
	Field string `json:"field"`
	Index int    `json:"index,omitempty"`
	Text  string `json:"text,omitempty"`
	Score int    `json:"score,omitempty"`
}

// catalogFor maps a numeric scoring field to its label table.
func catalogFor(f Field) (scale.Catalog, bool) {
	switch f {
	case FieldImpact:
		return scale.Importance, true
	case FieldEffort:
		return scale.TimeCost, true
	case FieldReach:
		return scale.Reach, true
	case FieldConfidence:
		return scale.Confidence, true
	case FieldGutG:
		return scale.Gravity, true
	case FieldGutU:
		return scale.Urgency, true
	case FieldGutT:
		return scale.Trend, true
	}
	return scale.Catalog{}, false
}

// SetField applies one edit. Text fields are cleaned but not fully
// validated here; readiness is the validator's job, recomputed after
// every edit.
func (f *FormState) SetField(u FieldUpdate) error {
	switch u.Field {
	case "user_name":
		f.UserName = safetext.Clean(u.Text)
		return nil
	case "method":
		m, err := ParseMethod(u.Text)
		if err != nil {
			return err
		}
		f.Method = m
		return nil
	}

	if u.Index < 0 || u.Index >= f.TaskCount {
		return fmt.Errorf("tarefa %d não existe", u.Index+1)
	}
	t := &f.Tasks[u.Index]

	switch Field(u.Field) {
	case FieldTitle:
		t.Title = safetext.Clean(u.Text)
	case FieldDescription:
		t.Description = safetext.Clean(u.Text)
	case FieldMoscow:
		key := safetext.Clean(u.Text)
		if !scale.ValidMoscowKey(key) {
			// display labels are accepted too ("Tem que fazer" resolves to Must)
			k, err := scale.MoscowKey(key)
			if err != nil {
				return fmt.Errorf("categoria MoSCoW inválida: %q", u.Text)
			}
			key = k
		}
		t.Moscow = key
	case FieldImpact, FieldEffort, FieldReach, FieldConfidence, FieldGutG, FieldGutU, FieldGutT:
		score := u.Score
		if label := safetext.Clean(u.Text); label != "" {
			// dropdowns send the display label, not the number
			c, _ := catalogFor(Field(u.Field))
			var err error
			if score, err = c.Score(label); err != nil {
				return err
			}
		}
		n, err := safetext.RequireInt("Nota", score, 1, 5)
		if err != nil {
			return err
		}
		switch Field(u.Field) {
		case FieldImpact:
			t.Impact = n
		case FieldEffort:
			t.Effort = n
		case FieldReach:
			t.Reach = n
		case FieldConfidence:
			t.Confidence = n
		case FieldGutG:
			t.GutG = n
		case FieldGutU:
			t.GutU = n
		case FieldGutT:
			t.GutT = n
		}
	default:
		return fmt.Errorf("campo desconhecido: %q", u.Field)
	}
	return nil
}
