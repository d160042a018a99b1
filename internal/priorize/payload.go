package priorize

import (
	"fmt"

	"priorizai-backend/internal/scale"
)

// TaskPayload is one task as the model sees it: every score the chosen
// method needs, next to the exact option label the user picked. Fields
// irrelevant to the method are omitted, not nulled.
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	Impact      int    `json:"impact"`
	ImpactLabel string `json:"impact_label"`
	Effort      int    `json:"effort"`
	EffortLabel string `json:"effort_label"`

	Reach           int    `json:"reach,omitempty"`
	ReachLabel      string `json:"reach_label,omitempty"`
	Confidence      int    `json:"confidence,omitempty"`
	ConfidenceLabel string `json:"confidence_label,omitempty"`

	Moscow      string `json:"moscow,omitempty"`
	MoscowLabel string `json:"moscow_label,omitempty"`

	GutG      int    `json:"gut_g,omitempty"`
	GutGLabel string `json:"gut_g_label,omitempty"`
	GutU      int    `json:"gut_u,omitempty"`
	GutULabel string `json:"gut_u_label,omitempty"`
	GutT      int    `json:"gut_t,omitempty"`
	GutTLabel string `json:"gut_t_label,omitempty"`
}

type Payload struct {
	UserName string        `json:"user_name"`
	Method   Method        `json:"method"`
	Scale    string        `json:"scale"`
	Tasks    []TaskPayload `json:"tasks"`
}

const scaleNote = "Todos os campos numéricos usam escala 1 (baixo) a 5 (alto)."

// BuildPayload assumes a Ready form: call Validate first. Only filled tasks
// go out, and only the fields the chosen method requires.
func BuildPayload(f FormState) (Payload, error) {
	p := Payload{
		UserName: f.UserName,
		Method:   f.Method,
		Scale:    scaleNote,
	}

	required := map[Field]bool{}
	for _, field := range RequiredFields(f.Method) {
		required[field] = true
	}

	for i, t := range f.FilledTasks() {
		tp := TaskPayload{
			Title:       t.Title,
			Description: t.Description,
		}

		var err error
		tp.Impact = t.Impact
		if tp.ImpactLabel, err = scale.Importance.Label(t.Impact); err != nil {
			return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
		}
		tp.Effort = t.Effort
		if tp.EffortLabel, err = scale.TimeCost.Label(t.Effort); err != nil {
			return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
		}

		if required[FieldReach] {
			tp.Reach = t.Reach
			if tp.ReachLabel, err = scale.Reach.Label(t.Reach); err != nil {
				return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
			}
			tp.Confidence = t.Confidence
			if tp.ConfidenceLabel, err = scale.Confidence.Label(t.Confidence); err != nil {
				return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
			}
		}

		if required[FieldMoscow] {
			tp.Moscow = t.Moscow
			if tp.MoscowLabel, err = scale.MoscowLabelForKey(t.Moscow); err != nil {
				return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
			}
		}

		if required[FieldGutG] {
			tp.GutG = t.GutG
			if tp.GutGLabel, err = scale.Gravity.Label(t.GutG); err != nil {
				return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
			}
			tp.GutU = t.GutU
			if tp.GutULabel, err = scale.Urgency.Label(t.GutU); err != nil {
				return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
			}
			tp.GutT = t.GutT
			if tp.GutTLabel, err = scale.Trend.Label(t.GutT); err != nil {
				return Payload{}, fmt.Errorf("tarefa %d: %w", i+1, err)
			}
		}

		p.Tasks = append(p.Tasks, tp)
	}

	return p, nil
}
