// Package priorize is the core of the service: it turns a partially filled
// task form into a schema-constrained OpenAI request and checks the ranking
// that comes back before anyone sees it.
package priorize

import (
	"fmt"
	"strings"
)

const (
	MinTasks = 3
	MaxTasks = 10
)

type Method string

const (
	MethodImpactEffort Method = "IMPACT_EFFORT"
	MethodRICE         Method = "RICE"
	MethodMoscow       Method = "MOSCOW"
	MethodGUT          Method = "GUT"
)

var allMethods = []Method{MethodImpactEffort, MethodRICE, MethodMoscow, MethodGUT}

// ParseMethod accepts the enum value in any case, plus the lowercase
// "impact_effort" the first front-end draft sends.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range allMethods {
		if m == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("método desconhecido: %q", s)
}

func (m Method) Valid() bool {
	for _, known := range allMethods {
		if m == known {
			return true
		}
	}
	return false
}

// DisplayName is the human label shown on the result card.
func (m Method) DisplayName() string {
	switch m {
	case MethodImpactEffort:
		return "Impacto x Esforço"
	case MethodRICE:
		return "RICE"
	case MethodMoscow:
		return "MoSCoW"
	case MethodGUT:
		return "GUT"
	}
	return string(m)
}

// Rule is the "Como aplicar" instruction handed to the model for this method.
func (m Method) Rule() string {
	switch m {
	case MethodImpactEffort:
		return "Priorize primeiro alto impacto com baixo esforço, depois alto impacto com alto esforço. Evite baixo impacto com alto esforço."
	case MethodRICE:
		return "Ordene por (alcance x impacto x confiança) / esforço, do maior para o menor."
	case MethodMoscow:
		return "Must primeiro, depois Should, depois Could, por fim Wont. Dentro da mesma categoria, desempate por alto impacto e baixo esforço."
	case MethodGUT:
		return "Ordene por G x U x T, do maior para o menor."
	}
	return ""
}

// Field names a single task input. The string values double as the JSON keys
// the front end sends.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldImpact      Field = "impact"
	FieldEffort      Field = "effort"
	FieldReach       Field = "reach"
	FieldConfidence  Field = "confidence"
	FieldMoscow      Field = "moscow"
	FieldGutG        Field = "gut_g"
	FieldGutU        Field = "gut_u"
	FieldGutT        Field = "gut_t"
)

// RequiredFields is the single source of truth for which scoring fields a
// method needs. Both the validator and the payload builder read it; nothing
// else decides field relevance.
func RequiredFields(m Method) []Field {
	base := []Field{FieldImpact, FieldEffort}
	switch m {
	case MethodRICE:
		return append(base, FieldReach, FieldConfidence)
	case MethodMoscow:
		return append(base, FieldMoscow)
	case MethodGUT:
		return append(base, FieldGutG, FieldGutU, FieldGutT)
	}
	return base
}

// Task is one editable row of the form. Zero means "not filled" for the
// numeric fields; an empty trimmed title means the whole row is ignored.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	Impact int `json:"impact"`
	Effort int `json:"effort"`

	Reach      int `json:"reach,omitempty"`
	Confidence int `json:"confidence,omitempty"`

	Moscow string `json:"moscow,omitempty"`

	GutG int `json:"gut_g,omitempty"`
	GutU int `json:"gut_u,omitempty"`
	GutT int `json:"gut_t,omitempty"`
}

// Filled reports whether the row counts as a real task.
func (t Task) Filled() bool {
	return strings.TrimSpace(t.Title) != ""
}

func (t Task) fieldValue(f Field) int {
	switch f {
	case FieldImpact:
		return t.Impact
	case FieldEffort:
		return t.Effort
	case FieldReach:
		return t.Reach
	case FieldConfidence:
		return t.Confidence
	case FieldGutG:
		return t.GutG
	case FieldGutU:
		return t.GutU
	case FieldGutT:
		return t.GutT
	}
	return 0
}

// FormState is everything one session holds between edits.
type FormState struct {
	UserName  string `json:"user_name"`
	Method    Method `json:"method"`
	Tasks     []Task `json:"tasks"`
	TaskCount int    `json:"task_count"` // visible slots, 3..10, grows only
}

// Clone deep-copies the task slice. Callers that hand a FormState to code
// running outside the session store lock must clone first, or concurrent
// edits write into the same backing array.
func (f FormState) Clone() FormState {
	out := f
	out.Tasks = append([]Task(nil), f.Tasks...)
	return out
}

// FilledTasks returns the rows with a non-empty title, in form order.
func (f FormState) FilledTasks() []Task {
	var out []Task
	for _, t := range f.Tasks[:f.TaskCount] {
		if t.Filled() {
			out = append(out, t)
		}
	}
	return out
}
