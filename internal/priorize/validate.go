package priorize

import (
	"fmt"
	"strings"

	"priorizai-backend/internal/scale"
)

// Verdict is a gating signal, not an error: Blocked keeps the submit button
// disabled and shows Reason inline.
type Verdict struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

func blocked(format string, args ...interface{}) Verdict {
	return Verdict{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks readiness in a fixed order; the first failing rule wins.
// Pure function, recomputed on every edit.
func Validate(f FormState) Verdict {
	if strings.TrimSpace(f.UserName) == "" {
		return blocked("Informe seu nome para continuar.")
	}

	if !f.Method.Valid() {
		return blocked("Escolha um método de priorização.")
	}

	filled := f.FilledTasks()
	if len(filled) < MinTasks {
		return blocked("Você precisa preencher pelo menos %d tarefas.", MinTasks)
	}

	required := RequiredFields(f.Method)

	for i, t := range filled {
		if strings.TrimSpace(t.Description) == "" {
			return blocked("Complete a descrição da tarefa %d.", i+1)
		}

		for _, field := range required {
			if field == FieldMoscow {
				if !scale.ValidMoscowKey(t.Moscow) {
					return blocked("Complete o campo moscow da tarefa %d.", i+1)
				}
				continue
			}
			if v := t.fieldValue(field); v < 1 || v > 5 {
				return blocked("Complete o campo %s da tarefa %d.", field, i+1)
			}
		}
	}

	return Verdict{Ready: true}
}
