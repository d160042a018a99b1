package priorize

import (
	"encoding/json"
	"fmt"
	"strings"

	"priorizai-backend/internal/ai"
)

const maxTimeSavedPercent = 80

// RankedItem is one task in the model's ordered output.
type RankedItem struct {
	Position    int      `json:"position"`
	TaskTitle   string   `json:"task_title"`
	Explanation string   `json:"explanation"`
	KeyFactors  []string `json:"key_factors"`
	Tip         string   `json:"tip"`
}

// Result is the validated ranking. PercentClamped flags responses whose
// estimate came back out of range and had to be clamped.
type Result struct {
	FriendlyMessage           string       `json:"friendly_message"`
	MethodUsed                Method       `json:"method_used"`
	EstimatedTimeSavedPercent int          `json:"estimated_time_saved_percent"`
	Summary                   string       `json:"summary"`
	OrderedTasks              []RankedItem `json:"ordered_tasks"`

	PercentClamped bool `json:"percent_clamped,omitempty"`
}

func schemaErr(format string, args ...interface{}) error {
	return ai.NewError(ai.KindSchemaViolation,
		"Não consegui gerar uma priorização válida.",
		fmt.Sprintf(format, args...))
}

// ParseResult decodes the raw structured output and enforces the contract
// the schema alone cannot express: method echo, position multiset {1..N},
// every submitted title covered exactly once. Anything off is a schema
// violation; no partial ranking ever leaves this function.
func ParseResult(raw json.RawMessage, method Method, submittedTitles []string) (*Result, error) {
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, schemaErr("JSON não interpretável: %v", err)
	}

	if r.MethodUsed != method {
		return nil, schemaErr("method_used %q difere do método pedido %q", r.MethodUsed, method)
	}

	n := len(submittedTitles)
	if len(r.OrderedTasks) != n {
		return nil, schemaErr("ordered_tasks tem %d itens, esperava %d", len(r.OrderedTasks), n)
	}

	seenPos := make(map[int]bool, n)
	remaining := make(map[string]int, n)
	for _, title := range submittedTitles {
		remaining[strings.TrimSpace(title)]++
	}

	for _, item := range r.OrderedTasks {
		if item.Position < 1 || item.Position > n {
			return nil, schemaErr("position %d fora de 1..%d", item.Position, n)
		}
		if seenPos[item.Position] {
			return nil, schemaErr("position %d duplicada", item.Position)
		}
		seenPos[item.Position] = true

		title := strings.TrimSpace(item.TaskTitle)
		if remaining[title] == 0 {
			return nil, schemaErr("task_title %q não está entre as tarefas enviadas", item.TaskTitle)
		}
		remaining[title]--
	}

	if r.EstimatedTimeSavedPercent < 0 {
		r.EstimatedTimeSavedPercent = 0
		r.PercentClamped = true
	}
	if r.EstimatedTimeSavedPercent > maxTimeSavedPercent {
		r.EstimatedTimeSavedPercent = maxTimeSavedPercent
		r.PercentClamped = true
	}

	return &r, nil
}
