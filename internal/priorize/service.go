package priorize

import (
	"context"
	"encoding/json"

	"priorizai-backend/internal/ai"
)

const temperature = 0.6

// Completer is the slice of the AI client this package needs. *ai.Client
// satisfies it; tests plug in stubs.
type Completer interface {
	ChatJSON(ctx context.Context, system, user string, temperature float64, schema ai.Schema) (json.RawMessage, error)
}

// Prioritizer runs the full submit path: payload, prompt, one OpenAI call,
// post-condition checks.
type Prioritizer struct {
	AI Completer
}

func NewPrioritizer(client Completer) *Prioritizer {
	return &Prioritizer{AI: client}
}

// Run expects a Ready form; callers gate on Validate first.
func (p *Prioritizer) Run(ctx context.Context, f FormState) (*Result, error) {
	payload, err := BuildPayload(f)
	if err != nil {
		return nil, err
	}

	user, err := ComposeUser(payload)
	if err != nil {
		return nil, err
	}

	raw, err := p.AI.ChatJSON(ctx, SystemPrompt, user, temperature, ResultSchema(len(payload.Tasks)))
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(payload.Tasks))
	for i, t := range payload.Tasks {
		titles[i] = t.Title
	}

	return ParseResult(raw, f.Method, titles)
}
