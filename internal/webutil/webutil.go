// Package webutil is the shared response infra: JSON writing and the
// mapping from AI error kinds to the inline error region of the page.
package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"priorizai-backend/internal/ai"
)

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ErrorBody is what every failure looks like on the wire: a user message,
// an optional operator hint, and a technical detail line for debugging.
type ErrorBody struct {
	Error  string `json:"error"`
	Hint   string `json:"hint,omitempty"`
	Detail string `json:"detail,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// WriteError renders any error in the single inline error slot. AI client
// errors get per-kind status codes and hints; everything else is a 400 with
// the raw message (validation and sanitization errors are already
// user-facing Portuguese).
func WriteError(w http.ResponseWriter, err error) {
	var aiErr *ai.Error
	if !errors.As(err, &aiErr) {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: err.Error()})
		return
	}

	body := ErrorBody{
		Error:  aiErr.Message,
		Detail: aiErr.Detail,
		Kind:   aiErr.Kind.String(),
	}
	status := http.StatusBadGateway

	switch aiErr.Kind {
	case ai.KindMissingCredential:
		status = http.StatusInternalServerError
		body.Hint = "Peça para quem opera o servidor configurar OPENAI_API_KEY."
	case ai.KindTransport:
		body.Hint = "Problema de conexão. Tente de novo."
	case ai.KindRateLimited:
		status = http.StatusTooManyRequests
		body.Hint = "Muitas chamadas agora. Tente de novo em instantes."
	case ai.KindQuotaExceeded:
		status = http.StatusTooManyRequests
		body.Hint = "Cota esgotada. Tente mais tarde."
	case ai.KindSchemaViolation, ai.KindRefusal:
		// generic user line; the technical part stays in detail
		body.Error = "Não consegui gerar uma resposta válida."
		if body.Detail == "" {
			body.Detail = aiErr.Message
		}
	}

	WriteJSON(w, status, body)
}
