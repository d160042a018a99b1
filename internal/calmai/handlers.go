// Package calmai is the "Diva do Caos" side feature: free-text venting in,
// one playful-but-useful reply out. Plain completion, no schema.
package calmai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"priorizai-backend/internal/safetext"
	"priorizai-backend/internal/webutil"
)

const systemPrompt = "Você é a Diva do Caos. " +
	"Tom divertido, direto e inteligente. " +
	"Entregue conselho útil com uma pitada de humor. " +
	"Não invente fatos. " +
	"Termine com uma pergunta curta e provocante."

const temperature = 0.9

// Texter is the plain-completion slice of the AI client.
type Texter interface {
	ChatText(ctx context.Context, system, user string, temperature float64) (string, error)
}

type Handler struct {
	AI Texter
}

func NewHandler(ai Texter) *Handler {
	return &Handler{AI: ai}
}

type request struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type response struct {
	Reply string `json:"reply"`
}

// Advise handles POST /calmai.
func (h *Handler) Advise(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		webutil.WriteJSON(w, http.StatusBadRequest, webutil.ErrorBody{Error: "JSON inválido."})
		return
	}

	name, err := safetext.Require("Seu nome", req.Name, safetext.Limits{Required: true, Min: 2, Max: 60})
	if err != nil {
		webutil.WriteError(w, err)
		return
	}
	text, err := safetext.Require("Conta seu problema", req.Text, safetext.Limits{Required: true, Min: 10, Max: 500})
	if err != nil {
		webutil.WriteError(w, err)
		return
	}

	prompt := fmt.Sprintf("Nome: %s\nProblema: %s", name, text)

	reply, err := h.AI.ChatText(r.Context(), systemPrompt, prompt, temperature)
	if err != nil {
		log.Printf("calmai failed: %v", err)
		webutil.WriteError(w, err)
		return
	}

	webutil.WriteJSON(w, http.StatusOK, response{Reply: safetext.Clean(reply)})
}
