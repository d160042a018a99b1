// Package briefai turns a messy block of text into a structured brief.
// Same structured-output contract as the prioritizer, with one quirk kept
// from the original: the brief never asks questions, so every question mark
// is stripped from the response.
package briefai

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"priorizai-backend/internal/ai"
	"priorizai-backend/internal/safetext"
	"priorizai-backend/internal/webutil"
)

const systemPrompt = "Você é o BriefAI. " +
	"Use linguagem simples, direta e objetiva. " +
	"Não use perguntas e não use ponto de interrogação. " +
	"Não invente fatos externos. " +
	"Retorne somente JSON no schema definido."

const temperature = 0.5

// Brief is the structured response published to the model as a schema.
type Brief struct {
	FriendlyMessage string   `json:"friendlyMessage"`
	Summary         string   `json:"summary"`
	Brief           string   `json:"brief"`
	MissingInfo     []string `json:"missingInfo"`
	NextSteps       []string `json:"nextSteps"`
}

func briefSchema() ai.Schema {
	stringArray := func(maxItems int) map[string]interface{} {
		return map[string]interface{}{
			"type":     "array",
			"minItems": 0,
			"maxItems": maxItems,
			"items":    map[string]interface{}{"type": "string"},
		}
	}

	return ai.Schema{
		Name: "BriefAIResponse",
		Schema: map[string]interface{}{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []string{"friendlyMessage", "summary", "brief", "missingInfo", "nextSteps"},
			"properties": map[string]interface{}{
				"friendlyMessage": map[string]interface{}{"type": "string"},
				"summary":         map[string]interface{}{"type": "string"},
				"brief":           map[string]interface{}{"type": "string"},
				"missingInfo":     stringArray(10),
				"nextSteps":       stringArray(10),
			},
		},
	}
}

type userMessage struct {
	Name        string   `json:"name"`
	Text        string   `json:"text"`
	OutputRules []string `json:"output_rules"`
}

var outputRules = []string{
	"friendlyMessage com 1 a 2 frases.",
	"summary em 4 a 7 linhas curtas.",
	"brief com blocos: Contexto, Objetivo, O que está acontecendo, Restrições e riscos, Plano de ação curto.",
	"missingInfo sem perguntas.",
	"nextSteps sem perguntas.",
}

// Completer is the schema-completion slice of the AI client.
type Completer interface {
	ChatJSON(ctx context.Context, system, user string, temperature float64, schema ai.Schema) (json.RawMessage, error)
}

type Handler struct {
	AI Completer
}

func NewHandler(client Completer) *Handler {
	return &Handler{AI: client}
}

type request struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Generate handles POST /briefai.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
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
	text, err := safetext.Require("Seu texto", req.Text, safetext.Limits{Required: true, Min: 20, Max: 1500})
	if err != nil {
		webutil.WriteError(w, err)
		return
	}

	user, err := json.Marshal(userMessage{Name: name, Text: text, OutputRules: outputRules})
	if err != nil {
		webutil.WriteJSON(w, http.StatusInternalServerError, webutil.ErrorBody{Error: "Erro interno."})
		return
	}

	raw, err := h.AI.ChatJSON(r.Context(), systemPrompt, string(user), temperature, briefSchema())
	if err != nil {
		log.Printf("briefai failed: %v", err)
		webutil.WriteError(w, err)
		return
	}

	var brief Brief
	if err := json.Unmarshal(raw, &brief); err != nil {
		webutil.WriteError(w, ai.NewError(ai.KindSchemaViolation,
			"Não foi possível interpretar o JSON retornado.", err.Error()))
		return
	}

	stripQuestions(&brief)
	webutil.WriteJSON(w, http.StatusOK, brief)
}

// stripQuestions removes question marks from every string in the brief,
// trailing whitespace included.
func stripQuestions(b *Brief) {
	strip := func(s string) string {
		return strings.TrimSpace(strings.ReplaceAll(s, "?", ""))
	}

	b.FriendlyMessage = strip(b.FriendlyMessage)
	b.Summary = strip(b.Summary)
	b.Brief = strip(b.Brief)
	for i, s := range b.MissingInfo {
		b.MissingInfo[i] = strip(s)
	}
	for i, s := range b.NextSteps {
		b.NextSteps[i] = strip(s)
	}
}
