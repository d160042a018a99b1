package priorize

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priorizai-backend/internal/ai"
)

var submitted = []string{"Responder e-mail", "Reorganizar gaveta", "Estudar para prova"}

func goodResponse() map[string]interface{} {
	return map[string]interface{}{
		"friendly_message":             "Ana, aqui vai sua ordem!",
		"method_used":                  "IMPACT_EFFORT",
		"estimated_time_saved_percent": 35,
		"summary":                      "Comece pelo que destrava mais com menos esforço.",
		"ordered_tasks": []map[string]interface{}{
			{
				"position": 1, "task_title": "Responder e-mail",
				"explanation": "Alto impacto e resolve em minutos.",
				"key_factors": []string{"impacto 5", "esforço 1"},
				"tip":         "Mande agora, antes da próxima reunião.",
			},
			{
				"position": 2, "task_title": "Estudar para prova",
				"explanation": "Impacto alto, mas pede um bloco longo de tempo.",
				"key_factors": []string{"impacto 5", "esforço 4"},
				"tip":         "Reserve 2 horas sem celular.",
			},
			{
				"position": 3, "task_title": "Reorganizar gaveta",
				"explanation": "Pouco impacto perto das outras.",
				"key_factors": []string{"impacto 2", "esforço 3"},
				"tip":         "Deixe para uma pausa.",
			},
		},
	}
}

func mustRaw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func assertSchemaViolation(t *testing.T, err error, detailPart string) {
	t.Helper()
	require.Error(t, err)
	kind, ok := ai.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ai.KindSchemaViolation, kind)

	var e *ai.Error
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.Detail, detailPart)
}

func TestParseResultHappyPath(t *testing.T) {
	r, err := ParseResult(mustRaw(t, goodResponse()), MethodImpactEffort, submitted)
	require.NoError(t, err)

	assert.Equal(t, "Ana, aqui vai sua ordem!", r.FriendlyMessage)
	assert.Equal(t, MethodImpactEffort, r.MethodUsed)
	assert.Equal(t, 35, r.EstimatedTimeSavedPercent)
	assert.False(t, r.PercentClamped)
	require.Len(t, r.OrderedTasks, 3)
	assert.Equal(t, "Responder e-mail", r.OrderedTasks[0].TaskTitle)
}

func TestParseResultMethodMismatch(t *testing.T) {
	resp := goodResponse()
	resp["method_used"] = "RICE"
	_, err := ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	assertSchemaViolation(t, err, "method_used")
}

func TestParseResultDuplicatePosition(t *testing.T) {
	resp := goodResponse()
	items := resp["ordered_tasks"].([]map[string]interface{})
	items[1]["position"] = 1
	_, err := ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	assertSchemaViolation(t, err, "duplicada")
}

func TestParseResultPositionOutOfRange(t *testing.T) {
	resp := goodResponse()
	items := resp["ordered_tasks"].([]map[string]interface{})
	items[2]["position"] = 4
	_, err := ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	assertSchemaViolation(t, err, "fora de 1..3")
}

func TestParseResultWrongCount(t *testing.T) {
	resp := goodResponse()
	resp["ordered_tasks"] = resp["ordered_tasks"].([]map[string]interface{})[:2]
	_, err := ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	assertSchemaViolation(t, err, "2 itens")
}

func TestParseResultUnknownTitle(t *testing.T) {
	resp := goodResponse()
	items := resp["ordered_tasks"].([]map[string]interface{})
	items[0]["task_title"] = "Tarefa inventada"
	_, err := ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	assertSchemaViolation(t, err, "inventada")
}

func TestParseResultTitleWhitespaceInsensitive(t *testing.T) {
	resp := goodResponse()
	items := resp["ordered_tasks"].([]map[string]interface{})
	items[0]["task_title"] = "  Responder e-mail  "
	_, err := ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	assert.NoError(t, err)
}

func TestParseResultPercentClamped(t *testing.T) {
	resp := goodResponse()
	resp["estimated_time_saved_percent"] = 81
	r, err := ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	require.NoError(t, err)
	assert.Equal(t, 80, r.EstimatedTimeSavedPercent)
	assert.True(t, r.PercentClamped)

	resp["estimated_time_saved_percent"] = -5
	r, err = ParseResult(mustRaw(t, resp), MethodImpactEffort, submitted)
	require.NoError(t, err)
	assert.Equal(t, 0, r.EstimatedTimeSavedPercent)
	assert.True(t, r.PercentClamped)
}

func TestParseResultGarbage(t *testing.T) {
	_, err := ParseResult(json.RawMessage(`not json at all`), MethodImpactEffort, submitted)
	assertSchemaViolation(t, err, "JSON")
}

func TestPresentKeepsOrder(t *testing.T) {
	r, err := ParseResult(mustRaw(t, goodResponse()), MethodImpactEffort, submitted)
	require.NoError(t, err)

	view := Present(r)
	assert.Equal(t, "Ana, aqui vai sua ordem!", view.Message)
	assert.Equal(t, "Impacto x Esforço", view.MethodLabel)
	assert.Contains(t, view.TimeSaved, "35%")
	require.Len(t, view.Items, 3)
	for i, item := range view.Items {
		assert.Equal(t, r.OrderedTasks[i].Position, item.Position)
		assert.Equal(t, fmt.Sprintf("%d. %s", item.Position, r.OrderedTasks[i].TaskTitle), item.Heading)
	}
}

func TestResultSchemaShape(t *testing.T) {
	s := ResultSchema(4)
	assert.Equal(t, "PriorizeResult", s.Name)

	props := s.Schema["properties"].(map[string]interface{})
	ordered := props["ordered_tasks"].(map[string]interface{})
	assert.Equal(t, 4, ordered["minItems"])
	assert.Equal(t, 4, ordered["maxItems"])

	percent := props["estimated_time_saved_percent"].(map[string]interface{})
	assert.Equal(t, 0, percent["minimum"])
	assert.Equal(t, 80, percent["maximum"])

	method := props["method_used"].(map[string]interface{})
	assert.ElementsMatch(t, []string{"IMPACT_EFFORT", "RICE", "MOSCOW", "GUT"}, method["enum"])
}
