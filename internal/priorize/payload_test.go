package priorize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayloadImpactEffort(t *testing.T) {
	p, err := BuildPayload(readyForm(MethodImpactEffort))
	require.NoError(t, err)

	assert.Equal(t, "Ana", p.UserName)
	assert.Equal(t, MethodImpactEffort, p.Method)
	assert.Contains(t, p.Scale, "1 (baixo) a 5 (alto)")
	require.Len(t, p.Tasks, 3)

	first := p.Tasks[0]
	assert.Equal(t, "Responder e-mail", first.Title)
	assert.Equal(t, 5, first.Impact)
	assert.Equal(t, "É crítico, não dá para adiar", first.ImpactLabel)
	assert.Equal(t, 1, first.Effort)
	assert.Equal(t, "Menos de 10 min", first.EffortLabel)

	// method-gated fields stay out of the wire format entirely
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	task0 := decoded["tasks"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"reach", "confidence", "moscow", "gut_g", "gut_u", "gut_t"} {
		_, present := task0[key]
		assert.False(t, present, "field %q should be omitted for IMPACT_EFFORT", key)
	}
}

func TestBuildPayloadRICE(t *testing.T) {
	p, err := BuildPayload(readyForm(MethodRICE))
	require.NoError(t, err)

	first := p.Tasks[0]
	assert.Equal(t, 4, first.Reach)
	assert.Equal(t, "Muita gente", first.ReachLabel)
	assert.Equal(t, 4, first.Confidence)
	assert.Equal(t, "Bastante confiança", first.ConfidenceLabel)
	assert.Empty(t, first.Moscow)
	assert.Zero(t, first.GutG)
}

func TestBuildPayloadMoscow(t *testing.T) {
	p, err := BuildPayload(readyForm(MethodMoscow))
	require.NoError(t, err)

	assert.Equal(t, "Must", p.Tasks[0].Moscow)
	assert.Equal(t, "Tem que fazer", p.Tasks[0].MoscowLabel)
	assert.Equal(t, "Could", p.Tasks[1].Moscow)
	assert.Zero(t, p.Tasks[0].Reach)
}

func TestBuildPayloadGUT(t *testing.T) {
	p, err := BuildPayload(readyForm(MethodGUT))
	require.NoError(t, err)

	first := p.Tasks[0]
	assert.Equal(t, 4, first.GutG)
	assert.Equal(t, "Muito grave", first.GutGLabel)
	assert.Equal(t, 5, first.GutU)
	assert.Equal(t, "Precisa de ação imediata", first.GutULabel)
	assert.Equal(t, 3, first.GutT)
	assert.Equal(t, "Vai piorar", first.GutTLabel)
}

func TestBuildPayloadSkipsEmptyRows(t *testing.T) {
	f := readyForm(MethodImpactEffort)
	f.TaskCount = 5 // slots 4 and 5 untouched

	p, err := BuildPayload(f)
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 3)
}

func TestBuildPayloadBadScore(t *testing.T) {
	f := readyForm(MethodImpactEffort)
	f.Tasks[1].Impact = 0

	_, err := BuildPayload(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tarefa 2")
}
