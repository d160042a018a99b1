package priorize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemPrompt(t *testing.T) {
	assert.Contains(t, SystemPrompt, "PrioriZÉ")
	assert.Contains(t, SystemPrompt, "Não invente fatos externos")
	assert.Contains(t, SystemPrompt, "schema")
}

func TestComposeUserSections(t *testing.T) {
	p, err := BuildPayload(readyForm(MethodImpactEffort))
	require.NoError(t, err)

	user, err := ComposeUser(p)
	require.NoError(t, err)

	// labeled sections, in order
	sections := []string{
		"Nome: Ana",
		"Método: IMPACT_EFFORT",
		"Como aplicar:",
		"Tarefas (JSON):",
		"Regras de resposta:",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(user, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}

	assert.Contains(t, user, `"title":"Responder e-mail"`)
	assert.Contains(t, user, "0 a 80")
}

func TestComposeUserMethodRule(t *testing.T) {
	cases := map[Method]string{
		MethodImpactEffort: "alto impacto com baixo esforço",
		MethodRICE:         "(alcance x impacto x confiança) / esforço",
		MethodMoscow:       "Must primeiro",
		MethodGUT:          "G x U x T",
	}
	for m, want := range cases {
		p, err := BuildPayload(readyForm(m))
		require.NoError(t, err)
		user, err := ComposeUser(p)
		require.NoError(t, err)
		assert.Contains(t, user, want, m)
	}
}

func TestComposeUserDeterministic(t *testing.T) {
	p, err := BuildPayload(readyForm(MethodRICE))
	require.NoError(t, err)

	a, err := ComposeUser(p)
	require.NoError(t, err)
	b, err := ComposeUser(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
