package priorize

import (
	"encoding/json"
	"strings"
)

// SystemPrompt fixes the persona and the hard constraints. Kept short on
// purpose: the schema does the heavy lifting on output shape.
const SystemPrompt = "Você é o PrioriZÉ, um assistente de priorização de tarefas. " +
	"Fale como um colega de trabalho prestativo: linguagem simples, direta e útil. " +
	"Chame o usuário pelo nome. " +
	"Analise título, descrição e as notas de cada tarefa. " +
	"Se houver incoerência entre nota e descrição, ajuste a análise com cuidado. " +
	"Não invente fatos externos. Use apenas os dados fornecidos. " +
	"Retorne somente JSON válido no schema enviado."

// ComposeUser builds the user message: labeled sections in a fixed order,
// with the payload embedded as JSON. Same input, same bytes out.
func ComposeUser(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("Nome: ")
	b.WriteString(p.UserName)
	b.WriteString("\n")

	b.WriteString("Método: ")
	b.WriteString(string(p.Method))
	b.WriteString("\n\n")

	b.WriteString("Como aplicar:\n")
	b.WriteString(p.Method.Rule())
	b.WriteString("\n\n")

	b.WriteString("Tarefas (JSON):\n")
	b.Write(data)
	b.WriteString("\n\n")

	b.WriteString("Regras de resposta:\n")
	b.WriteString("- Ordene apenas as tarefas enviadas, cada uma exatamente uma vez.\n")
	b.WriteString("- method_used deve ser igual ao método informado.\n")
	b.WriteString("- estimated_time_saved_percent: número inteiro de 0 a 80, estimativa realista.\n")
	b.WriteString("- friendly_message: texto curto, levemente informal, personalizado com o nome.\n")
	b.WriteString("- summary: 2 a 3 frases sobre a ordem como um todo.\n")
	b.WriteString("- Cada tarefa: explanation com 1 a 2 frases, key_factors com 2 a 4 itens curtos, tip com 1 frase.\n")

	return b.String(), nil
}
