package priorize

import "priorizai-backend/internal/ai"

// ResultSchema is the JSON schema published to OpenAI's structured-output
// mode for a submission of n tasks. The provider, not this server, is
// responsible for emitting JSON that parses into Result.
func ResultSchema(n int) ai.Schema {
	methods := make([]string, len(allMethods))
	for i, m := range allMethods {
		methods[i] = string(m)
	}

	return ai.Schema{
		Name: "PriorizeResult",
		Schema: map[string]interface{}{
			"type":                 "object",
			"additionalProperties": false,
			"required": []string{
				"friendly_message", "method_used", "estimated_time_saved_percent",
				"summary", "ordered_tasks",
			},
			"properties": map[string]interface{}{
				"friendly_message": map[string]interface{}{"type": "string"},
				"method_used":      map[string]interface{}{"type": "string", "enum": methods},
				"estimated_time_saved_percent": map[string]interface{}{
					"type":    "integer",
					"minimum": 0,
					"maximum": 80,
				},
				"summary": map[string]interface{}{"type": "string"},
				"ordered_tasks": map[string]interface{}{
					"type":     "array",
					"minItems": n,
					"maxItems": n,
					"items": map[string]interface{}{
						"type":                 "object",
						"additionalProperties": false,
						"required":             []string{"position", "task_title", "explanation", "key_factors", "tip"},
						"properties": map[string]interface{}{
							"position":    map[string]interface{}{"type": "integer", "minimum": 1, "maximum": MaxTasks},
							"task_title":  map[string]interface{}{"type": "string"},
							"explanation": map[string]interface{}{"type": "string"},
							"key_factors": map[string]interface{}{
								"type":     "array",
								"minItems": 2,
								"maxItems": 4,
								"items":    map[string]interface{}{"type": "string"},
							},
							"tip": map[string]interface{}{"type": "string"},
						},
					},
				},
			},
		},
	}
}
