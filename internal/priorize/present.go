package priorize

import "fmt"

// PresentedItem is one ranked task ready to drop into the page, in the
// model's order.
type PresentedItem struct {
	Position    int      `json:"position"`
	Heading     string   `json:"heading"`
	Explanation string   `json:"explanation"`
	KeyFactors  []string `json:"key_factors,omitempty"`
	Tip         string   `json:"tip,omitempty"`
}

// Presentation is the render-ready view of a result: friendly message,
// method label, time-saved line, summary, then the items.
type Presentation struct {
	Message     string          `json:"message"`
	MethodLabel string          `json:"method_label"`
	TimeSaved   string          `json:"time_saved"`
	Summary     string          `json:"summary,omitempty"`
	Items       []PresentedItem `json:"items"`
}

// Present formats a validated result for display. It never reorders or
// rewrites items; the model's ordering is authoritative.
func Present(r *Result) Presentation {
	p := Presentation{
		Message:     r.FriendlyMessage,
		MethodLabel: r.MethodUsed.DisplayName(),
		TimeSaved:   fmt.Sprintf("⏱️ Tempo economizado (estimado): %d%%", r.EstimatedTimeSavedPercent),
		Summary:     r.Summary,
	}

	for _, item := range r.OrderedTasks {
		p.Items = append(p.Items, PresentedItem{
			Position:    item.Position,
			Heading:     fmt.Sprintf("%d. %s", item.Position, item.TaskTitle),
			Explanation: item.Explanation,
			KeyFactors:  item.KeyFactors,
			Tip:         item.Tip,
		})
	}

	return p
}
