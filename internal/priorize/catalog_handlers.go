package priorize

import (
	"net/http"

	"priorizai-backend/internal/scale"
	"priorizai-backend/internal/webutil"
)

type methodInfo struct {
	Value  Method  `json:"value"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`
}

// catalogsResponse is everything the page needs to render the form:
// the method list with the fields each one unlocks, and the dropdown
// options per field.
type catalogsResponse struct {
	Methods []methodInfo       `json:"methods"`
	Options map[Field][]string `json:"options"`
	Moscow  []string           `json:"moscow"`
	Limits  map[string][2]int  `json:"limits"`
}

// Catalogs handles GET /catalogs.
func (h *Handler) Catalogs(w http.ResponseWriter, r *http.Request) {
	resp := catalogsResponse{
		Options: make(map[Field][]string),
		Moscow:  scale.MoscowLabels(),
		Limits: map[string][2]int{
			"tasks": {MinTasks, MaxTasks},
		},
	}

	for _, m := range allMethods {
		fields := RequiredFields(m)
		resp.Methods = append(resp.Methods, methodInfo{
			Value:  m,
			Label:  m.DisplayName(),
			Fields: fields,
		})
		for _, f := range fields {
			if _, seen := resp.Options[f]; seen {
				continue
			}
			if c, ok := catalogFor(f); ok {
				resp.Options[f] = c.Labels()
			}
		}
	}

	webutil.WriteJSON(w, http.StatusOK, resp)
}
