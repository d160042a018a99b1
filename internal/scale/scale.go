// Package scale holds the fixed label↔score tables behind every dropdown in
// the PriorizAI form. Labels are the exact strings the page shows; scores are
// always 1..5 ascending.
package scale

import "fmt"

type Entry struct {
	Label string
	Score int
}

type Catalog struct {
	Name    string
	Entries []Entry
}

// ErrUnknownLabel is returned when a submitted label is not in the catalog.
type ErrUnknownLabel struct {
	Catalog string
	Label   string
}

func (e ErrUnknownLabel) Error() string {
	return fmt.Sprintf("rótulo desconhecido em %s: %q", e.Catalog, e.Label)
}

var Importance = Catalog{
	Name: "importance",
	Entries: []Entry{
		{"Quase não importa", 1},
		{"Importa pouco", 2},
		{"Importa", 3},
		{"Importa muito", 4},
		{"É crítico, não dá para adiar", 5},
	},
}

var TimeCost = Catalog{
	Name: "time_cost",
	Entries: []Entry{
		{"Menos de 10 min", 1},
		{"10 a 30 min", 2},
		{"30 min a 2 horas", 3},
		{"2 a 6 horas", 4},
		{"Mais de 6 horas", 5},
	},
}

var Reach = Catalog{
	Name: "reach",
	Entries: []Entry{
		{"Quase ninguém", 1},
		{"Poucas pessoas", 2},
		{"Algumas pessoas", 3},
		{"Muita gente", 4},
		{"Praticamente todo mundo", 5},
	},
}

var Confidence = Catalog{
	Name: "confidence",
	Entries: []Entry{
		{"Chute total", 1},
		{"Pouca confiança", 2},
		{"Confiança média", 3},
		{"Bastante confiança", 4},
		{"Certeza quase total", 5},
	},
}

var Gravity = Catalog{
	Name: "gut_g",
	Entries: []Entry{
		{"Sem gravidade", 1},
		{"Pouco grave", 2},
		{"Grave", 3},
		{"Muito grave", 4},
		{"Extremamente grave", 5},
	},
}

var Urgency = Catalog{
	Name: "gut_u",
	Entries: []Entry{
		{"Pode esperar", 1},
		{"Pouco urgente", 2},
		{"Urgente", 3},
		{"Muito urgente", 4},
		{"Precisa de ação imediata", 5},
	},
}

var Trend = Catalog{
	Name: "gut_t",
	Entries: []Entry{
		{"Não vai piorar", 1},
		{"Piora devagar", 2},
		{"Vai piorar", 3},
		{"Piora rápido", 4},
		{"Piora na hora se nada for feito", 5},
	},
}

// All numeric catalogs, for table-driven checks.
var Numeric = []Catalog{Importance, TimeCost, Reach, Confidence, Gravity, Urgency, Trend}

// Labels returns the dropdown options in display order.
func (c Catalog) Labels() []string {
	out := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Label
	}
	return out
}

// Score resolves a chosen label to its 1..5 value.
func (c Catalog) Score(label string) (int, error) {
	for _, e := range c.Entries {
		if e.Label == label {
			return e.Score, nil
		}
	}
	return 0, ErrUnknownLabel{Catalog: c.Name, Label: label}
}

// Label resolves a 1..5 value back to its display string. Used to echo the
// user-visible option next to each numeric score in the LLM payload.
func (c Catalog) Label(score int) (string, error) {
	for _, e := range c.Entries {
		if e.Score == score {
			return e.Label, nil
		}
	}
	return "", fmt.Errorf("nota fora da escala em %s: %d", c.Name, score)
}

// MoscowCategory is the categorical MoSCoW catalog: display label plus the
// fixed key sent to the model.
type MoscowCategory struct {
	Label string
	Key   string
}

var MoscowCategories = []MoscowCategory{
	{"Tem que fazer", "Must"},
	{"Deveria fazer", "Should"},
	{"Poderia fazer", "Could"},
	{"Não vou fazer agora", "Wont"},
}

// MoscowLabels returns the dropdown options in priority order.
func MoscowLabels() []string {
	out := make([]string, len(MoscowCategories))
	for i, c := range MoscowCategories {
		out[i] = c.Label
	}
	return out
}

// MoscowKey resolves a display label to its Must/Should/Could/Wont key.
func MoscowKey(label string) (string, error) {
	for _, c := range MoscowCategories {
		if c.Label == label {
			return c.Key, nil
		}
	}
	return "", ErrUnknownLabel{Catalog: "moscow", Label: label}
}

// MoscowLabelForKey resolves a Must/Should/Could/Wont key back to the
// display label, for echoing in the LLM payload.
func MoscowLabelForKey(key string) (string, error) {
	for _, c := range MoscowCategories {
		if c.Key == key {
			return c.Label, nil
		}
	}
	return "", ErrUnknownLabel{Catalog: "moscow", Label: key}
}

// ValidMoscowKey reports whether key is one of the four fixed categories.
func ValidMoscowKey(key string) bool {
	for _, c := range MoscowCategories {
		if c.Key == key {
			return true
		}
	}
	return false
}
