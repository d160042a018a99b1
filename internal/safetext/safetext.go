package safetext

import (
	"fmt"
	"strings"
)

// Limits mirrors the front-end field caps so server and page reject the
// same inputs.
type Limits struct {
	Required bool
	Min      int
	Max      int
}

var xssPatterns = []string{
	"<script",
	"</script",
	"<iframe",
	"<object",
	"<embed",
	"<svg",
	"javascript:",
	"onerror=",
	"onload=",
}

var sqliPatterns = []string{
	" union select",
	"drop table",
	"insert into",
	"delete from",
	"update ",
	" or 1=1",
	"' or '1'='1",
	`" or "1"="1`,
	"--",
	"/*",
	"*/",
}

// Clean strips NUL bytes and surrounding whitespace.
func Clean(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\x00", ""))
}

// LooksLikeInjection is a cheap heuristic, not a sanitizer. Anything that
// trips it is rejected whole instead of being rewritten.
func LooksLikeInjection(text string) bool {
	t := strings.ToLower(Clean(text))

	for _, p := range xssPatterns {
		if strings.Contains(t, p) {
			return true
		}
	}
	for _, p := range sqliPatterns {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}

// Require validates a single text field and returns the cleaned value.
// Error messages are user-facing, in Portuguese, keyed by the field name.
func Require(name, value string, lim Limits) (string, error) {
	v := Clean(value)

	if v == "" {
		if lim.Required {
			return "", fmt.Errorf("Preencha: %s.", name)
		}
		return "", nil
	}

	if lim.Min > 0 && len([]rune(v)) < lim.Min {
		return "", fmt.Errorf("%s muito curto.", name)
	}
	if lim.Max > 0 && len([]rune(v)) > lim.Max {
		return "", fmt.Errorf("%s passou do limite de caracteres.", name)
	}
	if LooksLikeInjection(v) {
		return "", fmt.Errorf("%s parece ter conteúdo perigoso.", name)
	}

	return v, nil
}

// RequireInt checks that a numeric field sits inside [min, max].
func RequireInt(name string, value, min, max int) (int, error) {
	if value < min || value > max {
		return 0, fmt.Errorf("%s fora do intervalo.", name)
	}
	return value, nil
}
