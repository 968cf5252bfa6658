// File: internal/services/completion/prompt_test.go
package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_WithoutHistory(t *testing.T) {
	prompt := BuildPrompt("Hvad er husleje?", nil)

	assert.True(t, strings.HasPrefix(prompt, promptPrefix))
	assert.Contains(t, prompt, "Spørgsmål: Hvad er husleje?")
	assert.True(t, strings.HasSuffix(prompt, "Svar:"))
	assert.NotContains(t, prompt, "Tidligere samtale")
}

func TestBuildPrompt_WithHistory(t *testing.T) {
	history := []Turn{
		{Text: "Hvad er opsigelsesvarsel?", IsUser: true},
		{Text: "Det afhænger af lejeperioden.", IsUser: false},
	}
	prompt := BuildPrompt("Og for tidsbegrænsede lejemål?", history)

	assert.Contains(t, prompt, "Tidligere samtale:\nBruger: Hvad er opsigelsesvarsel?\nAI: Det afhænger af lejeperioden.\n")
	assert.Contains(t, prompt, "Nuværende spørgsmål: Og for tidsbegrænsede lejemål?")
	assert.True(t, strings.HasSuffix(prompt, "Svar:"))
}
