// File: internal/services/completion/prompt.go
package completion

import (
	"fmt"
	"strings"
)

const promptPrefix = "Du er ekspert i juridisk ret og skal give kort besvarelse af følgende spørgsmål. Husk konteksten fra tidligere spørgsmål i samtalen.\n\n"

// BuildPrompt renders the instruction prefix, the prior turns as alternating
// "Bruger:"/"AI:" lines when history is non-empty, and the current question
// with its answer cue.
func BuildPrompt(question string, history []Turn) string {
	var b strings.Builder
	b.WriteString(promptPrefix)

	if len(history) > 0 {
		b.WriteString("Tidligere samtale:\n")
		for _, turn := range history {
			role := "AI"
			if turn.IsUser {
				role = "Bruger"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, turn.Text)
		}
		fmt.Fprintf(&b, "\nNuværende spørgsmål: %s\n\nSvar:", question)
	} else {
		fmt.Fprintf(&b, "Spørgsmål: %s\n\nSvar:", question)
	}

	return b.String()
}
