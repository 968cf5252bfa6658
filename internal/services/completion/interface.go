// File: internal/services/completion/interface.go
package completion

import "context"

// Turn is one prior exchange entry carried by the client as conversation
// history.
type Turn struct {
	Text   string
	IsUser bool
}

// Provider turns a fully built prompt into one complete answer.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
