// File: internal/domain/chat_test.go
package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, DefaultChatTitle, DeriveTitle(""))
	assert.Equal(t, "Kort spørgsmål", DeriveTitle("Kort spørgsmål"))

	long := strings.Repeat("x", 80)
	assert.Equal(t, strings.Repeat("x", MaxChatTitleLength), DeriveTitle(long))
}

func TestDeriveTitle_CountsRunes(t *testing.T) {
	// 50 multibyte characters must survive untruncated.
	danish := strings.Repeat("æ", MaxChatTitleLength)
	assert.Equal(t, danish, DeriveTitle(danish))

	assert.Equal(t, danish, DeriveTitle(danish+"overskydende"))
}
