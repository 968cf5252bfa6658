// File: internal/services/reveal/render_test.go
package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLine_FullBoldBecomesHeading(t *testing.T) {
	assert.Equal(t, "<strong>Svar:</strong>", RenderLine("**Svar**"))
	assert.Equal(t, "<strong>Opsigelse:</strong>", RenderLine("**Opsigelse:**"))
}

func TestRenderLine_InlineBold(t *testing.T) {
	out := RenderLine("Dette er **vigtigt** at vide.")
	assert.Equal(t, "Dette er <strong>vigtigt</strong> at vide.", out)
}

func TestRenderLine_PlainText(t *testing.T) {
	assert.Equal(t, "Dette er et svar.", RenderLine("Dette er et svar."))
}

func TestRenderMessage(t *testing.T) {
	rendered := RenderMessage("**Svar**\n\nDette er et svar.")
	require.Len(t, rendered, 2)
	assert.Equal(t, "<strong>Svar:</strong>", rendered[0])
	assert.Equal(t, "Dette er et svar.", rendered[1])
}
