package campbuidl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditHTML_RenderedGuideIsClean(t *testing.T) {
	a := newTestApp(t)

	html, err := RenderHTML(context.Background(), a.Doc)
	require.NoError(t, err)
	findings, err := AuditHTML(html)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestAuditHTML_Findings(t *testing.T) {
	tests := []struct {
		name string
		html string
		rule string
	}{
		{"blank without rel", `<a href="https://x.dev" target="_blank">x</a>`, RuleRelMissing},
		{"partial rel", `<a href="https://x.dev" target="_blank" rel="noopener">x</a>`, RuleRelMissing},
		{"rel without target", `<a href="https://x.dev" rel="noopener noreferrer">x</a>`, RuleTargetMissing},
		{"orphan connector", `<div><div data-connector="blue->fade"></div></div>`, RuleConnectorOrphan},
		{"duplicate id", `<section id="a"></section><section id="a"></section>`, RuleDuplicateID},
		{"empty links", `<div data-section="links"><h4>Useful Resources:</h4></div>`, RuleEmptyLinks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, err := AuditHTML([]byte(tt.html))
			require.NoError(t, err)
			require.Len(t, findings, 1)
			assert.Equal(t, tt.rule, findings[0].Rule)
			assert.NotEmpty(t, findings[0].String())
		})
	}
}

func TestAuditHTML_RelOrderAndExtrasAccepted(t *testing.T) {
	findings, err := AuditHTML([]byte(`<a href="/x" target="_blank" rel="noreferrer nofollow noopener">x</a>`))
	require.NoError(t, err)
	assert.Empty(t, findings)
}
