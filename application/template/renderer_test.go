package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoTemplateEngine_Render(t *testing.T) {
	raw := []byte("name: {{.config.bundle}}\nfiles:\n  - {{.config.entry}}\n")
	engine := NewGoTemplateEngine()

	out, err := engine.Render(raw, map[string]interface{}{
		"bundle": "demo",
		"entry":  "main.js",
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: demo")
	assert.Contains(t, string(out), "- main.js")
}

func TestGoTemplateEngine_Render_NoTemplates(t *testing.T) {
	raw := []byte("name: plain\nfiles: [a.js]\n")
	out, err := NewGoTemplateEngine().Render(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestGoTemplateEngine_Render_StrictMissingKey(t *testing.T) {
	raw := []byte("name: {{.config.missing}}\n")
	_, err := NewGoTemplateEngine().Render(raw, map[string]interface{}{})
	require.Error(t, err)
}

func TestGoTemplateEngine_Render_LenientMissingKey(t *testing.T) {
	raw := []byte("name: {{.config.missing}}\n")
	out, err := NewGoTemplateEngine(WithStrict(false)).Render(raw, map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "name:")
}

func TestGoTemplateEngine_Render_BadTemplate(t *testing.T) {
	_, err := NewGoTemplateEngine().Render([]byte("{{.config."), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
