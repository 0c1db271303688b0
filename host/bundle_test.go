package host

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/scripthost-dev/scripthost-sdk/domain/errors"
)

func TestBundleLoader_LoadManifest(t *testing.T) {
	loader := NewBundleLoader()

	t.Run("renders, parses and validates", func(t *testing.T) {
		raw := []byte(`
name: "{{.config.app}}-bundle"
version: "1.0.0"
files:
  - init.js
  - "{{.config.entry}}"
`)
		manifest, err := loader.LoadManifest(raw, map[string]interface{}{
			"app":   "billing",
			"entry": "main.js",
		})
		require.NoError(t, err)
		assert.Equal(t, "billing-bundle", manifest.Name)
		assert.Equal(t, []string{"init.js", "main.js"}, manifest.Files)
	})

	t.Run("missing template key fails rendering in strict mode", func(t *testing.T) {
		raw := []byte(`
name: "{{.config.missing}}"
files: [a.js]
`)
		_, err := loader.LoadManifest(raw, map[string]interface{}{})
		require.Error(t, err)
		var mErr *domerrors.ManifestError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "render", mErr.Stage)
	})

	t.Run("invalid yaml fails parsing", func(t *testing.T) {
		raw := []byte("name: [unclosed")
		_, err := loader.LoadManifest(raw, nil)
		var mErr *domerrors.ManifestError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "parse", mErr.Stage)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		raw := []byte("files: [a.js]")
		_, err := loader.LoadManifest(raw, nil)
		var mErr *domerrors.ManifestError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "validate", mErr.Stage)
		assert.Contains(t, err.Error(), "Name")
	})

	t.Run("empty file list fails validation", func(t *testing.T) {
		raw := []byte("name: empty\nfiles: []")
		_, err := loader.LoadManifest(raw, nil)
		var mErr *domerrors.ManifestError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "validate", mErr.Stage)
	})

	t.Run("non-strict mode tolerates missing keys", func(t *testing.T) {
		lenient := NewBundleLoader(WithStrictTemplates(false))
		raw := []byte(`
name: "fixed-name"
description: "built for {{.config.env}}"
files: [a.js]
`)
		manifest, err := lenient.LoadManifest(raw, map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, "fixed-name", manifest.Name)
	})
}

func TestExecutor_LoadBundle(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "init.js", `exports.parts = ["init"];`)
	writeScript(t, dir, "main.js", `exports.parts.push("main"); exports.dir = __dirname;`)
	manifestPath := writeScript(t, dir, "bundle.yaml", `
name: "{{.config.name}}"
version: "0.1.0"
files:
  - init.js
  - main.js
`)

	e, err := NewExecutor(WithLogger(discardLogger()))
	require.NoError(t, err)
	defer e.Close()

	t.Run("composes the manifest's files relative to the manifest", func(t *testing.T) {
		composed, err := e.LoadBundle(manifestPath, map[string]interface{}{"name": "demo"}, nil, nil)
		require.NoError(t, err)

		v, runErr := composed.Runtime().RunString(`exports.parts.join(",")`)
		require.NoError(t, runErr)
		assert.Equal(t, "init,main", v.String())

		v, runErr = composed.Runtime().RunString(`exports.dir`)
		require.NoError(t, runErr)
		assert.Equal(t, dir, v.String())
	})

	t.Run("missing manifest is an io error", func(t *testing.T) {
		_, err := e.LoadBundle(filepath.Join(dir, "absent.yaml"), nil, nil, nil)
		var ioErr *domerrors.IOError
		require.ErrorAs(t, err, &ioErr)
	})

	t.Run("invalid manifest is a manifest error", func(t *testing.T) {
		badPath := writeScript(t, dir, "bad.yaml", "files: []")
		_, err := e.LoadBundle(badPath, nil, nil, nil)
		var mErr *domerrors.ManifestError
		require.ErrorAs(t, err, &mErr)
	})
}
