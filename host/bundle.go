package host

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dop251/goja"

	apptemplate "github.com/scripthost-dev/scripthost-sdk/application/template"
	"github.com/scripthost-dev/scripthost-sdk/application/validation"
	"github.com/scripthost-dev/scripthost-sdk/domain/entities"
	domerrors "github.com/scripthost-dev/scripthost-sdk/domain/errors"
	"github.com/scripthost-dev/scripthost-sdk/domain/ports"
	"github.com/scripthost-dev/scripthost-sdk/infrastructure/parser"
)

// bundleConfig holds configuration for the BundleLoader.
type bundleConfig struct {
	parser          ports.ManifestParser
	templateEngine  ports.TemplateEngine
	strictTemplates bool // Fail on missing template keys
}

func defaultBundleConfig() bundleConfig {
	return bundleConfig{
		parser:          parser.NewYamlManifestParser(),
		strictTemplates: true,
	}
}

// BundleLoader orchestrates the manifest loading pipeline:
// template render, parse, validate.
type BundleLoader struct {
	validator *validation.ManifestValidator
	config    bundleConfig
}

// BundleOption configures the BundleLoader.
type BundleOption func(*bundleConfig)

// WithParser sets a custom manifest parser.
func WithParser(p ports.ManifestParser) BundleOption {
	return func(c *bundleConfig) {
		c.parser = p
	}
}

// WithTemplateEngine sets a template engine.
func WithTemplateEngine(t ports.TemplateEngine) BundleOption {
	return func(c *bundleConfig) {
		c.templateEngine = t
	}
}

// WithStrictTemplates enables/disables strict template mode. When
// enabled (default), rendering fails if a referenced key is missing.
func WithStrictTemplates(enabled bool) BundleOption {
	return func(c *bundleConfig) {
		c.strictTemplates = enabled
	}
}

// NewBundleLoader creates a new BundleLoader with defaults.
func NewBundleLoader(opts ...BundleOption) *BundleLoader {
	cfg := defaultBundleConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.templateEngine == nil {
		cfg.templateEngine = apptemplate.NewGoTemplateEngine(
			apptemplate.WithStrict(cfg.strictTemplates),
		)
	}
	return &BundleLoader{
		validator: validation.NewManifestValidator(),
		config:    cfg,
	}
}

// LoadManifest renders, parses and validates a bundle manifest.
func (b *BundleLoader) LoadManifest(raw []byte, config map[string]interface{}) (*entities.BundleManifest, error) {
	data := raw

	if b.config.templateEngine != nil {
		var err error
		data, err = b.config.templateEngine.Render(raw, config)
		if err != nil {
			return nil, &domerrors.ManifestError{Stage: "render", Err: err}
		}
	}

	manifest, err := b.config.parser.Parse(data)
	if err != nil {
		return nil, &domerrors.ManifestError{Stage: "parse", Err: err}
	}

	result, err := b.validator.Validate(manifest)
	if err != nil {
		return nil, &domerrors.ManifestError{Stage: "validate", Err: err}
	}
	if !result.Valid {
		msg := "manifest validation failed:"
		for _, issue := range result.Errors {
			msg += fmt.Sprintf("\n- %s: %s", issue.Field, issue.Message)
		}
		return nil, &domerrors.ManifestError{Stage: "validate", Err: errors.New(msg)}
	}

	return manifest, nil
}

// LoadBundle reads a bundle manifest from manifestPath, runs it through
// the manifest pipeline, and composes a fresh context over the
// manifest's file list. Relative file entries resolve against the
// manifest's directory.
func (e *Executor) LoadBundle(manifestPath string, config map[string]interface{}, nativeRequire, loaderHandle goja.Value, opts ...BundleOption) (*ExecContext, error) {
	raw, err := e.reader.Read(manifestPath)
	if err != nil {
		return nil, &domerrors.IOError{Path: manifestPath, Err: err}
	}

	manifest, err := NewBundleLoader(opts...).LoadManifest(raw, config)
	if err != nil {
		return nil, err
	}

	resolved, _ := e.resolver.Resolve(manifestPath)
	paths := make([]string, len(manifest.Files))
	for i, f := range manifest.Files {
		if filepath.IsAbs(f) {
			paths[i] = f
		} else {
			paths[i] = filepath.Join(resolved.Dir, f)
		}
	}

	e.logger.Info("loading bundle", "name", manifest.Name, "version", manifest.Version, "files", len(paths))
	return e.composer.ComposeFiles(e.root, nativeRequire, loaderHandle, paths)
}
