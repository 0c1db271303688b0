package parser

import (
	"github.com/scripthost-dev/scripthost-sdk/domain/entities"
	"github.com/scripthost-dev/scripthost-sdk/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlManifestParser implements ManifestParser for YAML.
type YamlManifestParser struct{}

// NewYamlManifestParser creates a new YamlManifestParser.
func NewYamlManifestParser() ports.ManifestParser {
	return &YamlManifestParser{}
}

// Parse unmarshals YAML bytes into a BundleManifest struct.
func (p *YamlManifestParser) Parse(data []byte) (*entities.BundleManifest, error) {
	var manifest entities.BundleManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
