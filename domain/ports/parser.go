package ports

import "github.com/scripthost-dev/scripthost-sdk/domain/entities"

// ManifestParser parses raw bundle manifest bytes into a BundleManifest.
type ManifestParser interface {
	Parse(data []byte) (*entities.BundleManifest, error)
}
