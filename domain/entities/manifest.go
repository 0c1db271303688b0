package entities

// BundleManifest describes a pseudo-module bundle: an ordered list of
// script sources that are loaded into one freshly composed context.
type BundleManifest struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Files       []string `json:"files" yaml:"files" validate:"required,min=1,dive,required"`
}
