package ports

// TemplateEngine renders raw manifest bytes with host-supplied config
// values before parsing.
type TemplateEngine interface {
	Render(raw []byte, config map[string]interface{}) ([]byte, error)
}
