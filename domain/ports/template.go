package ports

// TemplateEngine renders templates with user supplied variables.
type TemplateEngine interface {
	// Render processes the raw scenario bytes with the provided variables.
	// Returns resolved bytes with all template placeholders replaced.
	Render(raw []byte, vars map[string]any) ([]byte, error)
}
