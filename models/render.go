package models

// Content types of a rendered [Payload].
const (
	ContentTypeJSON       = "application/json"
	ContentTypeJavaScript = "application/javascript"
)

// RenderOptions controls how a resolved configuration is serialized.
type RenderOptions struct {
	// AsJSON serves the raw JSON object instead of a script assignment.
	AsJSON bool

	// Compress drops pretty-printing indentation.
	Compress bool

	// VariableName is the identifier assigned in script mode.
	VariableName string

	// UseWindowBinding assigns to window.<VariableName> instead of
	// declaring a const.
	UseWindowBinding bool
}

// Payload is a fully rendered response body together with its content type.
type Payload struct {
	Body        []byte
	ContentType string
}
