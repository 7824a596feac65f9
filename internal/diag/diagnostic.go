package diag

import (
	"github.com/bcpeinhardt/hcl/internal/source"
)

// Note is a secondary span/message attached to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the central record produced by the scanner.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
