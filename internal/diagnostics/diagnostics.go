package diagnostics

import (
	"fmt"

	"github.com/mica-lang/mica/internal/token"
)

// Severity classifies how a diagnostic should be treated by the driver.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Stable diagnostic codes. Codes are part of the tool's output contract,
// messages are not.
const (
	ErrL001 = "L001" // illegal character
	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // malformed declaration
	ErrS001 = "S001" // duplicate definition
	ErrS002 = "S002" // unresolved type
	ErrS003 = "S003" // assignment to immutable place
)

// Diagnostic is a single reported problem, anchored to a source position.
type Diagnostic struct {
	Code     string
	Severity Severity
	Token    token.Token
	File     string
	Message  string
}

// NewError creates an error-severity diagnostic.
func NewError(code string, tok token.Token, message string) *Diagnostic {
	return &Diagnostic{Code: code, Severity: SeverityError, Token: tok, Message: message}
}

// NewWarning creates a warning-severity diagnostic.
func NewWarning(code string, tok token.Token, message string) *Diagnostic {
	return &Diagnostic{Code: code, Severity: SeverityWarning, Token: tok, Message: message}
}

// WithFile returns a copy of d attributed to the given file path.
func (d *Diagnostic) WithFile(file string) *Diagnostic {
	c := *d
	c.File = file
	return &c
}

func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Token.Line, d.Token.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Token.Line, d.Token.Column, d.Code, d.Message)
}

// HasErrors reports whether any diagnostic in ds is error severity.
func HasErrors(ds []*Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
