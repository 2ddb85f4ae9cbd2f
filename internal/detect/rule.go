package detect

import "fmt"

// Severity of a diagnostic.
type Severity int

// Severity levels.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Rule describes the diagnostics a detector produces.
// Format takes the receiver name, the declared type and the converted type.
type Rule struct {
	ID       string
	Title    string
	Format   string
	Category string
	Severity Severity
}

// DefaultRule is the rule reported by the queryconv analyzer.
var DefaultRule = Rule{
	ID:       "queryconv",
	Title:    "deferred query implicitly converted to in-memory sequence",
	Format:   "%s is an %s, but is being implicitly converted to an %s",
	Category: "Usage",
	Severity: SeverityWarning,
}
