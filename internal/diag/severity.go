package diag

// Severity ranks a diagnostic. Only SevError findings make a query
// invalid or fail an analyze run; warnings and notes are advisory.
type Severity uint8

const (
	// SevInfo marks advisory output, such as field-usage notes.
	SevInfo Severity = iota
	// SevWarning marks suspicious but analyzable documents, such as an
	// unused fragment.
	SevWarning
	// SevError marks lexical, syntax, validation, and analysis failures.
	SevError
)

// String returns the uppercase label used in rendered findings.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
