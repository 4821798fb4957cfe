package pushql

// Expression is the outcome of a compile or qualify operation: either a SQL
// text fragment ready to splice into a generated statement, or a validation
// failure with a human-readable reason.
//
// Exactly one variant is meaningful at a time. Callers must check IsValid
// before using Extract; extracting from an invalid expression returns the
// empty string and never panics, but the result must not be used to build
// SQL.
type Expression struct {
	text  string
	err   string
	valid bool
}

// Valid wraps a SQL fragment in a valid Expression. The fragment is taken
// as-is; an empty fragment is permitted.
func Valid(text string) Expression {
	return Expression{text: text, valid: true}
}

// Invalid creates an invalid Expression carrying the given validation
// failure. An empty reason is normalized so the invalid variant always has
// a non-empty message.
func Invalid(reason string) Expression {
	if reason == "" {
		reason = "expression validation failed"
	}
	return Expression{err: reason}
}

// IsValid reports whether the expression carries a usable SQL fragment.
func (e Expression) IsValid() bool {
	return e.valid
}

// Extract returns the SQL fragment, or the empty string if the expression
// is invalid.
func (e Expression) Extract() string {
	if !e.valid {
		return ""
	}
	return e.text
}

// ValidationError returns the validation failure message, or the empty
// string if the expression is valid.
func (e Expression) ValidationError() string {
	return e.err
}
