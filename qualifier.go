package pushql

// Qualifier wraps identifiers in a dialect's quoting syntax. The quote
// string is owned by the dialect provider and injected here, keeping the
// qualifier itself dialect-agnostic.
//
// Qualification is pure concatenation: casing and whitespace are preserved,
// and embedded quote characters are not escaped. Identifiers come from
// planner-supplied schema metadata, which engine naming rules keep free of
// the quote character.
type Qualifier struct {
	quote string
}

// NewQualifier creates a Qualifier using the given quote string.
func NewQualifier(quote string) Qualifier {
	return Qualifier{quote: quote}
}

// Qualify returns the identifier wrapped in the dialect's quote string.
func (q Qualifier) Qualify(identifier string) string {
	return q.quote + identifier + q.quote
}
