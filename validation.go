package pushql

import "fmt"

// Validation failure messages are fixed and identical across providers;
// planners match on them when deciding whether to abort a pushdown or fall
// back to local execution.
const (
	// MsgUnsupportedRelationKind is the validation error carried when a
	// factory is handed a relation of a kind it does not understand.
	MsgUnsupportedRelationKind = "relation is of unsupported kind"

	// MsgColumnNotPresentFormat is the fmt format of the validation error
	// carried when a relation does not expose the requested column.
	MsgColumnNotPresentFormat = "Column %s is not present in dataset"
)

// InvalidRelationKind creates the invalid expression for a kind-mismatched
// relation.
func InvalidRelationKind() Expression {
	return Invalid(MsgUnsupportedRelationKind)
}

// InvalidMissingColumn creates the invalid expression for a column the
// relation does not expose.
func InvalidMissingColumn(column string) Expression {
	return Invalid(fmt.Sprintf(MsgColumnNotPresentFormat, column))
}
