// Package pushql provides the expression-compilation layer of a relational
// pushdown mechanism: it turns abstract dataset and column references into
// dialect-correct, safely quoted SQL fragments, and rejects references that
// the current relational context cannot resolve.
//
// # Basic Usage
//
// A planner holds an ExpressionFactory for the engine it pushes work down
// to, and asks it for qualified references before splicing them into a
// generated statement:
//
//	import "github.com/zoobzio/pushql/providers/bigquery"
//
//	factory := bigquery.NewFactory()
//	rel := bigquery.NewRelation("sales", "id", "amount")
//
//	expr := factory.QualifiedColumnName(rel, "amount")
//	if expr.IsValid() {
//		// expr.Extract() == "`amount`"
//	}
//
// Every factory operation returns an Expression value; validation failures
// are carried inside the Invalid variant rather than raised as errors, so a
// caller always receives a well-formed value and decides itself whether to
// abort the pushdown or fall back to local execution.
//
// # Multi-Provider Support
//
// Each engine dialect lives in its own package under providers/ (bigquery,
// postgres, mysql, mssql, sqlite). A factory understands only its own
// provider's Relation type; handing it a relation from another provider
// yields an Invalid expression, never a panic.
//
// # Schema-Validated Usage
//
// Provider relations can be built from a DBML project so the column sets
// the factory validates against come from a declared schema:
//
//	relations, err := bigquery.RelationsFromDBML(project)
//	if err != nil {
//		return err
//	}
//	expr := factory.QualifiedDatasetName(relations["sales"])
package pushql

// Relation is an engine-specific dataset reference supplied by the planner.
// Implementations are read-only views: a dataset identifier plus the set of
// column names it exposes. Each provider package defines its own concrete
// relation kind; a factory accepts only its own.
type Relation interface {
	// DatasetName returns the identifier of the underlying dataset.
	DatasetName() string

	// Columns returns the column names the relation exposes, sorted.
	Columns() []string

	// HasColumn reports whether the relation exposes the named column.
	HasColumn(name string) bool
}

// ExpressionFactory compiles raw SQL fragments and qualified relation
// references for a single expression dialect.
//
// Implementations are stateless and safe for concurrent use. None of the
// operations fail with a Go error: compilation is unconditional, and
// reference validation failures are returned as Invalid expressions.
type ExpressionFactory interface {
	// Type returns the one dialect tag this factory emits.
	Type() Capability

	// Capabilities returns the set of supported dialect tags. The set is
	// freshly allocated on every call.
	Capabilities() CapabilitySet

	// Compile wraps a raw SQL fragment as a valid Expression. The fragment
	// is opaque to the factory and is not parsed or validated; an empty
	// string compiles as-is.
	Compile(expression string) Expression

	// QualifiedDatasetName returns the relation's dataset identifier quoted
	// for this dialect, or an Invalid expression if the relation is not of
	// the kind this factory understands.
	QualifiedDatasetName(rel Relation) Expression

	// QualifiedColumnName returns the column name quoted for this dialect,
	// or an Invalid expression if the relation is of the wrong kind or does
	// not expose the column.
	QualifiedColumnName(rel Relation, column string) Expression
}
