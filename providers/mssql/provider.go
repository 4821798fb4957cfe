// Package mssql provides the expression factory for pushing relational
// work down to Microsoft SQL Server.
package mssql

import "github.com/zoobzio/pushql"

// Quote is the identifier quote string for SQL Server. Double quotes
// require QUOTED_IDENTIFIER ON, which is the server default and what
// go-mssqldb sessions run with.
const Quote = `"`

// Factory compiles SQL expressions and qualified references for SQL Server.
type Factory struct {
	qualifier pushql.Qualifier
}

// NewFactory creates a SQL Server expression factory.
func NewFactory() *Factory {
	return &Factory{qualifier: pushql.NewQualifier(Quote)}
}

// Type returns the dialect tag this factory emits, which is SQL.
func (*Factory) Type() pushql.Capability {
	return pushql.CapabilitySQL
}

// Capabilities returns a fresh single-element set containing the SQL tag.
func (f *Factory) Capabilities() pushql.CapabilitySet {
	return pushql.NewCapabilitySet(f.Type())
}

// Compile wraps the supplied SQL fragment as a valid expression without
// parsing it.
func (*Factory) Compile(expression string) pushql.Expression {
	return pushql.Valid(expression)
}

// QualifiedDatasetName returns the relation's dataset identifier wrapped in
// double quotes, or an invalid expression for a foreign relation kind.
func (f *Factory) QualifiedDatasetName(rel pushql.Relation) pushql.Expression {
	switch r := rel.(type) {
	case *Relation:
		if r == nil {
			return pushql.InvalidRelationKind()
		}
		return pushql.Valid(f.qualifier.Qualify(r.DatasetName()))
	default:
		return pushql.InvalidRelationKind()
	}
}

// QualifiedColumnName returns the column name wrapped in double quotes, or
// an invalid expression if the relation kind is foreign or the column is
// not exposed.
func (f *Factory) QualifiedColumnName(rel pushql.Relation, column string) pushql.Expression {
	switch r := rel.(type) {
	case *Relation:
		if r == nil {
			return pushql.InvalidRelationKind()
		}
		if !r.HasColumn(column) {
			return pushql.InvalidMissingColumn(column)
		}
		return pushql.Valid(f.qualifier.Qualify(column))
	default:
		return pushql.InvalidRelationKind()
	}
}
