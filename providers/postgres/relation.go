package postgres

import (
	"fmt"

	"github.com/zoobzio/pushql"
	"github.com/zoobzio/pushql/internal/relation"
)

// Relation is a PostgreSQL table reference with its exposed column set.
type Relation struct {
	relation.Descriptor
}

var _ pushql.Relation = (*Relation)(nil)

// TryNewRelation creates a relation, returning an error if the dataset
// identifier is empty. Duplicate column names collapse.
func TryNewRelation(dataset string, columns ...string) (*Relation, error) {
	if dataset == "" {
		return nil, fmt.Errorf("dataset identifier cannot be empty")
	}
	return &Relation{Descriptor: relation.NewDescriptor(dataset, columns)}, nil
}

// NewRelation creates a relation, panicking if the dataset identifier is
// empty.
func NewRelation(dataset string, columns ...string) *Relation {
	r, err := TryNewRelation(dataset, columns...)
	if err != nil {
		panic(err)
	}
	return r
}
