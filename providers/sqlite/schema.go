package sqlite

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// RelationFromTable builds a relation from a DBML table definition.
func RelationFromTable(table *dbml.Table) (*Relation, error) {
	if table == nil {
		return nil, fmt.Errorf("table cannot be nil")
	}
	columns := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		columns = append(columns, col.Name)
	}
	return TryNewRelation(table.Name, columns...)
}

// RelationsFromDBML builds one relation per table in a DBML project, keyed
// by table name.
func RelationsFromDBML(project *dbml.Project) (map[string]*Relation, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	relations := make(map[string]*Relation, len(project.Tables))
	for _, table := range project.Tables {
		rel, err := RelationFromTable(table)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", table.Name, err)
		}
		relations[table.Name] = rel
	}
	return relations, nil
}
