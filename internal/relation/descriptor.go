// Package relation holds the dataset descriptor shared by the provider
// relation types.
package relation

import "sort"

// Descriptor is a read-only view of a relational source: a dataset
// identifier plus the set of column names it exposes. Column names have set
// semantics; duplicates passed to NewDescriptor collapse.
type Descriptor struct {
	dataset string
	columns map[string]struct{}
}

// NewDescriptor builds a descriptor for the given dataset and columns.
func NewDescriptor(dataset string, columns []string) Descriptor {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return Descriptor{dataset: dataset, columns: set}
}

// DatasetName returns the identifier of the underlying dataset.
func (d Descriptor) DatasetName() string {
	return d.dataset
}

// Columns returns the exposed column names, sorted. The slice is freshly
// allocated on every call.
func (d Descriptor) Columns() []string {
	cols := make([]string, 0, len(d.columns))
	for c := range d.columns {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// HasColumn reports whether the descriptor exposes the named column.
func (d Descriptor) HasColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}
