// Package testing provides test utilities for pushql.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/pushql"
)

// TestProject creates a DBML project covering the shapes the provider tests
// care about, including reserved-word dataset and column names.
func TestProject(t *testing.T) *dbml.Project {
	t.Helper()

	project := dbml.NewProject("test")

	sales := dbml.NewTable("sales")
	sales.AddColumn(dbml.NewColumn("id", "bigint"))
	sales.AddColumn(dbml.NewColumn("amount", "numeric"))
	sales.AddColumn(dbml.NewColumn("region", "varchar"))
	project.AddTable(sales)

	events := dbml.NewTable("events")
	events.AddColumn(dbml.NewColumn("id", "bigint"))
	events.AddColumn(dbml.NewColumn("payload", "text"))
	events.AddColumn(dbml.NewColumn("select", "varchar"))
	events.AddColumn(dbml.NewColumn("order", "int"))
	project.AddTable(events)

	customers := dbml.NewTable("customers")
	customers.AddColumn(dbml.NewColumn("id", "bigint"))
	customers.AddColumn(dbml.NewColumn("name", "varchar"))
	customers.AddColumn(dbml.NewColumn("email", "varchar"))
	project.AddTable(customers)

	return project
}

// AssertValid fails the test unless the expression is valid with the
// expected fragment.
func AssertValid(t *testing.T, expr pushql.Expression, fragment string) {
	t.Helper()
	if !expr.IsValid() {
		t.Fatalf("Expected valid expression, got error: %s", expr.ValidationError())
	}
	if got := expr.Extract(); got != fragment {
		t.Errorf("Fragment mismatch:\nExpected: %s\nActual:   %s", fragment, got)
	}
}

// AssertInvalid fails the test unless the expression is invalid with a
// validation error containing substr.
func AssertInvalid(t *testing.T, expr pushql.Expression, substr string) {
	t.Helper()
	if expr.IsValid() {
		t.Fatalf("Expected invalid expression, got fragment: %s", expr.Extract())
	}
	if got := expr.Extract(); got != "" {
		t.Errorf("Expected empty fragment on invalid expression, got: %s", got)
	}
	if !strings.Contains(expr.ValidationError(), substr) {
		t.Errorf("Expected validation error containing %q, got: %s", substr, expr.ValidationError())
	}
}
