package bigquery_test

import (
	"testing"

	"github.com/zoobzio/pushql"
	"github.com/zoobzio/pushql/providers/bigquery"
	"github.com/zoobzio/pushql/providers/postgres"
)

// Factory must satisfy the planner-facing contract.
var _ pushql.ExpressionFactory = (*bigquery.Factory)(nil)

func TestType(t *testing.T) {
	factory := bigquery.NewFactory()

	if got := factory.Type(); got != pushql.CapabilitySQL {
		t.Errorf("Expected capability SQL, got '%s'", got)
	}
}

func TestCapabilities(t *testing.T) {
	factory := bigquery.NewFactory()

	t.Run("single SQL tag", func(t *testing.T) {
		caps := factory.Capabilities()

		if len(caps) != 1 {
			t.Errorf("Expected 1 capability, got %d", len(caps))
		}
		if !caps.Has(factory.Type()) {
			t.Error("Expected capability set to contain the factory type")
		}
	})

	t.Run("fresh set per call", func(t *testing.T) {
		first := factory.Capabilities()
		first["fake"] = struct{}{}
		second := factory.Capabilities()

		if second.Has("fake") {
			t.Error("Expected successive calls to return independent sets")
		}
	})
}

func TestCompile(t *testing.T) {
	factory := bigquery.NewFactory()

	tests := []struct {
		name       string
		expression string
	}{
		{"simple fragment", "`amount` > 100"},
		{"arbitrary text", "SUM(`amount`) OVER (PARTITION BY `region`)"},
		{"empty string", ""},
		{"not parsed", "this is not sql at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := factory.Compile(tt.expression)

			if !expr.IsValid() {
				t.Fatalf("Expected compile to succeed, got error '%s'", expr.ValidationError())
			}
			if got := expr.Extract(); got != tt.expression {
				t.Errorf("Expected fragment %q, got %q", tt.expression, got)
			}
		})
	}
}

func TestQualifiedDatasetName(t *testing.T) {
	factory := bigquery.NewFactory()

	t.Run("valid relation", func(t *testing.T) {
		rel := bigquery.NewRelation("sales", "id", "amount")

		expr := factory.QualifiedDatasetName(rel)
		if !expr.IsValid() {
			t.Fatalf("Expected valid expression, got error '%s'", expr.ValidationError())
		}
		if got := expr.Extract(); got != "`sales`" {
			t.Errorf("Expected '`sales`', got '%s'", got)
		}
	})

	t.Run("foreign relation kind", func(t *testing.T) {
		rel := postgres.NewRelation("sales", "id", "amount")

		expr := factory.QualifiedDatasetName(rel)
		if expr.IsValid() {
			t.Fatal("Expected invalid expression for foreign relation kind")
		}
		if got := expr.ValidationError(); got != "relation is of unsupported kind" {
			t.Errorf("Expected kind-mismatch error, got '%s'", got)
		}
		if got := expr.Extract(); got != "" {
			t.Errorf("Expected empty fragment, got '%s'", got)
		}
	})

	t.Run("nil relation", func(t *testing.T) {
		expr := factory.QualifiedDatasetName(nil)

		if expr.IsValid() {
			t.Fatal("Expected invalid expression for nil relation")
		}
		if got := expr.ValidationError(); got != "relation is of unsupported kind" {
			t.Errorf("Expected kind-mismatch error, got '%s'", got)
		}
	})

	t.Run("typed nil relation", func(t *testing.T) {
		var rel *bigquery.Relation

		expr := factory.QualifiedDatasetName(rel)
		if expr.IsValid() {
			t.Fatal("Expected invalid expression for typed nil relation")
		}
		if got := expr.ValidationError(); got != "relation is of unsupported kind" {
			t.Errorf("Expected kind-mismatch error, got '%s'", got)
		}
	})
}

func TestQualifiedColumnName(t *testing.T) {
	factory := bigquery.NewFactory()
	rel := bigquery.NewRelation("sales", "id", "amount")

	t.Run("column present", func(t *testing.T) {
		expr := factory.QualifiedColumnName(rel, "amount")

		if !expr.IsValid() {
			t.Fatalf("Expected valid expression, got error '%s'", expr.ValidationError())
		}
		if got := expr.Extract(); got != "`amount`" {
			t.Errorf("Expected '`amount`', got '%s'", got)
		}
	})

	t.Run("column missing", func(t *testing.T) {
		expr := factory.QualifiedColumnName(rel, "region")

		if expr.IsValid() {
			t.Fatal("Expected invalid expression for missing column")
		}
		if got := expr.ValidationError(); got != "Column region is not present in dataset" {
			t.Errorf("Expected missing-column error, got '%s'", got)
		}
		if got := expr.Extract(); got != "" {
			t.Errorf("Expected empty fragment, got '%s'", got)
		}
	})

	t.Run("membership is case-sensitive", func(t *testing.T) {
		expr := factory.QualifiedColumnName(rel, "Amount")

		if expr.IsValid() {
			t.Fatal("Expected invalid expression for mismatched casing")
		}
		if got := expr.ValidationError(); got != "Column Amount is not present in dataset" {
			t.Errorf("Expected missing-column error, got '%s'", got)
		}
	})

	t.Run("typed nil relation", func(t *testing.T) {
		var nilRel *bigquery.Relation

		expr := factory.QualifiedColumnName(nilRel, "amount")
		if expr.IsValid() {
			t.Fatal("Expected invalid expression for typed nil relation")
		}
		if got := expr.ValidationError(); got != "relation is of unsupported kind" {
			t.Errorf("Expected kind-mismatch error, got '%s'", got)
		}
	})

	t.Run("foreign relation kind checked before membership", func(t *testing.T) {
		foreign := postgres.NewRelation("sales", "id", "amount")

		expr := factory.QualifiedColumnName(foreign, "amount")
		if expr.IsValid() {
			t.Fatal("Expected invalid expression for foreign relation kind")
		}
		if got := expr.ValidationError(); got != "relation is of unsupported kind" {
			t.Errorf("Expected kind-mismatch error, got '%s'", got)
		}
	})
}

func TestRelation(t *testing.T) {
	t.Run("empty dataset panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic for empty dataset identifier")
			}
		}()
		bigquery.NewRelation("")
	})

	t.Run("TryNewRelation returns error", func(t *testing.T) {
		if _, err := bigquery.TryNewRelation(""); err == nil {
			t.Error("Expected error for empty dataset identifier")
		}
	})

	t.Run("duplicate columns collapse", func(t *testing.T) {
		rel := bigquery.NewRelation("sales", "id", "id", "amount")

		if got := len(rel.Columns()); got != 2 {
			t.Errorf("Expected 2 columns, got %d", got)
		}
	})
}
