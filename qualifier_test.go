package pushql_test

import (
	"testing"

	"github.com/zoobzio/pushql"
)

func TestQualify(t *testing.T) {
	tests := []struct {
		name       string
		quote      string
		identifier string
		expected   string
	}{
		{"backtick", "`", "amount", "`amount`"},
		{"double quote", `"`, "amount", `"amount"`},
		{"empty identifier", "`", "", "``"},
		{"casing preserved", "`", "Amount", "`Amount`"},
		{"whitespace preserved", "`", " amount ", "` amount `"},
		{"reserved word", `"`, "select", `"select"`},
		{"embedded quote passes through", "`", "bad`name", "`bad`name`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := pushql.NewQualifier(tt.quote)
			if got := q.Qualify(tt.identifier); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
