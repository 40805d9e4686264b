package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{name: "non-positive limit", input: "Logistics coordinator", limit: 0, expect: ""},
		{name: "short cv text kept", input: "Forklift operator", limit: 40, expect: "Forklift operator"},
		{name: "long cv text cut", input: "Warehouse supervisor with WMS experience", limit: 9, expect: "Warehouse..."},
		{name: "whitespace trimmed first", input: "\n  SAP MM  \n", limit: 3, expect: "SAP..."},
		{name: "counts runes not bytes", input: "مدير مستودع", limit: 4, expect: "مدير..."},
		{name: "multi-line cv flattened", input: "Summary:\n\tInventory   control\nSkills: SAP", limit: 100, expect: "Summary: Inventory control Skills: SAP"},
		{name: "no dangling space before ellipsis", input: "Fleet dispatcher", limit: 6, expect: "Fleet..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
