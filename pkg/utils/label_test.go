package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name       string
		existing   Label
		incoming   Label
		wantValue  string
		wantSource string
	}{
		{
			"both populated accumulate",
			Label{Value: "a", Source: "rank"},
			Label{Value: "b", Source: "focus"},
			"a|b", "rank,focus",
		},
		{
			"empty existing replaced",
			Label{},
			Label{Value: "b", Source: "focus"},
			"b", "focus",
		},
		{
			"empty incoming ignored",
			Label{Value: "a", Source: "rank"},
			Label{},
			"a", "rank",
		},
		{
			"missing incoming source kept",
			Label{Value: "a", Source: "rank"},
			Label{Value: "b"},
			"a|b", "rank",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeLabel(tt.existing, tt.incoming)
			if got.Value != tt.wantValue || got.Source != tt.wantSource {
				t.Errorf("MergeLabel() = %+v, want {%s %s}", got, tt.wantValue, tt.wantSource)
			}
		})
	}
}
