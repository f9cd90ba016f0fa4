package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		neighbors int
		alive     bool
		want      bool
	}{
		{0, true, false},
		{1, true, false},
		{2, true, true},
		{3, true, true},
		{4, true, false},
		{8, true, false},
		{2, false, false},
		{3, false, true},
		{4, false, false},
		{0, false, false},
	}

	for _, tt := range tests {
		if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
			t.Errorf("ApplyConwayRules(%d, %v) = %v, expected %v", tt.neighbors, tt.alive, got, tt.want)
		}
	}
}
