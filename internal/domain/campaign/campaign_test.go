package campaign

import "testing"

func TestSummary_ProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		goal   float64
		raised float64
		want   int
	}{
		{name: "nothing raised", goal: 1000, raised: 0, want: 0},
		{name: "half funded", goal: 1000, raised: 500, want: 50},
		{name: "truncates fractions", goal: 3, raised: 2, want: 66},
		{name: "fully funded", goal: 1000, raised: 1000, want: 100},
		{name: "overfunded clamps to 100", goal: 1000, raised: 2500, want: 100},
		{name: "zero goal reports 0", goal: 0, raised: 250, want: 0},
		{name: "negative goal reports 0", goal: -10, raised: 250, want: 0},
		{name: "negative raised reports 0", goal: 100, raised: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Summary{Goal: tt.goal, Raised: tt.raised}
			if got := s.ProgressPercent(); got != tt.want {
				t.Errorf("ProgressPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("Status(%q).IsValid() = false, want true", s)
		}
	}
	for _, s := range []Status{"", "open", "Active"} {
		if s.IsValid() {
			t.Errorf("Status(%q).IsValid() = true, want false", s)
		}
	}
}

func TestSortBy_IsValid(t *testing.T) {
	t.Parallel()

	if SortOptions()[0] != DefaultSort {
		t.Errorf("SortOptions()[0] = %q, want default %q", SortOptions()[0], DefaultSort)
	}
	for _, s := range SortOptions() {
		if !s.IsValid() {
			t.Errorf("SortBy(%q).IsValid() = false, want true", s)
		}
	}
	for _, s := range []SortBy{"", "newest", "Recent"} {
		if s.IsValid() {
			t.Errorf("SortBy(%q).IsValid() = true, want false", s)
		}
	}
}
