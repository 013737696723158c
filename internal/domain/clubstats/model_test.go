package clubstats

import "testing"

func TestPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wins, draws, want int
	}{
		{0, 0, 0},
		{28, 6, 90},
		{1, 1, 4},
	}
	for _, tc := range tests {
		if got := Points(tc.wins, tc.draws); got != tc.want {
			t.Fatalf("Points(%d, %d) = %d, want %d", tc.wins, tc.draws, got, tc.want)
		}
	}
}

func TestOverview_Key(t *testing.T) {
	t.Parallel()

	if got := (Overview{Name: "Hellas  Verona "}).Key(); got != "hellas verona" {
		t.Fatalf("unexpected key %q", got)
	}
}
