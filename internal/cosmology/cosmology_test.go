package cosmology

import "testing"

func TestSeedValues(t *testing.T) {
	cases := []struct {
		index int
		want  float64
	}{
		{0, 299792458.0},
		{1, 6.62607015e-34},
		{2, 6.67430e-11},
		{3, 8.8541878128e-12},
		{4, 1.0 / 5.0},
		{5, 1.0 / 6.0},
		{9, 1.0 / 10.0},
		{29, 1.0 / 30.0},
	}
	for _, tc := range cases {
		if got := Seed(tc.index); got != tc.want {
			t.Fatalf("Seed(%d) = %g, want %g", tc.index, got, tc.want)
		}
	}
}

func TestGenesisDefaultsAreCoherent(t *testing.T) {
	if GenesisEntropy < 0 || GenesisEntropy > EntropyCeiling {
		t.Fatalf("genesis entropy %g outside [0, %g]", GenesisEntropy, EntropyCeiling)
	}
	if LifespanDays != 1825000 {
		t.Fatalf("lifespan = %d days, want 1825000", LifespanDays)
	}
	if ConstantCount <= SpacetimeDimensions {
		t.Fatalf("constant count %d should exceed spacetime dimensions %d", ConstantCount, SpacetimeDimensions)
	}
	for _, f := range []float64{InterventionFactor, GuidanceFactor} {
		if f <= 0 || f >= 1 {
			t.Fatalf("intervention factor %g outside (0, 1)", f)
		}
	}
}
