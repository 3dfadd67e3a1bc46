package ntru

import "testing"

func TestIsPrime(t *testing.T) {
	cases := map[int]bool{
		1: false, 2: true, 3: true, 4: false, 11: true, 100: false, 503: true, 107: true,
	}
	for n, want := range cases {
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestPrimePowerBase(t *testing.T) {
	tests := []struct {
		m        int64
		wantBase int64
		wantK    int
		wantOK   bool
	}{
		{32, 2, 5, true},
		{64, 2, 6, true},
		{256, 2, 8, true},
		{3, 3, 1, true},
		{15, 0, 0, false},
	}
	for _, tc := range tests {
		base, k, ok := PrimePowerBase(tc.m)
		if ok != tc.wantOK {
			t.Fatalf("PrimePowerBase(%d) ok=%v, want %v", tc.m, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if base != tc.wantBase || k != tc.wantK {
			t.Errorf("PrimePowerBase(%d) = (%d,%d), want (%d,%d)", tc.m, base, k, tc.wantBase, tc.wantK)
		}
	}
}

func TestDistinctPrimeFactors(t *testing.T) {
	if got := DistinctPrimeFactors(1); len(got) != 0 {
		t.Errorf("factors(1) = %v, want empty", got)
	}
	if got := DistinctPrimeFactors(17); len(got) != 1 || got[0] != 17 {
		t.Errorf("factors(17) = %v, want [17]", got)
	}
	if got := DistinctPrimeFactors(12); len(got) != 2 {
		t.Errorf("factors(12) = %v, want 2 distinct primes", got)
	}
}

func TestPossibleKeySpace(t *testing.T) {
	space := PossibleKeySpace(15, 12, 5)
	bound := space.BitLen()
	if bound == 0 {
		t.Fatalf("expected nonzero keyspace")
	}
}
