package ntru

import "testing"

func TestGenerateKeyPair_Moderate(t *testing.T) {
	par, err := NewParams(107, 3, 64, 15, 12, 5)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	src := NewDeterministicSource(1234)
	kp, diag, err := GenerateKeyPair(par, src, KeygenOptions{}, nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	assertIsOne(t, kp.F.Mul(kp.Fp).Reduce(par.P))
	assertIsOne(t, kp.F.Mul(kp.Fq).Reduce(par.Q))
	if diag.KeySpace == nil || diag.KeySpace.Sign() <= 0 {
		t.Fatalf("expected positive keyspace estimate")
	}
}

func TestGenerateKeyPair_SkipLeadingCoeffCheck(t *testing.T) {
	par, _ := NewParams(11, 3, 32, 4, 3, 3)
	src := NewDeterministicSource(5)
	if _, _, err := GenerateKeyPair(par, src, KeygenOptions{SkipLeadingCoeffCheck: true}, nil); err != nil {
		t.Fatalf("GenerateKeyPair with check disabled: %v", err)
	}
}
