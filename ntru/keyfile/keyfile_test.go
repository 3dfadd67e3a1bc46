package keyfile

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"ntrugo/ntru"
)

func TestPublicPrivateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "testkey")

	N := 11
	pub := Public{
		P:  big.NewInt(3),
		Q:  big.NewInt(32),
		N:  N,
		Dr: 3,
		H:  ntru.FromInts(N, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}),
	}
	priv := Private{
		P:  big.NewInt(3),
		Q:  big.NewInt(32),
		N:  N,
		Df: 4, Dg: 3, Dr: 3,
		F:  ntru.FromInts(N, []int64{1, 1, -1, 1, 0, 0, 0, -1, 0, 1, -1}),
		Fp: ntru.FromInts(N, []int64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
		Fq: ntru.FromInts(N, []int64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
		G:  ntru.FromInts(N, []int64{0, 1, 0, -1, 1, 0, -1, 0, 1, 0, 0}),
	}

	if err := WritePublic(name, pub); err != nil {
		t.Fatalf("WritePublic: %v", err)
	}
	if err := WritePrivate(name, priv); err != nil {
		t.Fatalf("WritePrivate: %v", err)
	}

	gotPub, err := ReadPublic(name + ".pub")
	if err != nil {
		t.Fatalf("ReadPublic: %v", err)
	}
	if !gotPub.H.Equal(pub.H) || gotPub.N != pub.N || gotPub.Dr != pub.Dr {
		t.Fatalf("public key mismatch after round trip: %+v", gotPub)
	}

	gotPriv, err := ReadPrivate(name + ".priv")
	if err != nil {
		t.Fatalf("ReadPrivate: %v", err)
	}
	if !gotPriv.F.Equal(priv.F) || !gotPriv.Fp.Equal(priv.Fp) || !gotPriv.Fq.Equal(priv.Fq) || !gotPriv.G.Equal(priv.G) {
		t.Fatalf("private key mismatch after round trip: %+v", gotPriv)
	}
}

func TestReadPublic_MissingFile(t *testing.T) {
	if _, err := ReadPublic(filepath.Join(os.TempDir(), "does-not-exist.pub")); err == nil {
		t.Fatalf("expected IO error for missing file")
	}
}
