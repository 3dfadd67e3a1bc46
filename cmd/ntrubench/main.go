// Command ntrubench sweeps the three named presets, times key
// generation and an encrypt/decrypt round trip, and renders the results
// as an HTML bar chart. As a side diagnostic it also instantiates a
// power-of-two NTT-friendly ring at the smallest power of two not below
// each preset's N and
// times a single convolution there against the core's schoolbook
// convolution, illustrating why the core itself cannot use an NTT ring:
// NTRU requires a prime N, NTT rings require a power-of-two one.
package main

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/ring"

	"ntrugo/ntru"
	"ntrugo/ntru/presets"
)

type presetResult struct {
	name          string
	keygen        time.Duration
	roundTrip     time.Duration
	schoolbookMul time.Duration
	nttMul        time.Duration
}

func nearestPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// findNTTFriendlyPrime returns the smallest prime of the form k*2*pow2+1
// at least as large as 2^bits: NewRing requires every modulus to be prime
// and congruent to 1 mod 2*pow2, which none of the NTRU presets' q (all
// powers of two) satisfy, so the benchmark needs its own modulus rather
// than the preset's.
func findNTTFriendlyPrime(pow2 int, bits int) uint64 {
	step := uint64(2 * pow2)
	k := (uint64(1) << uint(bits)) / step
	if k == 0 {
		k = 1
	}
	for {
		cand := k*step + 1
		if big.NewInt(0).SetUint64(cand).ProbablyPrime(20) {
			return cand
		}
		k++
	}
}

func benchNTT(N int, qBits int) time.Duration {
	pow2 := nearestPowerOfTwo(N)
	q := findNTTFriendlyPrime(pow2, qBits)
	r, err := ring.NewRing(pow2, []uint64{q})
	if err != nil {
		fmt.Fprintf(os.Stderr, "NTT ring unavailable for N=%d (pow2=%d, q=%d): %v\n", N, pow2, q, err)
		return 0
	}
	a := r.NewPoly()
	b := r.NewPoly()
	for i := 0; i < pow2; i++ {
		a.Coeffs[0][i] = uint64(i) % q
		b.Coeffs[0][i] = uint64(i*3) % q
	}
	r.MForm(a, a)
	r.MForm(b, b)
	r.NTT(a, a)
	r.NTT(b, b)
	out := r.NewPoly()
	start := time.Now()
	r.MulCoeffsMontgomery(a, b, out)
	r.InvNTT(out, out)
	return time.Since(start)
}

func runPreset(p presets.Preset) (presetResult, error) {
	par, err := ntru.NewParams(p.N, p.P, p.Q, p.Df, p.Dg, p.Dr)
	if err != nil {
		return presetResult{}, err
	}
	src := ntru.NewDeterministicSource(ntru.RandomSeed())

	start := time.Now()
	kp, _, err := ntru.GenerateKeyPair(par, src, ntru.KeygenOptions{}, nil)
	if err != nil {
		return presetResult{}, err
	}
	keygenDur := time.Since(start)

	msg := ntru.GenTernary(src, par.N, par.N/3, par.N/3)
	start = time.Now()
	e, err := ntru.EncryptBlock(msg, kp.H, par, src)
	if err != nil {
		return presetResult{}, err
	}
	if _, err := ntru.DecryptBlock(e, kp.F, kp.Fp, par); err != nil {
		return presetResult{}, err
	}
	roundTripDur := time.Since(start)

	a := ntru.GenTernary(src, par.N, par.Dg, par.Dg)
	b := ntru.GenTernary(src, par.N, par.Dg, par.Dg)
	start = time.Now()
	a.Mul(b)
	schoolbookDur := time.Since(start)

	nttDur := benchNTT(par.N, par.Q.BitLen())

	return presetResult{
		name:          p.Name,
		keygen:        keygenDur,
		roundTrip:     roundTripDur,
		schoolbookMul: schoolbookDur,
		nttMul:        nttDur,
	}, nil
}

func render(results []presetResult, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "NTRU preset benchmarks"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "preset"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds"}),
	)

	names := make([]string, len(results))
	keygenItems := make([]opts.BarData, len(results))
	roundTripItems := make([]opts.BarData, len(results))
	schoolbookItems := make([]opts.BarData, len(results))
	nttItems := make([]opts.BarData, len(results))
	for i, r := range results {
		names[i] = r.name
		keygenItems[i] = opts.BarData{Value: r.keygen.Microseconds()}
		roundTripItems[i] = opts.BarData{Value: r.roundTrip.Microseconds()}
		schoolbookItems[i] = opts.BarData{Value: r.schoolbookMul.Microseconds()}
		nttItems[i] = opts.BarData{Value: r.nttMul.Microseconds()}
	}

	bar.SetXAxis(names).
		AddSeries("keygen", keygenItems).
		AddSeries("encrypt+decrypt", roundTripItems).
		AddSeries("schoolbook mul", schoolbookItems).
		AddSeries("NTT mul (next pow2)", nttItems)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}

func main() {
	var results []presetResult
	for _, p := range presets.All() {
		r, err := runPreset(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "preset %s failed: %v\n", p.Name, err)
			continue
		}
		results = append(results, r)
		fmt.Printf("%-8s keygen=%-12s roundtrip=%-12s schoolbook=%-12s ntt=%-12s keyspace_bits~%d\n",
			r.name, r.keygen, r.roundTrip, r.schoolbookMul, r.nttMul,
			ntru.PossibleKeySpace(p.Df, p.Dg, p.Dr).BitLen())
	}
	if err := render(results, "ntrubench.html"); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
}
