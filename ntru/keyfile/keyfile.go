// Package keyfile reads and writes NTRU public and private keys in the
// whitespace text format used by the reference implementation: a block
// of "# field ::: value" header lines (the leading "# " mirrors numpy's
// default savetxt comment prefix) followed by one or more lines of
// space-separated decimal coefficients.
package keyfile

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"

	"ntrugo/ntru"
)

// Public is the on-disk shape of a ".pub" file.
type Public struct {
	P, Q *big.Int
	N    int
	Dr   int
	H    ntru.RingElement
}

// Private is the on-disk shape of a ".priv" file.
type Private struct {
	P, Q         *big.Int
	N            int
	Df, Dg, Dr   int
	F, Fp, Fq, G ntru.RingElement
}

func headerField(line, key string) (string, error) {
	line = strings.TrimPrefix(line, "#")
	line = strings.TrimSpace(line)
	parts := strings.SplitN(line, ":::", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: malformed header line %q", ntru.ErrFramingError, line)
	}
	name := strings.TrimSpace(parts[0])
	if name != key {
		return "", fmt.Errorf("%w: expected field %q, got %q", ntru.ErrFramingError, key, name)
	}
	return strings.TrimSpace(parts[1]), nil
}

func parseCoeffLine(line string, n int) (ntru.RingElement, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return ntru.RingElement{}, fmt.Errorf("%w: expected %d coefficients, got %d", ntru.ErrFramingError, n, len(fields))
	}
	vals := make([]int64, n)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return ntru.RingElement{}, fmt.Errorf("%w: malformed coefficient %q: %v", ntru.ErrFramingError, f, err)
		}
		vals[i] = v
	}
	return ntru.FromInts(n, vals), nil
}

func coeffLine(e ntru.RingElement) string {
	parts := make([]string, e.N())
	for i, c := range e.Coeffs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// WritePublic writes filename+".pub" in the reference header/body shape.
func WritePublic(filename string, pub Public) error {
	f, err := os.Create(filename + ".pub")
	if err != nil {
		return fmt.Errorf("%w: %v", ntru.ErrIO, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# p ::: %s\n", pub.P.String())
	fmt.Fprintf(w, "# q ::: %s\n", pub.Q.String())
	fmt.Fprintf(w, "# N ::: %d\n", pub.N)
	fmt.Fprintf(w, "# d ::: %d\n", pub.Dr)
	fmt.Fprintf(w, "# h :::\n")
	fmt.Fprintln(w, coeffLine(pub.H))
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ntru.ErrIO, err)
	}
	return nil
}

// ReadPublic reads a ".pub" file written by WritePublic.
func ReadPublic(filename string) (Public, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Public{}, fmt.Errorf("%w: %v", ntru.ErrIO, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 6 {
		return Public{}, fmt.Errorf("%w: public key file too short", ntru.ErrFramingError)
	}
	pv, err := headerField(lines[0], "p")
	if err != nil {
		return Public{}, err
	}
	qv, err := headerField(lines[1], "q")
	if err != nil {
		return Public{}, err
	}
	nv, err := headerField(lines[2], "N")
	if err != nil {
		return Public{}, err
	}
	dv, err := headerField(lines[3], "d")
	if err != nil {
		return Public{}, err
	}
	if _, err := headerField(lines[4], "h"); err != nil {
		return Public{}, err
	}
	N, err := strconv.Atoi(nv)
	if err != nil {
		return Public{}, fmt.Errorf("%w: malformed N: %v", ntru.ErrFramingError, err)
	}
	dr, err := strconv.Atoi(dv)
	if err != nil {
		return Public{}, fmt.Errorf("%w: malformed d: %v", ntru.ErrFramingError, err)
	}
	p, ok := new(big.Int).SetString(pv, 10)
	if !ok {
		return Public{}, fmt.Errorf("%w: malformed p", ntru.ErrFramingError)
	}
	q, ok := new(big.Int).SetString(qv, 10)
	if !ok {
		return Public{}, fmt.Errorf("%w: malformed q", ntru.ErrFramingError)
	}
	h, err := parseCoeffLine(lines[5], N)
	if err != nil {
		return Public{}, err
	}
	return Public{P: p, Q: q, N: N, Dr: dr, H: h}, nil
}

// WritePrivate writes filename+".priv" in the reference header/body shape.
func WritePrivate(filename string, priv Private) error {
	f, err := os.Create(filename + ".priv")
	if err != nil {
		return fmt.Errorf("%w: %v", ntru.ErrIO, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# p ::: %s\n", priv.P.String())
	fmt.Fprintf(w, "# q ::: %s\n", priv.Q.String())
	fmt.Fprintf(w, "# N ::: %d\n", priv.N)
	fmt.Fprintf(w, "# df ::: %d\n", priv.Df)
	fmt.Fprintf(w, "# dg ::: %d\n", priv.Dg)
	fmt.Fprintf(w, "# d ::: %d\n", priv.Dr)
	fmt.Fprintf(w, "# f/fp/fq/g :::\n")
	fmt.Fprintln(w, coeffLine(priv.F))
	fmt.Fprintln(w, coeffLine(priv.Fp))
	fmt.Fprintln(w, coeffLine(priv.Fq))
	fmt.Fprintln(w, coeffLine(priv.G))
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ntru.ErrIO, err)
	}
	return nil
}

// ReadPrivate reads a ".priv" file written by WritePrivate.
func ReadPrivate(filename string) (Private, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Private{}, fmt.Errorf("%w: %v", ntru.ErrIO, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 11 {
		return Private{}, fmt.Errorf("%w: private key file too short", ntru.ErrFramingError)
	}
	fields := []string{"p", "q", "N", "df", "dg", "d"}
	vals := make([]string, len(fields))
	for i, name := range fields {
		v, err := headerField(lines[i], name)
		if err != nil {
			return Private{}, err
		}
		vals[i] = v
	}
	if _, err := headerField(lines[6], "f/fp/fq/g"); err != nil {
		return Private{}, err
	}
	N, err := strconv.Atoi(vals[2])
	if err != nil {
		return Private{}, fmt.Errorf("%w: malformed N: %v", ntru.ErrFramingError, err)
	}
	df, err := strconv.Atoi(vals[3])
	if err != nil {
		return Private{}, fmt.Errorf("%w: malformed df: %v", ntru.ErrFramingError, err)
	}
	dg, err := strconv.Atoi(vals[4])
	if err != nil {
		return Private{}, fmt.Errorf("%w: malformed dg: %v", ntru.ErrFramingError, err)
	}
	dr, err := strconv.Atoi(vals[5])
	if err != nil {
		return Private{}, fmt.Errorf("%w: malformed d: %v", ntru.ErrFramingError, err)
	}
	p, ok := new(big.Int).SetString(vals[0], 10)
	if !ok {
		return Private{}, fmt.Errorf("%w: malformed p", ntru.ErrFramingError)
	}
	q, ok := new(big.Int).SetString(vals[1], 10)
	if !ok {
		return Private{}, fmt.Errorf("%w: malformed q", ntru.ErrFramingError)
	}
	f, err := parseCoeffLine(lines[7], N)
	if err != nil {
		return Private{}, err
	}
	fp, err := parseCoeffLine(lines[8], N)
	if err != nil {
		return Private{}, err
	}
	fq, err := parseCoeffLine(lines[9], N)
	if err != nil {
		return Private{}, err
	}
	g, err := parseCoeffLine(lines[10], N)
	if err != nil {
		return Private{}, err
	}
	return Private{P: p, Q: q, N: N, Df: df, Dg: dg, Dr: dr, F: f, Fp: fp, Fq: fq, G: g}, nil
}

// Fingerprint returns a short hex digest of a public key's coefficients,
// for display and for sanity-checking that two parties hold the same
// key without transmitting it in full.
func Fingerprint(pub Public) string {
	h := sha3.New256()
	for _, c := range pub.H.Coeffs {
		h.Write([]byte(c.String()))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return fmt.Sprintf("%x", sum[:16])
}
