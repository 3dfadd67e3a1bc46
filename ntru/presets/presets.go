// Package presets exposes the three named NTRU parameter sets the CLI
// and benchmark collaborator accept by name, matching the reference
// implementation's PARAM_SETS table.
package presets

// Preset is one named (N, p, q, df, dg, dr) tuple.
type Preset struct {
	Name       string
	N          int
	P, Q       int64
	Df, Dg, Dr int
}

// Moderate is the fastest, least secure preset.
func Moderate() Preset { return Preset{"moderate", 107, 3, 64, 15, 12, 5} }

// High is the mid-range preset.
func High() Preset { return Preset{"high", 167, 3, 128, 61, 20, 18} }

// Highest is the slowest, most secure preset.
func Highest() Preset { return Preset{"highest", 503, 3, 256, 216, 72, 55} }

// All returns the three presets, in ascending order of security.
func All() []Preset { return []Preset{Moderate(), High(), Highest()} }

// ByName looks up a preset by its name ("moderate", "high", "highest").
func ByName(name string) (Preset, bool) {
	for _, p := range All() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
