// Package ntru implements the NTRU lattice-based public-key cryptosystem:
// key generation, encryption and decryption over the truncated polynomial
// ring R = Z[x]/(x^N - 1).
//
// The package targets the original Hoffstein-Pipher-Silverman NTRU
// construction (NTRU-HPS era parameter shapes), not the newer HRSS/HPS
// standardized variants. It is not constant-time and performs no padding;
// callers that need those properties must add them at a layer above this
// package.
package ntru
