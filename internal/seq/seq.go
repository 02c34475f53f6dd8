// Package seq provides elementary nucleotide sequence statistics and
// transforms. All functions are pure: no shared state, no side effects.
package seq

import "errors"

// ErrEmptySequence is returned when an operation requires at least one base.
var ErrEmptySequence = errors.New("sequence cannot be empty")

// complement maps a base to its Watson-Crick partner, preserving case.
// Bytes outside the canonical alphabet map to themselves.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	for from, to := range map[byte]byte{
		'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
		'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
	} {
		complement[from] = to
	}
}

// GCContent returns the percentage of G and C bases in the sequence,
// case-insensitive, in the closed interval [0, 100]. Characters outside
// the canonical alphabet count toward the length but never toward the
// GC tally. An empty sequence is an error.
func GCContent(sequence string) (float64, error) {
	if sequence == "" {
		return 0, ErrEmptySequence
	}
	gc := 0
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(sequence)) * 100, nil
}

// ReverseComplement returns the reverse complement of the sequence:
// the input reversed, with each base substituted via the fixed pairing
// A-T, G-C in both cases. Unmapped characters pass through unchanged in
// their reversed position. The operation is its own inverse.
func ReverseComplement(sequence string) string {
	n := len(sequence)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[sequence[n-1-i]]
	}
	return string(out)
}

// Counts holds per-base tallies for one sequence. Bases are counted
// case-insensitively; anything outside the canonical alphabet lands in
// Other.
type Counts struct {
	A     int `json:"a"`
	C     int `json:"c"`
	G     int `json:"g"`
	T     int `json:"t"`
	Other int `json:"other,omitempty"`
}

// Total returns the sequence length the counts were taken over.
func (c Counts) Total() int {
	return c.A + c.C + c.G + c.T + c.Other
}

// CountBases tallies the bases of the sequence.
func CountBases(sequence string) Counts {
	var c Counts
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A', 'a':
			c.A++
		case 'C', 'c':
			c.C++
		case 'G', 'g':
			c.G++
		case 'T', 't':
			c.T++
		default:
			c.Other++
		}
	}
	return c
}
