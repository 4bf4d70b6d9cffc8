// SPDX-License-Identifier: MIT

package sequence

// Direction-number seeds for the Sobol sequence, after Joe & Kuo,
// "Constructing Sobol sequences with better two-dimensional projections"
// (SIAM J. Sci. Comput. 30, 2008). Dimension 1 uses the identity matrix
// (van der Corput in base 2) and carries no table row.
//
// Each row holds the degree s of the primitive polynomial over GF(2), the
// encoded inner coefficients a (bits a_1..a_{s-1} of
// x^s + a_1·x^{s-1} + ... + a_{s-1}·x + 1), and the s initial odd values
// m_1..m_s.
type sobolSeed struct {
	s int
	a uint32
	m []uint32
}

// sobolTable[j] seeds dimension j+2.
var sobolTable = []sobolSeed{
	{1, 0, []uint32{1}},                       // dim 2
	{2, 1, []uint32{1, 3}},                    // dim 3
	{3, 1, []uint32{1, 3, 1}},                 // dim 4
	{3, 2, []uint32{1, 1, 1}},                 // dim 5
	{4, 1, []uint32{1, 1, 3, 3}},              // dim 6
	{4, 4, []uint32{1, 3, 5, 13}},             // dim 7
	{5, 2, []uint32{1, 1, 5, 5, 17}},          // dim 8
	{5, 4, []uint32{1, 1, 5, 5, 5}},           // dim 9
	{5, 7, []uint32{1, 1, 7, 11, 19}},         // dim 10
	{5, 11, []uint32{1, 1, 5, 1, 1}},          // dim 11
	{5, 13, []uint32{1, 1, 1, 3, 11}},         // dim 12
	{5, 14, []uint32{1, 3, 5, 5, 31}},         // dim 13
	{6, 1, []uint32{1, 3, 3, 9, 7, 49}},       // dim 14
	{6, 13, []uint32{1, 1, 1, 15, 21, 21}},    // dim 15
	{6, 16, []uint32{1, 3, 1, 13, 27, 49}},    // dim 16
	{6, 19, []uint32{1, 1, 1, 15, 7, 5}},      // dim 17
	{6, 22, []uint32{1, 3, 1, 15, 13, 25}},    // dim 18
	{6, 25, []uint32{1, 1, 5, 5, 19, 61}},     // dim 19
	{7, 1, []uint32{1, 3, 7, 11, 23, 15, 103}}, // dim 20
	{7, 4, []uint32{1, 3, 7, 13, 13, 75, 141}}, // dim 21
}

// MaxDim is the largest dimension the embedded direction-number table
// supports. Requests beyond it fail with ErrDimensionUnsupported.
const MaxDim = 21

// sobolBits is the bit depth of the direction numbers; points are dyadic
// rationals with denominator 2^sobolBits.
const sobolBits = 32

// directions expands the table into the full 32-level direction-number
// matrix for the first dim coordinates. dirs[d][k] is v_{k+1} for
// coordinate d, stored left-aligned in a uint32.
func directions(dim int) [][]uint32 {
	dirs := make([][]uint32, dim)

	// Coordinate 0: v_k = 2^(32-k), the base-2 radical inverse.
	first := make([]uint32, sobolBits)
	for k := 0; k < sobolBits; k++ {
		first[k] = 1 << (sobolBits - 1 - k)
	}
	dirs[0] = first

	for d := 1; d < dim; d++ {
		seed := sobolTable[d-1]
		v := make([]uint32, sobolBits)
		for k := 0; k < seed.s; k++ {
			v[k] = seed.m[k] << (sobolBits - 1 - k)
		}
		for k := seed.s; k < sobolBits; k++ {
			// v_k = v_{k-s} ^ (v_{k-s} >> s) ^ XOR_{j=1..s-1} a_j·v_{k-j}
			vk := v[k-seed.s] ^ (v[k-seed.s] >> uint(seed.s))
			for j := 1; j < seed.s; j++ {
				if (seed.a>>uint(seed.s-1-j))&1 == 1 {
					vk ^= v[k-j]
				}
			}
			v[k] = vk
		}
		dirs[d] = v
	}
	return dirs
}
