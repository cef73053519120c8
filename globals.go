package bls12381

// Package-level field and group instances shared by the hash-to-curve,
// isogeny, cofactor-clearing and subgroup-check helpers, which operate
// outside of any particular caller's G1/G2 instance.
var (
	g1Field  = newFp()
	g2Field  = newFp2(g1Field)
	g1Group  = NewG1(g1Field)
	g2Group  = NewG2(g2Field)
)
