package bls12381

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairingNondegenerate(t *testing.T) {
	fp12 := newFp12(newFp6(newFp2(newFp())))
	g1 := NewG1(newFp())
	g2 := NewG2(newFp2(newFp()))

	f := Pairing(g1.One(), g2.One())
	require.False(t, fp12.isZero(f))
	require.False(t, fp12.equal(f, &fp12One))
}

func TestPairingBilinearInFirstArgument(t *testing.T) {
	fp12 := newFp12(newFp6(newFp2(newFp())))
	g1 := NewG1(newFp())
	g2 := NewG2(newFp2(newFp()))

	a, b := big.NewInt(7), big.NewInt(11)
	pa := &PointG1{}
	g1.MulScalar(pa, g1.One(), a)
	pab := &PointG1{}
	g1.MulScalar(pab, pa, b)

	lhs := Pairing(pab, g2.One())
	ab := new(big.Int).Mul(a, b)

	// e(ab*P, Q) == e(P, Q)^(ab)
	base := Pairing(g1.One(), g2.One())
	expected := &fe12{}
	fp12.exp(expected, base, ab)
	require.True(t, fp12.equal(lhs, expected))
}

func TestPairingBilinearInSecondArgument(t *testing.T) {
	fp12 := newFp12(newFp6(newFp2(newFp())))
	g1 := NewG1(newFp())
	g2 := NewG2(newFp2(newFp()))

	e := big.NewInt(17)
	qe := &PointG2{}
	g2.MulScalar(qe, g2.One(), e)

	lhs := Pairing(g1.One(), qe)
	base := Pairing(g1.One(), g2.One())
	expected := &fe12{}
	fp12.exp(expected, base, e)
	require.True(t, fp12.equal(lhs, expected))
}

func TestPairingProductMatchesIndividualProduct(t *testing.T) {
	fp12 := newFp12(newFp6(newFp2(newFp())))
	g1 := NewG1(newFp())
	g2 := NewG2(newFp2(newFp()))

	p1 := &PointG1{}
	g1.MulScalar(p1, g1.One(), big.NewInt(3))
	p2 := &PointG1{}
	g1.MulScalar(p2, g1.One(), big.NewInt(5))

	q1 := &PointG2{}
	g2.MulScalar(q1, g2.One(), big.NewInt(9))
	q2 := &PointG2{}
	g2.MulScalar(q2, g2.One(), big.NewInt(13))

	product := PairingProduct([]PointG1{*p1, *p2}, []PointG2{*q1, *q2})

	e1 := Pairing(p1, q1)
	e2 := Pairing(p2, q2)
	expected := &fe12{}
	fp12.mul(expected, e1, e2)

	require.True(t, fp12.equal(product, expected))
}

func TestPairingCancellation(t *testing.T) {
	g1 := NewG1(newFp())
	g2 := NewG2(newFp2(newFp()))

	negOne := &PointG1{}
	g1.Neg(negOne, g1.One())

	ok := NewEngine().PairingCheck([]PointG1{*g1.One(), *negOne}, []PointG2{*g2.One(), *g2.One()})
	require.True(t, ok)
}
