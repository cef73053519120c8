package bls12381

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG1OnCurveAndSubgroup(t *testing.T) {
	g1 := NewG1(newFp())
	one := g1.One()
	require.True(t, g1.IsOnCurve(one))
	require.True(t, g1.InCorrectSubgroup(one))
	require.True(t, g1.InCorrectSubgroupSlow(one))
	require.True(t, g1.IsZero(g1.Zero()))
}

func TestG1AddDoubleConsistency(t *testing.T) {
	g1 := NewG1(newFp())
	one := g1.One()

	doubled := &PointG1{}
	g1.Double(doubled, one)

	added := &PointG1{}
	g1.Add(added, one, one)

	require.True(t, g1.Equal(doubled, added))
}

func TestG1ScalarMulMatchesRepeatedAdd(t *testing.T) {
	g1 := NewG1(newFp())
	one := g1.One()

	viaScalar := &PointG1{}
	g1.MulScalar(viaScalar, one, big.NewInt(5))

	acc := g1.Zero()
	for i := 0; i < 5; i++ {
		next := &PointG1{}
		g1.Add(next, acc, one)
		acc = next
	}
	require.True(t, g1.Equal(viaScalar, acc))
}

func TestG1MulAndMulSecAgree(t *testing.T) {
	g1 := NewG1(newFp())
	one := g1.One()
	e := big.NewInt(123456789)

	a := &PointG1{}
	g1.Mul(a, one, e)
	b := &PointG1{}
	g1.MulSec(b, one, e)
	require.True(t, g1.Equal(a, b))
}

func TestG1CompressedRoundTrip(t *testing.T) {
	g1 := NewG1(newFp())
	one := g1.One()
	compressed := g1.ToCompressed(one)
	back, err := g1.FromCompressed(compressed)
	require.NoError(t, err)
	require.True(t, g1.Equal(one, back))
}

func TestG1UncompressedRoundTrip(t *testing.T) {
	g1 := NewG1(newFp())
	p := &PointG1{}
	g1.MulScalar(p, g1.One(), big.NewInt(42))
	raw := g1.ToUncompressed(p)
	back, err := g1.FromUncompressed(raw)
	require.NoError(t, err)
	require.True(t, g1.Equal(p, back))
}

func TestG1HashToCurveLandsInSubgroup(t *testing.T) {
	g1 := NewG1(newFp())
	p, err := g1.HashToCurve([]byte("hello world"), []byte(dstG1XMDSHA256))
	require.NoError(t, err)
	require.True(t, g1.IsOnCurve(p))
	require.True(t, g1.InCorrectSubgroup(p))
}

func TestG1HashToCurveDeterministic(t *testing.T) {
	g1 := NewG1(newFp())
	msg := []byte("abc")
	dst := []byte(dstG1XMDSHA256)
	p1, err := g1.HashToCurve(msg, dst)
	require.NoError(t, err)
	p2, err := g1.HashToCurve(msg, dst)
	require.NoError(t, err)
	require.True(t, g1.Equal(p1, p2))
}

func TestG1ClearCofactorLandsInSubgroup(t *testing.T) {
	g1 := NewG1(newFp())
	one := g1.One()
	cleared := g1.ClearCofactor(g1.Copy(&PointG1{}, one))
	require.True(t, g1.IsOnCurve(cleared))
	require.True(t, g1.InCorrectSubgroup(cleared))
}
