package bls12381

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG1SubgroupCheckAgreesWithSlowPath(t *testing.T) {
	g1 := NewG1(newFp())
	one := g1.One()
	for _, k := range []int64{1, 2, 3, 1000, 123456789} {
		p := &PointG1{}
		g1.MulScalar(p, one, big.NewInt(k))
		require.Equal(t, g1.InCorrectSubgroupSlow(p), g1.InCorrectSubgroup(p))
		require.True(t, g1.InCorrectSubgroup(p))
	}
}

func TestG1SubgroupCheckRejectsCofactorPoint(t *testing.T) {
	g1 := NewG1(newFp())
	// a point on the curve but outside the order-q subgroup: map an
	// arbitrary field element to the curve without clearing the cofactor.
	u := montFromBig(big.NewInt(7))
	p := g1.MapToCurve(u)
	require.True(t, g1.IsOnCurve(p))
	if g1.InCorrectSubgroupSlow(p) {
		t.Skip("sampled point happened to land in the subgroup")
	}
	require.False(t, g1.InCorrectSubgroup(p))
}

func TestG2SubgroupCheckAgreesWithSlowPath(t *testing.T) {
	g2 := NewG2(newFp2(newFp()))
	one := g2.One()
	for _, k := range []int64{1, 2, 3, 1000, 123456789} {
		p := &PointG2{}
		g2.MulScalar(p, one, big.NewInt(k))
		require.Equal(t, g2.InCorrectSubgroupSlow(p), g2.InCorrectSubgroup(p))
		require.True(t, g2.InCorrectSubgroup(p))
	}
}

func TestWNAFRoundTrip(t *testing.T) {
	e := big.NewInt(987654321)
	digits := wnaf(e, 5)

	got := big.NewInt(0)
	pow := big.NewInt(1)
	for _, d := range digits {
		if d != 0 {
			term := new(big.Int).Mul(big.NewInt(int64(d)), pow)
			got.Add(got, term)
		}
		pow.Lsh(pow, 1)
	}
	require.Equal(t, 0, got.Cmp(e))
}
