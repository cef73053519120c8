package bls12381

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrReducesModQ(t *testing.T) {
	over := new(big.Int).Add(q, big.NewInt(5))
	fr := NewFr(over)
	require.Equal(t, 0, fr.Big().Cmp(big.NewInt(5)))
}

func TestFrAddSubInverse(t *testing.T) {
	a, err := RandFr(rand.Reader)
	require.NoError(t, err)
	b, err := RandFr(rand.Reader)
	require.NoError(t, err)

	sum := new(Fr).Add(a, b)
	diff := new(Fr).Sub(sum, b)
	require.True(t, diff.Equal(a))

	if !a.IsZero() {
		inv := new(Fr).Inverse(a)
		one := new(Fr).Mul(a, inv)
		require.Equal(t, 0, one.Big().Cmp(big.NewInt(1)))
	}
}

func TestFrBytesRoundTrip(t *testing.T) {
	a, err := RandFr(rand.Reader)
	require.NoError(t, err)
	b := FrFromBytes(a.Bytes())
	require.True(t, a.Equal(b))
}
