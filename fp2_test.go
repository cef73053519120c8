package bls12381

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randFe2(t *testing.T, fq2 *fp2) *fe2 {
	t.Helper()
	e, err := fq2.randElement(&fe2{}, rand.Reader)
	require.NoError(t, err)
	return e
}

func TestFp2MulInverse(t *testing.T) {
	fq2 := newFp2(newFp())
	a := randFe2(t, fq2)
	require.False(t, fq2.isZero(a))

	inv := &fe2{}
	fq2.inverse(inv, a)
	prod := &fe2{}
	fq2.mul(prod, a, inv)
	require.True(t, fq2.equal(prod, &fp2One))
}

func TestFp2FrobeniusIsIdentityOnTwoApplications(t *testing.T) {
	fq2 := newFp2(newFp())
	a := randFe2(t, fq2)
	once := &fe2{}
	fq2.frobeniousMap(once, a, 1)
	twice := &fe2{}
	fq2.frobeniousMap(twice, once, 1)
	require.True(t, fq2.equal(twice, a))
}

func TestFp6MulInverse(t *testing.T) {
	fq6 := newFp6(newFp2(newFp()))
	a, err := fq6.randElement(&fe6{}, rand.Reader)
	require.NoError(t, err)
	require.False(t, fq6.isZero(a))

	inv := &fe6{}
	fq6.inverse(inv, a)
	prod := &fe6{}
	fq6.mul(prod, a, inv)
	require.True(t, fq6.equal(prod, &fp6One))
}

func TestFp12MulInverse(t *testing.T) {
	fq12 := newFp12(newFp6(newFp2(newFp())))
	a, err := fq12.randElement(&fe12{}, rand.Reader)
	require.NoError(t, err)
	require.False(t, fq12.isZero(a))

	inv := &fe12{}
	fq12.inverse(inv, a)
	prod := &fe12{}
	fq12.mul(prod, a, inv)
	require.True(t, fq12.equal(prod, &fp12One))
}

