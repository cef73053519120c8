package bls12381

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func randFe(t *testing.T, fq *fp) *fe {
	t.Helper()
	e, err := fq.randElement(&fe{}, rand.Reader)
	require.NoError(t, err)
	return e
}

func TestFpAddSubNeg(t *testing.T) {
	fq := newFp()
	a := randFe(t, fq)
	b := randFe(t, fq)

	sum, diff := &fe{}, &fe{}
	fq.add(sum, a, b)
	fq.sub(diff, sum, b)
	require.True(t, fq.equal(diff, a))

	negA := &fe{}
	fq.neg(negA, a)
	zero := &fe{}
	fq.add(zero, a, negA)
	require.True(t, fq.isZero(zero))
}

func TestFpMulInverse(t *testing.T) {
	fq := newFp()
	a := randFe(t, fq)
	require.False(t, fq.isZero(a))

	inv := &fe{}
	fq.inverse(inv, a)
	prod := &fe{}
	fq.mul(prod, a, inv)
	require.True(t, fq.equal(prod, &fpOne))
}

func TestFpMontRoundTrip(t *testing.T) {
	fq := newFp()
	n := new(big.Int).SetUint64(123456789)
	e := montFromBig(n)
	demont := &fe{}
	fq.demont(demont, e)
	require.Equal(t, 0, demont.Big().Cmp(n))
}

func TestFpSquareMatchesMul(t *testing.T) {
	fq := newFp()
	a := randFe(t, fq)

	viaMul := &fe{}
	fq.mul(viaMul, a, a)
	viaSquare := &fe{}
	fq.square(viaSquare, a)
	require.True(t, fq.equal(viaMul, viaSquare))
}
