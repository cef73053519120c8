package bls12381

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandMessageXMDLength(t *testing.T) {
	dst := []byte(dstG1XMDSHA256)
	out, err := expandMessageXMD([]byte("abc"), dst, 48)
	require.NoError(t, err)
	require.Len(t, out, 48)
}

func TestExpandMessageXMDDeterministic(t *testing.T) {
	dst := []byte(dstG1XMDSHA256)
	a, err := expandMessageXMD([]byte("abc"), dst, 96)
	require.NoError(t, err)
	b, err := expandMessageXMD([]byte("abc"), dst, 96)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestExpandMessageXMDDiffersByMessage(t *testing.T) {
	dst := []byte(dstG1XMDSHA256)
	a, err := expandMessageXMD([]byte("abc"), dst, 48)
	require.NoError(t, err)
	b, err := expandMessageXMD([]byte("abcd"), dst, 48)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestExpandMessageXOFLength(t *testing.T) {
	dst := []byte(dstG1XOFShake128)
	out, err := expandMessageXOF([]byte("abc"), dst, 48)
	require.NoError(t, err)
	require.Len(t, out, 48)
}

func TestExpandMessageXOFDeterministic(t *testing.T) {
	dst := []byte(dstG1XOFShake128)
	a, err := expandMessageXOF([]byte("abc"), dst, 96)
	require.NoError(t, err)
	b, err := expandMessageXOF([]byte("abc"), dst, 96)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestExpandMessageRejectsOversizedDST(t *testing.T) {
	longDST := make([]byte, maxDSTLength+1)
	_, err := expandMessageXMD([]byte("abc"), longDST, 48)
	require.Error(t, err)
}

func TestHashToFieldFqCount(t *testing.T) {
	dst := []byte(dstG1XMDSHA256)
	elems, err := hashToFieldFq([]byte("abc"), dst, 2)
	require.NoError(t, err)
	require.Len(t, elems, 2)
	require.NotEqual(t, elems[0], elems[1])
}

func TestHashToFieldFq2Count(t *testing.T) {
	dst := []byte(dstG2XMDSHA256)
	elems, err := hashToFieldFq2([]byte("abc"), dst, 2)
	require.NoError(t, err)
	require.Len(t, elems, 2)
}
