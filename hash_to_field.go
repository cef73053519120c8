package bls12381

import (
	"bytes"
	"math/big"
)

// L is ceil((ceil(log2(p)) + k) / 8) for BLS12-381's base field with a
// k=128-bit security margin: ceil((381+128)/8) = 64 bytes per element.
const hashToFieldL = 64

// hashToField implements hash_to_field for Fq with count elements, RFC
// 9380 section 5.2. It is shared by both the G1 (count output fe's) and
// G2 (count output fe2's, each built from 2 Fq elements) pipelines via the
// count parameter below being doubled by the caller for G2. A dst naming an
// XOF suite (containing "_XOF:") selects expand_message_xof; any other dst
// selects expand_message_xmd.
func hashToFieldFq(msg, dst []byte, count int) ([]*fe, error) {
	lenInBytes := count * hashToFieldL
	expand := expandMessageXMD
	if bytes.Contains(dst, []byte("_XOF:")) {
		expand = expandMessageXOF
	}
	uniform, err := expand(msg, dst, lenInBytes)
	if err != nil {
		return nil, err
	}
	out := make([]*fe, count)
	for i := 0; i < count; i++ {
		chunk := uniform[i*hashToFieldL : (i+1)*hashToFieldL]
		n := new(big.Int).SetBytes(chunk)
		n.Mod(n, modulus.Big())
		out[i] = montFromBig(n)
	}
	return out, nil
}

// hashToField returns `count` Fq elements hashed from msg under dst; used
// by the G1 pipeline directly.
func hashToField(msg, dst []byte, count int) ([]*fe, error) {
	return hashToFieldFq(msg, dst, count)
}

// hashToFieldFq2 returns `count` Fq2 elements, each built from two
// consecutive Fq hash outputs (c0 then c1), used by the G2 pipeline.
func hashToFieldFq2(msg, dst []byte, count int) ([]*fe2, error) {
	base, err := hashToFieldFq(msg, dst, count*2)
	if err != nil {
		return nil, err
	}
	out := make([]*fe2, count)
	for i := 0; i < count; i++ {
		out[i] = &fe2{*base[2*i], *base[2*i+1]}
	}
	return out, nil
}
