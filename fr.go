package bls12381

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Fr is an element of the scalar field of G1/G2, of prime order q (the
// curve's subgroup order). It wraps a reduced big.Int the same way the
// rest of this package threads scalars through MulScalar/Mul/MulSec as
// *big.Int, giving callers a named type with bounds-checked construction
// and fixed-width encoding instead of a bare big.Int.
type Fr struct {
	v big.Int
}

// NewFr reduces n modulo the group order and returns the resulting scalar.
func NewFr(n *big.Int) *Fr {
	r := &Fr{}
	r.v.Mod(n, q)
	return r
}

// FrFromBytes interprets b as a big-endian integer and reduces it mod q.
func FrFromBytes(b []byte) *Fr {
	return NewFr(new(big.Int).SetBytes(b))
}

// RandFr draws a uniformly random scalar in [0, q) from r.
func RandFr(r io.Reader) (*Fr, error) {
	n, err := rand.Int(r, q)
	if err != nil {
		return nil, err
	}
	return &Fr{v: *n}, nil
}

func (z *Fr) Big() *big.Int {
	return new(big.Int).Set(&z.v)
}

// Bytes returns the big-endian, 32-byte fixed-width encoding of z.
func (z *Fr) Bytes() []byte {
	out := make([]byte, 32)
	b := z.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

func (z *Fr) String() string {
	return fmt.Sprintf("0x%064x", &z.v)
}

func (z *Fr) IsZero() bool {
	return z.v.Sign() == 0
}

func (z *Fr) Equal(o *Fr) bool {
	return z.v.Cmp(&o.v) == 0
}

func (z *Fr) Add(a, b *Fr) *Fr {
	z.v.Add(&a.v, &b.v)
	z.v.Mod(&z.v, q)
	return z
}

func (z *Fr) Sub(a, b *Fr) *Fr {
	z.v.Sub(&a.v, &b.v)
	z.v.Mod(&z.v, q)
	return z
}

func (z *Fr) Neg(a *Fr) *Fr {
	z.v.Neg(&a.v)
	z.v.Mod(&z.v, q)
	return z
}

func (z *Fr) Mul(a, b *Fr) *Fr {
	z.v.Mul(&a.v, &b.v)
	z.v.Mod(&z.v, q)
	return z
}

// Inverse sets z to the multiplicative inverse of a mod q, via Fermat's
// little theorem (q is prime), and returns z. a must be nonzero.
func (z *Fr) Inverse(a *Fr) *Fr {
	e := new(big.Int).Sub(q, big.NewInt(2))
	z.v.Exp(&a.v, e, q)
	return z
}
