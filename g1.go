package bls12381

import (
	"fmt"
	"math/big"
)

type PointG1 [3]fe

func (p *PointG1) Set(p2 *PointG1) *PointG1 {
	p[0].Set(&p2[0])
	p[1].Set(&p2[1])
	p[2].Set(&p2[2])
	return p
}

type G1 struct {
	f *fp
	t [9]*fe
}

func NewG1(f *fp) *G1 {
	if f == nil {
		f = newFp()
	}
	t := [9]*fe{}
	for i := 0; i < 9; i++ {
		t[i] = f.zero()
	}
	return &G1{
		f: f,
		t: t,
	}
}

func (g *G1) FromUncompressed(uncompressed []byte) (*PointG1, error) {
	if len(uncompressed) < 96 {
		return nil, fmt.Errorf("input string should be equal or larger than 96")
	}
	var in [96]byte
	copy(in[:], uncompressed[:96])
	if in[0]&(1<<7) != 0 {
		return nil, fmt.Errorf("compression flag should be zero")
	}
	if in[0]&(1<<5) != 0 {
		return nil, fmt.Errorf("sort flag should be zero")
	}
	if in[0]&(1<<6) != 0 {
		for i, v := range in {
			if (i == 0 && v != 0x40) || (i != 0 && v != 0x00) {
				return nil, fmt.Errorf("input string should be zero when infinity flag is set")
			}
		}
		return g.Zero(), nil
	}
	in[0] &= 0x1f
	x, y := &fe{}, &fe{}
	if err := g.f.newElementFromBytes(x, in[:48]); err != nil {
		return nil, err
	}
	if err := g.f.newElementFromBytes(y, in[48:]); err != nil {
		return nil, err
	}
	p := &PointG1{}
	g.f.copy(&p[0], x)
	g.f.copy(&p[1], y)
	g.f.copy(&p[2], &fpOne)
	if !g.IsOnCurve(p) {
		return nil, errNotOnCurve
	}
	if !g.InCorrectSubgroup(p) {
		return nil, errNotInSubgroup
	}
	return p, nil
}

func (g *G1) ToUncompressed(p *PointG1) []byte {
	out := make([]byte, 96)
	g.Affine(p)
	if g.IsZero(p) {
		out[0] |= 1 << 6
	}
	copy(out[:48], g.f.toBytes(&p[0]))
	copy(out[48:], g.f.toBytes(&p[1]))
	return out
}

func (g *G1) FromCompressed(compressed []byte) (*PointG1, error) {
	if len(compressed) < 48 {
		return nil, fmt.Errorf("input string should be equal or larger than 48")
	}
	var in [48]byte
	copy(in[:], compressed[:])
	if in[0]&(1<<7) == 0 {
		return nil, fmt.Errorf("compression flag should be set")
	}
	if in[0]&(1<<6) != 0 {
		for i, v := range in {
			if (i == 0 && v != 0xc0) || (i != 0 && v != 0x00) {
				return nil, fmt.Errorf("input string should be zero when infinity flag is set")
			}
		}
		return g.Zero(), nil
	}
	a := in[0]&(1<<5) != 0
	in[0] &= 0x1f
	x := &fe{}
	if err := g.f.newElementFromBytes(x, in[:]); err != nil {
		return nil, err
	}
	y := &fe{}
	g.f.square(y, x)
	g.f.mul(y, y, x)
	g.f.add(y, y, b)
	if ok := g.f.sqrt(y, y); !ok {
		return nil, errNotOnCurve
	}
	negY, negYn, yn := &fe{}, &fe{}, &fe{}
	g.f.demont(yn, y)
	g.f.neg(negY, y)
	g.f.neg(negYn, yn)
	if yn.Cmp(negYn) > -1 != a {
		g.f.copy(y, negY)
	}
	p := &PointG1{}
	g.f.copy(&p[0], x)
	g.f.copy(&p[1], y)
	g.f.copy(&p[2], &fpOne)
	if !g.InCorrectSubgroup(p) {
		return nil, errNotInSubgroup
	}
	return p, nil
}

func (g *G1) ToCompressed(p *PointG1) []byte {
	out := make([]byte, 48)
	g.Affine(p)
	if g.IsZero(p) {
		out[0] |= 1 << 6
	} else {
		copy(out[:], g.f.toBytes(&p[0]))
		y, negY := &fe{}, &fe{}
		g.f.copy(y, &p[1])
		g.f.demont(y, y)
		g.f.neg(negY, y)
		if y.Cmp(negY) > 0 {
			out[0] |= 1 << 5
		}
	}
	out[0] |= 1 << 7
	return out
}

func (g *G1) fromRawUnchecked(in []byte) *PointG1 {
	p := &PointG1{}
	if err := g.f.newElementFromBytes(&p[0], in[:48]); err != nil {
		panic(err)
	}
	if err := g.f.newElementFromBytes(&p[1], in[48:]); err != nil {
		panic(err)
	}
	g.f.copy(&p[2], &fpOne)
	return p
}

// InCorrectSubgroupSlow checks membership by a full-order scalar multiply;
// kept as a cross-check against InCorrectSubgroup's endomorphism method.
func (g *G1) InCorrectSubgroupSlow(p *PointG1) bool {
	DefaultLogger().Debugw("g1 subgroup check via full-order scalar multiply")
	tmp := &PointG1{}
	g.MulScalar(tmp, p, q)
	return g.IsZero(tmp)
}

// InCorrectSubgroup reports whether p is in the order-q subgroup of E(Fq),
// using the sigma endomorphism rather than a full scalar multiplication.
func (g *G1) InCorrectSubgroup(p *PointG1) bool {
	return g1SubgroupCheck(g, p)
}

func (g *G1) Zero() *PointG1 {
	return &PointG1{
		*g.f.zero(),
		*g.f.one(),
		*g.f.zero(),
	}
}

func (g *G1) NegativeOne() *PointG1 {
	return &PointG1{g1NegativeOne.x, g1NegativeOne.y, *g.f.one()}
}

func (g *G1) One() *PointG1 {
	return &PointG1{g1One.x, g1One.y, *g.f.one()}
}

func (g *G1) Copy(dst *PointG1, src *PointG1) *PointG1 {
	return dst.Set(src)
}

func (g *G1) IsZero(p *PointG1) bool {
	return g.f.isZero(&p[2])
}

func (g *G1) Equal(p1, p2 *PointG1) bool {
	if g.IsZero(p1) {
		return g.IsZero(p2)
	}
	if g.IsZero(p2) {
		return g.IsZero(p1)
	}
	t := g.t
	g.f.square(t[0], &p1[2])
	g.f.square(t[1], &p2[2])
	g.f.mul(t[2], t[0], &p2[0])
	g.f.mul(t[3], t[1], &p1[0])
	g.f.mul(t[0], t[0], &p1[2])
	g.f.mul(t[1], t[1], &p2[2])
	g.f.mul(t[1], t[1], &p1[1])
	g.f.mul(t[0], t[0], &p2[1])
	return g.f.equal(t[0], t[1]) && g.f.equal(t[2], t[3])
}

func (g *G1) IsOnCurve(p *PointG1) bool {
	if g.IsZero(p) {
		return true
	}
	t := g.t
	g.f.square(t[0], &p[1])
	g.f.square(t[1], &p[0])
	g.f.mul(t[1], t[1], &p[0])
	g.f.square(t[2], &p[2])
	g.f.square(t[3], t[2])
	g.f.mul(t[2], t[2], t[3])
	g.f.mul(t[2], b, t[2])
	g.f.add(t[1], t[1], t[2])
	return g.f.equal(t[0], t[1])
}

func (g *G1) IsAffine(p *PointG1) bool {
	return g.f.equal(&p[2], &fpOne)
}

func (g *G1) Affine(p *PointG1) {
	if g.IsZero(p) {
		return
	}
	if !g.IsAffine(p) {
		t := g.t
		g.f.inverse(t[0], &p[2])
		g.f.square(t[1], t[0])
		g.f.mul(&p[0], &p[0], t[1])
		g.f.mul(t[0], t[0], t[1])
		g.f.mul(&p[1], &p[1], t[0])
		g.f.copy(&p[2], g.f.one())
	}
}

func (g *G1) Add(r, p1, p2 *PointG1) *PointG1 {
	if g.IsZero(p1) {
		g.Copy(r, p2)
		return r
	}
	if g.IsZero(p2) {
		g.Copy(r, p1)
		return r
	}
	t := g.t
	g.f.square(t[7], &p1[2])
	g.f.mul(t[1], &p2[0], t[7])
	g.f.mul(t[2], &p1[2], t[7])
	g.f.mul(t[0], &p2[1], t[2])
	g.f.square(t[8], &p2[2])
	g.f.mul(t[3], &p1[0], t[8])
	g.f.mul(t[4], &p2[2], t[8])
	g.f.mul(t[2], &p1[1], t[4])
	if g.f.equal(t[1], t[3]) {
		if g.f.equal(t[0], t[2]) {
			return g.Double(r, p1)
		}
		return g.Copy(r, infinity)
	}
	g.f.sub(t[1], t[1], t[3])
	g.f.double(t[4], t[1])
	g.f.square(t[4], t[4])
	g.f.mul(t[5], t[1], t[4])
	g.f.sub(t[0], t[0], t[2])
	g.f.double(t[0], t[0])
	g.f.square(t[6], t[0])
	g.f.sub(t[6], t[6], t[5])
	g.f.mul(t[3], t[3], t[4])
	g.f.double(t[4], t[3])
	g.f.sub(&r[0], t[6], t[4])
	g.f.sub(t[4], t[3], &r[0])
	g.f.mul(t[6], t[2], t[5])
	g.f.double(t[6], t[6])
	g.f.mul(t[0], t[0], t[4])
	g.f.sub(&r[1], t[0], t[6])
	g.f.add(t[0], &p1[2], &p2[2])
	g.f.square(t[0], t[0])
	g.f.sub(t[0], t[0], t[7])
	g.f.sub(t[0], t[0], t[8])
	g.f.mul(&r[2], t[0], t[1])
	return r
}

func (g *G1) Double(r, p *PointG1) *PointG1 {
	if g.IsZero(p) {
		g.Copy(r, p)
		return r
	}
	t := g.t
	g.f.square(t[0], &p[0])
	g.f.square(t[1], &p[1])
	g.f.square(t[2], t[1])
	g.f.add(t[1], &p[0], t[1])
	g.f.square(t[1], t[1])
	g.f.sub(t[1], t[1], t[0])
	g.f.sub(t[1], t[1], t[2])
	g.f.double(t[1], t[1])
	g.f.double(t[3], t[0])
	g.f.add(t[0], t[3], t[0])
	g.f.square(t[4], t[0])
	g.f.double(t[3], t[1])
	g.f.sub(&r[0], t[4], t[3])
	g.f.sub(t[1], t[1], &r[0])
	g.f.double(t[2], t[2])
	g.f.double(t[2], t[2])
	g.f.double(t[2], t[2])
	g.f.mul(t[0], t[0], t[1])
	g.f.sub(t[1], t[0], t[2])
	g.f.mul(t[0], &p[1], &p[2])
	g.f.copy(&r[1], t[1])
	g.f.double(&r[2], t[0])
	return r
}

func (g *G1) Neg(r, p *PointG1) *PointG1 {
	g.f.copy(&r[0], &p[0])
	g.f.neg(&r[1], &p[1])
	g.f.copy(&r[2], &p[2])
	return r
}

func (g *G1) Sub(c, a, b *PointG1) *PointG1 {
	d := &PointG1{}
	g.Neg(d, b)
	g.Add(c, a, d)
	return c
}

// negates second operand
func (g *G1) SubUnsafe(c, a, b *PointG1) *PointG1 {
	g.Neg(b, b)
	g.Add(c, a, b)
	return c
}

// MulScalar is a plain double-and-add scalar multiplication; Mul and MulSec
// below are the variable-time wNAF and constant-time-leaning ladder variants
// used by the rest of the package.
func (g *G1) MulScalar(c, p *PointG1, e *big.Int) *PointG1 {
	q, n := &PointG1{}, &PointG1{}
	g.Copy(n, p)
	l := e.BitLen()
	for i := 0; i < l; i++ {
		if e.Bit(i) == 1 {
			g.Add(q, q, n)
		}
		g.Double(n, n)
	}
	return g.Copy(c, q)
}

// Mul multiplies p by e using a width-5 wNAF chain. It runs in variable
// time and is meant for public-input scalar multiplications.
func (g *G1) Mul(c, p *PointG1, e *big.Int) *PointG1 {
	naf := wnaf(e, 5)
	precomp := make([]*PointG1, 0, 8)
	double := &PointG1{}
	g.Double(double, p)
	cur := &PointG1{}
	g.Copy(cur, p)
	precomp = append(precomp, g.Copy(&PointG1{}, cur))
	for i := 1; i < 8; i++ {
		next := &PointG1{}
		g.Add(next, cur, double)
		precomp = append(precomp, next)
		cur = next
	}
	acc := g.Zero()
	for i := len(naf) - 1; i >= 0; i-- {
		g.Double(acc, acc)
		d := naf[i]
		if d > 0 {
			g.Add(acc, acc, precomp[d/2])
		} else if d < 0 {
			neg := &PointG1{}
			g.Neg(neg, precomp[(-d)/2])
			g.Add(acc, acc, neg)
		}
	}
	return g.Copy(c, acc)
}

// MulSec multiplies p by e using a fixed-pattern Montgomery ladder: every
// scalar bit performs the same add-then-double sequence, which avoids
// branching on secret scalar bits.
func (g *G1) MulSec(c, p *PointG1, e *big.Int) *PointG1 {
	r0 := g.Zero()
	r1 := &PointG1{}
	g.Copy(r1, p)
	bitLen := q.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		if e.Bit(i) == 1 {
			g.Add(r0, r0, r1)
			g.Double(r1, r1)
		} else {
			g.Add(r1, r1, r0)
			g.Double(r0, r0)
		}
	}
	return g.Copy(c, r0)
}

func (g *G1) MulByCofactor(c, p *PointG1) {
	g.MulScalar(c, p, cofactorG1)
}

// ClearCofactor multiplies p by the G1 cofactor h_eff = (x-1)^2/3, mapping
// an arbitrary curve point into the prime-order subgroup.
func (g *G1) ClearCofactor(p *PointG1) *PointG1 {
	g.MulScalar(p, p, cofactorG1)
	return p
}

// MapToCurve implements the simplified SWU map for G1 followed by the
// 11-isogeny to the BLS12-381 G1 curve, per RFC 9380 section 6.6.1/8.7.1.
func (g *G1) MapToCurve(u *fe) *PointG1 {
	x, y := swuMapG1(u)
	ix, iy := isogenyMapG1(x, y)
	p := &PointG1{*ix, *iy, fpOne}
	return p
}

// EncodeToCurve implements the encode_to_curve_g1 suite: a single field
// element is hashed and mapped, then the cofactor is cleared.
func (g *G1) EncodeToCurve(msg, dst []byte) (*PointG1, error) {
	u, err := hashToField(msg, dst, 1)
	if err != nil {
		return nil, err
	}
	p := g.MapToCurve(u[0])
	return g.ClearCofactor(p), nil
}

// HashToCurve implements hash_to_curve_g1: two field elements are each
// mapped to the curve, added, and the sum has its cofactor cleared.
func (g *G1) HashToCurve(msg, dst []byte) (*PointG1, error) {
	u, err := hashToField(msg, dst, 2)
	if err != nil {
		return nil, err
	}
	q0 := g.MapToCurve(u[0])
	q1 := g.MapToCurve(u[1])
	r := &PointG1{}
	g.Add(r, q0, q1)
	return g.ClearCofactor(r), nil
}
