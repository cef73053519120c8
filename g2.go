package bls12381

import (
	"fmt"
	"math/big"
)

type PointG2 [3]fe2

func (p *PointG2) Set(p2 *PointG2) *PointG2 {
	p[0][0].Set(&p2[0][0])
	p[1][1].Set(&p2[1][1])
	p[2][0].Set(&p2[2][0])
	p[0][1].Set(&p2[0][1])
	p[1][0].Set(&p2[1][0])
	p[2][1].Set(&p2[2][1])
	return p
}

type G2 struct {
	f *fp2
	t [9]*fe2
}

func NewG2(f *fp2) *G2 {
	if f == nil {
		f = newFp2(nil)
	}
	t := [9]*fe2{}
	for i := 0; i < 9; i++ {
		t[i] = f.zero()
	}
	return &G2{
		f: f,
		t: t,
	}
}

func (g *G2) FromUncompressed(uncompressed []byte) (*PointG2, error) {
	if len(uncompressed) < 192 {
		return nil, fmt.Errorf("input string should be equal or larger than 192")
	}
	var in [192]byte
	copy(in[:], uncompressed[:192])
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
	x, y := &fe2{}, &fe2{}
	if err := g.f.newElementFromBytes(x, in[:96]); err != nil {
		return nil, err
	}
	if err := g.f.newElementFromBytes(y, in[96:]); err != nil {
		return nil, err
	}
	p := &PointG2{}
	g.f.copy(&p[0], x)
	g.f.copy(&p[1], y)
	g.f.copy(&p[2], &fp2One)
	if !g.IsOnCurve(p) {
		return nil, errNotOnCurve
	}
	if !g.InCorrectSubgroup(p) {
		return nil, errNotInSubgroup
	}
	return p, nil
}

func (g *G2) ToUncompressed(p *PointG2) []byte {
	out := make([]byte, 192)
	g.Affine(p)
	if g.IsZero(p) {
		out[0] |= 1 << 6
	}
	copy(out[:96], g.f.toBytes(&p[0]))
	copy(out[96:], g.f.toBytes(&p[1]))
	return out
}

func (g *G2) FromCompressed(compressed []byte) (*PointG2, error) {
	if len(compressed) < 96 {
		return nil, fmt.Errorf("input string should be equal or larger than 96")
	}
	var in [96]byte
	copy(in[:], compressed[:])
	if in[0]&(1<<7) == 0 {
		return nil, fmt.Errorf("bad compression")
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
	x := &fe2{}
	if err := g.f.newElementFromBytes(x, in[:]); err != nil {
		return nil, err
	}
	y := &fe2{}
	g.f.square(y, x)
	g.f.mul(y, y, x)
	g.f.add(y, y, b2)
	if ok := g.f.sqrt(y, y); !ok {
		return nil, errNotOnCurve
	}
	negYn, negY, yn := &fe2{}, &fe2{}, &fe2{}
	g.f.f.demont(&yn[0], &y[0])
	g.f.f.demont(&yn[1], &y[1])
	g.f.neg(negY, y)
	g.f.neg(negYn, yn)
	larger := yn[1].Cmp(&negYn[1]) > 0 || (yn[1].IsZero() && yn[0].Cmp(&negYn[0]) > 0)
	if larger != a {
		g.f.copy(y, negY)
	}
	p := &PointG2{}
	g.f.copy(&p[0], x)
	g.f.copy(&p[1], y)
	g.f.copy(&p[2], &fp2One)
	if !g.InCorrectSubgroup(p) {
		return nil, errNotInSubgroup
	}
	return p, nil
}

func (g *G2) ToCompressed(p *PointG2) []byte {
	out := make([]byte, 96)
	g.Affine(p)
	if g.IsZero(p) {
		out[0] |= 1 << 6
	} else {
		copy(out[:], g.f.toBytes(&p[0]))
		y, negY := &fe2{}, &fe2{}
		g.f.copy(y, &p[1])
		g.f.f.demont(&y[0], &y[0])
		g.f.f.demont(&y[1], &y[1])
		g.f.neg(negY, y)
		if (y[1].Cmp(&negY[1]) > 0) || (y[1].IsZero() && y[0].Cmp(&negY[0]) > 0) {
			out[0] |= 1 << 5
		}
	}
	out[0] |= 1 << 7
	return out
}

func (g *G2) fromRawUnchecked(in []byte) *PointG2 {
	p := &PointG2{}
	if err := g.f.newElementFromBytes(&p[0], in[:96]); err != nil {
		panic(err)
	}
	if err := g.f.newElementFromBytes(&p[1], in[96:]); err != nil {
		panic(err)
	}
	g.f.copy(&p[2], &fp2One)
	return p
}

// InCorrectSubgroupSlow checks membership by a full-order scalar multiply;
// kept as a cross-check against InCorrectSubgroup's endomorphism method.
func (g *G2) InCorrectSubgroupSlow(p *PointG2) bool {
	DefaultLogger().Debugw("g2 subgroup check via full-order scalar multiply")
	tmp := &PointG2{}
	g.MulScalar(tmp, p, q)
	return g.IsZero(tmp)
}

// InCorrectSubgroup reports whether p is in the order-q subgroup of
// E'(Fq2), using Bowe's psi^3 endomorphism test.
func (g *G2) InCorrectSubgroup(p *PointG2) bool {
	return g2SubgroupCheck(g, p)
}

func (g *G2) Zero() *PointG2 {
	return &PointG2{
		*g.f.zero(),
		*g.f.one(),
		*g.f.zero(),
	}
}

func (g *G2) One() *PointG2 {
	return &PointG2{g2One.x, g2One.y, *g.f.one()}
}

func (g *G2) Copy(dst *PointG2, src *PointG2) *PointG2 {
	return dst.Set(src)
}

func (g *G2) IsZero(p *PointG2) bool {
	return g.f.isZero(&p[2])
}

func (g *G2) Equal(p1, p2 *PointG2) bool {
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

func (g *G2) IsOnCurve(p *PointG2) bool {
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
	g.f.mul(t[2], b2, t[2])
	g.f.add(t[1], t[1], t[2])
	return g.f.equal(t[0], t[1])
}

func (g *G2) IsAffine(p *PointG2) bool {
	return g.f.equal(&p[2], &fp2One)
}

func (g *G2) Affine(p *PointG2) {
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

func (g *G2) Add(r, p1, p2 *PointG2) *PointG2 {
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
		return g.Copy(r, infinity2)
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

func (g *G2) Double(r, p *PointG2) *PointG2 {
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

func (g *G2) Neg(r, p *PointG2) *PointG2 {
	g.f.copy(&r[0], &p[0])
	g.f.neg(&r[1], &p[1])
	g.f.copy(&r[2], &p[2])
	return r
}

func (g *G2) Sub(c, a, b *PointG2) *PointG2 {
	d := &PointG2{}
	g.Neg(d, b)
	g.Add(c, a, d)
	return c
}

// negates second operand
func (g *G2) SubUnsafe(c, a, b *PointG2) *PointG2 {
	g.Neg(b, b)
	g.Add(c, a, b)
	return c
}

// MulScalar is a plain double-and-add scalar multiplication.
func (g *G2) MulScalar(c, p *PointG2, e *big.Int) *PointG2 {
	q, n := &PointG2{}, &PointG2{}
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

// Mul multiplies p by e using a width-5 wNAF chain, in variable time.
func (g *G2) Mul(c, p *PointG2, e *big.Int) *PointG2 {
	naf := wnaf(e, 5)
	double := &PointG2{}
	g.Double(double, p)
	cur := &PointG2{}
	g.Copy(cur, p)
	precomp := make([]*PointG2, 0, 8)
	precomp = append(precomp, g.Copy(&PointG2{}, cur))
	for i := 1; i < 8; i++ {
		next := &PointG2{}
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
			neg := &PointG2{}
			g.Neg(neg, precomp[(-d)/2])
			g.Add(acc, acc, neg)
		}
	}
	return g.Copy(c, acc)
}

// MulSec multiplies p by e using a fixed-pattern Montgomery ladder.
func (g *G2) MulSec(c, p *PointG2, e *big.Int) *PointG2 {
	r0 := g.Zero()
	r1 := &PointG2{}
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

// ClearCofactor maps p into the order-q subgroup of E'(Fq2) using the
// Budroni-Pintore psi-chain rather than a scalar multiply by the (much
// larger) literal G2 cofactor.
func (g *G2) ClearCofactor(p *PointG2) *PointG2 {
	return clearCofactorG2(g, p)
}

// MapToCurve implements the simplified SWU map for G2 followed by the
// 3-isogeny to the BLS12-381 G2 curve.
func (g *G2) MapToCurve(u *fe2) *PointG2 {
	x, y := swuMapG2(u)
	ix, iy := isogenyMapG2(x, y)
	return &PointG2{*ix, *iy, fp2One}
}

// EncodeToCurve implements the encode_to_curve_g2 suite.
func (g *G2) EncodeToCurve(msg, dst []byte) (*PointG2, error) {
	u, err := hashToFieldFq2(msg, dst, 1)
	if err != nil {
		return nil, err
	}
	p := g.MapToCurve(u[0])
	return g.ClearCofactor(p), nil
}

// HashToCurve implements hash_to_curve_g2.
func (g *G2) HashToCurve(msg, dst []byte) (*PointG2, error) {
	u, err := hashToFieldFq2(msg, dst, 2)
	if err != nil {
		return nil, err
	}
	q0 := g.MapToCurve(u[0])
	q1 := g.MapToCurve(u[1])
	r := &PointG2{}
	g.Add(r, q0, q1)
	return g.ClearCofactor(r), nil
}
