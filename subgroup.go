package bls12381

// G1 subgroup membership is checked via the sigma endomorphism
// sigma(x,y) = (beta*x, y), beta a primitive cube root of unity in Fq,
// combined with a fixed addition chain for the scalar (z^2-1)/3 where z
// is the BLS parameter. Both the chain and the overall composition are
// transcribed from the reference Rust implementation's g1 subgroup check.

func sigma(g *G1, p *PointG1) *PointG1 {
	r := &PointG1{}
	r.Set(p)
	g.f.mul(&r[0], &r[0], betaCubeRoot)
	return r
}

// sigmaChain computes q *= (z^2-1)/3 = 76329603384216526021617858986798044501
// via a 144-link Bos-Coster addition chain (width 7, 8 variables).
func sigmaChain(g *G1, q *PointG1) {
	v0 := &PointG1{}
	v0.Set(q)
	g.Double(q, q) // 2
	v6 := &PointG1{}
	v6.Set(q)
	g.Add(v6, v6, v0) // 3
	g.Double(q, q)    // 4
	v4 := &PointG1{}
	v4.Set(q)
	g.Double(v4, v4) // 8
	v2 := &PointG1{}
	v2.Set(v4)
	g.Add(v2, v2, v6) // 11
	v7 := &PointG1{}
	v7.Set(v2)
	g.Add(v7, v7, q) // 15
	v5 := &PointG1{}
	v5.Set(v4)
	g.Double(v5, v5) // 16
	q.Set(v5)
	g.Double(q, q) // 32
	v3 := &PointG1{}
	v3.Set(q)
	g.Add(v3, v3, v2) // 43
	q.Set(v3)
	g.Add(q, q, v7)  // 58
	g.Add(v5, v5, q) // 74
	g.Add(v2, v2, v5) // 85
	g.Add(v7, v7, v5) // 89
	g.Add(v4, v4, v7) // 97
	g.Add(v5, v5, v4) // 171
	g.Add(q, q, v5)   // 229
	for i := 0; i < 7; i++ {
		g.Double(q, q)
	} // 29312
	g.Add(q, q, v7) // 29401
	for i := 0; i < 5; i++ {
		g.Double(q, q)
	} // 940832
	g.Add(q, q, v6) // 940835
	for i := 0; i < 18; i++ {
		g.Double(q, q)
	} // 246634250240
	g.Add(q, q, v2) // 246634250325
	for i := 0; i < 9; i++ {
		g.Double(q, q)
	} // 126276736166400
	g.Add(q, q, v5) // 126276736166571
	for i := 0; i < 7; i++ {
		g.Double(q, q)
	} // 16163422229321088
	g.Add(q, q, v4) // 16163422229321185
	for i := 0; i < 7; i++ {
		g.Double(q, q)
	} // 2068918045353111680
	g.Add(q, q, v3) // 2068918045353111723
	for i := 0; i < 41; i++ {
		g.Double(q, q)
	} // 4549598895562680126525036036096
	g.Add(q, q, v2) // 4549598895562680126525036036181
	for i := 0; i < 8; i++ {
		g.Double(q, q)
	} // 1164697317264046112390409225262336
	g.Add(q, q, v2) // 1164697317264046112390409225262421
	for i := 0; i < 8; i++ {
		g.Double(q, q)
	} // 298162513219595804771944761667179776
	g.Add(q, q, v2) // 298162513219595804771944761667179861
	for i := 0; i < 8; i++ {
		g.Double(q, q)
	} // 76329603384216526021617858986798044416
	g.Add(q, q, v2) // 76329603384216526021617858986798044501
}

// g1SubgroupCheck reports whether p lies in the order-q subgroup, without
// a full scalar multiplication by q.
func g1SubgroupCheck(g *G1, p *PointG1) bool {
	if g.IsZero(p) {
		return true
	}
	sp := sigma(g, p)
	qq := &PointG1{}
	qq.Set(sp)
	g.Double(qq, qq)
	sp2 := sigma(g, sp) // sigma^2(P)
	g.Sub(qq, qq, p)
	g.Sub(qq, qq, sp2)
	sigmaChain(g, qq)
	g.Sub(qq, qq, sp2)
	return g.IsZero(qq)
}

// G2 subgroup membership is checked via Bowe's psi^3 test:
// [z]psi^3(P) - psi^2(P) + P == 0 for P in the correct subgroup.
func g2SubgroupCheck(g *G2, p *PointG2) bool {
	if g.IsZero(p) {
		return true
	}
	t0, t1 := &PointG2{}, &PointG2{}
	t0.Set(p)
	psi(g, t0)
	psi(g, t0)
	g.Neg(t1, t0) // -psi^2(P)
	psi(g, t0)    // psi^3(P)
	mulX(g, t0)   // |x| psi^3(P) == -x psi^3(P)
	g.Neg(t0, t0)
	g.Add(t0, t0, t1)
	g.Add(t0, t0, p)
	return g.IsZero(t0)
}
