package bls12381

// psi applies the untwist-Frobenius-twist endomorphism to a G2 point:
// conjugate each coordinate (Frobenius on Fq2, since q = 3 mod 4) then
// rescale by the psix/psiy constants derived in constants.go.
func psi(g *G2, p *PointG2) {
	g.f.conjugate(&p[0], &p[0])
	g.f.conjugate(&p[1], &p[1])
	g.f.conjugate(&p[2], &p[2])
	g.f.mul(&p[0], &p[0], psix)
	g.f.mul(&p[1], &p[1], psiy)
}

// mulX multiplies p by |x| = 0xd201000000010000 via a fixed addition
// chain (the BLS12-381 parameter has low Hamming weight, so this chain is
// much cheaper than a generic scalar multiply).
func mulX(g *G2, p *PointG2) {
	chain := func(p0 *PointG2, n int, p1 *PointG2) {
		g.Add(p0, p0, p1)
		for i := 0; i < n; i++ {
			g.Double(p0, p0)
		}
	}
	t := &PointG2{}
	t.Set(p)
	g.Double(p, t)
	chain(p, 2, t)
	chain(p, 3, t)
	chain(p, 9, t)
	chain(p, 32, t)
	chain(p, 16, t)
}

// clearCofactorG2 applies the Budroni-Pintore psi-chain:
// [h(psi)]P = [x^2-x-1]P + [x-1]psi(P) + psi^2(2P).
func clearCofactorG2(g *G2, p *PointG2) *PointG2 {
	t0, t1, t2, t3 := &PointG2{}, &PointG2{}, &PointG2{}, &PointG2{}
	t0.Set(p)
	t1.Set(p)
	t2.Set(p)

	g.Double(t0, t0)
	psi(g, t0)
	psi(g, t0) // t0 = psi^2(2P)
	psi(g, t2) // t2 = psi(P)
	mulX(g, t1) // t1 = -xP
	g.Sub(t3, t1, t2)  // t3 = -xP - psi(P)
	mulX(g, t3)        // t3 = x^2 P + x psi(P)
	g.Sub(t1, t1, p)   // t1 = (-x-1)P
	g.Add(t3, t3, t1)  // t3 = (x^2-x-1)P + x psi(P)
	g.Sub(t3, t3, t2)  // t3 = (x^2-x-1)P + (x-1) psi(P)
	g.Add(t3, t3, t0)  // + psi^2(2P)
	return p.Set(t3)
}
