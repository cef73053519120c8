package bls12381

// Simplified SWU map-to-curve parameters and implementation, RFC 9380
// section 6.6.2. Both curves use A=0 so the map runs against the isogenous
// curve E' with nonzero a,b (below), followed by the isogeny maps in
// isogeny.go that carry the result back onto the BLS12-381 curves.

var swuParamsForG1 = struct{ z, zInv, a, b, minusBOverA *fe }{
	a:           &fe{3415322872136444497, 9675504606121301699, 13284745414851768802, 2873609449387478652, 2897906769629812789, 1536947672689614213},
	b:           &fe{18129637713272545760, 11144507692959411567, 10108153527111632324, 9745270364868568433, 14587922135379007624, 469008097655535723},
	z:           &fe{9830232086645309404, 1112389714365644829, 8603885298299447491, 11361495444721768256, 5788602283869803809, 543934104870762216},
	zInv:        &fe{1047701040585522704, 6568704757426767313, 7461573184509654906, 5499015922318795030, 11226104418450030905, 1048548528059189658},
	minusBOverA: &fe{370847444534405118, 4269648997187665026, 1978763176675559811, 2677363437243537255, 11096866317338941469, 683609622716391635},
}

var swuParamsForG2 = struct{ z, zInv, a, b, minusBOverA *fe2 }{
	a: &fe2{
		fe{0, 0, 0, 0, 0, 0},
		fe{16517514583386313282, 74322656156451461, 16683759486841714365, 815493829203396097, 204518332920448171, 1306242806803223655},
	},
	b: &fe2{
		fe{2515823342057463218, 7982686274772798116, 7934098172177393262, 8484566552980779962, 4455086327883106868, 1323173589274087377},
		fe{2515823342057463218, 7982686274772798116, 7934098172177393262, 8484566552980779962, 4455086327883106868, 1323173589274087377},
	},
	z: &fe2{
		fe{9794203289623549276, 7309342082925068282, 1139538881605221074, 15659550692327388916, 16008355200866287827, 582484205531694093},
		fe{4897101644811774638, 3654671041462534141, 569769440802610537, 17053147383018470266, 17227549637287919721, 291242102765847046},
	},
	zInv: &fe2{
		fe{12452452969679491344, 11374291236854484173, 13099329512014041791, 17416955488833933518, 4817360797345214593, 1382542053011693074},
		fe{16399576568092893731, 5746367929944742296, 886009817557060804, 7754232252852521560, 3003423379798094998, 1182527591141693329},
	},
	minusBOverA: &fe2{
		fe{10393275865055580083, 6888480573845999877, 11497223857339693790, 14306043441748627554, 5078453791572287059, 1040691004897901061},
		fe{3009155151022283512, 13768405011380760314, 14385194789933939525, 11380038592375636572, 333649986898415235, 833107612749638805},
	},
}

func isQuadraticNonResidue(fq *fp, a *fe) bool {
	var c fe
	return !fq.sqrt(&c, a)
}

// swuMapG1 maps a field element u to a point (x, y) on the isogenous curve
// E1': y^2 = x^3 + a*x + b used ahead of the 11-isogeny to G1.
func swuMapG1(u *fe) (*fe, *fe) {
	fq := g1Field
	params := swuParamsForG1
	var tv0, tv1 fe
	fq.square(&tv0, u)
	fq.mul(&tv0, &tv0, params.z)
	fq.square(&tv1, &tv0)

	x1 := new(fe)
	fq.add(x1, &tv0, &tv1)
	fq.inverse(x1, x1)
	e1 := x1.IsZero()
	one := fq.one()
	fq.add(x1, x1, one)
	if e1 {
		fq.copy(x1, params.zInv)
	}
	fq.mul(x1, x1, params.minusBOverA)

	gx1 := new(fe)
	fq.square(gx1, x1)
	fq.add(gx1, gx1, params.a)
	fq.mul(gx1, gx1, x1)
	fq.add(gx1, gx1, params.b)

	x2 := new(fe)
	fq.mul(x2, &tv0, x1)
	fq.mul(&tv1, &tv0, &tv1)
	gx2 := new(fe)
	fq.mul(gx2, gx1, &tv1)

	e2 := isQuadraticNonResidue(fq, gx1)
	x, y2 := new(fe), new(fe)
	if e2 {
		fq.copy(x, x2)
		fq.copy(y2, gx2)
	} else {
		fq.copy(x, x1)
		fq.copy(y2, gx1)
	}
	y := new(fe)
	fq.sqrt(y, y2)
	if y.sign0() != u.sign0() {
		fq.neg(y, y)
	}
	return x, y
}

// swuMapG2 is the Fq2 analogue of swuMapG1, operating on the isogenous
// curve used ahead of the 3-isogeny to G2.
func swuMapG2(u *fe2) (*fe2, *fe2) {
	fq2 := g2Field
	params := swuParamsForG2
	var tv0, tv1 fe2
	fq2.square(&tv0, u)
	fq2.mul(&tv0, &tv0, params.z)
	fq2.square(&tv1, &tv0)

	x1 := new(fe2)
	fq2.add(x1, &tv0, &tv1)
	fq2.inverse(x1, x1)
	e1 := fq2.isZero(x1)
	one := fq2.one()
	fq2.add(x1, x1, one)
	if e1 {
		fq2.copy(x1, params.zInv)
	}
	fq2.mul(x1, x1, params.minusBOverA)

	gx1 := new(fe2)
	fq2.square(gx1, x1)
	fq2.add(gx1, gx1, params.a)
	fq2.mul(gx1, gx1, x1)
	fq2.add(gx1, gx1, params.b)

	x2 := new(fe2)
	fq2.mul(x2, &tv0, x1)
	fq2.mul(&tv1, &tv0, &tv1)
	gx2 := new(fe2)
	fq2.mul(gx2, gx1, &tv1)

	e2 := !fq2.sqrt(new(fe2), gx1)
	x, y2 := new(fe2), new(fe2)
	if e2 {
		fq2.copy(x, x2)
		fq2.copy(y2, gx2)
	} else {
		fq2.copy(x, x1)
		fq2.copy(y2, gx1)
	}
	y := new(fe2)
	fq2.sqrt(y, y2)
	sgn0 := func(e *fe2) int {
		if !e[1].IsZero() {
			return e[1].sign0()
		}
		return e[0].sign0()
	}
	if sgn0(y) != sgn0(u) {
		fq2.neg(y, y)
	}
	return x, y
}
