package bls12381

// Engine implements the optimal ate pairing for BLS12-381: a Miller loop
// over the BLS x-parameter (doublingStep/additionStep implement the line
// functions of Costello-Lange-Naehrig, eprint 2010/526) followed by the
// BLS12-381 hard-part final exponentiation (Fuentes-Castaneda/Knapp/
// Rodriguez-Henriquez style addition chain over e.exp).
type Engine struct {
	G1   *G1
	G2   *G2
	fp12 *fp12
	fp2  *fp2
	fp   *fp

	// lineTemp holds scratch Fq2 elements reused across doublingStep,
	// additionStep, and the per-line accumulation in millerLoop, so the
	// line steps themselves allocate no Fq2 scratch values.
	lineTemp [10]*fe2
	// expTemp holds scratch Fq12 elements for the final exponentiation's
	// addition chain.
	expTemp [9]fe12
}

func NewEngine() *Engine {
	fp := newFp()
	fp2 := newFp2(fp)
	fp6 := newFp6(fp2)
	fp12 := newFp12(fp6)
	lineTemp := [10]*fe2{}
	for i := range lineTemp {
		lineTemp[i] = &fe2{}
	}
	return &Engine{
		fp:       fp,
		fp2:      fp2,
		fp12:     fp12,
		lineTemp: lineTemp,
		expTemp:  [9]fe12{},
		G1:       NewG1(fp),
		G2:       NewG2(fp2),
	}
}

// doublingStep computes the tangent line through r, doubles r in place, and
// returns the line's three Fq2 coefficients in coeff.
func (e *Engine) doublingStep(coeff *[3]fe2, r *PointG2) {
	fp2 := e.fp2
	t := e.lineTemp
	fp2.mul(t[0], &r[0], &r[1])
	fp2.mulByFq(t[0], t[0], twoInv)
	fp2.square(t[1], &r[1])
	fp2.square(t[2], &r[2])
	fp2.double(t[7], t[2])
	fp2.add(t[7], t[7], t[2])
	fp2.mulByB(t[3], t[7])
	fp2.double(t[4], t[3])
	fp2.add(t[4], t[4], t[3])
	fp2.add(t[5], t[1], t[4])
	fp2.mulByFq(t[5], t[5], twoInv)
	fp2.add(t[6], &r[1], &r[2])
	fp2.square(t[6], t[6])
	fp2.add(t[7], t[2], t[1])
	fp2.sub(t[6], t[6], t[7])
	fp2.sub(&coeff[0], t[3], t[1])
	fp2.square(t[7], &r[0])
	fp2.sub(t[4], t[1], t[4])
	fp2.mul(&r[0], t[4], t[0])
	fp2.square(t[2], t[3])
	fp2.double(t[3], t[2])
	fp2.add(t[3], t[3], t[2])
	fp2.square(t[5], t[5])
	fp2.sub(&r[1], t[5], t[3])
	fp2.mul(&r[2], t[1], t[6])
	fp2.double(t[0], t[7])
	fp2.add(&coeff[1], t[0], t[7])
	fp2.neg(&coeff[2], t[6])
}

// additionStep computes the line through r and q, advances r to r+q, and
// returns the line's three Fq2 coefficients in coeff.
func (e *Engine) additionStep(coeff *[3]fe2, r, q *PointG2) {
	fp2 := e.fp2
	t := e.lineTemp
	fp2.mul(t[0], &q[1], &r[2])
	fp2.neg(t[0], t[0])
	fp2.add(t[0], t[0], &r[1])
	fp2.mul(t[1], &q[0], &r[2])
	fp2.neg(t[1], t[1])
	fp2.add(t[1], t[1], &r[0])
	fp2.square(t[2], t[0])
	fp2.square(t[3], t[1])
	fp2.mul(t[4], t[1], t[3])
	fp2.mul(t[2], &r[2], t[2])
	fp2.mul(t[3], &r[0], t[3])
	fp2.double(t[5], t[3])
	fp2.sub(t[5], t[4], t[5])
	fp2.add(t[5], t[5], t[2])
	fp2.mul(&r[0], t[1], t[5])
	fp2.sub(t[2], t[3], t[5])
	fp2.mul(t[2], t[2], t[0])
	fp2.mul(t[3], &r[1], t[4])
	fp2.sub(&r[1], t[2], t[3])
	fp2.mul(&r[2], &r[2], t[4])
	fp2.mul(t[2], t[1], &q[1])
	fp2.mul(t[3], t[0], &q[0])
	fp2.sub(&coeff[0], t[3], t[2])
	fp2.neg(&coeff[1], t[0])
	fp2.copy(&coeff[2], t[1])
}

// lineCount is len(ellCoeffs) for a single twist point: one doubling step
// per bit of x below the top, plus one addition step per set bit.
const lineCount = 68

// accumulateLines runs the Miller loop's double-and-add walk over x for a
// single G2 point, recording each line's coefficients.
func (e *Engine) accumulateLines(ellCoeffs *[lineCount][3]fe2, twistPoint *PointG2) {
	if e.G2.IsZero(twistPoint) {
		return
	}
	r := &PointG2{}
	e.G2.Copy(r, twistPoint)
	j := 0
	for i := int(x.BitLen() - 2); i >= 0; i-- {
		e.doublingStep(&ellCoeffs[j], r)
		if x.Bit(i) != 0 {
			j++
			ellCoeffs[j] = fe6{}
			e.additionStep(&ellCoeffs[j], r, twistPoint)
		}
		j++
	}
}

// evalLine folds the j-th recorded line for every (point, twistPoint) pair
// into the running Miller loop accumulator f: the line's second and third
// Fq2 coefficients are scaled by the G1 x and y coordinates, and the result
// is multiplied into f with the sparse mulBy014 multiplication.
func (e *Engine) evalLine(f *fe12, ellCoeffs [][lineCount][3]fe2, points []PointG1, j int) {
	fp12, fp2 := e.fp12, e.fp2
	t := e.lineTemp
	for i := range points {
		fp2.mulByFq(t[0], &ellCoeffs[i][j][2], &points[i][1])
		fp2.mulByFq(t[1], &ellCoeffs[i][j][1], &points[i][0])
		fp12.mulBy014Assign(f, &ellCoeffs[i][j][0], t[1], t[0])
	}
}

// millerLoop runs a single shared Miller loop over every (points[i],
// twistPoints[i]) pair, requiring len(points) == len(twistPoints).
func (e *Engine) millerLoop(f *fe12, points []PointG1, twistPoints []PointG2) {
	for i := range points {
		e.G1.Affine(&points[i])
		e.G2.Affine(&twistPoints[i])
	}

	ellCoeffs := make([][lineCount][3]fe2, len(points))
	for i := range points {
		if !e.G1.IsZero(&points[i]) && !e.G2.IsZero(&twistPoints[i]) {
			e.accumulateLines(&ellCoeffs[i], &twistPoints[i])
		}
	}

	e.fp12.copy(f, &fp12One)

	// The two most-significant bits of x are consumed without squaring f,
	// since f starts at 1 and a squaring of 1 is a no-op.
	e.evalLine(f, ellCoeffs, points, 0)
	e.evalLine(f, ellCoeffs, points, 1)

	j := 2
	for i := int(x.BitLen() - 3); i >= 0; i-- {
		e.fp12.square(f, f)
		e.evalLine(f, ellCoeffs, points, j)
		if x.Bit(i) != 0 {
			j++
			e.evalLine(f, ellCoeffs, points, j)
		}
		j++
	}
	e.fp12.conjugate(f, f)
}

// exp raises a to the BLS x-parameter via the cyclotomic squaring
// shortcut, then conjugates to account for x's negative sign.
func (e *Engine) exp(c, a *fe12) {
	e.fp12.cyclotomicExp(c, a, x)
	e.fp12.conjugate(c, c)
}

// finalExpEasyPart raises f to (p^6-1)(p^2+1), landing it in the
// cyclotomic subgroup the hard part's addition chain operates over. The
// result is left in e.expTemp[2] and also returned.
func (e *Engine) finalExpEasyPart(f *fe12) *fe12 {
	fp12 := e.fp12
	t := &e.expTemp
	fp12.frobeniusMap(&t[0], f, 6)
	fp12.inverse(&t[1], f)
	fp12.mul(&t[2], &t[0], &t[1])
	fp12.copy(&t[1], &t[2])
	fp12.frobeniusMapAssign(&t[2], 2)
	fp12.mulAssign(&t[2], &t[1])
	return &t[2]
}

// finalExpHardPart raises the easy part's result to the remaining
// (p^4-p^2+1)/r via the BLS12-381-specific addition chain over |x|,
// leaving the pairing value in f.
func (e *Engine) finalExpHardPart(f *fe12, easy *fe12) {
	fp12 := e.fp12
	t := &e.expTemp
	fp12.cyclotomicSquare(&t[1], easy)
	fp12.conjugate(&t[1], &t[1])
	e.exp(&t[3], easy)
	fp12.cyclotomicSquare(&t[4], &t[3])
	fp12.mul(&t[5], &t[1], &t[3])
	e.exp(&t[1], &t[5])
	e.exp(&t[0], &t[1])
	e.exp(&t[6], &t[0])
	fp12.mulAssign(&t[6], &t[4])
	e.exp(&t[4], &t[6])
	fp12.conjugate(&t[5], &t[5])
	fp12.mulAssign(&t[4], &t[5])
	fp12.mulAssign(&t[4], easy)
	fp12.conjugate(&t[5], easy)
	fp12.mulAssign(&t[1], easy)
	fp12.frobeniusMapAssign(&t[1], 3)
	fp12.mulAssign(&t[6], &t[5])
	fp12.frobeniusMapAssign(&t[6], 1)
	fp12.mulAssign(&t[3], &t[0])
	fp12.frobeniusMapAssign(&t[3], 2)
	fp12.mulAssign(&t[3], &t[1])
	fp12.mulAssign(&t[3], &t[6])
	fp12.mul(f, &t[3], &t[4])
}

func (e *Engine) finalExp(f *fe12) {
	easy := e.finalExpEasyPart(f)
	e.finalExpHardPart(f, easy)
}

func (e *Engine) pair(f *fe12, points []PointG1, twistPoints []PointG2) {
	e.millerLoop(f, points, twistPoints)
	e.finalExp(f)
}

// PairingCheck reports whether the product of e(points[i], twistPoints[i])
// over all pairs equals the identity in Fq12, the standard way to verify a
// pairing-based equation without computing each factor separately.
func (e *Engine) PairingCheck(points []PointG1, twistPoints []PointG2) bool {
	f := &fe12{}
	e.pair(f, points, twistPoints)
	return e.fp12.equal(&fp12One, f)
}

// Pairing computes the optimal-ate pairing e(P, Q) in Fq12.
func Pairing(p *PointG1, q *PointG2) *fe12 {
	e := NewEngine()
	f := &fe12{}
	e.pair(f, []PointG1{*p}, []PointG2{*q})
	return f
}

// PairingProduct computes the product of e(Pi, Qi) over matched pairs of
// points, via a single shared Miller loop and one final exponentiation
// rather than len(points) independent pairings.
func PairingProduct(points []PointG1, twistPoints []PointG2) *fe12 {
	e := NewEngine()
	f := &fe12{}
	e.pair(f, points, twistPoints)
	return f
}
