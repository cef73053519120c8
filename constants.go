package bls12381

import "math/big"

// Curve and field constants for BLS12-381.
//
// Montgomery constants (modulus, R mod p, R^2 mod p, the CIOS multiplier
// np0) are derived once from the canonical decimal/hex description of the
// field rather than transcribed as raw limb literals: that keeps every
// magic number in this file traceable to a short, checkable big.Int
// expression instead of an unverifiable wall of hex digits.

var (
	modulus fe
	r1      *fe // R mod p, i.e. the Montgomery form of 1
	r2      *fe // R^2 mod p, used to enter Montgomery form
	np0     uint64

	pPlus1Over4  *big.Int
	pMinus3Over4 *big.Int
	pMinus1Over2 *big.Int

	// group order of G1/G2 and the scalar field Fr.
	qBig *big.Int
	q    *big.Int // alias kept for grounding parity with the vendored package

	// x is the BLS12-381 embedding parameter, x = -0xd201000000010000.
	// The Miller loop and final exponentiation (pairing.go) iterate over
	// the positive magnitude |x| and apply the sign via an explicit
	// conjugate at the end, so the package-level x used there is |x|.
	xBig       *big.Int
	xAbsBig    *big.Int
	x          *big.Int
	cofactorG1 *big.Int

	b  *fe  // curve coefficient for E/Fq : y^2 = x^3 + 4
	b2 *fe2 // curve coefficient for E/Fq2: y^2 = x^3 + 4(1+u)

	twoInv *fe

	negativeOne2 *fe2

	frobeniusCoeffs61 [6]fe2
	frobeniusCoeffs62 [6]fe2
	frobeniusCoeffs12 [12]fe2

	// psix, psiy parametrize the untwist-Frobenius-twist endomorphism psi
	// used for the G2 subgroup check and cofactor clearing.
	psix *fe2
	psiy *fe2

	// betaCubeRoot is a primitive cube root of unity in Fq used by the G1
	// sigma endomorphism (x, y) -> (beta*x, y).
	betaCubeRoot *fe

	g1One         g1Affine
	g1NegativeOne g1Affine
	g2One         g2Affine

	infinity  *PointG1
	infinity2 *PointG2
)

type g1Affine struct {
	x, y fe
}

type g2Affine struct {
	x, y fe2
}

func bigFromHex(h string) *big.Int {
	n, ok := new(big.Int).SetString(h, 16)
	if !ok {
		panic("bls12381: invalid constant " + h)
	}
	return n
}

func montFromBig(n *big.Int) *fe {
	var raw fe
	raw.SetBig(n)
	out := &fe{}
	montMul(out, &raw, r2)
	return out
}

// montRawFromHex loads h directly as an already-Montgomery-encoded value,
// skipping the canonical-to-Montgomery conversion montFromBig performs.
// Used for constants transcribed from a source that stores them the same
// way (see betaCubeRoot below).
func montRawFromHex(h string) *fe {
	return new(fe).SetBig(bigFromHex(h))
}

func montFromBig2(c0, c1 *big.Int) *fe2 {
	return &fe2{*montFromBig(c0), *montFromBig(c1)}
}

func init() {
	modulusBig := bigFromHex("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab")
	modulus.SetBig(modulusBig)

	one := big.NewInt(1)
	two64 := new(big.Int).Lsh(one, 64)
	R := new(big.Int).Lsh(one, 384)

	r1Big := new(big.Int).Mod(R, modulusBig)
	r1 = new(fe).SetBig(r1Big)

	r2Big := new(big.Int).Mod(new(big.Int).Mul(R, R), modulusBig)
	r2 = new(fe).SetBig(r2Big)

	inv := new(big.Int).ModInverse(modulusBig, two64)
	npBig := new(big.Int).Mod(new(big.Int).Sub(two64, inv), two64)
	np0 = npBig.Uint64()

	fpOne = *r1
	fp2One = fe2{fpOne, fpZero}
	fp2Zero = fe2{fpZero, fpZero}
	fp6One = fe6{fp2One, fp2Zero, fp2Zero}
	fp6Zero = fe6{fp2Zero, fp2Zero, fp2Zero}
	fp12One = fe12{fp6One, fp6Zero}
	fp12Zero = fe12{fp6Zero, fp6Zero}

	pPlus1Over4 = new(big.Int).Div(new(big.Int).Add(modulusBig, one), big.NewInt(4))
	pMinus3Over4 = new(big.Int).Div(new(big.Int).Sub(modulusBig, big.NewInt(3)), big.NewInt(4))
	pMinus1Over2 = new(big.Int).Div(new(big.Int).Sub(modulusBig, one), big.NewInt(2))

	qBig = bigFromHex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")
	q = qBig

	xAbsBig = bigFromHex("d201000000010000")
	xBig = new(big.Int).Neg(xAbsBig)
	x = xAbsBig
	xm1 := new(big.Int).Sub(xBig, one)
	cofactorG1 = new(big.Int).Div(new(big.Int).Mul(xm1, xm1), big.NewInt(3))

	// fp/fp2 methods below depend on the constants above, so the rest of
	// init runs through a plain *fp/*fp2 instance built from them.
	fq := newFp()
	fq2 := newFp2(fq)

	b = montFromBig(big.NewInt(4))
	b2 = montFromBig2(big.NewInt(4), big.NewInt(4))

	twoInvBig := new(big.Int).ModInverse(big.NewInt(2), modulusBig)
	twoInv = montFromBig(twoInvBig)

	negativeOne2 = &fe2{}
	fq2.neg(negativeOne2, &fp2One)

	// nonresidue xi = 1+u, used to build the Fq6/Fq12 tower; the frobenius
	// coefficient tables below are the successive powers xi^((q^i-1)/3)
	// and xi^((q^i-1)/6), computed directly rather than hand-copied.
	xi := &fe2{*fq.one(), *fq.one()}
	qPow := new(big.Int).Set(modulusBig)
	for i := 0; i < 12; i++ {
		if i == 0 {
			qPow = big.NewInt(1)
		} else if i == 1 {
			qPow = new(big.Int).Set(modulusBig)
		} else {
			qPow = new(big.Int).Mul(qPow, modulusBig)
		}
		e12 := new(big.Int).Div(new(big.Int).Sub(qPow, one), big.NewInt(6))
		fq2.exp(&frobeniusCoeffs12[i], xi, e12)
		if i < 6 {
			e6 := new(big.Int).Div(new(big.Int).Sub(qPow, one), big.NewInt(3))
			fq2.exp(&frobeniusCoeffs61[i], xi, e6)
			fq2.square(&frobeniusCoeffs62[i], &frobeniusCoeffs61[i])
		}
	}

	qm1Over3 := new(big.Int).Div(new(big.Int).Sub(modulusBig, one), big.NewInt(3))
	qm1Over2 := new(big.Int).Div(new(big.Int).Sub(modulusBig, one), big.NewInt(2))
	psix = &fe2{}
	psiy = &fe2{}
	fq2.exp(psix, xi, qm1Over3)
	fq2.exp(psiy, xi, qm1Over2)
	fq2.inverse(psix, psix)
	fq2.inverse(psiy, psiy)

	// beta is the primitive cube root of unity used by the G1 sigma
	// endomorphism; grounded on the value used by the reference subgroup
	// check (sigma(x,y) = (beta*x, y)), _examples/original_source/src/bls12_381/ec/g1.rs's
	// BETA: Fq = Fq(FqRepr([0xcd03c9e48671f071, 0x5dab22461fcda5d2,
	// 0x587042afd3851b95, 0x8eb60ebe01bacb9e, 0x3f97d6e83d050d2,
	// 0x18f0206554638741])). FqRepr's limbs are little-endian (least
	// significant word first) and the Rust Fq(FqRepr(...)) constructor
	// stores the value already in Montgomery form, so the hex below is
	// those six limbs reversed into big-endian order, zero-padded to 16
	// hex digits each, loaded raw rather than through montFromBig.
	betaCubeRoot = montRawFromHex("18f020655463874103f97d6e83d050d28eb60ebe01bacb9e587042afd3851b955dab22461fcda5d2cd03c9e48671f071")

	g1GenX := bigFromHex("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
	g1GenY := bigFromHex("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")
	g1One = g1Affine{*montFromBig(g1GenX), *montFromBig(g1GenY)}
	negY := &fe{}
	fq.neg(negY, &g1One.y)
	g1NegativeOne = g1Affine{g1One.x, *negY}

	g2GenX0 := bigFromHex("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8")
	g2GenX1 := bigFromHex("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e")
	g2GenY0 := bigFromHex("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801")
	g2GenY1 := bigFromHex("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be")
	g2One = g2Affine{*montFromBig2(g2GenX0, g2GenX1), *montFromBig2(g2GenY0, g2GenY1)}

	infinity = &PointG1{fe{}, *fq.one(), fe{}}
	infinity2 = &PointG2{fe2{}, fp2One, fe2{}}
}

// Domain separation tag suite prefixes, RFC 9380 section 8.8.
const (
	dstG1XMDSHA256 = "BLS12381G1_XMD:SHA-256_SSWU_RO_"
	dstG2XMDSHA256 = "BLS12381G2_XMD:SHA-256_SSWU_RO_"
	dstG1XOFShake128 = "BLS12381G1_XOF:SHAKE-128_SSWU_RO_"
	dstG2XOFShake128 = "BLS12381G2_XOF:SHAKE-128_SSWU_RO_"

	dstG1NURO = "BLS12381G1_XMD:SHA-256_SSWU_NU_"
	dstG2NURO = "BLS12381G2_XMD:SHA-256_SSWU_NU_"
)
