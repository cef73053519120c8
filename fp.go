package bls12381

import "math/bits"

// fp wraps the field multiplication used throughout the tower; it used to
// dispatch between BMI2 and portable assembly implementations, now it
// always uses the pure-Go CIOS routine below so the package builds without
// any architecture-specific or cgo dependency.
type fp struct {
	mul       func(c, a, b *fe)
	mulAssign func(a, b *fe)
}

func newFp() *fp {
	return &fp{
		mul:       montMul,
		mulAssign: montMulAssign,
	}
}

// montMul computes c = a*b*R^-1 mod p using coarsely integrated operand
// scanning (CIOS), the standard portable Montgomery multiplication
// algorithm. The modulus is 6 64-bit limbs (381-bit p), np0 = -p^-1 mod 2^64.
func montMul(c, a, b *fe) {
	const n = 6
	var t [n + 2]uint64

	for i := 0; i < n; i++ {
		// t += a[i]*b
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			sum, c1 := bits.Add64(t[j], lo, 0)
			sum, c2 := bits.Add64(sum, carry, 0)
			t[j] = sum
			carry = hi + c1 + c2
		}
		sum, c1 := bits.Add64(t[n], carry, 0)
		t[n] = sum
		t[n+1] += c1

		// m = t[0] * np0 mod 2^64
		m := t[0] * np0

		// t = (t + m*modulus) / 2^64, shifting limbs down by one
		hi0, lo0 := bits.Mul64(m, modulus[0])
		_, carry2 := bits.Add64(t[0], lo0, 0)
		carry2 += hi0

		for j := 1; j < n; j++ {
			hi, lo := bits.Mul64(m, modulus[j])
			sum, c1 := bits.Add64(t[j], lo, 0)
			sum, c2 := bits.Add64(sum, carry2, 0)
			t[j-1] = sum
			carry2 = hi + c1 + c2
		}
		sum, c1 = bits.Add64(t[n], carry2, 0)
		t[n-1] = sum
		t[n] = t[n+1] + c1
		t[n+1] = 0
	}

	var result fe
	copy(result[:], t[:n])
	if result.Cmp(&modulus) != -1 || t[n] != 0 {
		var borrow uint64
		for i := 0; i < n; i++ {
			d, b1 := bits.Sub64(result[i], modulus[i], borrow)
			result[i] = d
			borrow = b1
		}
	}
	c.Set(&result)
}

func montMulAssign(a, b *fe) {
	var out fe
	montMul(&out, a, b)
	a.Set(&out)
}
