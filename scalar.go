package bls12381

import "math/big"

// wnaf computes the width-w non-adjacent form of e, least significant digit
// first. Digits are odd integers in (-2^(w-1), 2^(w-1)) or zero.
func wnaf(e *big.Int, w uint) []int {
	if e.Sign() == 0 {
		return []int{0}
	}
	k := new(big.Int).Set(e)
	width := new(big.Int).Lsh(big.NewInt(1), w)
	halfWidth := new(big.Int).Lsh(big.NewInt(1), w-1)
	var out []int
	for k.Sign() > 0 {
		if k.Bit(0) == 1 {
			mod := new(big.Int).And(k, new(big.Int).Sub(width, big.NewInt(1)))
			d := new(big.Int).Set(mod)
			if mod.Cmp(halfWidth) >= 0 {
				d.Sub(mod, width)
			}
			k.Sub(k, d)
			out = append(out, int(d.Int64()))
		} else {
			out = append(out, 0)
		}
		k.Rsh(k, 1)
	}
	return out
}
