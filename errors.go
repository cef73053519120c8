package bls12381

import "errors"

// Error kinds of point decoding and hash-to-curve operations.
// errInvalidEncoding is not returned by any decoder: flag, length and range
// failures are reported as fmt.Errorf values instead.
var (
	errInvalidEncoding  = errors.New("bls12381: invalid encoding")
	errNotOnCurve       = errors.New("bls12381: point is not on curve")
	errNotInSubgroup    = errors.New("bls12381: point is not in correct subgroup")
	errExpandOutOfRange = errors.New("bls12381: requested expand_message length out of range")
)
