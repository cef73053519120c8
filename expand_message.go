package bls12381

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

const maxDSTLength = 255

// expandMessageXMD implements expand_message_xmd from RFC 9380 section 5.3.1
// using SHA-256, the hash of the XMD:SHA-256 ciphersuites.
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	const bInBytes = 32 // sha256 output size
	const sInBytes = 64 // sha256 block size

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 || lenInBytes > 65535 || len(dst) > maxDSTLength {
		return nil, errExpandOutOfRange
	}

	dstPrime := dstWithLenPrefix(dst)

	zPad := make([]byte, sInBytes)
	libStr := make([]byte, 2)
	binary.BigEndian.PutUint16(libStr, uint16(lenInBytes))

	h0 := sha256.New()
	h0.Write(zPad)
	h0.Write(msg)
	h0.Write(libStr)
	h0.Write([]byte{0})
	h0.Write(dstPrime)
	b0 := h0.Sum(nil)

	h1 := sha256.New()
	h1.Write(b0)
	h1.Write([]byte{1})
	h1.Write(dstPrime)
	bi := h1.Sum(nil)

	out := make([]byte, 0, ell*bInBytes)
	out = append(out, bi...)
	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := range xored {
			xored[j] = b0[j] ^ bi[j]
		}
		hi := sha256.New()
		hi.Write(xored)
		hi.Write([]byte{byte(i)})
		hi.Write(dstPrime)
		bi = hi.Sum(nil)
		out = append(out, bi...)
	}
	return out[:lenInBytes], nil
}

// expandMessageXOF implements expand_message_xof from RFC 9380 section
// 5.3.2 using SHAKE-128, used by the XOF-suffixed ciphersuites.
func expandMessageXOF(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if lenInBytes > 65535 || len(dst) > maxDSTLength {
		return nil, errExpandOutOfRange
	}
	dstPrime := dstWithLenPrefix(dst)
	lenStr := make([]byte, 2)
	binary.BigEndian.PutUint16(lenStr, uint16(lenInBytes))

	h := sha3.NewShake128()
	h.Write(msg)
	h.Write(lenStr)
	h.Write(dstPrime)
	out := make([]byte, lenInBytes)
	if _, err := h.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}

func dstWithLenPrefix(dst []byte) []byte {
	out := make([]byte, 0, len(dst)+1)
	out = append(out, dst...)
	out = append(out, byte(len(dst)))
	return out
}
