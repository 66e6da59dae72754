// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

// This file layers a math/big-flavored receiver style ("z.Add(x, y)")
// onto the free functions in bigint.go, which is where the actual
// base-B digit arithmetic lives. Callers get the familiar z.Op(x, y)
// shape; there is no locking, since every caller in this module runs
// single-threaded and synchronous.

// Set makes z a copy of x.
func (z *Int) Set(x *Int) *Int {
	*z = *x.Clone()
	return z
}

// SetUint64 sets z to x.
func (z *Int) SetUint64(x uint64) *Int {
	*z = *NewFromUint64(x)
	return z
}

// Add sets z = x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	*z = *Add(x, y)
	return z
}

// Sub sets z = x - y and returns z. Panics with common.ErrUnderflow if
// y > x.
func (z *Int) Sub(x, y *Int) *Int {
	*z = *Sub(x, y)
	return z
}

// Mul sets z = x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	*z = *Mul(x, y)
	return z
}

// DivMod sets z = floor(x/y) and returns z along with the remainder.
// Panics with common.ErrZeroDivide if y == 0.
func (z *Int) DivMod(x, y *Int) (*Int, *Int) {
	q, r := DivMod(x, y)
	*z = *q
	return z, r
}

// Mod sets z = x mod m and returns z.
func (z *Int) Mod(x, m *Int) *Int {
	*z = *Mod(x, m)
	return z
}

// Exp sets z = x^y (native exponent, no modulus) and returns z.
func (z *Int) Exp(x *Int, y uint64) *Int {
	*z = *Exp(x, y)
	return z
}

// Sqrt sets z = floor(sqrt(x)) and returns z.
func (z *Int) Sqrt(x *Int) *Int {
	*z = *Sqrt(x)
	return z
}

// Uint64 returns the low 64 bits of x's value: valid only when the
// caller already knows x fits in a uint64 (e.g. after a ModUint64
// reduction).
func (x *Int) Uint64() uint64 {
	var v uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		v = v*base + uint64(x.digits[i])
	}
	return v
}

// IsEven reports whether x is divisible by two.
func (x *Int) IsEven() bool {
	return x.digits[0]%2 == 0
}

// Bytes returns the big-endian base-256 encoding of x; SetBytes is its
// inverse.
func (x *Int) Bytes() []byte {
	if x.IsZero() {
		return []byte{0}
	}
	cur := x.Clone()
	var rev []byte
	for !cur.IsZero() {
		var rem uint64
		cur, rem = divModSmall(cur, 256)
		rev = append(rev, byte(rem))
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}
	return out
}

// SetBytes sets z to the value represented by the big-endian bytes buf.
func SetBytes(buf []byte) *Int {
	z := Zero()
	for _, b := range buf {
		z = Add(mulSmall(z, 256), NewFromUint64(uint64(b)))
	}
	return z
}
