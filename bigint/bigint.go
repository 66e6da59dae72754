// Copyright © 2021 Io FinNet Group, Inc.
// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package bigint implements an arbitrary-precision non-negative integer.
//
// Exponents and orders of x in GF(pⁿ) routinely exceed what a native
// uint64 can hold once p or n grow past a handful of bits, so every
// quantity that can become that large — pⁿ−1, r = (pⁿ−1)/(p−1), the
// exponent fed to polymodf.XToPower — is represented as an *Int rather
// than a native integer.
//
// Internally a value is a little-endian slice of base-B digits, B =
// 1_000_000_000. B was chosen so that B² fits comfortably under the
// widest native unsigned type (uint64) with headroom for carries, and so
// that decimal formatting is free: each digit is already nine decimal
// digits wide. Canonical form: no trailing zero digit except the single
// digit value representing zero. Every constructor and every arithmetic
// method returns a value already in canonical form.
package bigint

import (
	"strings"

	"github.com/primpoly/primpoly/common"
)

const (
	base     = 1_000_000_000
	baseDigs = 9
)

// Int is an arbitrary-precision non-negative integer. The zero value is a
// valid representation of 0. Values are copied by Clone; never alias the
// digits slice of one Int into another.
type Int struct {
	digits []uint32 // little-endian, base B, canonical (no trailing zero digit unless the value is 0)
}

// Zero returns the integer 0.
func Zero() *Int { return &Int{digits: []uint32{0}} }

// One returns the integer 1.
func One() *Int { return NewFromUint64(1) }

// NewFromUint64 constructs an Int from a native unsigned integer.
func NewFromUint64(x uint64) *Int {
	if x == 0 {
		return Zero()
	}
	var digits []uint32
	for x > 0 {
		digits = append(digits, uint32(x%base))
		x /= base
	}
	return &Int{digits: digits}
}

// ParseString parses a decimal string into an Int.
func ParseString(s string) (*Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, common.ErrRange
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, common.ErrRange
		}
	}
	// Group the decimal string into base-B chunks from the right.
	n := len(s)
	numDigits := (n + baseDigs - 1) / baseDigs
	digits := make([]uint32, numDigits)
	pos := n
	for i := 0; i < numDigits; i++ {
		start := pos - baseDigs
		if start < 0 {
			start = 0
		}
		chunk := s[start:pos]
		v, err := parseDecimalChunk(chunk)
		if err != nil {
			return nil, err
		}
		digits[i] = v
		pos = start
	}
	z := &Int{digits: digits}
	z.trim()
	return z, nil
}

func parseDecimalChunk(s string) (uint32, error) {
	var v uint32
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, common.ErrRange
		}
		v = v*10 + uint32(c-'0')
	}
	return v, nil
}

// String renders the value in decimal.
func (z *Int) String() string {
	if len(z.digits) == 0 || (len(z.digits) == 1 && z.digits[0] == 0) {
		return "0"
	}
	var sb strings.Builder
	top := len(z.digits) - 1
	sb.WriteString(itoa(z.digits[top]))
	for i := top - 1; i >= 0; i-- {
		s := itoa(z.digits[i])
		sb.WriteString(strings.Repeat("0", baseDigs-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

func itoa(x uint32) string {
	if x == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	return string(buf[i:])
}

// Clone returns an independent copy.
func (z *Int) Clone() *Int {
	d := make([]uint32, len(z.digits))
	copy(d, z.digits)
	return &Int{digits: d}
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool {
	return len(z.digits) == 0 || (len(z.digits) == 1 && z.digits[0] == 0)
}

// trim drops high-order zero digits, keeping a single zero digit for the
// value zero. Restores the canonical-form invariant after an operation.
func (z *Int) trim() {
	n := len(z.digits)
	for n > 1 && z.digits[n-1] == 0 {
		n--
	}
	if n == 0 {
		z.digits = []uint32{0}
		return
	}
	z.digits = z.digits[:n]
}

// Cmp returns -1, 0, or +1 as z is less than, equal to, or greater than y.
func (z *Int) Cmp(y *Int) int {
	if len(z.digits) != len(y.digits) {
		if len(z.digits) < len(y.digits) {
			return -1
		}
		return 1
	}
	for i := len(z.digits) - 1; i >= 0; i-- {
		if z.digits[i] != y.digits[i] {
			if z.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether z == y.
func (z *Int) Equal(y *Int) bool { return z.Cmp(y) == 0 }

// Add returns x + y.
func Add(x, y *Int) *Int {
	n := len(x.digits)
	if len(y.digits) > n {
		n = len(y.digits)
	}
	digits := make([]uint32, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(x.digits) {
			a = uint64(x.digits[i])
		}
		if i < len(y.digits) {
			b = uint64(y.digits[i])
		}
		sum := a + b + carry
		digits[i] = uint32(sum % base)
		carry = sum / base
	}
	digits[n] = uint32(carry)
	z := &Int{digits: digits}
	z.trim()
	return z
}

// Sub returns x - y. Panics with common.ErrUnderflow if y > x: BigInt is
// non-negative by invariant, and this situation only arises from a bug in
// a caller that failed to check Cmp first.
func Sub(x, y *Int) *Int {
	if x.Cmp(y) < 0 {
		panic(common.ErrUnderflow)
	}
	digits := make([]uint32, len(x.digits))
	var borrow int64
	for i := range x.digits {
		var b int64
		if i < len(y.digits) {
			b = int64(y.digits[i])
		}
		d := int64(x.digits[i]) - b - borrow
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		digits[i] = uint32(d)
	}
	z := &Int{digits: digits}
	z.trim()
	return z
}

// Mul returns x * y by schoolbook multiplication: one full carry-resolved
// pass per digit of x, so no intermediate column sum is ever allowed to
// grow large enough to risk overflowing the uint64 accumulator.
func Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	result := make([]uint64, len(x.digits)+len(y.digits))
	for i, xi := range x.digits {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y.digits {
			prod := uint64(xi)*uint64(yj) + result[i+j] + carry
			result[i+j] = prod % base
			carry = prod / base
		}
		k := i + len(y.digits)
		for carry > 0 {
			prod := result[k] + carry
			result[k] = prod % base
			carry = prod / base
			k++
		}
	}
	digits := make([]uint32, len(result))
	for i, v := range result {
		digits[i] = uint32(v)
	}
	z := &Int{digits: digits}
	z.trim()
	return z
}

// mulSmall returns x * d for a native scalar d < base.
func mulSmall(x *Int, d uint64) *Int {
	if d == 0 || x.IsZero() {
		return Zero()
	}
	digits := make([]uint32, len(x.digits)+1)
	var carry uint64
	for i, xi := range x.digits {
		prod := uint64(xi)*d + carry
		digits[i] = uint32(prod % base)
		carry = prod / base
	}
	digits[len(x.digits)] = uint32(carry)
	z := &Int{digits: digits}
	z.trim()
	return z
}

// mulByBasePow returns x * B^k: prepend k zero digits.
func mulByBasePow(x *Int, k int) *Int {
	if x.IsZero() || k == 0 {
		return x.Clone()
	}
	digits := make([]uint32, len(x.digits)+k)
	copy(digits[k:], x.digits)
	return &Int{digits: digits}
}

// ShiftLeftBase returns x * B^k — a digit shift in base B, not a bit
// shift.
func (x *Int) ShiftLeftBase(k int) *Int { return mulByBasePow(x, k) }

// ShiftRightBase returns floor(x / B^k) — drop the k lowest base-B
// digits.
func (x *Int) ShiftRightBase(k int) *Int {
	if k >= len(x.digits) {
		return Zero()
	}
	digits := make([]uint32, len(x.digits)-k)
	copy(digits, x.digits[k:])
	z := &Int{digits: digits}
	z.trim()
	return z
}

// DivMod returns (floor(x/y), x mod y). Panics with common.ErrZeroDivide
// if y == 0.
func DivMod(x, y *Int) (*Int, *Int) {
	if y.IsZero() {
		panic(common.ErrZeroDivide)
	}
	if x.Cmp(y) < 0 {
		return Zero(), x.Clone()
	}
	r := Zero()
	qDigits := make([]uint32, len(x.digits))
	for i := len(x.digits) - 1; i >= 0; i-- {
		r = Add(mulByBasePow(r, 1), NewFromUint64(uint64(x.digits[i])))
		// Binary search the largest digit d in [0, base) with y*d <= r.
		lo, hi := uint64(0), uint64(base-1)
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if mulSmall(y, mid).Cmp(r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		qDigits[i] = uint32(lo)
		r = Sub(r, mulSmall(y, lo))
	}
	q := &Int{digits: qDigits}
	q.trim()
	return q, r
}

// Mod returns x mod m.
func Mod(x, m *Int) *Int {
	_, r := DivMod(x, m)
	return r
}

// ModUint64 returns x mod m for a native modulus m.
func (x *Int) ModUint64(m uint64) uint64 {
	_, rem := divModSmall(x, m)
	return rem
}

// divModSmall divides x by a native divisor d (0 < d <= ~1.8e10, so that
// the per-digit remainder*base+digit accumulator cannot overflow a
// uint64), returning the quotient and remainder.
func divModSmall(x *Int, d uint64) (*Int, uint64) {
	if d == 0 {
		panic(common.ErrZeroDivide)
	}
	digits := make([]uint32, len(x.digits))
	var rem uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		cur := rem*base + uint64(x.digits[i])
		digits[i] = uint32(cur / d)
		rem = cur % d
	}
	z := &Int{digits: digits}
	z.trim()
	return z, rem
}

// bitsLSBFirst returns the binary expansion of x, least-significant bit
// first, computed by repeated division by two.
func (x *Int) bitsLSBFirst() []uint {
	if x.IsZero() {
		return nil
	}
	cur := x.Clone()
	var bits []uint
	for !cur.IsZero() {
		var rem uint64
		cur, rem = divModSmall(cur, 2)
		bits = append(bits, uint(rem))
	}
	return bits
}

// BitLen returns the number of bits in the binary representation of x,
// with BitLen(0) == 0.
func (x *Int) BitLen() int { return len(x.bitsLSBFirst()) }

// Bit returns the value of the i'th bit of x (0 = least significant).
func (x *Int) Bit(i int) uint {
	bits := x.bitsLSBFirst()
	if i < 0 || i >= len(bits) {
		return 0
	}
	return bits[i]
}

// Exp returns x^y (y a non-negative native exponent), with no modulus.
func Exp(x *Int, y uint64) *Int {
	result := One()
	base := x.Clone()
	for y > 0 {
		if y&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		y >>= 1
	}
	return result
}

// Sqrt returns floor(sqrt(x)) via Newton's method in Int arithmetic.
func Sqrt(x *Int) *Int {
	if x.IsZero() {
		return Zero()
	}
	if x.Cmp(NewFromUint64(4)) < 0 {
		return One()
	}
	// Initial guess: 10^ceil(numDecimalDigits/2), comfortably >= sqrt(x).
	guessDigits := (len(x.String()) + 1) / 2
	guess := Exp(NewFromUint64(10), uint64(guessDigits))
	for {
		q, _ := DivMod(x, guess)
		next := func() *Int {
			sum := Add(guess, q)
			half, _ := DivMod(sum, NewFromUint64(2))
			return half
		}()
		if next.Cmp(guess) >= 0 {
			// Converged (or started oscillating at the floor); verify and
			// step down if the initial guess overshot.
			for Mul(guess, guess).Cmp(x) > 0 {
				guess = Sub(guess, One())
			}
			return guess
		}
		guess = next
	}
}
