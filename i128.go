package divrem

import "math/bits"

// I128 is a signed 128-bit integer value type, stored as two uint64 limbs
// in two's complement. It exists so the signed entry points of every
// 128-bit algorithm family have somewhere to report signed results.
type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit = 0x8000000000000000
)

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxU128/2.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128 without sign loss
// (i.e. i is non-negative).
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) {
	v.lo = i.lo + 1
	v.hi = i.hi
	if i.lo > v.lo {
		v.hi++
	}
	return v
}

func (i I128) Dec() (v I128) {
	v.lo = i.lo - 1
	v.hi = i.hi
	if i.lo < v.lo {
		v.hi--
	}
	return v
}

func (i I128) Add(n I128) (v I128) {
	v.lo = i.lo + n.lo
	v.hi = i.hi + n.hi
	if i.lo > v.lo {
		v.hi++
	}
	return v
}

func (i I128) Sub(n I128) (out I128) {
	out.lo = i.lo - n.lo
	out.hi = i.hi - n.hi
	if i.lo < out.lo {
		out.hi--
	}
	return out
}

// Neg returns -i. -MinI128 overflows back to MinI128, matching Go's own
// signed-overflow wraparound semantics.
func (i I128) Neg() (v I128) {
	if i.hi == 0 && i.lo == 0 {
		return v
	}
	if i == MinI128 {
		return i
	}

	v.hi = ^i.hi
	v.lo = (^i.lo) + 1
	if v.lo == 0 {
		v.hi++
	}
	return v
}

func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

// Mul returns the product of two I128s. Overflow wraps around, as per the
// Go spec. Two's-complement truncated multiplication is bit-for-bit
// identical to unsigned multiplication, so this is the same low*low
// widening-multiply-plus-cross-terms U128.Mul uses.
func (i I128) Mul(n I128) (dest I128) {
	hi, lo := bits.Mul64(i.lo, n.lo)
	dest.lo = lo
	dest.hi = hi + i.hi*n.lo + i.lo*n.hi
	return dest
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, this
// panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The unsigned division is dispatched via U128.QuoRem, which picks between
// UDivRemDelegate128 and UDivRemTrifecta128 by dynamic range.
func (i I128) QuoRem(by I128) (q, r I128) {
	return signedDivRem128(i, by, func(u, v U128) (U128, U128) { return u.QuoRem(v) })
}

// Quo returns the quotient x/y for y != 0. If y == 0, this panics with
// ErrDivisionByZero. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, this panics with
// ErrDivisionByZero. Rem implements truncated modulus (like Go); see QuoRem
// for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}
