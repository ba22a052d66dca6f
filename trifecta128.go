package divrem

import "math/bits"

// UDivRemTrifecta128 computes duo/div for a target assumed to have both a
// fast multiplier and a fast (at least half-width) divider. When div fits
// in a single 64-bit limb it is the same short division UDivRemDelegate128
// uses; otherwise it estimates the top 64 bits of the quotient with one
// divlu64 call, corrects it by at most one decrement (the "mul or
// mul-minus-one" trick), and confirms the result with a single 128-by-128
// multiply and subtract — the step delegate128 avoids entirely.
//
// Grounded directly on the teacher's quorem128by128 and quo128by64
// (Hacker's Delight 9-4's "estimate, then multiply back to check" shape),
// restated using divlu64 in place of the teacher's hand-inlined version.
//
// Panics with ErrDivisionByZero if div is zero.
func UDivRemTrifecta128(duo, div U128) (quo, rem U128) {
	if div.IsZero() {
		panic(ErrDivisionByZero)
	}

	if div.hi == 0 {
		if duo.hi == 0 {
			return U128{lo: duo.lo / div.lo}, U128{lo: duo.lo % div.lo}
		}
		quoHi := duo.hi / div.lo
		remHi := duo.hi % div.lo
		quoLo, remLo := divlu64(remHi, duo.lo, div.lo)
		return U128{hi: quoHi, lo: quoLo}, U128{lo: remLo}
	}

	// div.hi != 0: estimate the quotient from the top 64 bits of each
	// operand after normalizing div so its msb is set, then fix up the
	// at-most-one-off estimate with a single confirming multiply.
	sh := uint(bits.LeadingZeros64(div.hi))
	v1 := div.Lsh(sh)
	u1 := duo.Rsh(1)

	qLo, _ := divlu64(u1.hi, u1.lo, v1.hi)
	q := U128{lo: qLo}
	q = q.Rsh(63 - sh)
	if !q.IsZero() {
		q = q.Dec()
	}

	prod := q.Mul(div)
	r := duo.Sub(prod)
	if r.GreaterOrEqualTo(div) {
		q = q.Inc()
		r = r.Sub(div)
	}

	return q, r
}

// UDivTrifecta128 is the quotient-only specialization of UDivRemTrifecta128.
func UDivTrifecta128(duo, div U128) (quo U128) {
	quo, _ = UDivRemTrifecta128(duo, div)
	return quo
}

// URemTrifecta128 is the remainder-only specialization of UDivRemTrifecta128.
func URemTrifecta128(duo, div U128) (rem U128) {
	_, rem = UDivRemTrifecta128(duo, div)
	return rem
}

// IDivRemTrifecta128 is the signed wrapper for UDivRemTrifecta128.
func IDivRemTrifecta128(duo, div I128) (quo, rem I128) {
	return signedDivRem128(duo, div, UDivRemTrifecta128)
}
