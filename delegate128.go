package divrem

// UDivRemDelegate128 computes duo/div the way a target with no 128-by-64
// hardware divider would: whenever div reduces to a single 64-bit limb it
// delegates to one 64-by-64 division plus, if duo doesn't fit in 64 bits
// either, one divlu64 combine step; otherwise it falls back to shift-and-
// subtract binary long division. Notably absent is any use of Mul — unlike
// trifecta128, this family never assumes a fast multiplier is available.
//
// Grounded on the teacher's quorem128by128 (the div.hi == 0 branch, which
// this generalizes the duo.hi != 0 sub-case of) and on
// original_source/src/delegate.rs's div_hi == 0 short-division case.
//
// Panics with ErrDivisionByZero if div is zero.
func UDivRemDelegate128(duo, div U128) (quo, rem U128) {
	if div.IsZero() {
		panic(ErrDivisionByZero)
	}

	switch {
	case div.hi != 0 && duo.hi == 0:
		return U128{}, duo

	case div.hi == 0 && duo.hi == 0:
		return U128{lo: duo.lo / div.lo}, U128{lo: duo.lo % div.lo}

	case div.hi == 0:
		quoHi := duo.hi / div.lo
		remHi := duo.hi % div.lo
		quoLo, remLo := divlu64(remHi, duo.lo, div.lo)
		return U128{hi: quoHi, lo: quoLo}, U128{lo: remLo}

	default:
		return UDivRemBinaryLong128(duo, div)
	}
}

// UDivDelegate128 is the quotient-only specialization of UDivRemDelegate128.
func UDivDelegate128(duo, div U128) (quo U128) {
	quo, _ = UDivRemDelegate128(duo, div)
	return quo
}

// URemDelegate128 is the remainder-only specialization of UDivRemDelegate128.
func URemDelegate128(duo, div U128) (rem U128) {
	_, rem = UDivRemDelegate128(duo, div)
	return rem
}

// IDivRemDelegate128 is the signed wrapper for UDivRemDelegate128.
func IDivRemDelegate128(duo, div I128) (quo, rem I128) {
	return signedDivRem128(duo, div, UDivRemDelegate128)
}
