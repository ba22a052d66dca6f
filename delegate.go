package divrem

// delegate computes duo/div for a full-width D by dispatching to whatever
// smaller division actually suffices, per spec.md S4.3. It never assumes a
// D-by-H hardware divider exists (that assumption belongs to the asymmetric
// family) — only H-by-H division (halfDivRem) and the generic divNarrow
// combine step used to assemble a short-division result. This is the
// algorithm a target with a register size smaller than D, but no fast
// division hardware wider than a native register, would want.
//
// Grounded on original_source/src/delegate.rs's four-way case split on
// (div_lo == 0, div_hi == 0, duo_hi == 0); collapsed to fixed two-limb D/H
// widths instead of the reference's arbitrary-precision quarter-limb
// short-division loop.
func delegate[D, H Unsigned](duo, div D) (quo, rem D) {
	n := bitSizeOf[H]()

	divLo := H(div)
	divHi := H(div >> uint(n))
	duoLo := H(duo)
	duoHi := H(duo >> uint(n))

	switch {
	case divLo == 0 && divHi == 0:
		panic(ErrDivisionByZero)

	case divHi != 0 && duoHi == 0:
		// div has a nonzero high half but duo doesn't reach it: duo < div.
		return 0, duo

	case divHi == 0 && duoHi == 0:
		// Both operands fit in H: delegate straight to H-by-H division.
		q, r := halfDivRem(duoLo, divLo)
		return D(q), D(r)

	case divHi == 0:
		// div fits in H but duo doesn't: short division. The high half of
		// the quotient and its remainder come from one H-by-H step; the
		// remainder is then paired with duo's low half and the low half of
		// the quotient falls out of a single divNarrow combine.
		quoHi, remHi := halfDivRem(duoHi, divLo)
		mid := (D(remHi) << uint(n)) | D(duoLo)
		quoLo, remLo := divNarrow[H, D](mid, divLo)
		return (D(quoHi) << uint(n)) | D(quoLo), D(remLo)

	default:
		// Neither operand fits in H: no smaller division to delegate to,
		// fall back to full-width binary long division.
		return binaryLong[D](duo, div)
	}
}

// UDivRemDelegate16 is the D=16/H=8 instance of delegate.
func UDivRemDelegate16(duo, div uint16) (quo, rem uint16) {
	return delegate[uint16, uint8](duo, div)
}

// UDivRemDelegate32 is the D=32/H=16 instance of delegate.
func UDivRemDelegate32(duo, div uint32) (quo, rem uint32) {
	return delegate[uint32, uint16](duo, div)
}

// UDivRemDelegate64 is the D=64/H=32 instance of delegate.
func UDivRemDelegate64(duo, div uint64) (quo, rem uint64) {
	return delegate[uint64, uint32](duo, div)
}

func UDivDelegate16(duo, div uint16) uint16 { q, _ := UDivRemDelegate16(duo, div); return q }
func URemDelegate16(duo, div uint16) uint16 { _, r := UDivRemDelegate16(duo, div); return r }

func UDivDelegate32(duo, div uint32) uint32 { q, _ := UDivRemDelegate32(duo, div); return q }
func URemDelegate32(duo, div uint32) uint32 { _, r := UDivRemDelegate32(duo, div); return r }

func UDivDelegate64(duo, div uint64) uint64 { q, _ := UDivRemDelegate64(duo, div); return q }
func URemDelegate64(duo, div uint64) uint64 { _, r := UDivRemDelegate64(duo, div); return r }

// IDivRemDelegate16/32/64 are the signed wrappers of spec.md S4.6.
func IDivRemDelegate16(duo, div int16) (quo, rem int16) {
	return signedDivRem[uint16](duo, div, UDivRemDelegate16)
}

func IDivRemDelegate32(duo, div int32) (quo, rem int32) {
	return signedDivRem[uint32](duo, div, UDivRemDelegate32)
}

func IDivRemDelegate64(duo, div int64) (quo, rem int64) {
	return signedDivRem[uint64](duo, div, UDivRemDelegate64)
}
