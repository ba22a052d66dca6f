package divrem

// asymmetric computes duo/div using the single full-width-by-half-width
// hardware divide collaborator of spec.md S4.5 (the x86-64 DIVQ family):
// when div fits in H and the quotient is guaranteed to fit in H too, one
// divNarrow call does the entire division. Real asymmetric dividers fault
// when the quotient overflows the destination half, so that overflow check
// (duoHi < divH) is load-bearing, not defensive filler — it is the actual
// precondition the hardware primitive has. When div fits in H but the
// quotient doesn't, one more divNarrow call finishes a short division (the
// same shape as delegate's). Otherwise div needs both halves, and the wide
// case normalizes it, halves duo so the estimate can't overflow, and uses
// one divNarrow call plus a single confirming multiply — distinct from
// trifecta's H-by-H-only approach, since asymmetric is the one family
// allowed to assume this wider divide primitive exists at all.
//
// Grounded on original_source/src/asymmetric.rs's div_lo/duo_hi overflow
// guard and its own short-division and wide-case branches (not trifecta's
// "mul or mul-1" branch, which exists in the reference only as a
// performance special case for CPUs with slow wide dividers and is not
// needed here), and on UDivRemAsymmetric128 which uses math/bits.Div64 as
// the same collaborator at the one width where it is a real machine
// instruction rather than a native D division.
func asymmetric[D, H Unsigned](duo, div D) (quo, rem D) {
	if div == 0 {
		panic(ErrDivisionByZero)
	}

	nH := bitSizeOf[H]()
	divLo := H(div)
	divHi := H(div >> uint(nH))
	duoHi := H(duo >> uint(nH))

	if divHi == 0 {
		if duoHi < divLo {
			q, r := divNarrow[H, D](duo, divLo)
			return D(q), D(r)
		}

		// div fits in H but the quotient doesn't: one H-by-H step for the
		// top half, then one divNarrow call combines the rest.
		duoLo := H(duo)
		quoHi, remHi := halfDivRem(duoHi, divLo)
		mid := (D(remHi) << uint(nH)) | D(duoLo)
		quoLo, remLo := divNarrow[H, D](mid, divLo)
		return (D(quoHi) << uint(nH)) | D(quoLo), D(remLo)
	}

	// Wide case: normalize div so its top half's leading bit is set, halve
	// duo so the estimate can't overflow, and let one divNarrow call do the
	// division the hardware primitive exists for; a single confirming
	// multiply, correcting by at most one increment, fixes the estimate.
	sh := uint(lz(divHi))
	v1 := div << sh
	u1 := duo >> 1

	qLo, _ := divNarrow[H, D](u1, H(v1>>uint(nH)))
	q := D(qLo) >> (uint(nH) - 1 - sh)
	if q != 0 {
		q--
	}

	prod := q * div
	r := duo - prod
	if r >= div {
		q++
		r -= div
	}
	return q, r
}

// UDivRemAsymmetric16 is the D=16/H=8 instance of asymmetric.
func UDivRemAsymmetric16(duo, div uint16) (quo, rem uint16) {
	return asymmetric[uint16, uint8](duo, div)
}

// UDivRemAsymmetric32 is the D=32/H=16 instance of asymmetric.
func UDivRemAsymmetric32(duo, div uint32) (quo, rem uint32) {
	return asymmetric[uint32, uint16](duo, div)
}

// UDivRemAsymmetric64 is the D=64/H=32 instance of asymmetric.
func UDivRemAsymmetric64(duo, div uint64) (quo, rem uint64) {
	return asymmetric[uint64, uint32](duo, div)
}

func UDivAsymmetric16(duo, div uint16) uint16 { q, _ := UDivRemAsymmetric16(duo, div); return q }
func URemAsymmetric16(duo, div uint16) uint16 { _, r := UDivRemAsymmetric16(duo, div); return r }

func UDivAsymmetric32(duo, div uint32) uint32 { q, _ := UDivRemAsymmetric32(duo, div); return q }
func URemAsymmetric32(duo, div uint32) uint32 { _, r := UDivRemAsymmetric32(duo, div); return r }

func UDivAsymmetric64(duo, div uint64) uint64 { q, _ := UDivRemAsymmetric64(duo, div); return q }
func URemAsymmetric64(duo, div uint64) uint64 { _, r := UDivRemAsymmetric64(duo, div); return r }

// IDivRemAsymmetric16/32/64 are the signed wrappers of spec.md S4.6.
func IDivRemAsymmetric16(duo, div int16) (quo, rem int16) {
	return signedDivRem[uint16](duo, div, UDivRemAsymmetric16)
}

func IDivRemAsymmetric32(duo, div int32) (quo, rem int32) {
	return signedDivRem[uint32](duo, div, UDivRemAsymmetric32)
}

func IDivRemAsymmetric64(duo, div int64) (quo, rem int64) {
	return signedDivRem[uint64](duo, div, UDivRemAsymmetric64)
}
