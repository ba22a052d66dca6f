package divrem

// signedDivRem is the generic sign-then-magnitude-then-fixup wrapper of
// spec.md S4.6, shared by every native-width signed entry point regardless
// of which unsigned algorithm family backs it. duo and div are negated with
// plain S arithmetic before the cast to U: Go's signed overflow on -duo is
// defined to wrap (not panic), and for S's MinValue that wraparound leaves
// duo still negative but with the exact two's-complement bit pattern that,
// reinterpreted as U, is duo's true magnitude — so MinValue needs no special
// case here.
func signedDivRem[U Unsigned, S Signed](duo, div S, unsignedOp func(U, U) (U, U)) (quo, rem S) {
	qSign, rSign := S(1), S(1)
	if duo < 0 {
		qSign, rSign = -1, -1
		duo = -duo
	}
	if div < 0 {
		qSign = -qSign
		div = -div
	}

	uq, ur := unsignedOp(U(duo), U(div))
	quo, rem = S(uq), S(ur)
	if qSign < 0 {
		quo = -quo
	}
	if rSign < 0 {
		rem = -rem
	}
	return quo, rem
}

// signedDivRem128 is signedDivRem's I128/U128 counterpart. I128 has no
// operators to make it a Signed type-set member, so the same wrapper shape
// is spelled out by hand against I128's own Neg/LessThan/AsU128/AsI128.
// Mirrors the teacher's original I128.QuoRem sign handling.
func signedDivRem128(duo, div I128, unsignedOp func(U128, U128) (U128, U128)) (quo, rem I128) {
	qSign, rSign := 1, 1
	if duo.LessThan(zeroI128) {
		qSign, rSign = -1, -1
		duo = duo.Neg()
	}
	if div.LessThan(zeroI128) {
		qSign = -qSign
		div = div.Neg()
	}

	uq, ur := unsignedOp(duo.AsU128(), div.AsU128())
	quo, rem = uq.AsI128(), ur.AsI128()
	if qSign < 0 {
		quo = quo.Neg()
	}
	if rSign < 0 {
		rem = rem.Neg()
	}
	return quo, rem
}
