/*
Package divrem provides unsigned and signed integer division and remainder
routines for widths 8, 16, 32, 64, and 128, implemented with four distinct
algorithm families:

  - BinaryLong: restoring shift-and-subtract long division. Needs no
    division hardware at all, not even a half-width one.
  - Delegate: short division that needs only H-by-H hardware division and
    falls back to BinaryLong when the divisor doesn't fit in H.
  - Trifecta: assumes both a fast multiplier and a fast divider; uses a
    zero-or-one quotient shortcut and an estimate-then-correct general case.
  - Asymmetric: uses a single full-width-by-half-width hardware divide
    instruction (the amd64 DIVQ family) when the operands fit its
    precondition, and otherwise finishes with its own short-division or
    normalized wide-case branch built on the same divide.

Each family is exported as UDivRem<Alg><W>/IDivRem<Alg><W> plus
UDiv<Alg><W>/URem<Alg><W> quotient-only/remainder-only specializations, for
every width that algorithm applies to (W=8 only has BinaryLong — there is
no half-width hardware division primitive to delegate to).

U128 and I128 are the value types backing the W=128 family; their QuoRem
methods pick between UDivRemDelegate128 and UDivRemTrifecta128 by the
operands' relative dynamic range (the gap between their leading-zero
counts), after a direct 64-bit division when both operands fit in 64 bits.
Every division and remainder
operation in this package panics with ErrDivisionByZero when the divisor is
zero.
*/
package divrem
