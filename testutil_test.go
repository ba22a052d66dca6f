package divrem

import (
	"math/big"
	"math/rand"

	"github.com/davecgh/go-spew/spew"
)

// bigFromU128 and bigFromI128 are test-only big.Int conversions. Production
// code has no need of an arbitrary-precision representation (that's
// exactly what this package's Non-goals exclude), but the test suite wants
// an independent oracle to check every algorithm family against.
func bigFromU128(u U128) *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	b.Add(b, new(big.Int).SetUint64(u.lo))
	return b
}

func bigFromI128(i I128) *big.Int {
	b := bigFromU128(U128{hi: i.hi, lo: i.lo})
	if i.hi&signBit != 0 {
		b.Sub(b, wrapBigU128)
	}
	return b
}

var wrapBigU128 = func() *big.Int {
	b, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 1 << 128
	return b
}()

// randU128 draws a pseudo-random U128, weighted towards small bit-lengths so
// that boundary-adjacent divisors and dividends (a handful of leading zero
// bits apart) show up often instead of being swamped by uniformly-random
// full-width operands.
func randU128(rng *rand.Rand) U128 {
	bitLen := rng.Intn(129)
	var u U128
	if bitLen > 64 {
		u.hi = rng.Uint64() >> uint(128-bitLen)
		u.lo = rng.Uint64()
	} else if bitLen > 0 {
		u.lo = rng.Uint64() >> uint(64-bitLen)
	}
	return u
}

func randU64(rng *rand.Rand, bits int) uint64 {
	if bits <= 0 {
		return 0
	}
	if bits >= 64 {
		return rng.Uint64()
	}
	return rng.Uint64() >> uint(64-bits)
}

// dumpOnFailure formats a failing case with go-spew so a test failure shows
// the exact struct layout of the 128-bit operands involved, rather than
// Go's default %v rendering of unexported hi/lo fields.
func dumpOnFailure(t interface{ Fatalf(string, ...interface{}) }, label string, args ...interface{}) {
	t.Fatalf("%s\n%s", label, spew.Sdump(args...))
}
