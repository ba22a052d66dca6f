package divrem

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/divrem/internal/assert"
)

// TestSignedFamiliesAgree32 cross-checks every W=32 algorithm family's
// signed wrapper against Go's own truncated division, which is a valid
// oracle for every native width.
func TestSignedFamiliesAgree32(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(19))

	algos := []struct {
		name string
		fn   func(duo, div int32) (int32, int32)
	}{
		{"BinaryLong", IDivRemBinaryLong32},
		{"Delegate", IDivRemDelegate32},
		{"Trifecta", IDivRemTrifecta32},
		{"Asymmetric", IDivRemAsymmetric32},
	}

	for i := 0; i < 20000; i++ {
		duo, div := int32(rng.Uint32()), int32(rng.Uint32())
		if div == 0 {
			continue
		}
		wantQ, wantR := duo/div, duo%div
		for _, alg := range algos {
			q, r := alg.fn(duo, div)
			tt.MustEqual(wantQ, q, "%s quo: %d/%d", alg.name, duo, div)
			tt.MustEqual(wantR, r, "%s rem: %d/%d", alg.name, duo, div)
		}
	}
}

// TestSignedFamiliesMinValueByNegOne is spec.md S4.6's headline edge case:
// MinValue / -1 must wrap back to MinValue with a zero remainder in every
// algorithm family, matching Go's own int32 overflow behaviour, instead of
// attempting to negate MinValue into a value the type can't hold.
func TestSignedFamiliesMinValueByNegOne(t *testing.T) {
	tt := assert.WrapTB(t)
	const minI32 = -1 << 31

	algos := []struct {
		name string
		fn   func(duo, div int32) (int32, int32)
	}{
		{"BinaryLong", IDivRemBinaryLong32},
		{"Delegate", IDivRemDelegate32},
		{"Trifecta", IDivRemTrifecta32},
		{"Asymmetric", IDivRemAsymmetric32},
	}

	for _, alg := range algos {
		q, r := alg.fn(minI32, -1)
		tt.MustEqual(int32(minI32), q, "%s: MinValue/-1 quotient", alg.name)
		tt.MustEqual(int32(0), r, "%s: MinValue/-1 remainder", alg.name)
	}
}
