package divrem

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/divrem/internal/assert"
)

func TestUDivRemBinaryLongNativeWidths(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 20000; i++ {
		duo8, div8 := uint8(rng.Intn(256)), uint8(rng.Intn(256))
		if div8 != 0 {
			q, r := UDivRemBinaryLong8(duo8, div8)
			tt.MustEqual(duo8/div8, q, "8-bit quo: %d/%d", duo8, div8)
			tt.MustEqual(duo8%div8, r, "8-bit rem: %d/%d", duo8, div8)
			tt.MustEqual(q, UDivBinaryLong8(duo8, div8))
			tt.MustEqual(r, URemBinaryLong8(duo8, div8))
		}

		duo16, div16 := uint16(rng.Intn(65536)), uint16(rng.Intn(65536))
		if div16 != 0 {
			q, r := UDivRemBinaryLong16(duo16, div16)
			tt.MustEqual(duo16/div16, q, "16-bit quo: %d/%d", duo16, div16)
			tt.MustEqual(duo16%div16, r, "16-bit rem: %d/%d", duo16, div16)
		}

		duo32, div32 := rng.Uint32(), rng.Uint32()
		if div32 != 0 {
			q, r := UDivRemBinaryLong32(duo32, div32)
			tt.MustEqual(duo32/div32, q, "32-bit quo: %d/%d", duo32, div32)
			tt.MustEqual(duo32%div32, r, "32-bit rem: %d/%d", duo32, div32)
		}

		duo64, div64 := rng.Uint64(), rng.Uint64()
		if div64 != 0 {
			q, r := UDivRemBinaryLong64(duo64, div64)
			tt.MustEqual(duo64/div64, q, "64-bit quo: %d/%d", duo64, div64)
			tt.MustEqual(duo64%div64, r, "64-bit rem: %d/%d", duo64, div64)
		}
	}
}

func TestUDivRemBinaryLongEdgeCases(t *testing.T) {
	tt := assert.WrapTB(t)

	q, r := UDivRemBinaryLong32(5, 1)
	tt.MustEqual(uint32(5), q)
	tt.MustEqual(uint32(0), r)

	q, r = UDivRemBinaryLong32(3, 5)
	tt.MustEqual(uint32(0), q)
	tt.MustEqual(uint32(3), r)

	q, r = UDivRemBinaryLong32(10, 10)
	tt.MustEqual(uint32(1), q)
	tt.MustEqual(uint32(0), r)
}

func TestUDivRemBinaryLongDivisionByZeroPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		r := recover()
		tt.MustAssert(r != nil, "expected a panic")
	}()
	_, _ = UDivRemBinaryLong32(1, 0)
}

func TestIDivRemBinaryLongSigned(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(12))

	for i := 0; i < 20000; i++ {
		duo, div := int64(rng.Uint64()), int64(rng.Uint64())
		if div == 0 {
			continue
		}
		q, r := IDivRemBinaryLong64(duo, div)
		tt.MustEqual(duo/div, q, "quo: %d/%d", duo, div)
		tt.MustEqual(duo%div, r, "rem: %d/%d", duo, div)
	}

	// MinValue / -1 must not panic or misbehave.
	q, r := IDivRemBinaryLong64(int64(minInt64), -1)
	tt.MustEqual(int64(minInt64), q)
	tt.MustEqual(int64(0), r)
}

const minInt64 = -1 << 63
