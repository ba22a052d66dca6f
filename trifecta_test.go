package divrem

import (
	"math/rand"
	"testing"

	"github.com/shabbyrobe/divrem/internal/assert"
)

func TestUDivRemTrifectaNativeWidths(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(15))

	for i := 0; i < 20000; i++ {
		duo16, div16 := uint16(rng.Intn(65536)), uint16(rng.Intn(65536))
		if div16 != 0 {
			q, r := UDivRemTrifecta16(duo16, div16)
			tt.MustEqual(duo16/div16, q, "16-bit quo: %d/%d", duo16, div16)
			tt.MustEqual(duo16%div16, r, "16-bit rem: %d/%d", duo16, div16)
		}

		duo32, div32 := rng.Uint32(), rng.Uint32()
		if div32 != 0 {
			q, r := UDivRemTrifecta32(duo32, div32)
			tt.MustEqual(duo32/div32, q, "32-bit quo: %d/%d", duo32, div32)
			tt.MustEqual(duo32%div32, r, "32-bit rem: %d/%d", duo32, div32)
			tt.MustEqual(q, UDivTrifecta32(duo32, div32))
			tt.MustEqual(r, URemTrifecta32(duo32, div32))
		}

		duo64, div64 := rng.Uint64(), rng.Uint64()
		if div64 != 0 {
			q, r := UDivRemTrifecta64(duo64, div64)
			tt.MustEqual(duo64/div64, q, "64-bit quo: %d/%d", duo64, div64)
			tt.MustEqual(duo64%div64, r, "64-bit rem: %d/%d", duo64, div64)
		}
	}
}

// TestUDivRemTrifectaRegimes targets the zero-or-one quotient shortcut and
// the smaller-division shortcut directly.
func TestUDivRemTrifectaRegimes(t *testing.T) {
	tt := assert.WrapTB(t)

	q, r := UDivRemTrifecta32(5, 100)
	tt.MustEqual(uint32(0), q)
	tt.MustEqual(uint32(5), r)

	q, r = UDivRemTrifecta32(150, 100)
	tt.MustEqual(uint32(1), q)
	tt.MustEqual(uint32(50), r)

	q, r = UDivRemTrifecta32(300, 7) // duo fits in uint16
	tt.MustEqual(uint32(300/7), q)
	tt.MustEqual(uint32(300%7), r)

	q, r = UDivRemTrifecta32(0xABCD1234, 0x1234) // div fits in uint16: short division
	tt.MustEqual(uint32(0xABCD1234/0x1234), q)
	tt.MustEqual(uint32(0xABCD1234%0x1234), r)

	q, r = UDivRemTrifecta32(0xABCD1234, 0x00012345) // div doesn't fit in H: general case
	tt.MustEqual(uint32(0xABCD1234/0x00012345), q)
	tt.MustEqual(uint32(0xABCD1234%0x00012345), r)
}

func TestIDivRemTrifectaSigned(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(16))

	for i := 0; i < 20000; i++ {
		duo, div := int32(rng.Uint32()), int32(rng.Uint32())
		if div == 0 {
			continue
		}
		q, r := IDivRemTrifecta32(duo, div)
		tt.MustEqual(duo/div, q, "quo: %d/%d", duo, div)
		tt.MustEqual(duo%div, r, "rem: %d/%d", duo, div)
	}
}
