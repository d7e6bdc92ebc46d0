package extract_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar/pkg/extract"
)

func TestExtractPrices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		wantPrice   *float64
		wantMRP     *float64
		wantPercent *float64
	}{
		{
			name:        "explicit price mrp and percent",
			text:        "Boat Airdopes 441 at ₹999 (MRP ₹2999) - 67% Off",
			wantPrice:   fp(999),
			wantMRP:     fp(2999),
			wantPercent: fp(67),
		},
		{
			name:        "original price phrase as mrp",
			text:        "Redmi A3 now at just Rs. 6,499 (Original Price: Rs 7,999)",
			wantPrice:   fp(6499),
			wantMRP:     fp(7999),
			wantPercent: fp(19),
		},
		{
			name:      "single currency number fallback",
			text:      "Denim Jeans for Rs.799. Limited stock!",
			wantPrice: fp(799),
		},
		{
			name:        "fallback min and max split",
			text:        "Lakme serum ₹350 ₹699 grab fast",
			wantPrice:   fp(350),
			wantMRP:     fp(699),
			wantPercent: fp(50),
		},
		{
			name:      "fallback max within 10 percent is not mrp",
			text:      "Combo pack ₹950 ₹999",
			wantPrice: fp(950),
		},
		{
			name:        "mrp derived from price and percent",
			text:        "HP Laptop at Rs.35999, flat 28% off today",
			wantPrice:   fp(35999),
			wantMRP:     fp(49999),
			wantPercent: fp(28),
		},
		{
			name:        "percent outside derivation range leaves mrp empty",
			text:        "Sticker pack at Rs.99, 95% off",
			wantPrice:   fp(99),
			wantPercent: fp(95),
		},
		{
			name: "out of range numbers ignored",
			text: "Call 9876543210 for deal at Rs.5",
		},
		{
			name:      "mrp at or below price dropped",
			text:      "Kettle at Rs.999, was Rs.999",
			wantPrice: fp(999),
		},
		{
			name: "no prices at all",
			text: "Big sale starts tonight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := extract.ExtractPrices(tt.text)
			assertPrice(t, tt.wantPrice, got.DiscountPrice, "discount price")
			assertPrice(t, tt.wantMRP, got.MRP, "mrp")
			assertPrice(t, tt.wantPercent, got.DiscountPercent, "discount percent")
		})
	}
}

// Deriving the percent from a price pair and then rebuilding the MRP
// from price and percent must reproduce the original MRP within
// rounding tolerance.
func TestPriceDerivationRoundTrips(t *testing.T) {
	t.Parallel()

	pairs := []struct{ mrp, price float64 }{
		{2999, 999},
		{7999, 6499},
		{500, 250},
		{45999, 35999},
		{199, 120},
	}

	for _, pair := range pairs {
		pct := math.Round((pair.mrp - pair.price) / pair.mrp * 100)
		if pct < 10 || pct > 90 {
			continue
		}
		rebuilt := pair.price / (1 - pct/100)
		// One rounded percentage point of MRP covers the rounding error.
		tolerance := pair.mrp * 0.01
		assert.InDelta(t, pair.mrp, rebuilt, tolerance,
			"mrp %v price %v pct %v", pair.mrp, pair.price, pct)
	}
}

func assertPrice(t *testing.T, want, got *float64, field string) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got, field)
		return
	}
	require.NotNil(t, got, field)
	assert.Equal(t, *want, *got, field)
}

func fp(v float64) *float64 { return &v }
