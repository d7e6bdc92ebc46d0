package extract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar/pkg/extract"
	domain "github.com/dealradar/dealradar/pkg/types"
)

func TestExtractFullMessage(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := extract.New(extract.WithClock(func() time.Time { return now }))

	raw := "🔥 Amazon Deal: Boat Airdopes 441 at ₹999 (MRP ₹2999) – 67% Off. Buy Now: https://amzn.to/xxxx"
	deal := e.Extract(raw)

	assert.Equal(t, domain.StoreAmazon, deal.Store)
	assert.Equal(t, "Boat Airdopes 441", deal.Title)
	require.NotNil(t, deal.DiscountPrice)
	assert.Equal(t, 999.0, *deal.DiscountPrice)
	require.NotNil(t, deal.MRP)
	assert.Equal(t, 2999.0, *deal.MRP)
	require.NotNil(t, deal.DiscountPercent)
	assert.Equal(t, 67.0, *deal.DiscountPercent)
	assert.Equal(t, "https://amzn.to/xxxx", deal.Link)
	assert.Equal(t, "electronics", deal.Category)
	assert.Equal(t, now, deal.ObservedAt)
}

func TestExtractNeverFails(t *testing.T) {
	t.Parallel()

	e := extract.New()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty message", raw: ""},
		{name: "whitespace only", raw: "   \n\t  "},
		{name: "emoji only", raw: "🔥🔥🔥💥"},
		{name: "url only", raw: "https://amzn.to/xxxx"},
		{name: "generic promo", raw: "Big Bold Sale!! Don't miss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			deal := e.Extract(tt.raw)
			assert.Equal(t, extract.TitleSentinel, deal.Title)
			assert.Nil(t, deal.DiscountPrice)
		})
	}
}

func TestExtractMultilineMessage(t *testing.T) {
	t.Parallel()

	e := extract.New()
	raw := `⚡🔥💥 Amazon Lightning Deal!
Samsung Galaxy M14 5G
MRP: ₹14,999
Deal Price: ₹9,999
Discount: 33%
🔗 https://amzn.to/samsung-m14`

	deal := e.Extract(raw)

	assert.Equal(t, domain.StoreAmazon, deal.Store)
	assert.Equal(t, "Samsung Galaxy M14 5G", deal.Title)
	require.NotNil(t, deal.DiscountPrice)
	assert.Equal(t, 9999.0, *deal.DiscountPrice)
	require.NotNil(t, deal.MRP)
	assert.Equal(t, 14999.0, *deal.MRP)
	assert.Equal(t, "https://amzn.to/samsung-m14", deal.Link)
}

// Titles that survive one extraction pass must come back unchanged when
// fed through again.
func TestExtractTitleIdempotent(t *testing.T) {
	t.Parallel()

	e := extract.New()
	raws := []string{
		"🔥 Amazon Deal: Boat Airdopes 441 at ₹999 (MRP ₹2999) – 67% Off. Buy Now: https://amzn.to/xxxx",
		"Flipkart Offer!! Redmi A3 now at just Rs. 6499 (Original Price: Rs 7999). Link: https://fkrt.it/xxxxx",
		"Nykaa Deal! Lakme Foundation only ₹350 (MRP ₹699) - 50% off",
	}

	for _, raw := range raws {
		first := e.Extract(raw).Title
		if first == extract.TitleSentinel {
			continue
		}
		second := e.Extract(first).Title
		assert.Equal(t, first, second, "title changed on re-extraction: %q", raw)
	}
}

func TestDetectStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want domain.Store
	}{
		{name: "amazon by name", text: "Amazon Deal of the day", want: domain.StoreAmazon},
		{name: "amazon by short link", text: "grab it amzn.to/xyz", want: domain.StoreAmazon},
		{name: "flipkart by short link", text: "link fkrt.it/abc", want: domain.StoreFlipkart},
		{name: "myntra", text: "MYNTRA SALE live now", want: domain.StoreMyntra},
		{name: "nykaa", text: "Nykaa Deal! Lakme Foundation", want: domain.StoreNykaa},
		{name: "unknown store", text: "random store promo", want: domain.StoreOther},
		{name: "amazon wins mixed roundup", text: "amazon and flipkart loot", want: domain.StoreAmazon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.DetectStore(tt.text))
		})
	}
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "electronics", text: "Boat Rockerz 450 Bluetooth Headphone", want: "electronics"},
		{name: "fashion", text: "Levis Jeans and Sneakers combo", want: "fashion"},
		{name: "beauty", text: "Lakme Foundation and Lipstick", want: "beauty"},
		{name: "multi word keyword weighs more", text: "aquaguard water purifier", want: "home"},
		{name: "no match", text: "gift voucher bonanza", want: extract.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.Categorize(tt.text))
		})
	}
}
