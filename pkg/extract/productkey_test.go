package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealradar/dealradar/pkg/extract"
)

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "amazon dp path",
			url:  "https://www.amazon.in/dp/B0CHX1W1XY",
			want: "amazon.in/dp/B0CHX1W1XY",
		},
		{
			name: "amazon affiliate params discarded",
			url:  "https://www.amazon.in/dp/B0CHX1W1XY?ref=xyz&tag=aff-21",
			want: "amazon.in/dp/B0CHX1W1XY",
		},
		{
			name: "amazon gp product path",
			url:  "https://www.amazon.in/gp/product/B0CHX1W1XY/ref=ox_sc",
			want: "amazon.in/dp/B0CHX1W1XY",
		},
		{
			name: "flipkart item path",
			url:  "https://www.flipkart.com/boat-airdopes/p/itm2f78a1e7d?pid=ACCG",
			want: "flipkart.com/p/itm2f78a1e7d",
		},
		{
			name: "flipkart pid query param",
			url:  "https://www.flipkart.com/product?pid=accg123",
			want: "flipkart.com/pid/accg123",
		},
		{
			name: "myntra numeric id",
			url:  "https://www.myntra.com/nike/air-max/12345",
			want: "myntra.com/12345",
		},
		{
			name: "unknown store host plus path",
			url:  "https://www.nykaa.com/lakme-serum/p/998877/",
			want: "www.nykaa.com/lakme-serum/p/998877",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.CanonicalURL(tt.url))
		})
	}
}

// Two affiliate variants of the same product URL must share a product key.
func TestProductKeyStableAcrossAffiliateLinks(t *testing.T) {
	t.Parallel()

	a := extract.ProductKey("https://www.amazon.in/dp/B0CHX1W1XY?tag=channel1-21")
	b := extract.ProductKey("https://amazon.in/dp/B0CHX1W1XY?tag=channel2-21&ref=tg")

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
