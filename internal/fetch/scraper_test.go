package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gocolly/colly/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dealradar/dealradar/pkg/types"
)

func serveHTML(t *testing.T, html string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// extractWith runs a selector cascade against a served HTML fixture.
func extractWith(t *testing.T, html string, register func(*colly.Collector, *domain.ProductPage)) *domain.ProductPage {
	t.Helper()
	page := &domain.ProductPage{}
	c := colly.NewCollector(colly.UserAgent(userAgent))
	register(c, page)
	require.NoError(t, c.Visit(serveHTML(t, html)))
	return page
}

const amazonFixture = `<html><body>
<span id="productTitle"> boAt Airdopes 141 Bluetooth Truly Wireless Earbuds </span>
<span class="a-price"><span class="a-price-whole">1,299</span></span>
<span class="a-price a-text-price"><span class="a-offscreen">₹4,490</span></span>
<div id="availability"><span>
  In Stock.
</span></div>
<span class="a-icon-alt">4.1 out of 5 stars</span>
<span id="acrCustomerReviewText">1,58,742 ratings</span>
<a id="sellerProfileTriggerId" href="/sp?seller=A1X2">RetailNet</a>
<div id="merchant-info">Ships from Amazon. Sold by RetailNet.</div>
<span id="seller-rating">92% positive in the last 12 months</span>
<img id="landingImage" src="https://m.media-amazon.com/images/I/airdopes.jpg"/>
</body></html>`

func TestAmazonSelectors(t *testing.T) {
	t.Parallel()

	page := extractWith(t, amazonFixture, registerAmazon)

	assert.Equal(t, "boAt Airdopes 141 Bluetooth Truly Wireless Earbuds", page.Title)
	require.NotNil(t, page.OfferPrice)
	assert.InDelta(t, 1299, *page.OfferPrice, 0.001)
	require.NotNil(t, page.MRP)
	assert.InDelta(t, 4490, *page.MRP, 0.001)
	assert.Equal(t, "In Stock.", page.Availability)
	assert.InDelta(t, 4.1, page.Rating, 0.001)
	assert.Equal(t, 158742, page.ReviewCount)
	assert.Equal(t, "RetailNet", page.SellerName)
	assert.False(t, page.FulfilledByPlatform)
	assert.InDelta(t, 92, page.SellerRating, 0.001)
	assert.Equal(t, "https://m.media-amazon.com/images/I/airdopes.jpg", page.ImageURL)
}

func TestAmazonFulfilledByPlatform(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<span id="productTitle">Echo Dot (5th Gen)</span>
<span class="a-price"><span class="a-price-whole">4,449</span></span>
<div id="merchant-info">Sold by Amazon and Fulfilled by Amazon.</div>
</body></html>`

	page := extractWith(t, html, registerAmazon)

	assert.True(t, page.FulfilledByPlatform)
	assert.Equal(t, "Amazon", page.SellerName)
}

func TestAmazonMerchantInfoSoldBy(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<span id="productTitle">Prestige Pressure Cooker 5L</span>
<span class="a-price"><span class="a-price-whole">1,849</span></span>
<div id="merchant-info">Ships from warehouse and sold by KitchenKart India.</div>
</body></html>`

	page := extractWith(t, html, registerAmazon)

	assert.Equal(t, "KitchenKart India", page.SellerName)
	assert.False(t, page.FulfilledByPlatform)
}

func TestFlipkartSelectors(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<span class="VU-ZEz">Nike Revolution 6 NN Running Shoes For Men</span>
<div class="Nx9bqj CxhGGd">₹2,495</div>
<div class="yRaY8j A6sdqc">₹4,995</div>
<div class="XQDdHH">4.3</div>
<img class="DByuf4" src="https://rukminim2.flixcart.com/image/shoe.jpg"/>
</body></html>`

	page := extractWith(t, html, registerFlipkart)

	assert.Equal(t, "Nike Revolution 6 NN Running Shoes For Men", page.Title)
	require.NotNil(t, page.OfferPrice)
	assert.InDelta(t, 2495, *page.OfferPrice, 0.001)
	require.NotNil(t, page.MRP)
	assert.InDelta(t, 4995, *page.MRP, 0.001)
	assert.InDelta(t, 4.3, page.Rating, 0.001)
	assert.Equal(t, "https://rukminim2.flixcart.com/image/shoe.jpg", page.ImageURL)
}

func TestFlipkartStrikethroughFallback(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<h1 class="yhB1nd">Fastrack Reflex Smartwatch</h1>
<div class="Nx9bqj">₹1,199</div>
<del>₹3,995</del>
</body></html>`

	page := extractWith(t, html, registerFlipkart)

	assert.Equal(t, "Fastrack Reflex Smartwatch", page.Title)
	require.NotNil(t, page.MRP)
	assert.InDelta(t, 3995, *page.MRP, 0.001)
}

func TestFetchGenericJSONLD(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta property="og:image" content="https://cdn.example.com/kettle.jpg"/>
<script type="application/ld+json">
{"@type":"Product","name":"Prestige Electric Kettle",
 "offers":{"price":"1099.00","availability":"https://schema.org/InStock"},
 "aggregateRating":{"ratingValue":4.2,"reviewCount":"3521"}}
</script>
</head><body><h1>Prestige Electric Kettle 1.5L</h1></body></html>`

	s := NewScraper()
	page, err := s.Fetch(context.Background(), serveHTML(t, html))
	require.NoError(t, err)

	assert.Equal(t, "Prestige Electric Kettle 1.5L", page.Title)
	require.NotNil(t, page.OfferPrice)
	assert.InDelta(t, 1099, *page.OfferPrice, 0.001)
	assert.Equal(t, "InStock", page.Availability)
	assert.InDelta(t, 4.2, page.Rating, 0.001)
	assert.Equal(t, 3521, page.ReviewCount)
	assert.Equal(t, "https://cdn.example.com/kettle.jpg", page.ImageURL)
}

func TestFetchNoProductData(t *testing.T) {
	t.Parallel()

	s := NewScraper()
	_, err := s.Fetch(context.Background(), serveHTML(t, `<html><body><p>nothing here</p></body></html>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no product data")
}

func TestFetchDailyLimit(t *testing.T) {
	t.Parallel()

	html := `<html><body><h1>Some Product</h1>
<script type="application/ld+json">{"@type":"Product","name":"Some Product","offers":{"price":499}}</script>
</body></html>`
	pageURL := serveHTML(t, html)

	s := NewScraper(WithRateLimiter(NewRateLimiter(100, 100, 1)))

	_, err := s.Fetch(context.Background(), pageURL)
	require.NoError(t, err)

	_, err = s.Fetch(context.Background(), pageURL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"rupee with commas", "₹1,299.00", floatPtrOf(1299)},
		{"indian grouping", "MRP: ₹1,23,456", floatPtrOf(123456)},
		{"plain number", "2495", floatPtrOf(2495)},
		{"zero is unusable", "₹0", nil},
		{"no digits", "Currently unavailable", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parsePrice(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.001)
		})
	}
}

func floatPtrOf(v float64) *float64 { return &v }
