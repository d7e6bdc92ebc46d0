package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dealradar/dealradar/pkg/types"
)

func fp(v float64) *float64 { return &v }

func testDeal(score int) DealPayload {
	return DealPayload{
		Title:           "boAt Airdopes 141 Bluetooth Earbuds",
		Store:           "Amazon",
		Category:        "electronics",
		Price:           "₹1299",
		MRP:             "₹4490",
		DiscountPercent: "71% off",
		Score:           score,
		Grade:           "A",
		Confidence:      "85%",
		Seller:          "RetailNet",
		Link:            "https://www.amazon.in/dp/B09N3ZNHTY",
		ImageURL:        "https://m.media-amazon.com/images/I/airdopes.jpg",
	}
}

func TestDiscordNotifier_SendDeal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deal       DealPayload
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "score 92 uses green color",
			deal:       testDeal(92),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "score 85 uses yellow color",
			deal:       testDeal(85),
			statusCode: http.StatusNoContent,
			wantColor:  colorYellow,
		},
		{
			name:       "score 72 uses orange color",
			deal:       testDeal(72),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "rate limited returns error",
			deal:       testDeal(92),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "server error returns error",
			deal:       testDeal(92),
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
			errMsg:     "discord returned 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got discordWebhookPayload
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			n := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
			err := n.SendDeal(context.Background(), &tt.deal)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, got.Embeds, 1)
			embed := got.Embeds[0]
			assert.Equal(t, "Deal Alert: boAt Airdopes 141 Bluetooth Earbuds", embed.Title)
			assert.Equal(t, tt.deal.Link, embed.URL)
			assert.Equal(t, tt.wantColor, embed.Color)
			require.NotNil(t, embed.Thumbnail)
			assert.Equal(t, tt.deal.ImageURL, embed.Thumbnail.URL)

			fieldValues := map[string]string{}
			for _, f := range embed.Fields {
				fieldValues[f.Name] = f.Value
			}
			assert.Contains(t, fieldValues["Price"], "₹1299")
			assert.Contains(t, fieldValues["Price"], "MRP ₹4490")
			assert.Equal(t, "71% off", fieldValues["Discount"])
			assert.Equal(t, "Amazon", fieldValues["Store"])
		})
	}
}

func TestDiscordNotifier_SendBatch(t *testing.T) {
	t.Parallel()

	var got discordWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	deals := make([]DealPayload, 12)
	for i := range deals {
		deals[i] = testDeal(90)
	}

	n := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
	err := n.SendBatch(context.Background(), deals)
	require.NoError(t, err)

	// 10 embeds plus the overflow summary.
	require.Len(t, got.Embeds, 11)
	assert.Contains(t, got.Embeds[10].Title, "2 more deals")
}

func TestPayloadFromDeal(t *testing.T) {
	t.Parallel()

	deal := &domain.Deal{
		Title:            "Nike Revolution 6 Running Shoes",
		Store:            domain.StoreFlipkart,
		Category:         "fashion",
		VerifiedPrice:    2495,
		VerifiedMRP:      fp(4995),
		VerifiedDiscount: fp(50.05),
		Score:            88.4,
		Grade:            "A",
		ConfidenceScore:  0.85,
		SellerName:       "RetailNet",
		Link:             "https://www.flipkart.com/nike/p/itm1?pid=X",
		ImageURL:         "https://rukminim2.flixcart.com/shoe.jpg",
	}

	p := PayloadFromDeal(deal)

	assert.Equal(t, "₹2495", p.Price)
	assert.Equal(t, "₹4995", p.MRP)
	assert.Equal(t, "50% off", p.DiscountPercent)
	assert.Equal(t, 88, p.Score)
	assert.Equal(t, "85%", p.Confidence)
	assert.Equal(t, "Flipkart", p.Store)
}

func TestPayloadFromDealNoMRP(t *testing.T) {
	t.Parallel()

	p := PayloadFromDeal(&domain.Deal{Title: "Product", VerifiedPrice: 999})
	assert.Equal(t, "₹999", p.Price)
	assert.Empty(t, p.MRP)
	assert.Empty(t, p.DiscountPercent)
}
