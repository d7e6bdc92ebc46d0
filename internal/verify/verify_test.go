package verify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar/internal/verify"
	domain "github.com/dealradar/dealradar/pkg/types"
)

type stubResolver struct {
	resolved string
	err      error
	calls    []string
}

func (r *stubResolver) Resolve(_ context.Context, raw string) (string, error) {
	r.calls = append(r.calls, raw)
	if r.err != nil {
		return "", r.err
	}
	return r.resolved, nil
}

type stubFetcher struct {
	page  *domain.ProductPage
	err   error
	calls []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*domain.ProductPage, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func fp(v float64) *float64 { return &v }

func candidate(link string) *domain.CandidateDeal {
	return &domain.CandidateDeal{
		Title:         "boAt Airdopes 441",
		Store:         domain.StoreAmazon,
		DiscountPrice: fp(999),
		MRP:           fp(2999),
		Link:          link,
	}
}

func TestVerifyNoLink(t *testing.T) {
	t.Parallel()

	p := verify.New(nil, &stubFetcher{})
	res := p.Verify(context.Background(), candidate(""))

	assert.False(t, res.IsVerified)
	assert.Equal(t, 0.0, res.ConfidenceScore)
	assert.Equal(t, domain.ConfidenceVeryLow, res.ConfidenceLabel)
	assert.Equal(t, domain.RecommendReject, res.Recommendation)
	assert.Equal(t, domain.SourceNone, res.Source)
	assert.Contains(t, res.Issues, "no product link provided")
}

func TestVerifyFetchFailure(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{err: errors.New("connection reset")}
	p := verify.New(nil, fetcher)

	res := p.Verify(context.Background(), candidate("https://www.amazon.in/dp/B085RJRFJ5"))

	assert.False(t, res.IsVerified)
	assert.Equal(t, domain.SourceMessageText, res.Source)
	assert.Equal(t, domain.RecommendReview, res.Recommendation)
	assert.Equal(t, 0.40, res.ConfidenceScore)
	assert.Equal(t, domain.ConfidenceLow, res.ConfidenceLabel)
	assert.Contains(t, res.Issues, "could not fetch official product page")
}

func TestVerifyFullCorroboration(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{page: &domain.ProductPage{
		Title:               "boAt Airdopes 441 TWS Earbuds",
		OfferPrice:          fp(999),
		MRP:                 fp(2999),
		Availability:        "In Stock.",
		Rating:              4.1,
		ReviewCount:         15874,
		SellerName:          "Appario Retail",
		FulfilledByPlatform: true,
		ImageURL:            "https://m.media-amazon.com/images/I/airdopes.jpg",
	}}
	p := verify.New(nil, fetcher)

	res := p.Verify(context.Background(), candidate("https://www.amazon.in/dp/B085RJRFJ5"))

	assert.True(t, res.IsVerified)
	assert.Equal(t, domain.RecommendAccept, res.Recommendation)
	assert.Equal(t, domain.SourceOfficialSite, res.Source)
	assert.Equal(t, 1.0, res.ConfidenceScore)
	assert.Equal(t, domain.ConfidenceVeryHigh, res.ConfidenceLabel)
	assert.Equal(t, "boAt Airdopes 441 TWS Earbuds", res.VerifiedTitle)
	require.NotNil(t, res.VerifiedPrice)
	assert.InDelta(t, 999, *res.VerifiedPrice, 0.001)
	require.NotNil(t, res.VerifiedDiscount)
	assert.InDelta(t, 66.69, *res.VerifiedDiscount, 0.01)
	assert.Equal(t, "Appario Retail", res.SellerName)
	assert.True(t, res.FulfilledByPlatform)
	assert.Empty(t, res.Issues)
}

func TestVerifyPriceAndTitleNoMRP(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{page: &domain.ProductPage{
		Title:      "Nike Revolution 6",
		OfferPrice: fp(2495),
	}}
	p := verify.New(nil, fetcher)

	res := p.Verify(context.Background(), candidate("https://www.flipkart.com/nike/p/itm1?pid=X"))

	assert.True(t, res.IsVerified)
	assert.Equal(t, 0.85, res.ConfidenceScore)
	assert.Equal(t, domain.ConfidenceHigh, res.ConfidenceLabel)
	assert.Equal(t, domain.RecommendAccept, res.Recommendation)
	assert.Nil(t, res.VerifiedDiscount)
}

func TestVerifyTitleWithoutPrice(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{page: &domain.ProductPage{Title: "Mystery Product"}}
	p := verify.New(nil, fetcher)

	res := p.Verify(context.Background(), candidate("https://www.amazon.in/dp/B000000000"))

	// A fetched page without a price corroborates very little.
	assert.False(t, res.IsVerified)
	assert.Equal(t, domain.RecommendReject, res.Recommendation)
	assert.Equal(t, domain.SourceOfficialSite, res.Source)
	assert.Equal(t, 0.50, res.ConfidenceScore)
	assert.Equal(t, domain.ConfidenceLow, res.ConfidenceLabel)
}

func TestVerifyResolvesShortLinks(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{resolved: "https://www.amazon.in/dp/B085RJRFJ5"}
	fetcher := &stubFetcher{page: &domain.ProductPage{
		Title:      "boAt Airdopes 441",
		OfferPrice: fp(999),
	}}
	p := verify.New(resolver, fetcher)

	res := p.Verify(context.Background(), candidate("https://amzn.to/3xYz12A"))

	require.Len(t, resolver.calls, 1)
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, "https://www.amazon.in/dp/B085RJRFJ5", fetcher.calls[0])
	assert.True(t, res.IsVerified)
}

func TestVerifySkipsResolverForFullLinks(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{resolved: "unused"}
	fetcher := &stubFetcher{page: &domain.ProductPage{OfferPrice: fp(999)}}
	p := verify.New(resolver, fetcher)

	p.Verify(context.Background(), candidate("https://www.amazon.in/dp/B085RJRFJ5"))

	assert.Empty(t, resolver.calls)
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, "https://www.amazon.in/dp/B085RJRFJ5", fetcher.calls[0])
}

func TestVerifyResolutionFailureContinues(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{err: errors.New("timeout")}
	fetcher := &stubFetcher{page: &domain.ProductPage{
		Title:      "boAt Airdopes 441",
		OfferPrice: fp(999),
		MRP:        fp(2999),
	}}
	p := verify.New(resolver, fetcher)

	res := p.Verify(context.Background(), candidate("https://amzn.to/3xYz12A"))

	// Expansion failure falls back to fetching the original link.
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, "https://amzn.to/3xYz12A", fetcher.calls[0])
	assert.True(t, res.IsVerified)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0], "link resolution failed")
}

func TestVerifyNilFetcherDegrades(t *testing.T) {
	t.Parallel()

	p := verify.New(nil, nil)
	res := p.Verify(context.Background(), candidate("https://www.amazon.in/dp/B085RJRFJ5"))

	assert.Equal(t, domain.SourceMessageText, res.Source)
	assert.Equal(t, domain.RecommendReview, res.Recommendation)
	assert.Equal(t, 0.40, res.ConfidenceScore)
}

func TestVerifyConfidenceMonotonic(t *testing.T) {
	t.Parallel()

	pages := []*domain.ProductPage{
		{},
		{Title: "Product"},
		{Title: "Product", MRP: fp(2999)},
		{Title: "Product", MRP: fp(2999), OfferPrice: fp(999)},
	}

	prev := -1.0
	for _, page := range pages {
		p := verify.New(nil, &stubFetcher{page: page})
		res := p.Verify(context.Background(), candidate("https://www.amazon.in/dp/B085RJRFJ5"))
		assert.GreaterOrEqual(t, res.ConfidenceScore, prev)
		prev = res.ConfidenceScore
	}
}

func TestVerifyUsesInjectedClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC)
	p := verify.New(nil, &stubFetcher{page: &domain.ProductPage{OfferPrice: fp(999)}},
		verify.WithClock(func() time.Time { return at }))

	res := p.Verify(context.Background(), candidate("https://www.amazon.in/dp/B085RJRFJ5"))
	assert.Equal(t, at, res.VerifiedAt)
}

func TestShouldPersist(t *testing.T) {
	t.Parallel()

	p := verify.New(nil, nil)

	tests := []struct {
		name string
		res  domain.VerificationResult
		want bool
	}{
		{
			name: "above threshold",
			res:  domain.VerificationResult{ConfidenceScore: 0.85},
			want: true,
		},
		{
			name: "exactly at threshold",
			res:  domain.VerificationResult{ConfidenceScore: 0.4},
			want: true,
		},
		{
			name: "below threshold with official title",
			res:  domain.VerificationResult{ConfidenceScore: 0.35, VerifiedTitle: "Product"},
			want: true,
		},
		{
			name: "below threshold with official price",
			res:  domain.VerificationResult{ConfidenceScore: 0.32, VerifiedPrice: fp(999)},
			want: true,
		},
		{
			name: "below threshold without official data",
			res:  domain.VerificationResult{ConfidenceScore: 0.35},
			want: false,
		},
		{
			name: "far below threshold even with official data",
			res:  domain.VerificationResult{ConfidenceScore: 0.25, VerifiedTitle: "Product"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := tt.res
			assert.Equal(t, tt.want, p.ShouldPersist(&res))
		})
	}
}
