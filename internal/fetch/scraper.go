package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/dealradar/dealradar/pkg/logger"
	domain "github.com/dealradar/dealradar/pkg/types"
)

const defaultFetchTimeout = 20 * time.Second

// Default scrape budget: one request per second with a small burst,
// capped per rolling day.
const (
	defaultFetchPerSecond = 1.0
	defaultFetchBurst     = 2
	defaultFetchMaxDaily  = 2000
)

var (
	// leadingFloatRegex reads the value out of rating text like
	// "4.1 out of 5 stars".
	leadingFloatRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

	// countRegex reads the count out of review text like "12,345 ratings".
	countRegex = regexp.MustCompile(`[\d,]+`)

	// soldByRegex pulls the merchant name out of buybox text like
	// "Ships from and sold by RetailNet."
	soldByRegex = regexp.MustCompile(`(?i)sold by\s+([^.]+)`)
)

// Scraper fetches merchant product pages and extracts the normalized
// ProductPage record. Selector cascades are per store; anything not
// matched by a store-specific selector falls through to JSON-LD
// structured data, which most merchants embed.
type Scraper struct {
	limiter *RateLimiter
	log     *slog.Logger
	timeout time.Duration
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithScraperLogger sets the logger used for scrape diagnostics.
func WithScraperLogger(log *slog.Logger) ScraperOption {
	return func(s *Scraper) { s.log = log }
}

// WithRateLimiter overrides the outbound fetch budget.
func WithRateLimiter(rl *RateLimiter) ScraperOption {
	return func(s *Scraper) { s.limiter = rl }
}

// WithTimeout sets the per-page request timeout.
func WithTimeout(d time.Duration) ScraperOption {
	return func(s *Scraper) { s.timeout = d }
}

// NewScraper creates a Scraper.
func NewScraper(opts ...ScraperOption) *Scraper {
	s := &Scraper{
		limiter: NewRateLimiter(defaultFetchPerSecond, defaultFetchBurst, defaultFetchMaxDaily),
		log:     logger.Discard(),
		timeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves one product page. The URL must already be resolved;
// short links should go through the Resolver first.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (*domain.ProductPage, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing product URL: %w", err)
	}

	page := &domain.ProductPage{}

	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(s.timeout)

	host := strings.ToLower(u.Host)
	switch {
	case strings.Contains(host, "amazon"):
		registerAmazon(c, page)
	case strings.Contains(host, "flipkart") || strings.Contains(host, "shopsy"):
		registerFlipkart(c, page)
	default:
		registerGeneric(c, page)
	}
	registerJSONLD(c, page)

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	if fetchErr != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, fetchErr)
	}

	if page.Title == "" && page.OfferPrice == nil {
		return nil, fmt.Errorf("no product data extracted from %s", pageURL)
	}

	// A strikethrough price at or below the offer is extraction noise.
	if page.MRP != nil && page.OfferPrice != nil && *page.MRP <= *page.OfferPrice {
		page.MRP = nil
	}

	s.log.Debug("fetched product page",
		"url", pageURL,
		"title", page.Title,
		"has_price", page.OfferPrice != nil,
	)
	return page, nil
}

// registerAmazon wires the Amazon selector cascade. Every handler only
// fills a field that is still empty, so earlier selectors win.
func registerAmazon(c *colly.Collector, page *domain.ProductPage) {
	c.OnHTML("span#productTitle, h1#title", func(e *colly.HTMLElement) {
		if page.Title == "" {
			page.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("span.a-price-whole, #priceblock_dealprice, #priceblock_ourprice, #priceblock_saleprice",
		func(e *colly.HTMLElement) {
			if page.OfferPrice == nil {
				page.OfferPrice = parsePrice(e.Text)
			}
		})

	c.OnHTML("span.a-price.a-text-price span.a-offscreen, #priceblock_listprice, #listPrice",
		func(e *colly.HTMLElement) {
			if page.MRP == nil {
				page.MRP = parsePrice(e.Text)
			}
		})

	c.OnHTML("div#availability", func(e *colly.HTMLElement) {
		if page.Availability == "" {
			page.Availability = strings.Join(strings.Fields(e.Text), " ")
		}
	})

	c.OnHTML("span.a-icon-alt", func(e *colly.HTMLElement) {
		if page.Rating == 0 {
			if m := leadingFloatRegex.FindString(e.Text); m != "" {
				page.Rating, _ = strconv.ParseFloat(m, 64)
			}
		}
	})

	c.OnHTML("#acrCustomerReviewText", func(e *colly.HTMLElement) {
		if page.ReviewCount == 0 {
			if m := countRegex.FindString(e.Text); m != "" {
				page.ReviewCount, _ = strconv.Atoi(strings.ReplaceAll(m, ",", ""))
			}
		}
	})

	c.OnHTML("a#sellerProfileTriggerId", func(e *colly.HTMLElement) {
		if page.SellerName == "" {
			page.SellerName = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("div#merchant-info", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if strings.Contains(strings.ToLower(text), "fulfilled by amazon") ||
			strings.Contains(strings.ToLower(text), "sold by amazon") {
			page.FulfilledByPlatform = true
			if page.SellerName == "" {
				page.SellerName = "Amazon"
			}
		}
		if page.SellerName == "" {
			if m := soldByRegex.FindStringSubmatch(text); m != nil {
				page.SellerName = strings.TrimSpace(m[1])
			}
		}
	})

	c.OnHTML("span#seller-rating", func(e *colly.HTMLElement) {
		if page.SellerRating == 0 {
			if m := leadingFloatRegex.FindString(e.Text); m != "" {
				page.SellerRating, _ = strconv.ParseFloat(m, 64)
			}
		}
	})

	c.OnHTML("img#landingImage", func(e *colly.HTMLElement) {
		if page.ImageURL == "" {
			page.ImageURL = e.Attr("src")
		}
	})
}

// registerFlipkart wires the Flipkart selector cascade. Flipkart
// rotates its class names frequently; the cascade covers the known
// generations with strikethrough elements as the MRP fallback.
func registerFlipkart(c *colly.Collector, page *domain.ProductPage) {
	c.OnHTML("span.VU-ZEz, h1.yhB1nd, span.B_NuCI, h1._6EBuvT, span.G6XhRU",
		func(e *colly.HTMLElement) {
			if page.Title == "" {
				page.Title = strings.TrimSpace(e.Text)
			}
		})

	c.OnHTML("div.Nx9bqj, span.Nx9bqj, div._30jeq3, div._3qQ9m1, div._25b18c",
		func(e *colly.HTMLElement) {
			if page.OfferPrice == nil {
				page.OfferPrice = parsePrice(e.Text)
			}
		})

	c.OnHTML("div.yRaY8j, div._3I9_wc, div._3auQ3N, del, s, strike",
		func(e *colly.HTMLElement) {
			if page.MRP == nil && strings.Contains(e.Text, "₹") {
				page.MRP = parsePrice(e.Text)
			}
		})

	c.OnHTML("div.XQDdHH, div._3LWZlK", func(e *colly.HTMLElement) {
		if page.Rating == 0 {
			if m := leadingFloatRegex.FindString(e.Text); m != "" {
				page.Rating, _ = strconv.ParseFloat(m, 64)
			}
		}
	})

	c.OnHTML("img._396cs4, img._2r_T1I, img.DByuf4", func(e *colly.HTMLElement) {
		if page.ImageURL == "" {
			page.ImageURL = e.Attr("src")
		}
	})
}

// registerGeneric covers merchants without a dedicated cascade: the
// first h1 and Open Graph metadata. JSON-LD usually fills the rest.
func registerGeneric(c *colly.Collector, page *domain.ProductPage) {
	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if page.Title == "" {
			page.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML(`meta[property="og:image"]`, func(e *colly.HTMLElement) {
		if page.ImageURL == "" {
			page.ImageURL = e.Attr("content")
		}
	})
}

// jsonLDProduct is the subset of schema.org Product this scraper reads.
// Numeric fields arrive as strings or numbers depending on the
// merchant, hence the any types.
type jsonLDProduct struct {
	Type   string `json:"@type"`
	Name   string `json:"name"`
	Image  any    `json:"image"`
	Offers struct {
		Price        any    `json:"price"`
		Availability string `json:"availability"`
	} `json:"offers"`
	AggregateRating struct {
		RatingValue any `json:"ratingValue"`
		ReviewCount any `json:"reviewCount"`
	} `json:"aggregateRating"`
}

// registerJSONLD fills any still-empty fields from schema.org
// structured data.
func registerJSONLD(c *colly.Collector, page *domain.ProductPage) {
	c.OnHTML(`script[type="application/ld+json"]`, func(e *colly.HTMLElement) {
		var p jsonLDProduct
		if err := json.Unmarshal([]byte(e.Text), &p); err != nil {
			return
		}
		if !strings.EqualFold(p.Type, "Product") {
			return
		}

		if page.Title == "" {
			page.Title = strings.TrimSpace(p.Name)
		}
		if page.OfferPrice == nil {
			if v, ok := toFloat(p.Offers.Price); ok && v > 0 {
				page.OfferPrice = &v
			}
		}
		if page.Availability == "" && p.Offers.Availability != "" {
			// schema.org/InStock and friends.
			page.Availability = strings.TrimPrefix(p.Offers.Availability, "https://schema.org/")
		}
		if page.Rating == 0 {
			if v, ok := toFloat(p.AggregateRating.RatingValue); ok {
				page.Rating = v
			}
		}
		if page.ReviewCount == 0 {
			if v, ok := toFloat(p.AggregateRating.ReviewCount); ok {
				page.ReviewCount = int(v)
			}
		}
		if page.ImageURL == "" {
			switch img := p.Image.(type) {
			case string:
				page.ImageURL = img
			case []any:
				if len(img) > 0 {
					if s, ok := img[0].(string); ok {
						page.ImageURL = s
					}
				}
			}
		}
	})
}

// toFloat coerces a JSON value that may be a number or a numeric string.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(t, ",", ""), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
