package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	apiclient "github.com/dealradar/dealradar/internal/api/client"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printDealsTable(deals []domain.Deal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tSTORE\tPRICE\tDISCOUNT\tSCORE\tGRADE\n")
	for i := range deals {
		d := &deals[i]
		discount := "-"
		if d.VerifiedDiscount != nil {
			discount = fmt.Sprintf("%.0f%%", *d.VerifiedDiscount)
		}
		tw.writef("%s\t%s\t%s\t₹%.0f\t%s\t%.1f\t%s\n",
			d.ID,
			truncate(d.Title, 40),
			d.Store,
			d.VerifiedPrice,
			discount,
			d.Score,
			d.Grade,
		)
	}
	return tw.finish()
}

func printDealDetail(d *domain.Deal) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Title:\t%s\n", d.Title)
	tw.writef("Store:\t%s\n", d.Store)
	tw.writef("Price:\t₹%.2f\n", d.VerifiedPrice)
	if d.VerifiedMRP != nil {
		tw.writef("MRP:\t₹%.2f\n", *d.VerifiedMRP)
	}
	if d.VerifiedDiscount != nil {
		tw.writef("Discount:\t%.1f%%\n", *d.VerifiedDiscount)
	}
	tw.writef("Category:\t%s\n", d.Category)
	tw.writef("Rating:\t%.1f\n", d.Rating)
	if d.SellerName != "" {
		tw.writef("Seller:\t%s (%.1f)\n", d.SellerName, d.SellerRating)
	}
	tw.writef("Fulfilled:\t%v\n", d.FulfilledByPlatform)
	tw.writef("Score:\t%.1f/100 (%s)\n", d.Score, d.Grade)
	tw.writef("Confidence:\t%.2f\n", d.ConfidenceScore)
	tw.writef("Link:\t%s\n", d.Link)
	if d.SourceChannel != "" {
		tw.writef("Source:\t%s\n", d.SourceChannel)
	}
	tw.writef("Offer Ends:\t%s\n", d.OfferEndsAt.Format("2006-01-02 15:04:05"))
	tw.writef("First Seen:\t%s\n", d.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printStats(s *domain.CatalogStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Total Deals:\t%d\n", s.TotalDeals)
	tw.writef("Active Deals:\t%d\n", s.ActiveDeals)
	for _, name := range sortedKeys(s.ByStore) {
		tw.writef("Store %s:\t%d\n", name, s.ByStore[name])
	}
	for _, name := range sortedKeys(s.ByCategory) {
		tw.writef("Category %s:\t%d\n", name, s.ByCategory[name])
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printQuota(q *apiclient.Quota) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets At:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printParseResult(r *apiclient.ParseResult) error {
	c := &r.Candidate
	tw := newTabWriter(os.Stdout)
	tw.writef("Title:\t%s\n", c.Title)
	tw.writef("Store:\t%s\n", c.Store)
	if c.DiscountPrice != nil {
		tw.writef("Price:\t₹%.2f\n", *c.DiscountPrice)
	}
	if c.MRP != nil {
		tw.writef("MRP:\t₹%.2f\n", *c.MRP)
	}
	if c.DiscountPercent != nil {
		tw.writef("Discount:\t%.1f%%\n", *c.DiscountPercent)
	}
	tw.writef("Category:\t%s\n", c.Category)
	tw.writef("Link:\t%s\n", c.Link)
	if r.ProductKey != "" {
		tw.writef("Product Key:\t%s\n", r.ProductKey)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
