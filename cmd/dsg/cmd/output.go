package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/dropship-gateway/internal/api/client"
	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
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

func printProductsTable(resp *apiclient.SearchProductsResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PARTNER ID\tNAME\tSKU\tPRICE\tCATEGORY\n")
	for i := range resp.Products {
		p := &resp.Products[i]
		tw.writef("%s\t%s\t%s\t$%.2f\t%s\n",
			p.PartnerID,
			truncate(p.Name, 40),
			p.SKU,
			p.Price,
			p.CategoryName,
		)
	}
	tw.writef("\nPage %d, %d total", resp.PageNum, resp.Total)
	if resp.HasMore {
		tw.writef(" (more available)")
	}
	tw.writef("\n")
	return tw.finish()
}

func printSweepTable(resp *apiclient.SweepCatalogResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PARTNER ID\tNAME\tSKU\tPRICE\n")
	for i := range resp.NewProducts {
		p := &resp.NewProducts[i]
		tw.writef("%s\t%s\t%s\t$%.2f\n",
			p.PartnerID,
			truncate(p.Name, 40),
			p.SKU,
			p.Price,
		)
	}
	tw.writef("\n%d new of %d seen across %d pages (stopped at %s)\n",
		len(resp.NewProducts), resp.TotalSeen, resp.PagesUsed, resp.StoppedAt)
	return tw.finish()
}

func printVariantsTable(resp *apiclient.QueryVariantsResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("VARIANT ID\tSKU\tPRICE\tSTOCK\n")
	for i := range resp.Variants {
		v := &resp.Variants[i]
		tw.writef("%s\t%s\t$%.2f\t%d\n", v.VariantID, v.SKU, v.Price, v.Stock)
	}
	return tw.finish()
}

func printOrdersTable(orders []domain.OrderRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNUMBER\tSTATUS\tPARTNER ORDER\tTOTAL\tISSUES\n")
	for i := range orders {
		o := &orders[i]
		partnerID := o.PartnerOrderID
		if partnerID == "" {
			partnerID = "-"
		}
		tw.writef("%s\t%s\t%s\t%s\t$%.2f\t%d\n",
			o.ID,
			o.OrderNumber,
			o.Status,
			partnerID,
			o.TotalAmount,
			len(o.Issues),
		)
	}
	return tw.finish()
}

func printOrderDetail(o *domain.OrderRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Number:\t%s\n", o.OrderNumber)
	tw.writef("Status:\t%s\n", o.Status)
	if o.PartnerOrderID != "" {
		tw.writef("Partner Order:\t%s\n", o.PartnerOrderID)
		tw.writef("Total:\t$%.2f\n", o.TotalAmount)
	}
	tw.writef("Created:\t%s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, issue := range o.Issues {
		tw.writef("Issue:\t%s: %s\n", issue.LineRef, issue.Reason)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
