package cj

import (
	"context"
	"fmt"
	"log/slog"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

const (
	defaultPaginatorPageSize = 100
	defaultPaginatorMaxPages = 10
)

// MappingChecker reports whether a partner product is already mapped
// locally. Used to stop catalog sweeps early once known territory is
// reached.
type MappingChecker interface {
	GetMappingByPartnerProduct(ctx context.Context, partnerProductID string) (*domain.ProductMapping, error)
}

// Paginator pulls the account's partner catalog as a lazy, finite,
// restartable sequence of pages. The consumer stops when a short page, a
// known product, or the page cap is observed; each Paginate call restarts
// from the first page.
type Paginator struct {
	client   Client
	checker  MappingChecker
	log      *slog.Logger
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = size
	}
}

// WithMaxPages overrides the default page cap.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.log = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client Client, checker MappingChecker, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		checker:  checker,
		pageSize: defaultPaginatorPageSize,
		maxPages: defaultPaginatorMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult holds the result of a catalog sweep.
type PaginateResult struct {
	NewProducts []domain.Product
	TotalSeen   int
	PagesUsed   int
	StoppedAt   string // "known_product", "max_pages", "no_more_results"
}

// Paginate pulls catalog pages for the filter until a stop condition.
func (p *Paginator) Paginate(ctx context.Context, f ProductFilter) (*PaginateResult, error) {
	f.PageSize = p.pageSize

	result := &PaginateResult{}

	for page := 1; page <= p.maxPages; page++ {
		f.PageNum = page

		resp, err := p.client.SearchProducts(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("fetching catalog page %d: %w", page, err)
		}

		result.PagesUsed++

		if len(resp.Products) == 0 {
			result.StoppedAt = "no_more_results"
			return result, nil
		}

		var foundKnown bool
		for i := range resp.Products {
			result.TotalSeen++

			if p.checker != nil {
				existing, err := p.checker.GetMappingByPartnerProduct(
					ctx,
					resp.Products[i].PartnerID,
				)
				if err != nil {
					// A store error should not stop the sweep.
					if p.log != nil {
						p.log.Warn("error checking mapping",
							"partner_product_id", resp.Products[i].PartnerID,
							"err", err,
						)
					}
				}
				if existing != nil {
					foundKnown = true
					break
				}
			}

			result.NewProducts = append(result.NewProducts, resp.Products[i])
		}

		if foundKnown {
			result.StoppedAt = "known_product"
			return result, nil
		}

		if !resp.HasMore {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
	}

	result.StoppedAt = "max_pages"
	return result, nil
}
