package cj

import (
	"strconv"

	domain "github.com/donaldgifford/dropship-gateway/pkg/types"
)

// toProducts converts partner product rows into domain products.
func toProducts(items []productSummary) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for i := range items {
		products = append(products, toProduct(&items[i]))
	}
	return products
}

func toProduct(item *productSummary) domain.Product {
	p := domain.Product{
		PartnerID:    item.Pid,
		Name:         item.ProductName,
		SKU:          item.ProductSKU,
		Currency:     "USD",
		CategoryName: item.CategoryName,
		VariantCount: item.VariantCount,
	}

	if v, err := strconv.ParseFloat(item.SellPrice, 64); err == nil {
		p.Price = v
	}

	if item.ProductImage != "" {
		p.ImageURL = item.ProductImage
		p.ImageURLs = []string{item.ProductImage}
	}

	return p
}

// toVariants converts partner variant rows into domain variants.
func toVariants(items []variantInfo) []domain.Variant {
	variants := make([]domain.Variant, 0, len(items))
	for i := range items {
		variants = append(variants, domain.Variant{
			VariantID: items[i].Vid,
			SKU:       items[i].VariantSKU,
			Price:     items[i].VariantPrice,
			Stock:     items[i].Stock,
		})
	}
	return variants
}
