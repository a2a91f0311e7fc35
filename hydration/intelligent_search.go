package hydration

import (
	"context"
	"fmt"

	"github.com/vtex/ads-sdk-go/adserver"
	"github.com/vtex/ads-sdk-go/search"
)

// IntelligentSearchFetcher builds a ProductFetcher backed by the
// intelligent-search catalog. The catalog lookup is by product ID, which is
// coarser than the SKU+seller granularity matching needs, so the response is
// post-filtered down to the item/seller combinations that were actually
// sponsored. Products left without items are dropped entirely.
func IntelligentSearchFetcher(client *search.Client) ProductFetcherFunc[search.Product] {
	return func(ctx context.Context, offers []Offer, identity adserver.Identity) ([]search.Product, error) {
		ids := adserver.ProductIDs(offers)

		resp, err := client.GetProductsByIDs(ctx, identity.AccountName, ids)
		if err != nil {
			return nil, fmt.Errorf("fetch products: %w", err)
		}

		return FilterProductsByOffers(resp.Products, offers), nil
	}
}

// IntelligentSearchMatcher reports whether a catalog product carries the
// offer's SKU with the offer's seller.
func IntelligentSearchMatcher(product search.Product, offer Offer) bool {
	for _, item := range product.Items {
		if item.ItemID != offer.SkuID {
			continue
		}
		for _, seller := range item.Sellers {
			if seller.SellerID == offer.SellerID {
				return true
			}
		}
	}
	return false
}

// FilterProductsByOffers narrows each product to the items and sellers that
// appear among the offers. Items whose SKU was not sponsored, and sellers
// not sponsoring that SKU, are removed; products with no surviving items are
// dropped.
func FilterProductsByOffers(products []search.Product, offers []Offer) []search.Product {
	offersMap := BuildOffersMap(offers)

	var filtered []search.Product
	for _, product := range products {
		items := filterItemsByOffers(product.Items, offersMap)
		if len(items) == 0 {
			continue
		}
		product.Items = items
		filtered = append(filtered, product)
	}
	return filtered
}

func filterItemsByOffers(items []search.Item, offersMap map[string][]string) []search.Item {
	var filtered []search.Item
	for _, item := range items {
		allowedSellers, ok := offersMap[item.ItemID]
		if !ok {
			continue
		}

		var sellers []search.Seller
		for _, seller := range item.Sellers {
			for _, allowed := range allowedSellers {
				if seller.SellerID == allowed {
					sellers = append(sellers, seller)
					break
				}
			}
		}
		if len(sellers) == 0 {
			continue
		}

		item.Sellers = sellers
		filtered = append(filtered, item)
	}
	return filtered
}
