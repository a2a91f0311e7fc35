package adserver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdDetailUnmarshalProduct(t *testing.T) {
	data := []byte(`{
		"click_url": "c",
		"impression_url": "i",
		"view_url": "v",
		"product_name": "P",
		"product_sku": "sku1",
		"seller_id": "s1",
		"product_metadata": {"productId": "p1"}
	}`)

	var d AdDetail
	require.NoError(t, json.Unmarshal(data, &d))

	assert.Equal(t, AdKindProduct, d.Kind)
	require.NotNil(t, d.Product)
	assert.Nil(t, d.Brand)
	assert.Equal(t, "sku1", d.Product.ProductSku)
	assert.Equal(t, "p1", d.Product.ProductMetadata.ProductID)
}

func TestAdDetailUnmarshalBrand(t *testing.T) {
	data := []byte(`{
		"ad_id": "a1",
		"click_url": "c",
		"impression_url": "i",
		"view_url": "v",
		"brand_url": "https://acme.example",
		"brand_name": "Acme",
		"headline": "h"
	}`)

	var d AdDetail
	require.NoError(t, json.Unmarshal(data, &d))

	assert.Equal(t, AdKindBrand, d.Kind)
	require.NotNil(t, d.Brand)
	assert.Nil(t, d.Product)
	assert.Equal(t, "Acme", d.Brand.BrandName)
}

func TestAdDetailEmptySkuIsProduct(t *testing.T) {
	// The discriminant is the presence of product_sku, not its content.
	var d AdDetail
	require.NoError(t, json.Unmarshal([]byte(`{"product_sku": ""}`), &d))
	assert.Equal(t, AdKindProduct, d.Kind)
}

func TestAdDetailMarshalRoundTrip(t *testing.T) {
	d := AdDetail{Kind: AdKindProduct, Product: &SponsoredProductDetail{
		ClickURL:   "c",
		ProductSku: "sku1",
	}}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded AdDetail
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d.Kind, decoded.Kind)
	assert.Equal(t, d.Product.ProductSku, decoded.Product.ProductSku)
}

func TestAdResponseUnmarshalPreservesOrder(t *testing.T) {
	data := []byte(`{
		"search_top_product": [{"product_sku": "s1", "click_url": "c1", "impression_url": "i1", "view_url": "v1", "product_name": "A"}],
		"home_shelf_product": [],
		"search_top_brand": [{"brand_name": "Acme", "ad_id": "a1", "click_url": "c", "impression_url": "i", "view_url": "v", "brand_url": "u"}]
	}`)

	var resp AdResponse
	require.NoError(t, json.Unmarshal(data, &resp))

	require.Len(t, resp.Placements, 3)
	assert.Equal(t, Placement("search_top_product"), resp.Placements[0].Placement)
	assert.Equal(t, Placement("home_shelf_product"), resp.Placements[1].Placement)
	assert.Equal(t, Placement("search_top_brand"), resp.Placements[2].Placement)

	assert.Equal(t, AdKindProduct, resp.Placements[0].Ads[0].Kind)
	assert.Empty(t, resp.Placements[1].Ads)
	assert.Equal(t, AdKindBrand, resp.Placements[2].Ads[0].Kind)
}

func TestAdResponseUnmarshalRejectsNonObject(t *testing.T) {
	var resp AdResponse
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &resp))
}
