package adserver

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Channel identifies the sales channel the ad request originates from.
type Channel string

const (
	ChannelSite Channel = "site"
	ChannelApp  Channel = "app"
)

// NavigationContext tells the ad server what kind of page the shopper is on.
type NavigationContext string

const (
	ContextSearch      NavigationContext = "search"
	ContextCategory    NavigationContext = "category"
	ContextBrandPage   NavigationContext = "brand_page"
	ContextProductPage NavigationContext = "product_page"
	ContextHome        NavigationContext = "home"
)

// Placement names a slot on the storefront that can carry ads.
type Placement string

const (
	PlacementSearchTopProduct    Placement = "search_top_product"
	PlacementSearchTopShelf      Placement = "search_top-shelf_product"
	PlacementHomeShelfProduct    Placement = "home_shelf_product"
	PlacementPDPShelfProduct     Placement = "pdp_shelf_product"
	PlacementPLPShelfProduct     Placement = "plp_shelf_product"
	PlacementAutocompleteProduct Placement = "autocomplete_product"
	PlacementSearchTopBrand      Placement = "search_top_brand"
)

// AdType is the kind of creative a placement accepts.
type AdType string

const (
	AdTypeProduct        AdType = "product"
	AdTypeBanner         AdType = "banner"
	AdTypeSponsoredBrand AdType = "sponsored_brand"
)

// PlacementBody describes how many ads of which types a placement wants.
type PlacementBody struct {
	Quantity int      `json:"quantity"`
	Size     string   `json:"size,omitempty"`
	Types    []AdType `json:"types"`
}

// Identity carries the caller's account and user identification. It is
// threaded through both the ad-server request and the product fetch.
type Identity struct {
	AccountName string
	PublisherID string
	UserID      string
	SessionID   string
	Channel     Channel
}

// Facet is an opaque search filter selected by the shopper. Key spellings
// vary across storefront callers; see the facet adapter.
type Facet struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AdRequest is the outbound payload sent to the ad server.
type AdRequest struct {
	Context      NavigationContext           `json:"context"`
	Term         string                      `json:"term,omitempty"`
	CategoryName string                      `json:"category_name,omitempty"`
	BrandName    string                      `json:"brand_name,omitempty"`
	Tags         []string                    `json:"tags,omitempty"`
	UserID       string                      `json:"user_id"`
	SessionID    string                      `json:"session_id"`
	Placements   map[Placement]PlacementBody `json:"placements"`
	Channel      Channel                     `json:"channel,omitempty"`
	ProductSku   string                      `json:"product_sku,omitempty"`
}

// ProductMetadata is optional catalog metadata the ad server attaches to a
// sponsored product.
type ProductMetadata struct {
	ProductID string `json:"productId,omitempty"`
}

// SponsoredProductDetail is a single sponsored-product ad. Beyond the fields
// needed to build an Offer it is opaque tracking payload.
type SponsoredProductDetail struct {
	AdID            string           `json:"ad_id,omitempty"`
	ClickURL        string           `json:"click_url"`
	ImpressionURL   string           `json:"impression_url"`
	ViewURL         string           `json:"view_url"`
	ProductName     string           `json:"product_name"`
	ProductSku      string           `json:"product_sku"`
	ImageURL        string           `json:"image_url,omitempty"`
	SellerID        string           `json:"seller_id,omitempty"`
	DestinationURL  string           `json:"destination_url,omitempty"`
	ProductMetadata *ProductMetadata `json:"product_metadata,omitempty"`
}

// BrandAsset is a creative asset attached to a sponsored-brand ad.
type BrandAsset struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url"`
}

// SponsoredBrandDetail is a sponsored-brand (banner/shelf) ad.
type SponsoredBrandDetail struct {
	Products       []SponsoredProductDetail `json:"products,omitempty"`
	AdID           string                   `json:"ad_id"`
	ClickURL       string                   `json:"click_url"`
	ImpressionURL  string                   `json:"impression_url"`
	ViewURL        string                   `json:"view_url"`
	BrandURL       string                   `json:"brand_url"`
	BrandName      string                   `json:"brand_name"`
	Headline       string                   `json:"headline,omitempty"`
	Description    string                   `json:"description,omitempty"`
	DestinationURL string                   `json:"destination_url,omitempty"`
	Assets         []BrandAsset             `json:"assets,omitempty"`
}

// AdKind discriminates the ad-detail variants.
type AdKind int

const (
	AdKindUnknown AdKind = iota
	AdKindProduct
	AdKindBrand
)

// AdDetail is a tagged union over the ad variants the server may return in a
// placement. The wire format carries no discriminant; the upstream contract
// is that sponsored products have a product_sku attribute and brands do not.
// That structural test happens exactly once, at decode time.
type AdDetail struct {
	Kind    AdKind
	Product *SponsoredProductDetail
	Brand   *SponsoredBrandDetail
}

func (d *AdDetail) UnmarshalJSON(data []byte) error {
	var probe struct {
		ProductSku *string `json:"product_sku"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("probe ad detail: %w", err)
	}

	if probe.ProductSku != nil {
		var p SponsoredProductDetail
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode sponsored product: %w", err)
		}
		d.Kind = AdKindProduct
		d.Product = &p
		return nil
	}

	var b SponsoredBrandDetail
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("decode sponsored brand: %w", err)
	}
	d.Kind = AdKindBrand
	d.Brand = &b
	return nil
}

func (d AdDetail) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case AdKindProduct:
		return json.Marshal(d.Product)
	case AdKindBrand:
		return json.Marshal(d.Brand)
	default:
		return nil, fmt.Errorf("marshal ad detail: unknown kind %d", d.Kind)
	}
}

// PlacementAds pairs a placement with the ads the server returned for it.
type PlacementAds struct {
	Placement Placement
	Ads       []AdDetail
}

// AdResponse is the ad server's reply: ads grouped by placement. The server's
// placement order is its ranking, so the response keeps placements as an
// ordered slice rather than a map.
type AdResponse struct {
	Placements []PlacementAds
}

// UnmarshalJSON decodes the wire object while preserving the order in which
// the server emitted its placement keys.
func (r *AdResponse) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode ad response: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode ad response: expected object, got %v", tok)
	}

	r.Placements = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode ad response key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode ad response: non-string key %v", keyTok)
		}

		var ads []AdDetail
		if err := dec.Decode(&ads); err != nil {
			return fmt.Errorf("decode ads for placement %q: %w", key, err)
		}
		r.Placements = append(r.Placements, PlacementAds{
			Placement: Placement(key),
			Ads:       ads,
		})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode ad response close: %w", err)
	}
	return nil
}

func (r AdResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range r.Placements {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(p.Placement))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		ads, err := json.Marshal(p.Ads)
		if err != nil {
			return nil, err
		}
		buf.Write(ads)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
