package search

// Product is a catalog product as returned by intelligent search, trimmed to
// the fields the SDK and its consumers use. One product groups one or more
// sellable items (SKUs).
type Product struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Brand       string      `json:"brand,omitempty"`
	LinkText    string      `json:"linkText,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	PriceRange  *PriceRange `json:"priceRange,omitempty"`
	Items       []Item      `json:"items"`
}

// Item is one sellable SKU of a product.
type Item struct {
	ItemID  string   `json:"itemId"`
	Name    string   `json:"name,omitempty"`
	EAN     string   `json:"ean,omitempty"`
	Images  []Image  `json:"images,omitempty"`
	Sellers []Seller `json:"sellers"`
}

// Image is a product image reference.
type Image struct {
	ImageURL   string `json:"imageUrl"`
	ImageLabel string `json:"imageLabel,omitempty"`
}

// Seller is one seller's offer for an item.
type Seller struct {
	SellerID        string           `json:"sellerId"`
	SellerName      string           `json:"sellerName,omitempty"`
	SellerDefault   bool             `json:"sellerDefault,omitempty"`
	CommertialOffer *CommertialOffer `json:"commertialOffer,omitempty"`
}

// CommertialOffer carries the seller's pricing. The field name keeps the
// upstream catalog spelling.
type CommertialOffer struct {
	Price             float64 `json:"Price"`
	ListPrice         float64 `json:"ListPrice"`
	AvailableQuantity int     `json:"AvailableQuantity"`
}

// PriceRange summarizes selling and list prices across sellers.
type PriceRange struct {
	SellingPrice Price `json:"sellingPrice"`
	ListPrice    Price `json:"listPrice"`
}

// Price is a low/high price pair.
type Price struct {
	HighPrice float64 `json:"highPrice"`
	LowPrice  float64 `json:"lowPrice"`
}

// SearchResponse is the product-search reply for a bulk lookup.
type SearchResponse struct {
	Products        []Product `json:"products"`
	RecordsFiltered int       `json:"recordsFiltered,omitempty"`
}
