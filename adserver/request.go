package adserver

// SearchOptions describes what the shopper is currently looking at. All
// fields are optional; together with the facets they determine the
// navigation context sent to the ad server.
type SearchOptions struct {
	SelectedFacets []Facet
	Term           string
	SkuID          string
}

// InferContext determines the navigation context from the available search
// signals, most specific first.
func InferContext(term, category, brand, skuID string) NavigationContext {
	switch {
	case term != "":
		return ContextSearch
	case category != "":
		return ContextCategory
	case brand != "":
		return ContextBrandPage
	case skuID != "":
		return ContextProductPage
	default:
		return ContextHome
	}
}

// BuildAdRequest adapts the SDK-level arguments into the payload the ad
// server expects, resolving targeting attributes from the selected facets.
func BuildAdRequest(identity Identity, search SearchOptions, placements map[Placement]PlacementBody) AdRequest {
	params := GetParametersFromFacets(search.SelectedFacets)

	return AdRequest{
		Context:      InferContext(search.Term, params.Category, params.Brand, search.SkuID),
		Term:         search.Term,
		CategoryName: params.Category,
		BrandName:    params.Brand,
		Tags:         params.Tags,
		UserID:       identity.UserID,
		SessionID:    identity.SessionID,
		Placements:   placements,
		Channel:      identity.Channel,
		ProductSku:   search.SkuID,
	}
}
