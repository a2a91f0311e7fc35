package adserver

import "strings"

// The facet adapter translates raw search facets (whose key spellings vary
// across storefront callers, e.g. "c", "categoria" and "category-1" all mean
// category) into the structured targeting attributes the ad server expects.

var (
	categorySynonyms = []string{"categoria", "c"}
	categoryPrefix   = "category"
	brandSynonyms    = []string{"brand", "b"}
	tagSynonyms      = []string{"productClusterIds"}
)

// ParametersFromFacets holds the targeting attributes derived from facets.
type ParametersFromFacets struct {
	Category string
	Brand    string
	Tags     []string
}

// attributeFromFacets returns the facets whose key matches one of the
// synonyms exactly or starts with the prefix. Key comparison is
// case-insensitive. A nil result means no facet matched.
func attributeFromFacets(selectedFacets []Facet, synonyms []string, prefix string) []Facet {
	if len(selectedFacets) == 0 {
		return nil
	}

	var matched []Facet
	for _, facet := range selectedFacets {
		key := strings.ToLower(facet.Key)

		ok := false
		for _, s := range synonyms {
			if key == strings.ToLower(s) {
				ok = true
				break
			}
		}
		if !ok && prefix != "" && strings.HasPrefix(key, strings.ToLower(prefix)) {
			ok = true
		}
		if ok {
			matched = append(matched, facet)
		}
	}
	return matched
}

// CategoryFromFacets extracts the category path from the selected facets,
// joining category levels with " > ".
func CategoryFromFacets(selectedFacets []Facet) string {
	facets := attributeFromFacets(selectedFacets, categorySynonyms, categoryPrefix)
	if len(facets) == 0 {
		return ""
	}

	values := make([]string, len(facets))
	for i, facet := range facets {
		values[i] = facet.Value
	}
	return strings.Join(values, " > ")
}

// BrandFromFacets extracts the first brand value from the selected facets.
func BrandFromFacets(selectedFacets []Facet) string {
	facets := attributeFromFacets(selectedFacets, brandSynonyms, "")
	if len(facets) == 0 {
		return ""
	}
	return facets[0].Value
}

// TagsFromFacets extracts product cluster IDs from the selected facets. The
// ad server models product clusters (collections) as tags, formatted as
// "product_cluster/{id}".
func TagsFromFacets(selectedFacets []Facet) []string {
	facets := attributeFromFacets(selectedFacets, tagSynonyms, "")
	if len(facets) == 0 {
		return nil
	}

	tags := make([]string, len(facets))
	for i, facet := range facets {
		tags[i] = "product_cluster/" + facet.Value
	}
	return tags
}

// GetParametersFromFacets derives all targeting attributes from the selected
// facets in one call.
func GetParametersFromFacets(selectedFacets []Facet) ParametersFromFacets {
	return ParametersFromFacets{
		Category: CategoryFromFacets(selectedFacets),
		Brand:    BrandFromFacets(selectedFacets),
		Tags:     TagsFromFacets(selectedFacets),
	}
}
