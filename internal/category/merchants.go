package category

import (
	"strings"

	"github.com/pairshare/pairshare/internal/models"
)

// merchantHints maps merchant-name substrings to categories. The table is
// ordered and the first matching hint wins, so narrow hints ("taco") must
// come before broad ones ("shop") when they could double-match.
var merchantHints = []struct {
	category models.Category
	hints    []string
}{
	{models.CategoryFood, []string{"starbucks", "mcdonald", "chipotle", "taco", "pizza", "cafe", "restaurant", "doordash", "ubereats"}},
	{models.CategoryGroceries, []string{"walmart", "costco", "trader joe", "whole foods", "aldi", "safeway", "kroger", "grocery"}},
	{models.CategoryTransport, []string{"uber", "lyft", "shell", "chevron", "exxon", "bp", "gas", "fuel", "parking"}},
	{models.CategoryShopping, []string{"amazon", "target", "best buy", "ikea", "shop", "store"}},
	{models.CategoryHealth, []string{"cvs", "walgreens", "pharmacy", "clinic", "hospital"}},
	{models.CategoryUtilities, []string{"comcast", "verizon", "att", "utility", "electric", "water", "internet"}},
	{models.CategoryEntertainment, []string{"netflix", "spotify", "cinema", "movie", "theater"}},
	{models.CategoryTravel, []string{"airbnb", "hilton", "marriott", "delta", "united", "southwest", "hotel", "airlines"}},
}

// SuggestFromMerchant suggests a category from a merchant name by substring
// match against the hint table. Independent of Classify.
func SuggestFromMerchant(merchantName string) (models.Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(merchantName))
	if norm == "" {
		return "", false
	}

	for _, entry := range merchantHints {
		for _, hint := range entry.hints {
			if strings.Contains(norm, hint) {
				return entry.category, true
			}
		}
	}
	return "", false
}
