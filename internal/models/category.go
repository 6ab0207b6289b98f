package models

// Category is the fixed expense category enum.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryGroceries     Category = "groceries"
	CategoryTransport     Category = "transport"
	CategoryHome          Category = "home"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryTravel        Category = "travel"
	CategoryGifts         Category = "gifts"
	CategoryOther         Category = "other"
)

// CategoryInfo pairs a category with its display label.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

// Categories is the ordered list of known categories with labels.
// CategoryOther is deliberately last: it is the fallback.
var Categories = []CategoryInfo{
	{CategoryFood, "Food & Dining"},
	{CategoryGroceries, "Groceries"},
	{CategoryTransport, "Transport"},
	{CategoryHome, "Home"},
	{CategoryUtilities, "Utilities"},
	{CategoryEntertainment, "Entertainment"},
	{CategoryShopping, "Shopping"},
	{CategoryHealth, "Health"},
	{CategoryTravel, "Travel"},
	{CategoryGifts, "Gifts"},
	{CategoryOther, "Other"},
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, info := range Categories {
		if info.ID == c {
			return true
		}
	}
	return false
}
