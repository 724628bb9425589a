package model

// Category is one of the fixed shopping categories. Items always carry
// exactly one; anything outside the set is invalid input.
type Category string

const (
	CategoryProduce       Category = "Produce"
	CategoryMeatDeli      Category = "Meat & Deli"
	CategoryDairy         Category = "Dairy & Breakfast"
	CategoryBakery        Category = "Bakery"
	CategoryPantry        Category = "Pantry"
	CategoryBeverages     Category = "Beverages"
	CategoryCleaning      Category = "Cleaning"
	CategoryHygieneBeauty Category = "Hygiene & Beauty"
	CategoryOther         Category = "Other"
)

var categories = []Category{
	CategoryProduce,
	CategoryMeatDeli,
	CategoryDairy,
	CategoryBakery,
	CategoryPantry,
	CategoryBeverages,
	CategoryCleaning,
	CategoryHygieneBeauty,
	CategoryOther,
}

// Categories returns all valid categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, cat := range categories {
		if c == cat {
			return true
		}
	}
	return false
}

type ShoppingItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category"`
	Checked  bool     `json:"checked"`
}

// AISuggestion is a candidate item proposed by the model. Suggestions are
// transient and never persisted; they live only until accepted or replaced
// by a newer fetch.
type AISuggestion struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Reason   string   `json:"reason"`
}

// ItemRef is the minimal item view disclosed to the categorization call.
type ItemRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categorization is a transient id-to-category assignment returned by the
// model. It is applied to matching items and then discarded.
type Categorization struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
}

// ItemUpdate carries a partial update; nil fields are left untouched.
type ItemUpdate struct {
	Name     *string   `json:"name"`
	Price    *float64  `json:"price"`
	Quantity *int      `json:"quantity"`
	Category *Category `json:"category"`
	Checked  *bool     `json:"checked"`
}
