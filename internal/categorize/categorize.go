// Package categorize assigns a category to an item from its name alone,
// without any network call. It backs the add flow when the client sends no
// category and keeps the list organized when no AI credential is configured.
package categorize

import (
	"strings"

	"github.com/smartshop-app/smartshop/internal/model"
)

// Guess returns the category for the given item name. Matching is
// case-insensitive: exact match first, then substring match. Falls back to
// Other when nothing matches.
func Guess(itemName string) model.Category {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return model.CategoryOther
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// Substring entries are ordered longer/more-specific first.
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return model.CategoryOther
}

var exactMatch = map[string]model.Category{
	// Produce
	"apple":        model.CategoryProduce,
	"apples":       model.CategoryProduce,
	"banana":       model.CategoryProduce,
	"bananas":      model.CategoryProduce,
	"orange":       model.CategoryProduce,
	"oranges":      model.CategoryProduce,
	"lemon":        model.CategoryProduce,
	"lime":         model.CategoryProduce,
	"avocado":      model.CategoryProduce,
	"tomato":       model.CategoryProduce,
	"tomatoes":     model.CategoryProduce,
	"potato":       model.CategoryProduce,
	"potatoes":     model.CategoryProduce,
	"onion":        model.CategoryProduce,
	"onions":       model.CategoryProduce,
	"garlic":       model.CategoryProduce,
	"lettuce":      model.CategoryProduce,
	"spinach":      model.CategoryProduce,
	"broccoli":     model.CategoryProduce,
	"carrots":      model.CategoryProduce,
	"cucumber":     model.CategoryProduce,
	"mushrooms":    model.CategoryProduce,
	"grapes":       model.CategoryProduce,
	"strawberries": model.CategoryProduce,
	"watermelon":   model.CategoryProduce,
	"pineapple":    model.CategoryProduce,
	"mango":        model.CategoryProduce,
	"cilantro":     model.CategoryProduce,
	"ginger":       model.CategoryProduce,
	"zucchini":     model.CategoryProduce,

	// Meat & Deli
	"chicken":     model.CategoryMeatDeli,
	"beef":        model.CategoryMeatDeli,
	"pork":        model.CategoryMeatDeli,
	"turkey":      model.CategoryMeatDeli,
	"bacon":       model.CategoryMeatDeli,
	"sausage":     model.CategoryMeatDeli,
	"ham":         model.CategoryMeatDeli,
	"steak":       model.CategoryMeatDeli,
	"salmon":      model.CategoryMeatDeli,
	"shrimp":      model.CategoryMeatDeli,
	"tuna":        model.CategoryMeatDeli,
	"fish":        model.CategoryMeatDeli,
	"ground beef": model.CategoryMeatDeli,
	"hot dogs":    model.CategoryMeatDeli,
	"deli meat":   model.CategoryMeatDeli,
	"salami":      model.CategoryMeatDeli,
	"mortadella":  model.CategoryMeatDeli,

	// Dairy & Breakfast
	"milk":           model.CategoryDairy,
	"eggs":           model.CategoryDairy,
	"butter":         model.CategoryDairy,
	"cheese":         model.CategoryDairy,
	"yogurt":         model.CategoryDairy,
	"cream cheese":   model.CategoryDairy,
	"sour cream":     model.CategoryDairy,
	"heavy cream":    model.CategoryDairy,
	"cottage cheese": model.CategoryDairy,
	"cereal":         model.CategoryDairy,
	"oatmeal":        model.CategoryDairy,
	"granola":        model.CategoryDairy,
	"margarine":      model.CategoryDairy,

	// Bakery
	"bread":      model.CategoryBakery,
	"bagels":     model.CategoryBakery,
	"tortillas":  model.CategoryBakery,
	"rolls":      model.CategoryBakery,
	"buns":       model.CategoryBakery,
	"muffins":    model.CategoryBakery,
	"croissants": model.CategoryBakery,
	"baguette":   model.CategoryBakery,
	"cake":       model.CategoryBakery,

	// Pantry
	"rice":          model.CategoryPantry,
	"pasta":         model.CategoryPantry,
	"flour":         model.CategoryPantry,
	"sugar":         model.CategoryPantry,
	"salt":          model.CategoryPantry,
	"pepper":        model.CategoryPantry,
	"olive oil":     model.CategoryPantry,
	"vinegar":       model.CategoryPantry,
	"soy sauce":     model.CategoryPantry,
	"ketchup":       model.CategoryPantry,
	"mustard":       model.CategoryPantry,
	"mayonnaise":    model.CategoryPantry,
	"honey":         model.CategoryPantry,
	"peanut butter": model.CategoryPantry,
	"jam":           model.CategoryPantry,
	"beans":         model.CategoryPantry,
	"lentils":       model.CategoryPantry,
	"spaghetti":     model.CategoryPantry,
	"noodles":       model.CategoryPantry,
	"hot sauce":     model.CategoryPantry,
	"canned corn":   model.CategoryPantry,

	// Beverages
	"water":           model.CategoryBeverages,
	"juice":           model.CategoryBeverages,
	"coffee":          model.CategoryBeverages,
	"tea":             model.CategoryBeverages,
	"soda":            model.CategoryBeverages,
	"beer":            model.CategoryBeverages,
	"wine":            model.CategoryBeverages,
	"lemonade":        model.CategoryBeverages,
	"sparkling water": model.CategoryBeverages,

	// Cleaning
	"paper towels":      model.CategoryCleaning,
	"toilet paper":      model.CategoryCleaning,
	"trash bags":        model.CategoryCleaning,
	"dish soap":         model.CategoryCleaning,
	"laundry detergent": model.CategoryCleaning,
	"sponges":           model.CategoryCleaning,
	"aluminum foil":     model.CategoryCleaning,
	"plastic wrap":      model.CategoryCleaning,
	"bleach":            model.CategoryCleaning,
	"napkins":           model.CategoryCleaning,
	"cleaning spray":    model.CategoryCleaning,

	// Hygiene & Beauty
	"shampoo":     model.CategoryHygieneBeauty,
	"conditioner": model.CategoryHygieneBeauty,
	"soap":        model.CategoryHygieneBeauty,
	"body wash":   model.CategoryHygieneBeauty,
	"toothpaste":  model.CategoryHygieneBeauty,
	"toothbrush":  model.CategoryHygieneBeauty,
	"deodorant":   model.CategoryHygieneBeauty,
	"lotion":      model.CategoryHygieneBeauty,
	"sunscreen":   model.CategoryHygieneBeauty,
	"floss":       model.CategoryHygieneBeauty,
	"razors":      model.CategoryHygieneBeauty,
	"tissues":     model.CategoryHygieneBeauty,
}

type substringEntry struct {
	keyword  string
	category model.Category
}

// Ordered with longer/more-specific keywords first for deterministic priority.
var substringMatches = []substringEntry{
	// Meat & Deli
	{"chicken breast", model.CategoryMeatDeli},
	{"chicken thigh", model.CategoryMeatDeli},
	{"ground beef", model.CategoryMeatDeli},
	{"ground turkey", model.CategoryMeatDeli},
	{"deli meat", model.CategoryMeatDeli},
	{"pork chop", model.CategoryMeatDeli},
	{"hot dog", model.CategoryMeatDeli},
	{"cold cut", model.CategoryMeatDeli},

	// Dairy & Breakfast ("peanut butter" precedes the bare "butter" entry)
	{"peanut butter", model.CategoryPantry},
	{"cream cheese", model.CategoryDairy},
	{"sour cream", model.CategoryDairy},
	{"greek yogurt", model.CategoryDairy},
	{"almond milk", model.CategoryDairy},
	{"oat milk", model.CategoryDairy},
	{"yogurt", model.CategoryDairy},
	{"cheese", model.CategoryDairy},
	{"milk", model.CategoryDairy},
	{"butter", model.CategoryDairy},
	{"cream", model.CategoryDairy},
	{"egg", model.CategoryDairy},
	{"cereal", model.CategoryDairy},
	{"granola", model.CategoryDairy},

	// Produce
	{"baby spinach", model.CategoryProduce},
	{"green onion", model.CategoryProduce},
	{"sweet potato", model.CategoryProduce},
	{"bell pepper", model.CategoryProduce},
	{"cherry tomato", model.CategoryProduce},
	{"salad", model.CategoryProduce},
	{"cabbage", model.CategoryProduce},
	{"cauliflower", model.CategoryProduce},
	{"squash", model.CategoryProduce},
	{"melon", model.CategoryProduce},
	{"berries", model.CategoryProduce},
	{"berry", model.CategoryProduce},
	{"fruit", model.CategoryProduce},
	{"lettuce", model.CategoryProduce},
	{"spinach", model.CategoryProduce},
	{"apple", model.CategoryProduce},
	{"banana", model.CategoryProduce},
	{"tomato", model.CategoryProduce},
	{"potato", model.CategoryProduce},
	{"onion", model.CategoryProduce},
	{"pepper", model.CategoryProduce},
	{"carrot", model.CategoryProduce},

	// Bakery
	{"sourdough", model.CategoryBakery},
	{"whole wheat", model.CategoryBakery},
	{"bread", model.CategoryBakery},
	{"bagel", model.CategoryBakery},
	{"tortilla", model.CategoryBakery},
	{"bun", model.CategoryBakery},
	{"roll", model.CategoryBakery},
	{"muffin", model.CategoryBakery},
	{"croissant", model.CategoryBakery},
	{"pastry", model.CategoryBakery},

	// Pantry
	{"olive oil", model.CategoryPantry},
	{"maple syrup", model.CategoryPantry},
	{"hot sauce", model.CategoryPantry},
	{"soy sauce", model.CategoryPantry},
	{"pasta sauce", model.CategoryPantry},
	{"tomato sauce", model.CategoryPantry},
	{"canned", model.CategoryPantry},
	{"rice", model.CategoryPantry},
	{"pasta", model.CategoryPantry},
	{"noodle", model.CategoryPantry},
	{"flour", model.CategoryPantry},
	{"sugar", model.CategoryPantry},
	{"spice", model.CategoryPantry},
	{"seasoning", model.CategoryPantry},
	{"sauce", model.CategoryPantry},
	{"broth", model.CategoryPantry},
	{"soup", model.CategoryPantry},
	{"bean", model.CategoryPantry},
	{"lentil", model.CategoryPantry},
	{"cookie", model.CategoryPantry},
	{"cracker", model.CategoryPantry},
	{"chip", model.CategoryPantry},
	{"chocolate", model.CategoryPantry},
	{"snack", model.CategoryPantry},

	// Beverages
	{"sparkling water", model.CategoryBeverages},
	{"orange juice", model.CategoryBeverages},
	{"coffee", model.CategoryBeverages},
	{"juice", model.CategoryBeverages},
	{"soda", model.CategoryBeverages},
	{"water", model.CategoryBeverages},
	{"beer", model.CategoryBeverages},
	{"wine", model.CategoryBeverages},
	{"drink", model.CategoryBeverages},

	// Cleaning
	{"paper towel", model.CategoryCleaning},
	{"toilet paper", model.CategoryCleaning},
	{"trash bag", model.CategoryCleaning},
	{"garbage bag", model.CategoryCleaning},
	{"dish soap", model.CategoryCleaning},
	{"laundry", model.CategoryCleaning},
	{"detergent", model.CategoryCleaning},
	{"cleaner", model.CategoryCleaning},
	{"cleaning", model.CategoryCleaning},
	{"sponge", model.CategoryCleaning},
	{"foil", model.CategoryCleaning},
	{"disinfect", model.CategoryCleaning},
	{"bleach", model.CategoryCleaning},

	// Hygiene & Beauty
	{"body wash", model.CategoryHygieneBeauty},
	{"shampoo", model.CategoryHygieneBeauty},
	{"conditioner", model.CategoryHygieneBeauty},
	{"toothpaste", model.CategoryHygieneBeauty},
	{"toothbrush", model.CategoryHygieneBeauty},
	{"deodorant", model.CategoryHygieneBeauty},
	{"lotion", model.CategoryHygieneBeauty},
	{"sunscreen", model.CategoryHygieneBeauty},
	{"razor", model.CategoryHygieneBeauty},
	{"tissue", model.CategoryHygieneBeauty},
	{"makeup", model.CategoryHygieneBeauty},
	{"soap", model.CategoryHygieneBeauty},
}
