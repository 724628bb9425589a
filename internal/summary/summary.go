// Package summary computes derived read-only views of the shopping list.
// All functions are pure; they are recomputed from the current item slice
// whenever the list changes.
package summary

import "github.com/smartshop-app/smartshop/internal/model"

// Group is the ordered set of items sharing one category.
type Group struct {
	Category model.Category       `json:"category"`
	Items    []model.ShoppingItem `json:"items"`
}

// CategorySpend is one chart slice: the summed cost of a category.
type CategorySpend struct {
	Category model.Category `json:"category"`
	Total    float64        `json:"total"`
}

// TotalCost returns the sum of price times quantity across all items.
// An empty list costs exactly 0.
func TotalCost(items []model.ShoppingItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// GroupByCategory partitions items by category. Groups appear in the order
// their category is first seen in the list, and items keep their relative
// insertion order within each group. Categories with no items are omitted.
func GroupByCategory(items []model.ShoppingItem) []Group {
	index := make(map[model.Category]int)
	var groups []Group
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// SpendByCategory returns the per-category cost breakdown for charting.
// Only strictly positive totals are included; ordering follows first
// appearance in the list.
func SpendByCategory(items []model.ShoppingItem) []CategorySpend {
	totals := make(map[model.Category]float64)
	var order []model.Category
	for _, item := range items {
		if _, ok := totals[item.Category]; !ok {
			order = append(order, item.Category)
		}
		totals[item.Category] += item.Price * float64(item.Quantity)
	}

	var spend []CategorySpend
	for _, cat := range order {
		if totals[cat] > 0 {
			spend = append(spend, CategorySpend{Category: cat, Total: totals[cat]})
		}
	}
	return spend
}

// CompletionPercent returns the share of checked items as a percentage in
// [0,100]. An empty list is 0, never a division by zero.
func CompletionPercent(items []model.ShoppingItem) float64 {
	if len(items) == 0 {
		return 0
	}
	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}
	return float64(checked) / float64(len(items)) * 100
}

// ItemCount returns the total number of units across the list (quantities
// summed), matching the "products" counter on the summary panel.
func ItemCount(items []model.ShoppingItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
