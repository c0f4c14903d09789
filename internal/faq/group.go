// Package faq groups FAQ items into category sections and tracks which
// answer is expanded.
package faq

import (
	"sort"

	"modern-podcast/internal/models"
)

// Entry is an item placed in a section, together with its position in the
// original ungrouped collection.
type Entry struct {
	Item  models.FAQItem
	Index int
}

// Section is a category heading with its items sorted by Order.
type Section struct {
	Category models.Category
	Label    string
	Entries  []Entry
}

// Group partitions items by category. Sections appear in the order their
// category is first seen in items; items without a known category land in
// the general section.
func Group(items []models.FAQItem) []Section {
	var sections []Section
	position := make(map[models.Category]int)

	for i, item := range items {
		category := item.EffectiveCategory()
		idx, ok := position[category]
		if !ok {
			idx = len(sections)
			position[category] = idx
			sections = append(sections, Section{
				Category: category,
				Label:    category.Label(),
			})
		}
		sections[idx].Entries = append(sections[idx].Entries, Entry{Item: item, Index: i})
	}

	for i := range sections {
		entries := sections[i].Entries
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Item.Order < entries[b].Item.Order
		})
	}

	return sections
}
