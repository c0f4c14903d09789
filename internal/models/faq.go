package models

// Category groups FAQ items on the FAQ page.
type Category string

const (
	CategoryListening  Category = "listening"
	CategorySubmission Category = "submission"
	CategoryGeneral    Category = "general"
	CategoryTechnical  Category = "technical"
)

var categoryLabels = map[Category]string{
	CategoryListening:  "Listening to Episodes",
	CategorySubmission: "Guest Submissions",
	CategoryGeneral:    "General Questions",
	CategoryTechnical:  "Technical Support",
}

// NormalizeCategory maps a raw category value onto the closed set of known
// categories. Empty and unknown values become CategoryGeneral.
func NormalizeCategory(value string) Category {
	c := Category(value)
	if _, ok := categoryLabels[c]; ok {
		return c
	}
	return CategoryGeneral
}

// Label returns the heading shown above the category's questions.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// FAQItem is a single question and answer. Order only sorts items that
// share a category.
type FAQItem struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category Category `json:"category,omitempty"`
	Order    int      `json:"order"`
}

// EffectiveCategory returns the item's category, defaulting to general.
func (f FAQItem) EffectiveCategory() Category {
	return NormalizeCategory(string(f.Category))
}
