package faq

import "strconv"

// Accordion is the expand/collapse state of the FAQ list. At most one
// answer is open. The zero value has nothing open.
type Accordion struct {
	index int
	open  bool
}

// OpenAt returns an accordion with the given index expanded.
func OpenAt(index int) Accordion {
	return Accordion{index: index, open: true}
}

// Activate handles a click on the question at index: the open question
// collapses, any other question opens and replaces the previous one.
func (a *Accordion) Activate(index int) {
	if a.open && a.index == index {
		*a = Accordion{}
		return
	}
	*a = OpenAt(index)
}

// After returns the state that activating index would produce, leaving a
// unchanged.
func (a Accordion) After(index int) Accordion {
	a.Activate(index)
	return a
}

// Open reports the expanded index, if any.
func (a Accordion) Open() (int, bool) {
	return a.index, a.open
}

// IsOpen reports whether the answer at index is expanded.
func (a Accordion) IsOpen(index int) bool {
	return a.open && a.index == index
}

// Encode returns the query-string form of the state; empty when nothing is
// open.
func (a Accordion) Encode() string {
	if !a.open {
		return ""
	}
	return strconv.Itoa(a.index)
}

// ParseAccordion restores a state produced by Encode. Anything that is not a
// non-negative integer yields the closed state.
func ParseAccordion(value string) Accordion {
	if value == "" {
		return Accordion{}
	}
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 {
		return Accordion{}
	}
	return OpenAt(index)
}
