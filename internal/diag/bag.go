package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics up to a limit. Not safe for concurrent use:
// parse workers fill one Bag per file and the driver merges them.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag: limit <= 0 is treated as 1.
func NewBag(limit int) *Bag {
	limit = max(limit, 1)
	return &Bag{items: make([]Diagnostic, 0, min(limit, 16)), max: limit}
}

// Add reports false once the bag is full; d is dropped then.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int { return b.max }

func (b *Bag) Len() int { return len(b.items) }

// Items aliases the bag's storage; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Count returns how many diagnostics have exactly sev.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for _, d := range b.items {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

func (b *Bag) ErrorCount() int { return b.Count(SevError) }

func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

// Merge appends everything from other. The limit grows to fit: per-file
// bags were already capped when they were filled.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.max = max(b.max, len(b.items)+len(other.items))
	b.items = append(b.items, other.items...)
}

// Sort orders by file, span, then errors before warnings, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
