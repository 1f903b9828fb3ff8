package diag

// Bag collects diagnostics in the order they were reported.
// It never sorts or deduplicates: the order of discovery is part of the output.
type Bag struct {
	items []*DefinitionError
	max   int
}

// NewBag creates a bag. max <= 0 means unlimited.
func NewBag(max int) *Bag {
	capacity := max
	if capacity <= 0 || capacity > 16 {
		capacity = 16
	}
	return &Bag{
		items: make([]*DefinitionError, 0, capacity),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d *DefinitionError) bool {
	if d == nil {
		return false
	}
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Extend adds every diagnostic of ds, stopping at the limit.
func (b *Bag) Extend(ds []*DefinitionError) {
	for _, d := range ds {
		if !b.Add(d) {
			return
		}
	}
}

// HasErrors reports whether the bag holds anything.
func (b *Bag) HasErrors() bool {
	return len(b.items) != 0
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (b *Bag) Items() []*DefinitionError {
	return b.items
}

// First returns the earliest diagnostic, or nil when the bag is empty.
func (b *Bag) First() *DefinitionError {
	if len(b.items) == 0 {
		return nil
	}
	return b.items[0]
}

// Merge appends the diagnostics of other, growing the limit if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if b.max > 0 && len(b.items)+len(other.items) > b.max {
		b.max = len(b.items) + len(other.items)
	}
	b.items = append(b.items, other.items...)
}
