package tags

// Table is the tag collection of a single node or edge: a short vector
// probed linearly by (kind, launch, capture) key. The zero value is an
// empty table.
type Table struct {
	tags []Tag
}

// Add inserts tag if its key is absent and reports whether it inserted.
// An existing tag under the same key is left untouched.
func (tb *Table) Add(tag Tag) bool {
	if tb.find(tag) >= 0 {
		return false
	}
	tb.tags = append(tb.tags, tag)

	return true
}

// MaxArr folds an arrival candidate: if no tag matches the key the
// candidate is inserted; otherwise its time and origin replace the
// existing tag's iff the candidate time is strictly larger (or the
// existing time is invalid). Ties keep the first writer.
func (tb *Table) MaxArr(tag Tag) {
	i := tb.find(tag)
	if i < 0 {
		tb.tags = append(tb.tags, tag)

		return
	}
	if !tb.tags[i].Time.Valid() || tag.Time.Gt(tb.tags[i].Time) {
		tb.tags[i].Time = tag.Time
		tb.tags[i].Origin = tag.Origin
	}
}

// MinArr is the mirror of MaxArr with the opposite comparison.
func (tb *Table) MinArr(tag Tag) {
	i := tb.find(tag)
	if i < 0 {
		tb.tags = append(tb.tags, tag)

		return
	}
	if !tb.tags[i].Time.Valid() || tag.Time.Lt(tb.tags[i].Time) {
		tb.tags[i].Time = tag.Time
		tb.tags[i].Origin = tag.Origin
	}
}

// MinReq folds a required candidate: smaller time wins. Only the time is
// replaced; the origin stays as set at insertion.
func (tb *Table) MinReq(tag Tag) {
	i := tb.find(tag)
	if i < 0 {
		tb.tags = append(tb.tags, tag)

		return
	}
	if !tb.tags[i].Time.Valid() || tag.Time.Lt(tb.tags[i].Time) {
		tb.tags[i].Time = tag.Time
	}
}

// MaxReq is the mirror of MinReq with the opposite comparison.
func (tb *Table) MaxReq(tag Tag) {
	i := tb.find(tag)
	if i < 0 {
		tb.tags = append(tb.tags, tag)

		return
	}
	if !tb.tags[i].Time.Valid() || tag.Time.Gt(tb.tags[i].Time) {
		tb.tags[i].Time = tag.Time
	}
}

// MinSlack folds a slack candidate: the smallest (worst) slack wins,
// carrying its origin for traceback.
func (tb *Table) MinSlack(tag Tag) {
	tb.MinArr(tag)
}

// All returns the tags in insertion order. The slice is owned by the
// table and must not be mutated.
func (tb *Table) All() []Tag {
	return tb.tags
}

// OfKind returns the tags of kind k in insertion order.
func (tb *Table) OfKind(k Kind) []Tag {
	var out []Tag
	for _, t := range tb.tags {
		if t.Kind == k {
			out = append(out, t)
		}
	}

	return out
}

// Len returns the tag count.
func (tb *Table) Len() int { return len(tb.tags) }

// Reset drops all tags, retaining capacity for the next pass.
func (tb *Table) Reset() { tb.tags = tb.tags[:0] }

// find returns the index of the tag matching tag's key, or −1.
func (tb *Table) find(tag Tag) int {
	for i := range tb.tags {
		if tb.tags[i].matches(tag.Kind, tag.LaunchDomain, tag.CaptureDomain) {
			return i
		}
	}

	return -1
}
