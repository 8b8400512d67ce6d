package selectlist

// ToSlice flattens l into its logical order, converting every unselected
// item with unselected and the selection, if present, with selected.
func ToSlice[A, B, C any](unselected func(A) C, selected func(B) C, l List[A, B]) []C {
	out := make([]C, 0, l.Len())
	for _, v := range l.before {
		out = append(out, unselected(v))
	}
	if l.hasSelected {
		out = append(out, selected(l.selected))
	}
	for _, v := range l.after {
		out = append(out, unselected(v))
	}
	return out
}

// Flatten is ToSlice with identity conversions, for lists whose unselected
// and selected types coincide.
func Flatten[A any](l List[A, A]) []A {
	id := func(v A) A { return v }
	return ToSlice(id, id, l)
}

// Map applies unselected to every prefix and suffix item and selected to the
// selection, preserving structure: no item moves and the selection stays at
// the same logical index.
func Map[A, B, C, D any](unselected func(A) C, selected func(B) D, l List[A, B]) List[C, D] {
	next := List[C, D]{
		before: mapSlice(unselected, l.before),
		after:  mapSlice(unselected, l.after),
	}
	if l.hasSelected {
		next.selected = selected(l.selected)
		next.hasSelected = true
	}
	return next
}

// IndexedMap is Map where both conversions also receive the item's 0-based
// position in the flattened logical order. The selection's index is the
// prefix length; suffix items follow it.
func IndexedMap[A, B, C, D any](unselected func(int, A) C, selected func(int, B) D, l List[A, B]) List[C, D] {
	next := List[C, D]{
		before: make([]C, len(l.before)),
		after:  make([]C, len(l.after)),
	}
	for i, v := range l.before {
		next.before[i] = unselected(i, v)
	}
	offset := len(l.before)
	if l.hasSelected {
		next.selected = selected(offset, l.selected)
		next.hasSelected = true
		offset++
	}
	for i, v := range l.after {
		next.after[i] = unselected(offset+i, v)
	}
	return next
}

func mapSlice[A, C any](fn func(A) C, in []A) []C {
	if len(in) == 0 {
		return nil
	}
	out := make([]C, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
